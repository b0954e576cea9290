package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emre/devfolio/internal/app/controllers"
	appMigrations "github.com/emre/devfolio/internal/app/migrations"
	appRepos "github.com/emre/devfolio/internal/app/repositories"
	appRoutes "github.com/emre/devfolio/internal/app/routes"
	appServices "github.com/emre/devfolio/internal/app/services"
	"github.com/emre/devfolio/internal/config"
	"github.com/emre/devfolio/internal/db"
	appMiddleware "github.com/emre/devfolio/internal/middleware"
	"github.com/emre/devfolio/internal/pkg/filestorage"
	"github.com/emre/devfolio/internal/pkg/helpers"
	"github.com/emre/devfolio/internal/pkg/logger"
	"github.com/emre/devfolio/internal/seed"
)

// uploadCategories are the subdirectories created under the storage root.
var uploadCategories = []string{"profile", "projects", "certificates", "education", "experience"}

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	StudentService        appServices.StudentService
	EducationService      appServices.EducationService
	ProjectService        appServices.ProjectService
	CertificateService    appServices.CertificateService
	ExperienceService     appServices.ExperienceService
	PortfolioService      appServices.PortfolioService
	PortfolioController   *appControllers.PortfolioController
	AuthController        *appControllers.AuthController
	DashboardController   *appControllers.DashboardController
	StudentController     *appControllers.StudentController
	EducationController   *appControllers.EducationController
	ProjectController     *appControllers.ProjectController
	CertificateController *appControllers.CertificateController
	ExperienceController  *appControllers.ExperienceController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	Logger                zerolog.Logger
	FileStorage           *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed the default admin account after migrations
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	if err := deps.FileStorage.EnsureCategories(uploadCategories...); err != nil {
		lgr.Error().Err(err).Msg("Failed to create upload directories")
		return nil, fmt.Errorf("failed to create upload directories: %w", err)
	}

	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.EducationService = appServices.NewEducationService(deps.Repos.EducationRepository)
	deps.ProjectService = appServices.NewProjectService(deps.Repos.ProjectRepository)
	deps.CertificateService = appServices.NewCertificateService(deps.Repos.CertificateRepository)
	deps.ExperienceService = appServices.NewExperienceService(deps.Repos.ExperienceRepository)
	deps.PortfolioService = appServices.NewPortfolioService(
		deps.Repos.StudentRepository,
		deps.Repos.ProjectRepository,
		deps.Repos.CertificateRepository,
		deps.Repos.EducationRepository,
		deps.Repos.ExperienceRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware()

	deps.PortfolioController = appControllers.NewPortfolioController(deps.PortfolioService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.DashboardController = appControllers.NewDashboardController(deps.StudentService, deps.PortfolioService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.FileStorage)
	deps.EducationController = appControllers.NewEducationController(deps.EducationService, deps.StudentService, deps.FileStorage)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService, deps.StudentService, deps.FileStorage)
	deps.CertificateController = appControllers.NewCertificateController(deps.CertificateService, deps.StudentService, deps.FileStorage)
	deps.ExperienceController = appControllers.NewExperienceController(deps.ExperienceService, deps.StudentService, deps.FileStorage)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, sessions, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())

	// Server-side session store; the cookie only carries an opaque session id.
	store := memstore.NewStore([]byte(cfg.Session.Secret))
	maxAge := helpers.ParseDuration(cfg.Session.MaxAge, 168*time.Hour)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
	})
	router.Use(sessions.Sessions(cfg.Session.CookieName, store))

	router.LoadHTMLGlob(filepath.Join("web", "templates", "*.html"))

	// Uploaded files are served from the storage root under /static/uploads,
	// matching the relative paths stored on the records.
	router.Static("/static/uploads", cfg.Server.StoragePath)
	router.Static("/assets", filepath.Join("web", "static"))

	appRoutes.SetupRouter(router,
		deps.PortfolioController,
		deps.AuthController,
		deps.DashboardController,
		deps.StudentController,
		deps.EducationController,
		deps.ProjectController,
		deps.CertificateController,
		deps.ExperienceController,
		deps.AuthMiddleware,
	)

	return router
}
