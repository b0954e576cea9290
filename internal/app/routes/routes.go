package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emre/devfolio/internal/app/controllers"
	"github.com/emre/devfolio/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	portfolioController *controllers.PortfolioController,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	studentController *controllers.StudentController,
	educationController *controllers.EducationController,
	projectController *controllers.ProjectController,
	certificateController *controllers.CertificateController,
	experienceController *controllers.ExperienceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Public portfolio page
	router.GET("/", portfolioController.Index)

	// Admin auth (outside the session gate)
	router.GET("/admin/login", authController.ShowLogin)
	router.POST("/admin/login", authController.Login)
	router.GET("/admin/logout", authController.Logout)

	// Admin panel, guarded as a group by the session middleware
	admin := router.Group("/admin")
	admin.Use(authMiddleware.SessionRequired())
	{
		admin.GET("", dashboardController.Dashboard)

		admin.GET("/personal", studentController.ShowPersonal)
		admin.POST("/personal", studentController.SavePersonal)

		education := admin.Group("/education")
		{
			education.GET("", educationController.List)
			education.POST("/add", educationController.Add)
			education.GET("/delete/:id", educationController.Delete)
		}

		projects := admin.Group("/projects")
		{
			projects.GET("", projectController.List)
			projects.POST("/add", projectController.Add)
			projects.GET("/edit/:id", projectController.ShowEdit)
			projects.POST("/edit/:id", projectController.Edit)
			projects.GET("/delete/:id", projectController.Delete)
		}

		certificates := admin.Group("/certificates")
		{
			certificates.GET("", certificateController.List)
			certificates.POST("/add", certificateController.Add)
			certificates.GET("/delete/:id", certificateController.Delete)
		}

		experience := admin.Group("/experience")
		{
			experience.GET("", experienceController.List)
			experience.POST("/add", experienceController.Add)
			experience.GET("/delete/:id", experienceController.Delete)
		}
	}
}
