package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/devfolio/internal/app/models"
	"github.com/emre/devfolio/internal/pkg/logger"
)

// ErrProjectNotFound is returned when a project is not found.
var ErrProjectNotFound = ErrNotFound

var projectColumns = []string{
	"id", "student_id", "title", "description", "tech_stack", "image",
	"github_link", "live_link", "category", "featured", "created_at",
}

// ProjectRepository handles project database operations
type ProjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanProject(row pgx.Row) (*models.Project, error) {
	p := &models.Project{}
	var featured int16
	err := row.Scan(
		&p.ID, &p.StudentID, &p.Title, &p.Description, &p.TechStack, &p.Image,
		&p.GitHubLink, &p.LiveLink, &p.Category, &featured, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Featured = featured != 0
	return p, nil
}

func boolToFlag(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

// Create inserts a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) (int64, error) {
	sql, args, err := r.sb.Insert("projects").
		Columns("student_id", "title", "description", "tech_stack", "image", "github_link", "live_link", "category", "featured").
		Values(project.StudentID, project.Title, project.Description, project.TechStack, project.Image,
			project.GitHubLink, project.LiveLink, project.Category, boolToFlag(project.Featured)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create project SQL")
		return 0, fmt.Errorf("failed to build create project query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create project query")
		return 0, fmt.Errorf("error creating project: %w", err)
	}

	return id, nil
}

// GetByID retrieves a project by id
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	sql, args, err := r.sb.Select(projectColumns...).
		From("projects").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get project SQL")
		return nil, fmt.Errorf("failed to build get project query: %w", err)
	}

	project, err := scanProject(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		logger.Error().Err(err).Int64("projectID", id).Msg("Error scanning project row")
		return nil, fmt.Errorf("error getting project by ID: %w", err)
	}

	return project, nil
}

// GetByStudentID retrieves all projects for a student
func (r *ProjectRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Project, error) {
	sql, args, err := r.sb.Select(projectColumns...).
		From("projects").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get projects SQL")
		return nil, fmt.Errorf("failed to build get projects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get projects query")
		return nil, fmt.Errorf("error querying projects: %w", err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning project row")
			return nil, fmt.Errorf("error scanning project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating project rows")
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// CountAll returns the total number of projects
func (r *ProjectRepository) CountAll(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("projects").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count projects query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Msg("Error counting projects")
		return 0, fmt.Errorf("error counting projects: %w", err)
	}
	return n, nil
}

// Update updates an existing project. The image column is only touched when
// the model carries a non-empty path.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	setMap := map[string]interface{}{
		"title":       project.Title,
		"description": project.Description,
		"tech_stack":  project.TechStack,
		"github_link": project.GitHubLink,
		"live_link":   project.LiveLink,
		"category":    project.Category,
		"featured":    boolToFlag(project.Featured),
	}
	if project.Image != "" {
		setMap["image"] = project.Image
	}

	sql, args, err := r.sb.Update("projects").
		SetMap(setMap).
		Where(squirrel.Eq{"id": project.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update project SQL")
		return fmt.Errorf("failed to build update project query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", project.ID).Msg("Error executing update project query")
		return fmt.Errorf("error updating project: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// Delete removes a project by id
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("projects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete project SQL")
		return fmt.Errorf("failed to build delete project query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", id).Msg("Error executing delete project query")
		return fmt.Errorf("error deleting project: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrProjectNotFound
	}

	return nil
}
