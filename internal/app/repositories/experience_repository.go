package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/devfolio/internal/app/models"
	"github.com/emre/devfolio/internal/pkg/logger"
)

// ErrExperienceNotFound is returned when an experience entry is not found.
var ErrExperienceNotFound = ErrNotFound

// ExperienceRepository handles experience entry database operations
type ExperienceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewExperienceRepository creates a new ExperienceRepository
func NewExperienceRepository(db *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new experience entry
func (r *ExperienceRepository) Create(ctx context.Context, exp *models.Experience) (int64, error) {
	sql, args, err := r.sb.Insert("experience").
		Columns("student_id", "role", "company", "start_date", "end_date", "current", "description", "logo").
		Values(exp.StudentID, exp.Role, exp.Company, exp.StartDate, exp.EndDate, boolToFlag(exp.Current), exp.Description, exp.Logo).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create experience SQL")
		return 0, fmt.Errorf("failed to build create experience query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create experience query")
		return 0, fmt.Errorf("error creating experience entry: %w", err)
	}

	return id, nil
}

// GetByStudentID retrieves all experience entries for a student
func (r *ExperienceRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Experience, error) {
	sql, args, err := r.sb.Select("id", "student_id", "role", "company", "start_date", "end_date", "current", "description", "logo").
		From("experience").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get experience SQL")
		return nil, fmt.Errorf("failed to build get experience query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get experience query")
		return nil, fmt.Errorf("error querying experience entries: %w", err)
	}
	defer rows.Close()

	entries := []*models.Experience{}
	for rows.Next() {
		e := &models.Experience{}
		var current int16
		if err := rows.Scan(&e.ID, &e.StudentID, &e.Role, &e.Company, &e.StartDate, &e.EndDate, &current, &e.Description, &e.Logo); err != nil {
			logger.Error().Err(err).Msg("Error scanning experience row")
			return nil, fmt.Errorf("error scanning experience row: %w", err)
		}
		e.Current = current != 0
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating experience rows")
		return nil, fmt.Errorf("error iterating experience rows: %w", err)
	}

	return entries, nil
}

// CountAll returns the total number of experience entries
func (r *ExperienceRepository) CountAll(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("experience").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count experience query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Msg("Error counting experience entries")
		return 0, fmt.Errorf("error counting experience entries: %w", err)
	}
	return n, nil
}

// Delete removes an experience entry by id
func (r *ExperienceRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("experience").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete experience SQL")
		return fmt.Errorf("failed to build delete experience query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("experienceID", id).Msg("Error executing delete experience query")
		return fmt.Errorf("error deleting experience entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrExperienceNotFound
	}

	return nil
}
