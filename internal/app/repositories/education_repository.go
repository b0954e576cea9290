package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/devfolio/internal/app/models"
	"github.com/emre/devfolio/internal/pkg/logger"
)

// ErrEducationNotFound is returned when an education entry is not found.
var ErrEducationNotFound = ErrNotFound

// EducationRepository handles education entry database operations
type EducationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEducationRepository creates a new EducationRepository
func NewEducationRepository(db *pgxpool.Pool) *EducationRepository {
	return &EducationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new education entry
func (r *EducationRepository) Create(ctx context.Context, edu *models.Education) (int64, error) {
	sql, args, err := r.sb.Insert("education").
		Columns("student_id", "degree", "institution", "field", "start_year", "end_year", "grade", "description", "logo").
		Values(edu.StudentID, edu.Degree, edu.Institution, edu.Field, edu.StartYear, edu.EndYear, edu.Grade, edu.Description, edu.Logo).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create education SQL")
		return 0, fmt.Errorf("failed to build create education query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create education query")
		return 0, fmt.Errorf("error creating education entry: %w", err)
	}

	return id, nil
}

// GetByStudentID retrieves all education entries for a student
func (r *EducationRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Education, error) {
	sql, args, err := r.sb.Select("id", "student_id", "degree", "institution", "field", "start_year", "end_year", "grade", "description", "logo").
		From("education").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get education SQL")
		return nil, fmt.Errorf("failed to build get education query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get education query")
		return nil, fmt.Errorf("error querying education entries: %w", err)
	}
	defer rows.Close()

	entries := []*models.Education{}
	for rows.Next() {
		e := &models.Education{}
		if err := rows.Scan(&e.ID, &e.StudentID, &e.Degree, &e.Institution, &e.Field, &e.StartYear, &e.EndYear, &e.Grade, &e.Description, &e.Logo); err != nil {
			logger.Error().Err(err).Msg("Error scanning education row")
			return nil, fmt.Errorf("error scanning education row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating education rows")
		return nil, fmt.Errorf("error iterating education rows: %w", err)
	}

	return entries, nil
}

// CountAll returns the total number of education entries
func (r *EducationRepository) CountAll(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("education").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count education query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Msg("Error counting education entries")
		return 0, fmt.Errorf("error counting education entries: %w", err)
	}
	return n, nil
}

// Delete removes an education entry by id
func (r *EducationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("education").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete education SQL")
		return fmt.Errorf("failed to build delete education query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("educationID", id).Msg("Error executing delete education query")
		return fmt.Errorf("error deleting education entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrEducationNotFound
	}

	return nil
}
