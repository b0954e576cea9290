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

// ErrStudentNotFound is returned when no student profile row exists yet.
var ErrStudentNotFound = ErrNotFound

var studentColumns = []string{
	"id", "name", "tagline", "email", "phone", "location", "about",
	"profile_image", "github", "linkedin", "twitter", "website", "resume", "skills",
}

// StudentRepository handles the single student profile row
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.Name, &s.Tagline, &s.Email, &s.Phone, &s.Location, &s.About,
		&s.ProfileImage, &s.GitHub, &s.LinkedIn, &s.Twitter, &s.Website, &s.Resume, &s.Skills,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetFirst retrieves the student profile row using first-row semantics.
// The deployment assumes at most one row; ordering by id keeps the result
// stable if that assumption is ever violated.
func (r *StudentRepository) GetFirst(ctx context.Context) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}

// Create inserts the student profile row
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("name", "tagline", "email", "phone", "location", "about",
			"profile_image", "github", "linkedin", "twitter", "website", "resume", "skills").
		Values(student.Name, student.Tagline, student.Email, student.Phone, student.Location, student.About,
			student.ProfileImage, student.GitHub, student.LinkedIn, student.Twitter, student.Website, student.Resume, student.Skills).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// Update updates the student profile row. The profile_image and resume
// columns are only touched when the model carries a non-empty path, so an
// edit without a new upload preserves the stored files.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	setMap := map[string]interface{}{
		"name":     student.Name,
		"tagline":  student.Tagline,
		"email":    student.Email,
		"phone":    student.Phone,
		"location": student.Location,
		"about":    student.About,
		"github":   student.GitHub,
		"linkedin": student.LinkedIn,
		"twitter":  student.Twitter,
		"website":  student.Website,
		"skills":   student.Skills,
	}
	if student.ProfileImage != "" {
		setMap["profile_image"] = student.ProfileImage
	}
	if student.Resume != "" {
		setMap["resume"] = student.Resume
	}

	sql, args, err := r.sb.Update("students").
		SetMap(setMap).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}
