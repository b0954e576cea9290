package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/devfolio/internal/app/models"
	"github.com/emre/devfolio/internal/pkg/logger"
)

// ErrCertificateNotFound is returned when a certificate is not found.
var ErrCertificateNotFound = ErrNotFound

// CertificateRepository handles certificate database operations
type CertificateRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCertificateRepository creates a new CertificateRepository
func NewCertificateRepository(db *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new certificate
func (r *CertificateRepository) Create(ctx context.Context, cert *models.Certificate) (int64, error) {
	sql, args, err := r.sb.Insert("certificates").
		Columns("student_id", "title", "issuer", "date", "credential_id", "credential_url", "image", "category").
		Values(cert.StudentID, cert.Title, cert.Issuer, cert.Date, cert.CredentialID, cert.CredentialURL, cert.Image, cert.Category).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create certificate SQL")
		return 0, fmt.Errorf("failed to build create certificate query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create certificate query")
		return 0, fmt.Errorf("error creating certificate: %w", err)
	}

	return id, nil
}

// GetByStudentID retrieves all certificates for a student
func (r *CertificateRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Certificate, error) {
	sql, args, err := r.sb.Select("id", "student_id", "title", "issuer", "date", "credential_id", "credential_url", "image", "category").
		From("certificates").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get certificates SQL")
		return nil, fmt.Errorf("failed to build get certificates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get certificates query")
		return nil, fmt.Errorf("error querying certificates: %w", err)
	}
	defer rows.Close()

	certs := []*models.Certificate{}
	for rows.Next() {
		c := &models.Certificate{}
		if err := rows.Scan(&c.ID, &c.StudentID, &c.Title, &c.Issuer, &c.Date, &c.CredentialID, &c.CredentialURL, &c.Image, &c.Category); err != nil {
			logger.Error().Err(err).Msg("Error scanning certificate row")
			return nil, fmt.Errorf("error scanning certificate row: %w", err)
		}
		certs = append(certs, c)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating certificate rows")
		return nil, fmt.Errorf("error iterating certificate rows: %w", err)
	}

	return certs, nil
}

// CountAll returns the total number of certificates
func (r *CertificateRepository) CountAll(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("certificates").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count certificates query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Msg("Error counting certificates")
		return 0, fmt.Errorf("error counting certificates: %w", err)
	}
	return n, nil
}

// Delete removes a certificate by id
func (r *CertificateRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("certificates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete certificate SQL")
		return fmt.Errorf("failed to build delete certificate query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("certificateID", id).Msg("Error executing delete certificate query")
		return fmt.Errorf("error deleting certificate: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCertificateNotFound
	}

	return nil
}
