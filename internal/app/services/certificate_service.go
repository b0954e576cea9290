package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/devfolio/internal/app/models"
	"github.com/emre/devfolio/internal/app/models/dto"
	"github.com/emre/devfolio/internal/app/repositories"
	"github.com/emre/devfolio/internal/pkg/apperrors"
)

// CertificateService defines the interface for certificate operations
type CertificateService interface {
	ListForStudent(ctx context.Context, studentID int64) ([]*models.Certificate, error)
	Add(ctx context.Context, studentID int64, form *dto.CertificateForm, imagePath string) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// certificateServiceImpl implements the CertificateService interface
type certificateServiceImpl struct {
	certificateRepo *repositories.CertificateRepository
}

// NewCertificateService creates a new certificate service instance
func NewCertificateService(certificateRepo *repositories.CertificateRepository) CertificateService {
	return &certificateServiceImpl{
		certificateRepo: certificateRepo,
	}
}

// ListForStudent returns all certificates for a student
func (s *certificateServiceImpl) ListForStudent(ctx context.Context, studentID int64) ([]*models.Certificate, error) {
	certs, err := s.certificateRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	return certs, nil
}

// Add creates a new certificate owned by the student
func (s *certificateServiceImpl) Add(ctx context.Context, studentID int64, form *dto.CertificateForm, imagePath string) (int64, error) {
	cert := &models.Certificate{
		StudentID:     studentID,
		Title:         form.Title,
		Issuer:        form.Issuer,
		Date:          form.Date,
		CredentialID:  form.CredentialID,
		CredentialURL: form.CredentialURL,
		Image:         imagePath,
		Category:      form.Category,
	}

	id, err := s.certificateRepo.Create(ctx, cert)
	if err != nil {
		return 0, fmt.Errorf("failed to add certificate: %w", err)
	}
	return id, nil
}

// Delete removes a certificate by id
func (s *certificateServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.certificateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCertificateNotFound) {
			return apperrors.ErrCertificateNotFound
		}
		return fmt.Errorf("failed to delete certificate: %w", err)
	}
	return nil
}
