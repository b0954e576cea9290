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

// EducationService defines the interface for education entry operations
type EducationService interface {
	ListForStudent(ctx context.Context, studentID int64) ([]*models.Education, error)
	Add(ctx context.Context, studentID int64, form *dto.EducationForm, logoPath string) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// educationServiceImpl implements the EducationService interface
type educationServiceImpl struct {
	educationRepo *repositories.EducationRepository
}

// NewEducationService creates a new education service instance
func NewEducationService(educationRepo *repositories.EducationRepository) EducationService {
	return &educationServiceImpl{
		educationRepo: educationRepo,
	}
}

// ListForStudent returns all education entries for a student
func (s *educationServiceImpl) ListForStudent(ctx context.Context, studentID int64) ([]*models.Education, error) {
	entries, err := s.educationRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list education entries: %w", err)
	}
	return entries, nil
}

// Add creates a new education entry owned by the student
func (s *educationServiceImpl) Add(ctx context.Context, studentID int64, form *dto.EducationForm, logoPath string) (int64, error) {
	edu := &models.Education{
		StudentID:   studentID,
		Degree:      form.Degree,
		Institution: form.Institution,
		Field:       form.Field,
		StartYear:   form.StartYear,
		EndYear:     form.EndYear,
		Grade:       form.Grade,
		Description: form.Description,
		Logo:        logoPath,
	}

	id, err := s.educationRepo.Create(ctx, edu)
	if err != nil {
		return 0, fmt.Errorf("failed to add education entry: %w", err)
	}
	return id, nil
}

// Delete removes an education entry by id
func (s *educationServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.educationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEducationNotFound) {
			return apperrors.ErrEducationNotFound
		}
		return fmt.Errorf("failed to delete education entry: %w", err)
	}
	return nil
}
