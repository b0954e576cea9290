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

// ExperienceService defines the interface for experience entry operations
type ExperienceService interface {
	ListForStudent(ctx context.Context, studentID int64) ([]*models.Experience, error)
	Add(ctx context.Context, studentID int64, form *dto.ExperienceForm, logoPath string) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// experienceServiceImpl implements the ExperienceService interface
type experienceServiceImpl struct {
	experienceRepo *repositories.ExperienceRepository
}

// NewExperienceService creates a new experience service instance
func NewExperienceService(experienceRepo *repositories.ExperienceRepository) ExperienceService {
	return &experienceServiceImpl{
		experienceRepo: experienceRepo,
	}
}

// ListForStudent returns all experience entries for a student
func (s *experienceServiceImpl) ListForStudent(ctx context.Context, studentID int64) ([]*models.Experience, error) {
	entries, err := s.experienceRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience entries: %w", err)
	}
	return entries, nil
}

// Add creates a new experience entry owned by the student. A current
// position keeps whatever end date was submitted but renders without one.
func (s *experienceServiceImpl) Add(ctx context.Context, studentID int64, form *dto.ExperienceForm, logoPath string) (int64, error) {
	exp := &models.Experience{
		StudentID:   studentID,
		Role:        form.Role,
		Company:     form.Company,
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
		Current:     form.Current,
		Description: form.Description,
		Logo:        logoPath,
	}

	id, err := s.experienceRepo.Create(ctx, exp)
	if err != nil {
		return 0, fmt.Errorf("failed to add experience entry: %w", err)
	}
	return id, nil
}

// Delete removes an experience entry by id
func (s *experienceServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.experienceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return apperrors.ErrExperienceNotFound
		}
		return fmt.Errorf("failed to delete experience entry: %w", err)
	}
	return nil
}
