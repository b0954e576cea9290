package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emre/devfolio/internal/app/models"
	"github.com/emre/devfolio/internal/app/models/dto"
	"github.com/emre/devfolio/internal/app/repositories"
	"github.com/emre/devfolio/internal/pkg/apperrors"
)

// StudentService defines the interface for the single student profile
type StudentService interface {
	Get(ctx context.Context) (*models.Student, error)
	SavePersonalDetails(ctx context.Context, form *dto.PersonalForm, profileImagePath, resumePath string) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// Get returns the student profile, or apperrors.ErrStudentNotFound when no
// profile has been created yet.
func (s *studentServiceImpl) Get(ctx context.Context) (*models.Student, error) {
	student, err := s.studentRepo.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

// SavePersonalDetails creates the student row on first submission and
// updates it in place afterwards. The image and resume paths are applied
// only when non-empty; an edit without a new upload keeps the stored files.
func (s *studentServiceImpl) SavePersonalDetails(ctx context.Context, form *dto.PersonalForm, profileImagePath, resumePath string) error {
	if strings.TrimSpace(form.Name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}

	student := &models.Student{
		Name:         form.Name,
		Tagline:      form.Tagline,
		Email:        form.Email,
		Phone:        form.Phone,
		Location:     form.Location,
		About:        form.About,
		GitHub:       form.GitHub,
		LinkedIn:     form.LinkedIn,
		Twitter:      form.Twitter,
		Website:      form.Website,
		Skills:       EncodeSkills(ParseSkills(form.Skills)),
		ProfileImage: profileImagePath,
		Resume:       resumePath,
	}

	existing, err := s.studentRepo.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			_, err := s.studentRepo.Create(ctx, student)
			if err != nil {
				return fmt.Errorf("failed to create student profile: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to look up student profile: %w", err)
	}

	student.ID = existing.ID
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return fmt.Errorf("failed to update student profile: %w", err)
	}
	return nil
}
