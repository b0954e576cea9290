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

// ProjectService defines the interface for project operations
type ProjectService interface {
	ListForStudent(ctx context.Context, studentID int64) ([]*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Add(ctx context.Context, studentID int64, form *dto.ProjectForm, imagePath string) (int64, error)
	Update(ctx context.Context, id int64, form *dto.ProjectForm, imagePath string) error
	Delete(ctx context.Context, id int64) error
}

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo *repositories.ProjectRepository) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
	}
}

// ListForStudent returns all projects for a student
func (s *projectServiceImpl) ListForStudent(ctx context.Context, studentID int64) ([]*models.Project, error) {
	projects, err := s.projectRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetByID returns a single project
func (s *projectServiceImpl) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// Add creates a new project owned by the student
func (s *projectServiceImpl) Add(ctx context.Context, studentID int64, form *dto.ProjectForm, imagePath string) (int64, error) {
	project := &models.Project{
		StudentID:   studentID,
		Title:       form.Title,
		Description: form.Description,
		TechStack:   form.TechStack,
		Image:       imagePath,
		GitHubLink:  form.GitHubLink,
		LiveLink:    form.LiveLink,
		Category:    form.Category,
		Featured:    form.Featured,
	}

	id, err := s.projectRepo.Create(ctx, project)
	if err != nil {
		return 0, fmt.Errorf("failed to add project: %w", err)
	}
	return id, nil
}

// Update edits an existing project. An empty imagePath means no new image
// was uploaded and the stored one is preserved.
func (s *projectServiceImpl) Update(ctx context.Context, id int64, form *dto.ProjectForm, imagePath string) error {
	project := &models.Project{
		ID:          id,
		Title:       form.Title,
		Description: form.Description,
		TechStack:   form.TechStack,
		Image:       imagePath,
		GitHubLink:  form.GitHubLink,
		LiveLink:    form.LiveLink,
		Category:    form.Category,
		Featured:    form.Featured,
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete removes a project by id
func (s *projectServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
