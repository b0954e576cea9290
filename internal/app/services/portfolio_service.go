package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/emre/devfolio/internal/app/models"
	"github.com/emre/devfolio/internal/app/repositories"
	"github.com/emre/devfolio/internal/pkg/apperrors"
)

// PortfolioView is the assembled public page model: the student profile
// with all child collections and the derived filter categories.
type PortfolioView struct {
	Student        *models.Student
	Projects       []*models.Project
	Certificates   []*models.Certificate
	Education      []*models.Education
	Experience     []*models.Experience
	Skills         []string
	Categories     []string // distinct non-empty project categories
	CertCategories []string // distinct non-empty certificate categories
}

// DashboardStats holds per-resource row counts for the admin dashboard.
type DashboardStats struct {
	Projects     int64
	Certificates int64
	Education    int64
	Experience   int64
}

// PortfolioService assembles read views spanning multiple resources
type PortfolioService interface {
	PublicView(ctx context.Context) (*PortfolioView, error)
	Stats(ctx context.Context) (*DashboardStats, error)
}

// portfolioServiceImpl implements the PortfolioService interface
type portfolioServiceImpl struct {
	studentRepo     *repositories.StudentRepository
	projectRepo     *repositories.ProjectRepository
	certificateRepo *repositories.CertificateRepository
	educationRepo   *repositories.EducationRepository
	experienceRepo  *repositories.ExperienceRepository
}

// NewPortfolioService creates a new portfolio service instance
func NewPortfolioService(
	studentRepo *repositories.StudentRepository,
	projectRepo *repositories.ProjectRepository,
	certificateRepo *repositories.CertificateRepository,
	educationRepo *repositories.EducationRepository,
	experienceRepo *repositories.ExperienceRepository,
) PortfolioService {
	return &portfolioServiceImpl{
		studentRepo:     studentRepo,
		projectRepo:     projectRepo,
		certificateRepo: certificateRepo,
		educationRepo:   educationRepo,
		experienceRepo:  experienceRepo,
	}
}

// PublicView loads the student row and every child collection scoped to it.
// Returns apperrors.ErrStudentNotFound when no profile exists yet; the
// caller renders the setup prompt in that case.
func (s *portfolioServiceImpl) PublicView(ctx context.Context) (*PortfolioView, error) {
	student, err := s.studentRepo.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	projects, err := s.projectRepo.GetByStudentID(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	certificates, err := s.certificateRepo.GetByStudentID(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load certificates: %w", err)
	}

	education, err := s.educationRepo.GetByStudentID(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load education entries: %w", err)
	}

	experience, err := s.experienceRepo.GetByStudentID(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load experience entries: %w", err)
	}

	view := &PortfolioView{
		Student:      student,
		Projects:     projects,
		Certificates: certificates,
		Education:    education,
		Experience:   experience,
		Skills:       DecodeSkills(student.Skills),
	}

	for _, p := range projects {
		view.Categories = appendDistinct(view.Categories, p.Category)
	}
	for _, c := range certificates {
		view.CertCategories = appendDistinct(view.CertCategories, c.Category)
	}
	sort.Strings(view.Categories)
	sort.Strings(view.CertCategories)

	return view, nil
}

// Stats returns per-resource row counts
func (s *portfolioServiceImpl) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.Projects, err = s.projectRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.Certificates, err = s.certificateRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.Education, err = s.educationRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.Experience, err = s.experienceRepo.CountAll(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

// appendDistinct appends value to list when it is non-empty and not present.
func appendDistinct(list []string, value string) []string {
	if value == "" {
		return list
	}
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
