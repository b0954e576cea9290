package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared not-found sentinel for all repositories.
var ErrNotFound = errors.New("record not found")

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository       *AdminRepository
	StudentRepository     *StudentRepository
	EducationRepository   *EducationRepository
	ProjectRepository     *ProjectRepository
	CertificateRepository *CertificateRepository
	ExperienceRepository  *ExperienceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:       NewAdminRepository(db),
		StudentRepository:     NewStudentRepository(db),
		EducationRepository:   NewEducationRepository(db),
		ProjectRepository:     NewProjectRepository(db),
		CertificateRepository: NewCertificateRepository(db),
		ExperienceRepository:  NewExperienceRepository(db),
	}
}
