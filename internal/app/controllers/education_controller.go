package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/devfolio/internal/app/models"
	"github.com/emre/devfolio/internal/app/models/dto"
	"github.com/emre/devfolio/internal/app/services"
	"github.com/emre/devfolio/internal/pkg/apperrors"
	"github.com/emre/devfolio/internal/pkg/filestorage"
	"github.com/emre/devfolio/internal/pkg/logger"
)

// EducationController handles the admin education pages
type EducationController struct {
	educationService services.EducationService
	studentService   services.StudentService
	storage          *filestorage.LocalStorage
}

// NewEducationController creates a new EducationController
func NewEducationController(educationService services.EducationService, studentService services.StudentService, storage *filestorage.LocalStorage) *EducationController {
	return &EducationController{
		educationService: educationService,
		studentService:   studentService,
		storage:          storage,
	}
}

// List renders the education listing. With no student profile yet the list
// degrades to empty.
func (ctl *EducationController) List(c *gin.Context) {
	student, items, ok := ctl.loadStudentAndItems(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "education.html", gin.H{
		"student": student,
		"items":   items,
		"flashes": takeFlashes(c),
	})
}

// Add creates an education entry for the student
func (ctl *EducationController) Add(c *gin.Context) {
	student, err := ctl.studentService.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			addFlash(c, flashError, "Add your personal details first.")
			redirect(c, "/admin/personal")
			return
		}
		logger.Error().Err(err).Msg("Failed to load student")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var form dto.EducationForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, flashError, "Degree and institution are required.")
		redirect(c, "/admin/education")
		return
	}

	logoPath := saveUpload(c, ctl.storage, "logo", "education")

	if _, err := ctl.educationService.Add(c.Request.Context(), student.ID, &form, logoPath); err != nil {
		logger.Error().Err(err).Msg("Failed to add education entry")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	addFlash(c, flashSuccess, "Education added!")
	redirect(c, "/admin/education")
}

// Delete removes an education entry by id
func (ctl *EducationController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		addFlash(c, flashError, "Invalid education id.")
		redirect(c, "/admin/education")
		return
	}

	if err := ctl.educationService.Delete(c.Request.Context(), id); err != nil && !errors.Is(err, apperrors.ErrEducationNotFound) {
		logger.Error().Err(err).Int64("educationID", id).Msg("Failed to delete education entry")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	addFlash(c, flashSuccess, "Education deleted.")
	redirect(c, "/admin/education")
}

func (ctl *EducationController) loadStudentAndItems(c *gin.Context) (*models.Student, []*models.Education, bool) {
	student, err := ctl.studentService.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, []*models.Education{}, true
		}
		logger.Error().Err(err).Msg("Failed to load student")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return nil, nil, false
	}

	items, err := ctl.educationService.ListForStudent(c.Request.Context(), student.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list education entries")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return nil, nil, false
	}

	return student, items, true
}
