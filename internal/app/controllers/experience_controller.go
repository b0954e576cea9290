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

// ExperienceController handles the admin experience pages
type ExperienceController struct {
	experienceService services.ExperienceService
	studentService    services.StudentService
	storage           *filestorage.LocalStorage
}

// NewExperienceController creates a new ExperienceController
func NewExperienceController(experienceService services.ExperienceService, studentService services.StudentService, storage *filestorage.LocalStorage) *ExperienceController {
	return &ExperienceController{
		experienceService: experienceService,
		studentService:    studentService,
		storage:           storage,
	}
}

// List renders the experience listing. With no student profile yet the
// list degrades to empty.
func (ctl *ExperienceController) List(c *gin.Context) {
	var student *models.Student
	items := []*models.Experience{}

	student, err := ctl.studentService.Get(c.Request.Context())
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		logger.Error().Err(err).Msg("Failed to load student")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if student != nil {
		items, err = ctl.experienceService.ListForStudent(c.Request.Context(), student.ID)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to list experience entries")
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	c.HTML(http.StatusOK, "experience.html", gin.H{
		"student": student,
		"items":   items,
		"flashes": takeFlashes(c),
	})
}

// Add creates an experience entry for the student
func (ctl *ExperienceController) Add(c *gin.Context) {
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

	var form dto.ExperienceForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, flashError, "Role and company are required.")
		redirect(c, "/admin/experience")
		return
	}

	logoPath := saveUpload(c, ctl.storage, "logo", "experience")

	if _, err := ctl.experienceService.Add(c.Request.Context(), student.ID, &form, logoPath); err != nil {
		logger.Error().Err(err).Msg("Failed to add experience entry")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	addFlash(c, flashSuccess, "Experience added!")
	redirect(c, "/admin/experience")
}

// Delete removes an experience entry by id
func (ctl *ExperienceController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		addFlash(c, flashError, "Invalid experience id.")
		redirect(c, "/admin/experience")
		return
	}

	if err := ctl.experienceService.Delete(c.Request.Context(), id); err != nil && !errors.Is(err, apperrors.ErrExperienceNotFound) {
		logger.Error().Err(err).Int64("experienceID", id).Msg("Failed to delete experience entry")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	addFlash(c, flashSuccess, "Experience deleted.")
	redirect(c, "/admin/experience")
}
