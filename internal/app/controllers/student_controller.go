package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emre/devfolio/internal/app/models"
	"github.com/emre/devfolio/internal/app/models/dto"
	"github.com/emre/devfolio/internal/app/services"
	"github.com/emre/devfolio/internal/pkg/apperrors"
	"github.com/emre/devfolio/internal/pkg/filestorage"
	"github.com/emre/devfolio/internal/pkg/logger"
)

// StudentController handles the personal-details page
type StudentController struct {
	studentService services.StudentService
	storage        *filestorage.LocalStorage
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, storage *filestorage.LocalStorage) *StudentController {
	return &StudentController{
		studentService: studentService,
		storage:        storage,
	}
}

// ShowPersonal renders the personal-details form
func (ctl *StudentController) ShowPersonal(c *gin.Context) {
	var student *models.Student
	student, err := ctl.studentService.Get(c.Request.Context())
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		logger.Error().Err(err).Msg("Failed to load student")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	skills := ""
	if student != nil {
		skills = joinSkills(services.DecodeSkills(student.Skills))
	}

	c.HTML(http.StatusOK, "personal.html", gin.H{
		"student": student,
		"skills":  skills,
		"flashes": takeFlashes(c),
	})
}

// SavePersonal upserts the student profile. The profile image and resume
// are replaced only when a new accepted file was uploaded.
func (ctl *StudentController) SavePersonal(c *gin.Context) {
	var form dto.PersonalForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, flashError, "Name is required.")
		redirect(c, "/admin/personal")
		return
	}

	imagePath := saveUpload(c, ctl.storage, "profile_image", "profile")
	resumePath := saveUpload(c, ctl.storage, "resume", "profile")

	if err := ctl.studentService.SavePersonalDetails(c.Request.Context(), &form, imagePath, resumePath); err != nil {
		var vErr *apperrors.CustomError
		if errors.As(err, &vErr) {
			addFlash(c, flashError, vErr.Error())
			redirect(c, "/admin/personal")
			return
		}
		logger.Error().Err(err).Msg("Failed to save personal details")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	addFlash(c, flashSuccess, "Personal details updated!")
	redirect(c, "/admin/personal")
}

// joinSkills renders a decoded skills list back into the editable
// comma-separated form value.
func joinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}
