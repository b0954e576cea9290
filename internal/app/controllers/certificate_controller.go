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

// CertificateController handles the admin certificate pages
type CertificateController struct {
	certificateService services.CertificateService
	studentService     services.StudentService
	storage            *filestorage.LocalStorage
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certificateService services.CertificateService, studentService services.StudentService, storage *filestorage.LocalStorage) *CertificateController {
	return &CertificateController{
		certificateService: certificateService,
		studentService:     studentService,
		storage:            storage,
	}
}

// List renders the certificate listing. With no student profile yet the
// list degrades to empty.
func (ctl *CertificateController) List(c *gin.Context) {
	var student *models.Student
	certs := []*models.Certificate{}

	student, err := ctl.studentService.Get(c.Request.Context())
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		logger.Error().Err(err).Msg("Failed to load student")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if student != nil {
		certs, err = ctl.certificateService.ListForStudent(c.Request.Context(), student.ID)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to list certificates")
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	c.HTML(http.StatusOK, "certificates.html", gin.H{
		"student": student,
		"certs":   certs,
		"flashes": takeFlashes(c),
	})
}

// Add creates a certificate for the student
func (ctl *CertificateController) Add(c *gin.Context) {
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

	var form dto.CertificateForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, flashError, "Title is required.")
		redirect(c, "/admin/certificates")
		return
	}

	imagePath := saveUpload(c, ctl.storage, "image", "certificates")

	if _, err := ctl.certificateService.Add(c.Request.Context(), student.ID, &form, imagePath); err != nil {
		logger.Error().Err(err).Msg("Failed to add certificate")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	addFlash(c, flashSuccess, "Certificate added!")
	redirect(c, "/admin/certificates")
}

// Delete removes a certificate by id
func (ctl *CertificateController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		addFlash(c, flashError, "Invalid certificate id.")
		redirect(c, "/admin/certificates")
		return
	}

	if err := ctl.certificateService.Delete(c.Request.Context(), id); err != nil && !errors.Is(err, apperrors.ErrCertificateNotFound) {
		logger.Error().Err(err).Int64("certificateID", id).Msg("Failed to delete certificate")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	addFlash(c, flashSuccess, "Certificate deleted.")
	redirect(c, "/admin/certificates")
}
