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

// ProjectController handles the admin project pages
type ProjectController struct {
	projectService services.ProjectService
	studentService services.StudentService
	storage        *filestorage.LocalStorage
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService, studentService services.StudentService, storage *filestorage.LocalStorage) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		studentService: studentService,
		storage:        storage,
	}
}

// List renders the project listing. With no student profile yet the list
// degrades to empty.
func (ctl *ProjectController) List(c *gin.Context) {
	var student *models.Student
	projects := []*models.Project{}

	student, err := ctl.studentService.Get(c.Request.Context())
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		logger.Error().Err(err).Msg("Failed to load student")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if student != nil {
		projects, err = ctl.projectService.ListForStudent(c.Request.Context(), student.ID)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to list projects")
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	c.HTML(http.StatusOK, "projects.html", gin.H{
		"student":  student,
		"projects": projects,
		"flashes":  takeFlashes(c),
	})
}

// Add creates a project for the student
func (ctl *ProjectController) Add(c *gin.Context) {
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

	var form dto.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, flashError, "Title is required.")
		redirect(c, "/admin/projects")
		return
	}

	imagePath := saveUpload(c, ctl.storage, "image", "projects")

	if _, err := ctl.projectService.Add(c.Request.Context(), student.ID, &form, imagePath); err != nil {
		logger.Error().Err(err).Msg("Failed to add project")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	addFlash(c, flashSuccess, "Project added!")
	redirect(c, "/admin/projects")
}

// ShowEdit renders the edit form for a project
func (ctl *ProjectController) ShowEdit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		addFlash(c, flashError, "Invalid project id.")
		redirect(c, "/admin/projects")
		return
	}

	project, err := ctl.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			addFlash(c, flashError, "Project not found.")
			redirect(c, "/admin/projects")
			return
		}
		logger.Error().Err(err).Int64("projectID", id).Msg("Failed to load project")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "project_edit.html", gin.H{
		"proj":    project,
		"flashes": takeFlashes(c),
	})
}

// Edit updates a project. The stored image is kept unless a new accepted
// file was uploaded.
func (ctl *ProjectController) Edit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		addFlash(c, flashError, "Invalid project id.")
		redirect(c, "/admin/projects")
		return
	}

	var form dto.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, flashError, "Title is required.")
		redirect(c, "/admin/projects")
		return
	}

	imagePath := saveUpload(c, ctl.storage, "image", "projects")

	if err := ctl.projectService.Update(c.Request.Context(), id, &form, imagePath); err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			addFlash(c, flashError, "Project not found.")
			redirect(c, "/admin/projects")
			return
		}
		logger.Error().Err(err).Int64("projectID", id).Msg("Failed to update project")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	addFlash(c, flashSuccess, "Project updated!")
	redirect(c, "/admin/projects")
}

// Delete removes a project by id
func (ctl *ProjectController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		addFlash(c, flashError, "Invalid project id.")
		redirect(c, "/admin/projects")
		return
	}

	if err := ctl.projectService.Delete(c.Request.Context(), id); err != nil && !errors.Is(err, apperrors.ErrProjectNotFound) {
		logger.Error().Err(err).Int64("projectID", id).Msg("Failed to delete project")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	addFlash(c, flashSuccess, "Project deleted.")
	redirect(c, "/admin/projects")
}
