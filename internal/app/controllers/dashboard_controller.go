package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/devfolio/internal/app/models"
	"github.com/emre/devfolio/internal/app/services"
	"github.com/emre/devfolio/internal/pkg/apperrors"
	"github.com/emre/devfolio/internal/pkg/logger"
)

// DashboardController renders the admin landing page
type DashboardController struct {
	studentService   services.StudentService
	portfolioService services.PortfolioService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(studentService services.StudentService, portfolioService services.PortfolioService) *DashboardController {
	return &DashboardController{
		studentService:   studentService,
		portfolioService: portfolioService,
	}
}

// Dashboard shows per-resource row counts and the profile state
func (ctl *DashboardController) Dashboard(c *gin.Context) {
	var student *models.Student
	student, err := ctl.studentService.Get(c.Request.Context())
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		logger.Error().Err(err).Msg("Failed to load student for dashboard")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	stats, err := ctl.portfolioService.Stats(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load dashboard stats")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"student": student,
		"stats":   stats,
		"flashes": takeFlashes(c),
	})
}
