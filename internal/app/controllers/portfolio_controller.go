package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/devfolio/internal/app/services"
	"github.com/emre/devfolio/internal/pkg/apperrors"
	"github.com/emre/devfolio/internal/pkg/logger"
)

// PortfolioController serves the public portfolio page
type PortfolioController struct {
	portfolioService services.PortfolioService
}

// NewPortfolioController creates a new PortfolioController
func NewPortfolioController(portfolioService services.PortfolioService) *PortfolioController {
	return &PortfolioController{
		portfolioService: portfolioService,
	}
}

// Index renders the public portfolio. With no student profile yet it
// renders the setup prompt instead.
func (ctl *PortfolioController) Index(c *gin.Context) {
	view, err := ctl.portfolioService.PublicView(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			c.HTML(http.StatusOK, "setup.html", gin.H{})
			return
		}
		logger.Error().Err(err).Msg("Failed to assemble portfolio view")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"student":        view.Student,
		"projects":       view.Projects,
		"certificates":   view.Certificates,
		"education":      view.Education,
		"experience":     view.Experience,
		"skills":         view.Skills,
		"categories":     view.Categories,
		"certCategories": view.CertCategories,
	})
}
