package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/emre/devfolio/internal/app/models/dto"
	"github.com/emre/devfolio/internal/app/services"
	"github.com/emre/devfolio/internal/middleware"
	"github.com/emre/devfolio/internal/pkg/apperrors"
	"github.com/emre/devfolio/internal/pkg/logger"
)

// AuthController handles admin login and logout
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ShowLogin renders the login page
func (ctl *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"flashes": takeFlashes(c),
	})
}

// Login verifies the submitted credentials and establishes the session
func (ctl *AuthController) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, flashError, "Invalid credentials.")
		redirect(c, "/admin/login")
		return
	}

	admin, err := ctl.authService.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			addFlash(c, flashError, "Invalid credentials.")
			redirect(c, "/admin/login")
			return
		}
		logger.Error().Err(err).Msg("Login failed")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionKeyAdminID, admin.ID)
	session.AddFlash("Welcome back!", flashSuccess)
	if err := session.Save(); err != nil {
		logger.Error().Err(err).Msg("Failed to save session at login")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.Info().Str("username", admin.Username).Msg("Admin logged in")
	redirect(c, "/admin")
}

// Logout clears the session identity
func (ctl *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionKeyAdminID)
	if err := session.Save(); err != nil {
		logger.Error().Err(err).Msg("Failed to save session at logout")
	}
	redirect(c, "/")
}
