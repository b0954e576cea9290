package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/emre/devfolio/internal/pkg/filestorage"
	"github.com/emre/devfolio/internal/pkg/logger"
)

// Flash categories used across the admin panel.
const (
	flashSuccess = "success"
	flashError   = "error"
)

// addFlash queues a one-shot notice for the next rendered page.
func addFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	if err := session.Save(); err != nil {
		logger.Error().Err(err).Msg("Failed to save session flash")
	}
}

// takeFlashes drains queued notices for rendering.
func takeFlashes(c *gin.Context) map[string][]string {
	session := sessions.Default(c)
	flashes := map[string][]string{}
	for _, category := range []string{flashSuccess, flashError} {
		for _, f := range session.Flashes(category) {
			if msg, ok := f.(string); ok {
				flashes[category] = append(flashes[category], msg)
			}
		}
	}
	if err := session.Save(); err != nil {
		logger.Error().Err(err).Msg("Failed to save session after draining flashes")
	}
	return flashes
}

// redirect sends a redirect with the status appropriate for the method.
// Form posts redirect with 303 so the browser re-requests with GET.
func redirect(c *gin.Context, location string) {
	status := http.StatusFound
	if c.Request.Method != http.MethodGet {
		status = http.StatusSeeOther
	}
	c.Redirect(status, location)
}

// parseIDParam reads a numeric id path segment.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// saveUpload stores an optional uploaded file, returning an empty path when
// no file was provided or its extension is not allowed. Callers only
// overwrite a row's path field when the returned path is non-empty.
func saveUpload(c *gin.Context, storage *filestorage.LocalStorage, field, category string) string {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "" // field absent
	}
	path, err := storage.Save(fileHeader, category)
	if err != nil {
		logger.Error().Err(err).Str("field", field).Msg("Failed to store upload")
		return ""
	}
	return path
}
