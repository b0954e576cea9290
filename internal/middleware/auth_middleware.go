package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionKeyAdminID is the session key holding the authenticated admin's id.
const SessionKeyAdminID = "admin_id"

// ContextKeyAdminID is the gin context key the auth gate sets for handlers.
const ContextKeyAdminID = "adminID"

// AuthMiddleware guards the admin routes behind the session identity
type AuthMiddleware struct{}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// SessionRequired redirects to the login page when the session carries no
// admin identity. No distinction is made between a missing and an expired
// session.
func (m *AuthMiddleware) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		adminID, ok := session.Get(SessionKeyAdminID).(int64)
		if !ok || adminID == 0 {
			session.AddFlash("Please login first.", "error")
			_ = session.Save()

			status := http.StatusFound
			if c.Request.Method != http.MethodGet {
				status = http.StatusSeeOther
			}
			c.Redirect(status, "/admin/login")
			c.Abort()
			return
		}

		c.Set(ContextKeyAdminID, adminID)
		c.Next()
	}
}
