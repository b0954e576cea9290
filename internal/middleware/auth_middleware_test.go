package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := memstore.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("test_session", store))
	return r
}

func TestSessionRequiredRedirectsAnonymous(t *testing.T) {
	r := newSessionRouter()
	m := NewAuthMiddleware()

	admin := r.Group("/admin")
	admin.Use(m.SessionRequired())
	admin.GET("/personal", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	admin.POST("/projects/add", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	t.Run("GET redirects with 302", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/personal", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"))
	})

	t.Run("POST redirects with 303", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/projects/add", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"))
	})
}

func TestSessionRequiredPassesAuthenticated(t *testing.T) {
	r := newSessionRouter()
	m := NewAuthMiddleware()

	// test-only route to establish the session identity
	r.GET("/test/login", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(SessionKeyAdminID, int64(7))
		require.NoError(t, session.Save())
		c.Status(http.StatusOK)
	})

	var seenAdminID int64
	admin := r.Group("/admin")
	admin.Use(m.SessionRequired())
	admin.GET("", func(c *gin.Context) {
		seenAdminID = c.GetInt64(ContextKeyAdminID)
		c.String(http.StatusOK, "dashboard")
	})

	loginRec := httptest.NewRecorder()
	r.ServeHTTP(loginRec, httptest.NewRequest(http.MethodGet, "/test/login", nil))
	require.Equal(t, http.StatusOK, loginRec.Code)
	cookies := loginRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), seenAdminID)
}

func TestSessionRequiredRejectsWrongType(t *testing.T) {
	r := newSessionRouter()
	m := NewAuthMiddleware()

	r.GET("/test/login", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(SessionKeyAdminID, "not-an-id")
		require.NoError(t, session.Save())
		c.Status(http.StatusOK)
	})

	admin := r.Group("/admin")
	admin.Use(m.SessionRequired())
	admin.GET("", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })

	loginRec := httptest.NewRecorder()
	r.ServeHTTP(loginRec, httptest.NewRequest(http.MethodGet, "/test/login", nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range loginRec.Result().Cookies() {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}
