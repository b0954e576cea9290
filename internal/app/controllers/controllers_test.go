package controllers

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/devfolio/internal/app/models"
	"github.com/emre/devfolio/internal/app/models/dto"
	"github.com/emre/devfolio/internal/pkg/apperrors"
)

// --- service fakes ---

type fakeAuthService struct {
	admin    *models.Admin
	loginErr error
}

func (f *fakeAuthService) Login(_ context.Context, _, _ string) (*models.Admin, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.admin, nil
}

func (f *fakeAuthService) GetAdminByID(_ context.Context, _ int64) (*models.Admin, error) {
	return f.admin, nil
}

type fakeStudentService struct {
	student     *models.Student
	getErr      error
	saveErr     error
	savedForm   *dto.PersonalForm
	savedImage  string
	savedResume string
}

func (f *fakeStudentService) Get(_ context.Context) (*models.Student, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.student, nil
}

func (f *fakeStudentService) SavePersonalDetails(_ context.Context, form *dto.PersonalForm, profileImagePath, resumePath string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedForm = form
	f.savedImage = profileImagePath
	f.savedResume = resumePath
	return nil
}

type fakeProjectService struct {
	projects  []*models.Project
	project   *models.Project
	getErr    error
	deletedID int64
	updatedID int64
}

func (f *fakeProjectService) ListForStudent(_ context.Context, _ int64) ([]*models.Project, error) {
	return f.projects, nil
}

func (f *fakeProjectService) GetByID(_ context.Context, _ int64) (*models.Project, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.project, nil
}

func (f *fakeProjectService) Add(_ context.Context, _ int64, _ *dto.ProjectForm, _ string) (int64, error) {
	return 1, nil
}

func (f *fakeProjectService) Update(_ context.Context, id int64, _ *dto.ProjectForm, _ string) error {
	f.updatedID = id
	return nil
}

func (f *fakeProjectService) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return nil
}

// --- harness ---

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := memstore.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("test_session", store))

	// minimal stand-ins for the real templates
	tmpl := template.Must(template.New("").Parse(`
{{define "login.html"}}{{range .flashes.error}}ERR:{{.}};{{end}}{{range .flashes.success}}OK:{{.}};{{end}}login{{end}}
{{define "projects.html"}}{{range .flashes.success}}OK:{{.}};{{end}}{{range .projects}}{{.Title}};{{end}}{{end}}
{{define "project_edit.html"}}EDIT:{{.proj.Title}}{{end}}
{{define "personal.html"}}{{range .flashes.error}}ERR:{{.}};{{end}}personal{{end}}
`))
	r.SetHTMLTemplate(tmpl)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

// --- auth controller ---

func TestLoginSuccessEstablishesSession(t *testing.T) {
	r := newTestRouter()
	authCtl := NewAuthController(&fakeAuthService{admin: &models.Admin{ID: 3, Username: "admin"}})
	r.POST("/admin/login", authCtl.Login)

	r.GET("/admin/whoami", func(c *gin.Context) {
		session := sessions.Default(c)
		id, _ := session.Get("admin_id").(int64)
		c.String(http.StatusOK, "id=%d", id)
	})

	w := postForm(r, "/admin/login", url.Values{"username": {"admin"}, "password": {"admin123"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	check := get(r, "/admin/whoami", w.Result().Cookies())
	assert.Equal(t, "id=3", check.Body.String())
}

func TestLoginFailureFlashesAndRedirects(t *testing.T) {
	r := newTestRouter()
	authCtl := NewAuthController(&fakeAuthService{loginErr: apperrors.ErrInvalidCredentials})
	r.POST("/admin/login", authCtl.Login)
	r.GET("/admin/login", authCtl.ShowLogin)

	w := postForm(r, "/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	// the flash is consumed by the next render
	page := get(r, "/admin/login", w.Result().Cookies())
	assert.Contains(t, page.Body.String(), "ERR:Invalid credentials.;")
}

func TestLoginMissingFieldsRedirects(t *testing.T) {
	r := newTestRouter()
	authCtl := NewAuthController(&fakeAuthService{admin: &models.Admin{ID: 1}})
	r.POST("/admin/login", authCtl.Login)

	w := postForm(r, "/admin/login", url.Values{"username": {"admin"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestLogoutClearsSession(t *testing.T) {
	r := newTestRouter()
	authCtl := NewAuthController(&fakeAuthService{admin: &models.Admin{ID: 3, Username: "admin"}})
	r.POST("/admin/login", authCtl.Login)
	r.GET("/admin/logout", authCtl.Logout)
	r.GET("/admin/whoami", func(c *gin.Context) {
		session := sessions.Default(c)
		id, _ := session.Get("admin_id").(int64)
		c.String(http.StatusOK, "id=%d", id)
	})

	login := postForm(r, "/admin/login", url.Values{"username": {"admin"}, "password": {"admin123"}}, nil)
	cookies := login.Result().Cookies()

	out := get(r, "/admin/logout", cookies)
	require.Equal(t, http.StatusFound, out.Code)
	assert.Equal(t, "/", out.Header().Get("Location"))

	check := get(r, "/admin/whoami", append(cookies, out.Result().Cookies()...))
	assert.Equal(t, "id=0", check.Body.String())
}

// --- project controller ---

func TestProjectDelete(t *testing.T) {
	r := newTestRouter()
	projects := &fakeProjectService{}
	ctl := NewProjectController(projects, &fakeStudentService{}, nil)
	r.GET("/admin/projects/delete/:id", ctl.Delete)

	w := get(r, "/admin/projects/delete/5", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/projects", w.Header().Get("Location"))
	assert.Equal(t, int64(5), projects.deletedID)
}

func TestProjectDeleteInvalidID(t *testing.T) {
	r := newTestRouter()
	projects := &fakeProjectService{}
	ctl := NewProjectController(projects, &fakeStudentService{}, nil)
	r.GET("/admin/projects/delete/:id", ctl.Delete)

	w := get(r, "/admin/projects/delete/abc", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/projects", w.Header().Get("Location"))
	assert.Zero(t, projects.deletedID)
}

func TestProjectShowEdit(t *testing.T) {
	r := newTestRouter()
	projects := &fakeProjectService{project: &models.Project{ID: 2, Title: "Homelab"}}
	ctl := NewProjectController(projects, &fakeStudentService{}, nil)
	r.GET("/admin/projects/edit/:id", ctl.ShowEdit)

	w := get(r, "/admin/projects/edit/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EDIT:Homelab")
}

func TestProjectShowEditNotFound(t *testing.T) {
	r := newTestRouter()
	projects := &fakeProjectService{getErr: apperrors.ErrProjectNotFound}
	ctl := NewProjectController(projects, &fakeStudentService{}, nil)
	r.GET("/admin/projects/edit/:id", ctl.ShowEdit)

	w := get(r, "/admin/projects/edit/99", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/projects", w.Header().Get("Location"))
}

func TestProjectList(t *testing.T) {
	r := newTestRouter()
	projects := &fakeProjectService{projects: []*models.Project{
		{ID: 1, Title: "One"},
		{ID: 2, Title: "Two"},
	}}
	students := &fakeStudentService{student: &models.Student{ID: 1, Name: "Emre"}}
	ctl := NewProjectController(projects, students, nil)
	r.GET("/admin/projects", ctl.List)

	w := get(r, "/admin/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "One;Two;")
}

// --- student controller ---

func TestSavePersonal(t *testing.T) {
	r := newTestRouter()
	students := &fakeStudentService{}
	ctl := NewStudentController(students, nil)
	r.POST("/admin/personal", ctl.SavePersonal)

	form := url.Values{
		"name":   {"Emre"},
		"skills": {"Go, Rust"},
	}
	w := postForm(r, "/admin/personal", form, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/personal", w.Header().Get("Location"))

	require.NotNil(t, students.savedForm)
	assert.Equal(t, "Emre", students.savedForm.Name)
	assert.Equal(t, "Go, Rust", students.savedForm.Skills)
	// no files uploaded, stored paths must stay untouched
	assert.Empty(t, students.savedImage)
	assert.Empty(t, students.savedResume)
}

func TestSavePersonalRequiresName(t *testing.T) {
	r := newTestRouter()
	students := &fakeStudentService{}
	ctl := NewStudentController(students, nil)
	r.POST("/admin/personal", ctl.SavePersonal)
	r.GET("/admin/personal", func(c *gin.Context) {
		c.HTML(http.StatusOK, "personal.html", gin.H{"flashes": takeFlashes(c)})
	})

	w := postForm(r, "/admin/personal", url.Values{"tagline": {"no name"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/personal", w.Header().Get("Location"))
	assert.Nil(t, students.savedForm)

	page := get(r, "/admin/personal", w.Result().Cookies())
	assert.Contains(t, page.Body.String(), "ERR:Name is required.;")
}
