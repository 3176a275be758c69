package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/folio/pkg/config"
	"github.com/folio/pkg/domains/auth"
	"github.com/folio/pkg/domains/content"
	"github.com/folio/pkg/entities"
	"github.com/folio/pkg/mailer/mock"
	"github.com/folio/pkg/middleware"
	"github.com/folio/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "routes-secret"

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		cv := utils.NewCustomValidator()
		v.RegisterValidation("isemail", cv.IsValidEmail)
		v.RegisterValidation("ishttpurl", cv.IsValidHttpURL)
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Project{},
		&entities.Testimonial{},
		&entities.Skill{},
		&entities.Education{},
		&entities.Experience{},
		&entities.Service{},
		&entities.Profile{},
		&entities.SiteSettings{},
	))

	cfg := config.Auth{Secret: testSecret, TokenTTLHours: 1, ResetTTLMinutes: 60}

	r := gin.New()
	api := r.Group("/api/v1")

	authService := auth.NewService(auth.NewRepo(db), cfg, "http://localhost", &mock.Mailer{})
	AuthRoutes(api.Group("/auth"), authService, auth.NewGoogleProvider(config.OAuth{}), cfg)
	ContentRoutes(api, content.NewService(content.NewRepo(db)), middleware.CheckAuth(testSecret))
	return r
}

func bearer(t *testing.T) string {
	t.Helper()
	tok, err := auth.MintSessionToken(testSecret, time.Hour, auth.SessionClaims{UserID: 1, Email: "a@b.c"})
	require.NoError(t, err)
	return "Bearer " + tok
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMutations_RequireSession(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/projects"},
		{http.MethodPut, "/api/v1/projects/some-id"},
		{http.MethodDelete, "/api/v1/projects/some-id"},
		{http.MethodPost, "/api/v1/skills"},
		{http.MethodPut, "/api/v1/profile"},
		{http.MethodPut, "/api/v1/settings"},
	}

	for _, tc := range cases {
		w := doJSON(t, r, tc.method, tc.path, "", map[string]string{"title": "x"})
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestProjectCRUDLifecycle(t *testing.T) {
	r := newTestRouter(t)
	token := bearer(t)

	// Create
	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", token, map[string]interface{}{
		"title":    "Portfolio Site",
		"category": "web",
		"order":    2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created entities.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	// Public read
	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Update
	w = doJSON(t, r, http.MethodPut, "/api/v1/projects/"+created.ID, token, map[string]interface{}{
		"title": "Portfolio Site v2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated entities.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Portfolio Site v2", updated.Title)

	// Delete
	w = doJSON(t, r, http.MethodDelete, "/api/v1/projects/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Gone
	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/"+created.ID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProjects_PublicAndOrdered(t *testing.T) {
	r := newTestRouter(t)
	token := bearer(t)

	for _, order := range []int{3, 1, 2} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/projects", token, map[string]interface{}{
			"title": "p",
			"order": order,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []entities.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 3)
	require.Equal(t, []int{1, 2, 3}, []int{items[0].Order, items[1].Order, items[2].Order})
}

func TestCreateProject_MissingRequiredField(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", bearer(t), map[string]interface{}{
		"category": "web",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProject_RejectsBadLinkURL(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", bearer(t), map[string]interface{}{
		"title":   "p",
		"demoUrl": "not-a-url",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestForgotPassword_IdenticalResponses(t *testing.T) {
	r := newTestRouter(t)

	w1 := doJSON(t, r, http.MethodPost, "/api/v1/auth/forgot-password", "", map[string]string{"email": "known@example.com"})
	w2 := doJSON(t, r, http.MethodPost, "/api/v1/auth/forgot-password", "", map[string]string{"email": "unknown@example.com"})

	require.Equal(t, http.StatusOK, w1.Code)
	require.Equal(t, w1.Code, w2.Code)
	require.JSONEq(t, w1.Body.String(), w2.Body.String())
}

func TestLogin_FailureSetsNoCookie(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Empty(t, w.Result().Cookies())
}

func TestSessionEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/auth/session", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/session", bearer(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var session map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.Equal(t, "a@b.c", session["email"])
}
