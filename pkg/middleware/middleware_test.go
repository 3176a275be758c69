package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/folio/pkg/constant"
	"github.com/folio/pkg/domains/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedRouter() *gin.Engine {
	r := gin.New()
	admin := r.Group("/admin", RouteGuard(testSecret))
	admin.GET("", func(c *gin.Context) { c.String(200, "dashboard") })
	admin.GET("/login", func(c *gin.Context) { c.String(200, "login") })
	admin.GET("/projects", func(c *gin.Context) { c.String(200, "projects") })
	admin.GET("/reset-password", func(c *gin.Context) { c.String(200, "reset") })
	return r
}

func sessionToken(t *testing.T) string {
	t.Helper()
	tok, err := auth.MintSessionToken(testSecret, time.Hour, auth.SessionClaims{UserID: 1, Email: "a@b.c"})
	require.NoError(t, err)
	return tok
}

func TestRouteGuard_RedirectsAnonymousToLogin(t *testing.T) {
	r := guardedRouter()

	for _, path := range []string{"/admin", "/admin/projects"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusFound, w.Code, path)
		require.Equal(t, constant.LoginPath, w.Header().Get("Location"), path)
	}
}

func TestRouteGuard_RedirectsAuthenticatedAwayFromLogin(t *testing.T) {
	r := guardedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	req.AddCookie(&http.Cookie{Name: constant.SessionCookie, Value: sessionToken(t)})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, constant.DashboardPath, w.Header().Get("Location"))
}

func TestRouteGuard_PassesThrough(t *testing.T) {
	r := guardedRouter()

	// Anonymous user may see the login and reset pages.
	for _, path := range []string{"/admin/login", "/admin/reset-password"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
	}

	// Authenticated user reaches the dashboard.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: constant.SessionCookie, Value: sessionToken(t)})
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "dashboard", w.Body.String())
}

func TestRouteGuard_RejectsExpiredSession(t *testing.T) {
	r := guardedRouter()

	tok, err := auth.MintSessionToken(testSecret, -time.Minute, auth.SessionClaims{UserID: 1})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: constant.SessionCookie, Value: tok})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, constant.LoginPath, w.Header().Get("Location"))
}

func TestCheckAuth_MissingOrInvalidToken(t *testing.T) {
	r := gin.New()
	r.POST("/api/v1/projects", CheckAuth(testSecret), func(c *gin.Context) { c.String(200, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckAuth_AcceptsEveryCookieScheme(t *testing.T) {
	r := gin.New()
	r.POST("/api/v1/projects", CheckAuth(testSecret), func(c *gin.Context) { c.String(200, "ok") })

	tok := sessionToken(t)
	for _, name := range constant.SessionCookieCandidates {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)
		req.AddCookie(&http.Cookie{Name: name, Value: tok})
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, name)
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
