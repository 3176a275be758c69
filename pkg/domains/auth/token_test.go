package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/folio/pkg/constant"
	"github.com/stretchr/testify/require"
)

func TestMintAndVerifySessionToken(t *testing.T) {
	t.Parallel()

	claims := SessionClaims{UserID: 7, Email: "admin@example.com", Name: "Admin"}
	tok, err := MintSessionToken("secret", time.Hour, claims)
	require.NoError(t, err)

	got, ok := VerifySessionToken(tok, "secret")
	require.True(t, ok)
	require.Equal(t, claims.UserID, got.UserID)
	require.Equal(t, claims.Email, got.Email)
	require.Equal(t, claims.Name, got.Name)
}

func TestVerifySessionToken_Failures(t *testing.T) {
	t.Parallel()

	valid, err := MintSessionToken("secret", time.Hour, SessionClaims{UserID: 1})
	require.NoError(t, err)

	expired, err := MintSessionToken("secret", -time.Minute, SessionClaims{UserID: 1})
	require.NoError(t, err)

	cases := []struct {
		name   string
		token  string
		secret string
	}{
		{"empty", "", "secret"},
		{"malformed", "not.a.jwt", "secret"},
		{"wrong secret", valid, "other-secret"},
		{"expired", expired, "secret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims, ok := VerifySessionToken(tc.token, tc.secret)
			require.False(t, ok)
			require.Nil(t, claims)
		})
	}
}

func TestTokenFromRequest_CookieCandidates(t *testing.T) {
	t.Parallel()

	for _, name := range constant.SessionCookieCandidates {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/admin", nil)
			r.AddCookie(&http.Cookie{Name: name, Value: "tok-123"})
			require.Equal(t, "tok-123", TokenFromRequest(r))
		})
	}
}

func TestTokenFromRequest_PrefersCurrentCookieName(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(&http.Cookie{Name: "portfolio_session", Value: "legacy"})
	r.AddCookie(&http.Cookie{Name: constant.SessionCookie, Value: "current"})
	require.Equal(t, "current", TokenFromRequest(r))
}

func TestTokenFromRequest_BearerFallback(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	r.Header.Set("Authorization", "Bearer abc")
	require.Equal(t, "abc", TokenFromRequest(r))

	r = httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	r.Header.Set("Authorization", "Basic abc")
	require.Equal(t, "", TokenFromRequest(r))

	r = httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, "", TokenFromRequest(r))
}
