package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/folio/pkg/constant"
	"github.com/golang-jwt/jwt"
)

// SessionClaims is the decoded identity carried by a session token.
type SessionClaims struct {
	UserID uint
	Email  string
	Name   string
}

// MintSessionToken signs an HS256 token carrying the user's identity.
func MintSessionToken(secret string, ttl time.Duration, claims SessionClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    claims.UserID,
		"email": claims.Email,
		"name":  claims.Name,
		"exp":   time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// VerifySessionToken decodes and validates a session token. Absent, malformed,
// wrong-secret and expired tokens all report ok=false; verification failure is
// a normal outcome here, not an error.
func VerifySessionToken(tokenStr, secret string) (*SessionClaims, bool) {
	if tokenStr == "" {
		return nil, false
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	if exp, ok := claims["exp"].(float64); !ok || float64(time.Now().Unix()) > exp {
		return nil, false
	}

	session := &SessionClaims{}
	if id, ok := claims["id"].(float64); ok {
		session.UserID = uint(id)
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		session.Name = name
	}
	if session.UserID == 0 {
		return nil, false
	}

	return session, true
}

// TokenFromRequest extracts the raw session token from the request, trying the
// session cookie candidates in order, then the Authorization bearer header.
// Returns "" when nothing usable is present.
func TokenFromRequest(r *http.Request) string {
	for _, name := range constant.SessionCookieCandidates {
		if cookie, err := r.Cookie(name); err == nil && cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	return ""
}

// VerifyRequest resolves the request's session in one step.
func VerifyRequest(r *http.Request, secret string) (*SessionClaims, bool) {
	return VerifySessionToken(TokenFromRequest(r), secret)
}
