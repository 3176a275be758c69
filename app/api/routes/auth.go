package routes

import (
	"fmt"
	"net/http"

	"github.com/folio/pkg/config"
	"github.com/folio/pkg/constant"
	"github.com/folio/pkg/domains/auth"
	"github.com/folio/pkg/dtos"
	"github.com/folio/pkg/middleware"
	"github.com/folio/pkg/utils"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

func AuthRoutes(r *gin.RouterGroup, s auth.Service, google *auth.GoogleProvider, cfg config.Auth) {
	r.POST("/register", middleware.Admin(), register(s))
	r.POST("/login", login(s, cfg))
	r.POST("/logout", logout(cfg))
	r.POST("/forgot-password", forgotPassword(s))
	r.GET("/reset-password", validateResetToken(s))
	r.POST("/reset-password", resetPassword(s))
	r.GET("/google/login", googleLogin(google, cfg))
	r.GET("/google/callback", googleCallback(s, google, cfg))
	r.GET("/session", session(cfg))
}

func setSessionCookie(c *gin.Context, token string, cfg config.Auth) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constant.SessionCookie, token, cfg.TokenTTLHours*3600, "/", "", cfg.SecureCookies, true)
}

func clearSessionCookie(c *gin.Context, cfg config.Auth) {
	// Expire every cookie name we ever issued under.
	for _, name := range constant.SessionCookieCandidates {
		c.SetCookie(name, "", -1, "/", "", cfg.SecureCookies, true)
	}
}

func register(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.DTOForUserCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		token, err := s.Register(c, req)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		c.JSON(201, gin.H{
			"message": fmt.Sprintf(constant.CREATED, "User"),
			"token":   token,
		})
	}
}

func login(s auth.Service, cfg config.Auth) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.DTOForUserLogin
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		token, err := s.Login(c, req)
		if err != nil {
			c.JSON(401, gin.H{"error": err.Error()})
			return
		}

		setSessionCookie(c, token, cfg)
		c.JSON(200, gin.H{"token": token})
	}
}

func logout(cfg config.Auth) func(c *gin.Context) {
	return func(c *gin.Context) {
		clearSessionCookie(c, cfg)
		c.JSON(200, gin.H{"message": "Logged out"})
	}
}

// session reports the identity behind the current request, or 401. Useful for
// the admin UI to hydrate its state.
func session(cfg config.Auth) func(c *gin.Context) {
	return func(c *gin.Context) {
		claims, ok := auth.VerifyRequest(c.Request, cfg.Secret)
		if !ok {
			c.JSON(401, gin.H{"error": constant.UNAUTHORIZED})
			return
		}
		c.JSON(200, dtos.SessionDTO{ID: claims.UserID, Email: claims.Email, Name: claims.Name})
	}
}

func forgotPassword(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ForgotPasswordDTO

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		if err := s.ForgotPassword(c, req.Email); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		// Identical response whether or not the email matched an account.
		c.JSON(200, gin.H{"message": constant.RESET_EMAIL_SENT})
	}
}

func validateResetToken(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		token := c.Query("token")
		email := c.Query("email")
		if token == "" || email == "" {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		if err := s.ValidateResetToken(c, email, token); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"message": "Token is valid"})
	}
}

func resetPassword(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ResetPasswordDTO

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		if err := s.ResetPassword(c, req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"message": constant.PASSWORD_RESET_OK})
	}
}

func googleLogin(google *auth.GoogleProvider, cfg config.Auth) func(c *gin.Context) {
	return func(c *gin.Context) {
		if !google.Enabled() {
			c.JSON(404, gin.H{"error": fmt.Sprintf(constant.CANT_FIND, "OAuth provider")})
			return
		}

		state := utils.GenerateStateToken()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(oauthStateCookie, state, 600, "/", "", cfg.SecureCookies, true)
		c.Redirect(http.StatusFound, google.AuthURL(state))
	}
}

func googleCallback(s auth.Service, google *auth.GoogleProvider, cfg config.Auth) func(c *gin.Context) {
	return func(c *gin.Context) {
		state, err := c.Cookie(oauthStateCookie)
		if err != nil || state == "" || c.Query("state") != state {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		c.SetCookie(oauthStateCookie, "", -1, "/", "", cfg.SecureCookies, true)

		info, err := google.Exchange(c, c.Query("code"))
		if err != nil {
			c.JSON(502, gin.H{"error": err.Error()})
			return
		}

		token, err := s.LoginWithProvider(c, info.Email, info.Name, info.Picture)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		setSessionCookie(c, token, cfg)
		c.Redirect(http.StatusFound, constant.DashboardPath)
	}
}
