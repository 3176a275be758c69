package auth

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/folio/pkg/config"
	"github.com/folio/pkg/constant"
	"github.com/folio/pkg/dtos"
	"github.com/folio/pkg/entities"
	"github.com/folio/pkg/mailer"
	"github.com/folio/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	Register(ctx context.Context, req dtos.DTOForUserCreate) (string, error)
	Login(ctx context.Context, req dtos.DTOForUserLogin) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ValidateResetToken(ctx context.Context, email, token string) error
	ResetPassword(ctx context.Context, req dtos.ResetPasswordDTO) error
	LoginWithProvider(ctx context.Context, email, name, image string) (string, error)
}

type service struct {
	repository Repository
	cfg        config.Auth
	baseURL    string
	mail       mailer.Mailer
}

func NewService(r Repository, cfg config.Auth, baseURL string, mail mailer.Mailer) Service {
	return &service{
		repository: r,
		cfg:        cfg,
		baseURL:    baseURL,
		mail:       mail,
	}
}

func (s *service) tokenFor(user entities.User) (string, error) {
	ttl := time.Duration(s.cfg.TokenTTLHours) * time.Hour
	return MintSessionToken(s.cfg.Secret, ttl, SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
}

func (s *service) Register(ctx context.Context, req dtos.DTOForUserCreate) (string, error) {
	existingUser, err := s.repository.FindUserByEmail(ctx, req.Email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}

	if existingUser.ID != 0 {
		return "", fmt.Errorf(constant.ALREADY_EXISTS, "User")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := entities.User{
		Email:    req.Email,
		Password: string(passwordHash),
		Name:     req.Name,
	}

	if err := s.repository.CreateUser(ctx, &user); err != nil {
		return "", err
	}

	return s.tokenFor(user)
}

// Login fails closed with a single generic message: unknown email, an account
// without a password (OAuth-only) and a wrong password are indistinguishable
// to the caller.
func (s *service) Login(ctx context.Context, req dtos.DTOForUserLogin) (string, error) {
	user, err := s.repository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", fmt.Errorf(constant.INVALID_CREDENTIALS)
		}
		return "", fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}

	if user.Password == "" {
		return "", fmt.Errorf(constant.INVALID_CREDENTIALS)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", fmt.Errorf(constant.INVALID_CREDENTIALS)
	}

	return s.tokenFor(user)
}

// LoginWithProvider provisions or links a local user for an identity already
// verified by the OAuth provider, then issues a session.
func (s *service) LoginWithProvider(ctx context.Context, email, name, image string) (string, error) {
	user, err := s.repository.FindUserByEmail(ctx, email)
	if err == gorm.ErrRecordNotFound {
		user = entities.User{
			Email: email,
			Name:  name,
			Image: image,
		}
		if err := s.repository.CreateUser(ctx, &user); err != nil {
			return "", fmt.Errorf(constant.SOMETHING_WENT_WRONG)
		}
	} else if err != nil {
		return "", fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}

	return s.tokenFor(user)
}

// ForgotPassword never reveals whether the email matched an account. An
// unknown address is a silent no-op; a mail-sender failure is logged and the
// caller still sees the generic success message.
func (s *service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repository.FindUserByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}

	rawToken := utils.GenerateResetToken()
	tokenHash, err := bcrypt.GenerateFromPassword([]byte(rawToken), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}

	expiry := time.Now().Add(time.Duration(s.cfg.ResetTTLMinutes) * time.Minute)
	user.ResetToken = string(tokenHash)
	user.ResetExpiresAt = &expiry

	if err := s.repository.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}

	resetURL := fmt.Sprintf("%s/admin/reset-password?token=%s&email=%s",
		s.baseURL, rawToken, url.QueryEscape(email))

	body := fmt.Sprintf(resetEmailBody, resetURL, resetURL, resetURL, time.Now().Year())
	if err := s.mail.Send(email, "Password Reset Request", body); err != nil {
		log.Printf("[error] failed to send reset email to %s: %v", email, err)
	}

	return nil
}

// checkResetToken verifies a raw reset token against the stored hash and
// expiry. All failure modes collapse into the same invalid-token error.
func (s *service) checkResetToken(ctx context.Context, email, token string) (entities.User, error) {
	user, err := s.repository.FindUserByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return entities.User{}, fmt.Errorf(constant.INVALID_TOKEN)
		}
		return entities.User{}, fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}

	if user.ResetToken == "" || user.ResetExpiresAt == nil {
		return entities.User{}, fmt.Errorf(constant.INVALID_TOKEN)
	}

	if time.Now().After(*user.ResetExpiresAt) {
		return entities.User{}, fmt.Errorf(constant.TOKEN_EXPIRED)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.ResetToken), []byte(token)); err != nil {
		return entities.User{}, fmt.Errorf(constant.INVALID_TOKEN)
	}

	return user, nil
}

func (s *service) ValidateResetToken(ctx context.Context, email, token string) error {
	_, err := s.checkResetToken(ctx, email, token)
	return err
}

func (s *service) ResetPassword(ctx context.Context, req dtos.ResetPasswordDTO) error {
	user, err := s.checkResetToken(ctx, req.Email, req.Token)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}

	// Single-use token: clear the reset fields with the new password.
	user.Password = string(hashedPassword)
	user.ResetToken = ""
	user.ResetExpiresAt = nil

	if err := s.repository.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}

	return nil
}

const resetEmailBody = `<!DOCTYPE html>
<html>
<body style="font-family: Helvetica, Arial, sans-serif; background-color: #f4f4f5; margin: 0; padding: 0;">
  <div style="max-width: 600px; margin: 40px auto; background: #ffffff; border-radius: 12px; overflow: hidden;">
    <div style="background: #18181b; padding: 30px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0;">Password Recovery</h1>
    </div>
    <div style="padding: 40px 30px; color: #3f3f46; line-height: 1.6;">
      <p>We received a request to reset the password for your admin account.</p>
      <p>Click the button below to set a new password. This link is valid for <strong>1 hour</strong>.</p>
      <div style="text-align: center;">
        <a href="%s" style="display: inline-block; background-color: #000000; color: #ffffff; text-decoration: none; padding: 12px 24px; border-radius: 8px;" target="_blank">Reset Password</a>
      </div>
      <p>If you didn't request this change, you can safely ignore this email.</p>
      <p style="font-size: 13px; color: #71717a;">Or copy and paste this link into your browser:</p>
      <a href="%s" style="color: #2563eb; word-break: break-all; font-size: 12px;">%s</a>
    </div>
    <div style="background: #fafafa; padding: 20px; text-align: center; color: #71717a; font-size: 12px;">
      <p>&copy; %d. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`
