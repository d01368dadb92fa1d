package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/peoplehub/employee-system/internal/core/domain"
	"github.com/peoplehub/employee-system/internal/core/ports"
)

// AuthConfig carries the policy knobs of the auth flows.
type AuthConfig struct {
	// ResetTokenTTL is how long an issued reset token stays valid.
	ResetTokenTTL time.Duration
	// FrontendBaseURL is the base of the reset link embedded in the mail.
	FrontendBaseURL string
	AdminUsername   string
	AdminEmail      string
	AdminPassword   string
	Passwords       PasswordPolicy
}

// AuthService implements login, the two-phase password reset and the admin
// bootstrap step.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	mailer ports.Mailer
	cfg    AuthConfig
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, mailer ports.Mailer, cfg AuthConfig, log zerolog.Logger) *AuthService {
	if cfg.ResetTokenTTL <= 0 {
		cfg.ResetTokenTTL = time.Hour
	}
	return &AuthService{users: users, tokens: tokens, mailer: mailer, cfg: cfg, log: log}
}

// Login compares the submitted credentials against the stored account and
// issues a bearer token on success. An unknown username and a wrong password
// both return ErrInvalidCredentials, so callers cannot enumerate usernames.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.cfg.Passwords.Verify(user.Password, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	return &ports.LoginResult{Token: token, Role: user.Role}, nil
}

// RequestPasswordReset issues a fresh single-use token for the account
// matching email and mails the reset link. The token is persisted before the
// mail is sent: a delivery failure surfaces as ErrMailDelivery but does not
// roll the token back, so the caller can retry the request.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token := uuid.NewString()
	expiry := time.Now().UTC().Add(s.cfg.ResetTokenTTL)
	user.ResetToken = token
	user.ResetTokenExpiry = &expiry

	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("request reset: %w", err)
	}

	link := s.cfg.FrontendBaseURL + "/reset-password?token=" + token
	body := "Hello " + user.Username + ",\n\n" +
		"You requested to reset your password. Click the link below to reset it:\n" +
		link + "\n\n" +
		"This link will expire in 1 hour.\n\n" +
		"If you didn't request this, please ignore this email."

	if err := s.mailer.Send(ctx, user.Email, "Password Reset Request", body); err != nil {
		s.log.Error().Err(err).Str("email", user.Email).Msg("reset mail delivery failed")
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	s.log.Info().Str("username", user.Username).Msg("password reset link sent")
	return nil
}

// ResetPassword exchanges a valid, unexpired reset token for a password
// change. Clearing the token on success makes every token single-use: a
// consumed or expired token always fails from that point on.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.users.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidResetToken
		}
		return fmt.Errorf("reset password: %w", err)
	}

	if user.ResetTokenExpiry == nil {
		return domain.ErrInvalidResetToken
	}
	if !time.Now().UTC().Before(*user.ResetTokenExpiry) {
		return domain.ErrResetTokenExpired
	}

	stored, err := s.cfg.Passwords.Store(newPassword)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	user.Password = stored
	user.ResetToken = ""
	user.ResetTokenExpiry = nil

	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("password reset completed")
	return nil
}

// EnsureAdmin guarantees the bootstrap admin account exists. When the account
// is already present its email is updated to the configured one; otherwise it
// is created with the ADMIN role. Safe to call on every startup.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	user, err := s.users.FindByUsername(ctx, s.cfg.AdminUsername)
	switch {
	case err == nil:
		if user.Email == s.cfg.AdminEmail {
			return nil
		}
		user.Email = s.cfg.AdminEmail
		if err := s.users.Update(ctx, user); err != nil {
			return fmt.Errorf("ensure admin: %w", err)
		}
		s.log.Info().Str("username", user.Username).Msg("admin email updated")
		return nil

	case errors.Is(err, domain.ErrUserNotFound):
		password, err := s.cfg.Passwords.Store(s.cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("ensure admin: %w", err)
		}
		now := time.Now().UTC()
		admin := &domain.User{
			Username:  s.cfg.AdminUsername,
			Email:     s.cfg.AdminEmail,
			Password:  password,
			Role:      domain.RoleAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := s.users.Create(ctx, admin); err != nil {
			return fmt.Errorf("ensure admin: %w", err)
		}
		s.log.Info().Str("username", admin.Username).Msg("admin account created")
		return nil

	default:
		return fmt.Errorf("ensure admin: %w", err)
	}
}
