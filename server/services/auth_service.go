package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	dbmodels "github.com/vantagelearn/lumen/lumen/database/models"
	"github.com/vantagelearn/lumen/lumen/database/repositories"
	"github.com/vantagelearn/lumen/server/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Mailer delivers auth mail. The default implementation only logs the link,
// which is what local development wants; production wires a real sender.
type Mailer interface {
	SendMagicLink(ctx context.Context, email, token string) error
	SendPasswordReset(ctx context.Context, email, token string) error
}

type logMailer struct {
	baseURL string
	from    string
}

// NewLogMailer returns a Mailer that writes the links to the log instead of
// sending mail.
func NewLogMailer(baseURL, from string) Mailer {
	return &logMailer{baseURL: baseURL, from: from}
}

func (m *logMailer) SendMagicLink(ctx context.Context, email, token string) error {
	slog.Info("Magic link issued",
		slog.String("type", "sys"),
		slog.String("from", m.from),
		slog.String("to", email),
		slog.String("link", fmt.Sprintf("%s/auth/magic?token=%s", m.baseURL, token)))
	return nil
}

func (m *logMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	slog.Info("Password reset issued",
		slog.String("type", "sys"),
		slog.String("from", m.from),
		slog.String("to", email),
		slog.String("link", fmt.Sprintf("%s/auth/reset?token=%s", m.baseURL, token)))
	return nil
}

// AuthService owns account creation and every way of proving who you are:
// password sign-in, magic links and password resets.
type AuthService struct {
	config    *config.WebAppConfig
	userRepo  repositories.UserRepository
	tokenRepo repositories.AuthTokenRepository
	mailer    Mailer
}

func NewAuthService(
	cfg *config.WebAppConfig,
	userRepo repositories.UserRepository,
	tokenRepo repositories.AuthTokenRepository,
	mailer Mailer,
) *AuthService {
	return &AuthService{
		config:    cfg,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
	}
}

// SignUp creates an account with a bcrypt password hash.
func (s *AuthService) SignUp(ctx context.Context, email, username, password string, subjects []string) (*dbmodels.User, error) {
	email = normalizeEmail(email)

	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &dbmodels.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Subjects:     subjects,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("Account created",
		slog.String("type", "sys"),
		slog.Int64("user_id", user.ID),
		slog.String("email", email))
	return user, nil
}

// SignIn verifies a password. Both unknown emails and wrong passwords map
// to the same error, so callers never leak which one it was.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*dbmodels.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.PasswordHash == "" {
		// Magic-link-only account.
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// RequestMagicLink issues a single-use sign-in token and mails it. An
// unknown email is not an error: the caller always reports "link sent" so
// the endpoint cannot be used to probe for accounts.
func (s *AuthService) RequestMagicLink(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Debug("Magic link requested for unknown email",
				slog.String("type", "sys"),
				slog.String("email", email))
			return nil
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	token, err := s.issueToken(ctx, user.ID, dbmodels.TokenPurposeMagicLink, s.config.MagicLinkTTL())
	if err != nil {
		return err
	}
	return s.mailer.SendMagicLink(ctx, user.Email, token)
}

// RedeemMagicLink consumes a sign-in token and returns its user.
func (s *AuthService) RedeemMagicLink(ctx context.Context, token string) (*dbmodels.User, error) {
	return s.redeem(ctx, token, dbmodels.TokenPurposeMagicLink)
}

// RequestPasswordReset issues a reset token and mails it, with the same
// unknown-email behavior as RequestMagicLink.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	token, err := s.issueToken(ctx, user.ID, dbmodels.TokenPurposePasswordReset, s.config.ResetTokenTTL())
	if err != nil {
		return err
	}
	return s.mailer.SendPasswordReset(ctx, user.Email, token)
}

// ConfirmPasswordReset consumes a reset token and stores the new hash.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) (*dbmodels.User, error) {
	user, err := s.redeem(ctx, token, dbmodels.TokenPurposePasswordReset)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	slog.Info("Password reset completed",
		slog.String("type", "sys"),
		slog.Int64("user_id", user.ID))
	return user, nil
}

func (s *AuthService) issueToken(ctx context.Context, userID int64, purpose string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	record := &dbmodels.AuthToken{
		Token:     token,
		UserID:    userID,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return token, nil
}

func (s *AuthService) redeem(ctx context.Context, token, purpose string) (*dbmodels.User, error) {
	record, err := s.tokenRepo.Consume(ctx, token, purpose)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to consume token: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, record.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user for token: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
