package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/vantagelearn/lumen/lumen"
	dbmodels "github.com/vantagelearn/lumen/lumen/database/models"
	"github.com/vantagelearn/lumen/lumen/database/repositories/mock"
	"github.com/vantagelearn/lumen/server/config"
)

type capturedMail struct {
	magicTokens []string
	resetTokens []string
}

func (m *capturedMail) SendMagicLink(_ context.Context, _ string, token string) error {
	m.magicTokens = append(m.magicTokens, token)
	return nil
}

func (m *capturedMail) SendPasswordReset(_ context.Context, _ string, token string) error {
	m.resetTokens = append(m.resetTokens, token)
	return nil
}

func authFixture(t *testing.T) (*AuthService, *mock.MockUserRepository, *mock.MockAuthTokenRepository, *capturedMail) {
	t.Helper()
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	tokenRepo := mock.NewMockAuthTokenRepository(ctrl)
	mailer := &capturedMail{}

	cfg := &lumen.Config{}
	cfg.Auth.SessionSecret = "test-secret"
	service := NewAuthService(config.NewWebAppConfig(cfg, true), userRepo, tokenRepo, mailer)
	return service, userRepo, tokenRepo, mailer
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account with hashed password", func(t *testing.T) {
		service, userRepo, _, _ := authFixture(t)

		userRepo.EXPECT().GetByEmail(ctx, "ada@example.com").Return(nil, sql.ErrNoRows)
		userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, user *dbmodels.User) error {
				if user.Email != "ada@example.com" {
					t.Errorf("Email = %q, want ada@example.com", user.Email)
				}
				if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
					t.Errorf("password stored without hashing")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")); err != nil {
					t.Errorf("stored hash does not match password: %v", err)
				}
				user.ID = 7
				return nil
			})

		user, err := service.SignUp(ctx, "  Ada@Example.com ", "ada", "hunter22", []string{"maths"})
		if err != nil {
			t.Fatalf("SignUp() error = %v", err)
		}
		if user.ID != 7 {
			t.Errorf("ID = %d, want 7", user.ID)
		}
	})

	t.Run("rejects taken email", func(t *testing.T) {
		service, userRepo, _, _ := authFixture(t)

		userRepo.EXPECT().GetByEmail(ctx, "ada@example.com").
			Return(&dbmodels.User{ID: 7, Email: "ada@example.com"}, nil)

		_, err := service.SignUp(ctx, "ada@example.com", "ada", "hunter22", nil)
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("SignUp() error = %v, want ErrEmailTaken", err)
		}
	})
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	account := &dbmodels.User{ID: 7, Email: "ada@example.com", PasswordHash: string(hash)}

	t.Run("accepts correct password", func(t *testing.T) {
		service, userRepo, _, _ := authFixture(t)
		userRepo.EXPECT().GetByEmail(ctx, "ada@example.com").Return(account, nil)

		user, err := service.SignIn(ctx, "Ada@example.com", "hunter22")
		if err != nil {
			t.Fatalf("SignIn() error = %v", err)
		}
		if user.ID != 7 {
			t.Errorf("ID = %d, want 7", user.ID)
		}
	})

	t.Run("wrong password and unknown email return the same error", func(t *testing.T) {
		service, userRepo, _, _ := authFixture(t)
		userRepo.EXPECT().GetByEmail(ctx, "ada@example.com").Return(account, nil)
		userRepo.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, sql.ErrNoRows)

		_, wrongPass := service.SignIn(ctx, "ada@example.com", "wrong")
		_, unknown := service.SignIn(ctx, "nobody@example.com", "hunter22")
		if !errors.Is(wrongPass, ErrInvalidCredentials) || !errors.Is(unknown, ErrInvalidCredentials) {
			t.Fatalf("errors = %v / %v, want ErrInvalidCredentials for both", wrongPass, unknown)
		}
	})

	t.Run("rejects password sign-in on magic-link-only account", func(t *testing.T) {
		service, userRepo, _, _ := authFixture(t)
		userRepo.EXPECT().GetByEmail(ctx, "link@example.com").
			Return(&dbmodels.User{ID: 8, Email: "link@example.com"}, nil)

		_, err := service.SignIn(ctx, "link@example.com", "anything")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("SignIn() error = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestAuthService_MagicLink(t *testing.T) {
	ctx := context.Background()
	account := &dbmodels.User{ID: 7, Email: "ada@example.com"}

	t.Run("issues and redeems a token", func(t *testing.T) {
		service, userRepo, tokenRepo, mailer := authFixture(t)

		var issued *dbmodels.AuthToken
		userRepo.EXPECT().GetByEmail(ctx, "ada@example.com").Return(account, nil)
		tokenRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record *dbmodels.AuthToken) error {
				if record.Purpose != dbmodels.TokenPurposeMagicLink {
					t.Errorf("Purpose = %q, want magic_link", record.Purpose)
				}
				if record.ExpiresAt.IsZero() {
					t.Error("ExpiresAt not set")
				}
				issued = record
				return nil
			})

		if err := service.RequestMagicLink(ctx, "ada@example.com"); err != nil {
			t.Fatalf("RequestMagicLink() error = %v", err)
		}
		if len(mailer.magicTokens) != 1 || mailer.magicTokens[0] != issued.Token {
			t.Fatalf("mailed tokens = %v, want the stored token", mailer.magicTokens)
		}

		tokenRepo.EXPECT().Consume(ctx, issued.Token, dbmodels.TokenPurposeMagicLink).Return(issued, nil)
		userRepo.EXPECT().GetByID(ctx, int64(7)).Return(account, nil)

		user, err := service.RedeemMagicLink(ctx, issued.Token)
		if err != nil {
			t.Fatalf("RedeemMagicLink() error = %v", err)
		}
		if user.ID != 7 {
			t.Errorf("ID = %d, want 7", user.ID)
		}
	})

	t.Run("unknown email is silently accepted", func(t *testing.T) {
		service, userRepo, _, mailer := authFixture(t)
		userRepo.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, sql.ErrNoRows)

		if err := service.RequestMagicLink(ctx, "nobody@example.com"); err != nil {
			t.Fatalf("RequestMagicLink() error = %v", err)
		}
		if len(mailer.magicTokens) != 0 {
			t.Errorf("mailed %d tokens for unknown email, want 0", len(mailer.magicTokens))
		}
	})

	t.Run("spent token maps to ErrInvalidToken", func(t *testing.T) {
		service, _, tokenRepo, _ := authFixture(t)
		tokenRepo.EXPECT().Consume(ctx, "gone", dbmodels.TokenPurposeMagicLink).Return(nil, sql.ErrNoRows)

		_, err := service.RedeemMagicLink(ctx, "gone")
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("RedeemMagicLink() error = %v, want ErrInvalidToken", err)
		}
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	ctx := context.Background()
	account := &dbmodels.User{ID: 7, Email: "ada@example.com", PasswordHash: "old"}

	service, userRepo, tokenRepo, mailer := authFixture(t)

	var issued *dbmodels.AuthToken
	userRepo.EXPECT().GetByEmail(ctx, "ada@example.com").Return(account, nil)
	tokenRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, record *dbmodels.AuthToken) error {
			if record.Purpose != dbmodels.TokenPurposePasswordReset {
				t.Errorf("Purpose = %q, want password_reset", record.Purpose)
			}
			issued = record
			return nil
		})

	if err := service.RequestPasswordReset(ctx, "ada@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset() error = %v", err)
	}
	if len(mailer.resetTokens) != 1 {
		t.Fatalf("mailed %d reset tokens, want 1", len(mailer.resetTokens))
	}

	tokenRepo.EXPECT().Consume(ctx, issued.Token, dbmodels.TokenPurposePasswordReset).Return(issued, nil)
	userRepo.EXPECT().GetByID(ctx, int64(7)).Return(account, nil)
	userRepo.EXPECT().UpdatePassword(ctx, int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, hash string) error {
			if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpassword")); err != nil {
				t.Errorf("stored hash does not match new password: %v", err)
			}
			return nil
		})

	user, err := service.ConfirmPasswordReset(ctx, issued.Token, "newpassword")
	if err != nil {
		t.Fatalf("ConfirmPasswordReset() error = %v", err)
	}
	if user.ID != 7 {
		t.Errorf("ID = %d, want 7", user.ID)
	}
}
