package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	dbmodels "github.com/vantagelearn/lumen/lumen/database/models"
	webmodels "github.com/vantagelearn/lumen/server/models"
	webservices "github.com/vantagelearn/lumen/server/services"
	"github.com/vantagelearn/lumen/server/utils"
)

func sessionFor(user *dbmodels.User) *webmodels.UserSession {
	return &webmodels.UserSession{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}
}

// SignUp creates an account and signs the new user in
func SignUp(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.SignUpRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if details := utils.ValidateSignUpRequest(&req); details != nil {
			return utils.SendUnprocessableEntity(c, "Validation failed", details)
		}

		user, err := webApp.AuthService.SignUp(c.Context(), req.Email, req.Username, req.Password, req.Subjects)
		if err != nil {
			if errors.Is(err, webservices.ErrEmailTaken) {
				return utils.SendConflict(c, "Email already registered", nil)
			}
			slog.Error("Sign up failed", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to create account")
		}

		if err := webApp.SessionService.CreateSession(c, sessionFor(user)); err != nil {
			return utils.SendInternalServerError(c, "Failed to create session")
		}
		return utils.SendCreated(c, sessionFor(user), "Account created")
	}
}

// SignIn verifies a password and opens a session
func SignIn(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.SignInRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		user, err := webApp.AuthService.SignIn(c.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, webservices.ErrInvalidCredentials) {
				return utils.SendUnauthorized(c, "Invalid email or password")
			}
			slog.Error("Sign in failed", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to sign in")
		}

		if err := webApp.SessionService.CreateSession(c, sessionFor(user)); err != nil {
			return utils.SendInternalServerError(c, "Failed to create session")
		}
		return utils.SendSuccess(c, sessionFor(user), "Signed in")
	}
}

// SignOut drops the session cookie
func SignOut(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		webApp.SessionService.DestroySession(c)
		return utils.SendSuccess(c, nil, "Signed out")
	}
}

// RequestMagicLink mails a single-use sign-in link. The response is the
// same whether or not the email exists.
func RequestMagicLink(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.MagicLinkRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if !utils.ValidEmailRegex.MatchString(req.Email) {
			return utils.SendBadRequest(c, "A valid email address is required", nil)
		}

		if err := webApp.AuthService.RequestMagicLink(c.Context(), req.Email); err != nil {
			slog.Error("Magic link request failed", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to send link")
		}
		return utils.SendSuccess(c, nil, "If the address is registered, a link is on its way")
	}
}

// RedeemMagicLink consumes a sign-in token and opens a session
func RedeemMagicLink(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.TokenRedeemRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		user, err := webApp.AuthService.RedeemMagicLink(c.Context(), req.Token)
		if err != nil {
			if errors.Is(err, webservices.ErrInvalidToken) {
				return utils.SendUnauthorized(c, "Invalid or expired link")
			}
			slog.Error("Magic link redeem failed", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to redeem link")
		}

		if err := webApp.SessionService.CreateSession(c, sessionFor(user)); err != nil {
			return utils.SendInternalServerError(c, "Failed to create session")
		}
		return utils.SendSuccess(c, sessionFor(user), "Signed in")
	}
}

// RequestPasswordReset mails a reset token
func RequestPasswordReset(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.MagicLinkRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if !utils.ValidEmailRegex.MatchString(req.Email) {
			return utils.SendBadRequest(c, "A valid email address is required", nil)
		}

		if err := webApp.AuthService.RequestPasswordReset(c.Context(), req.Email); err != nil {
			slog.Error("Password reset request failed", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to send reset link")
		}
		return utils.SendSuccess(c, nil, "If the address is registered, a link is on its way")
	}
}

// ConfirmPasswordReset sets a new password using a reset token
func ConfirmPasswordReset(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.PasswordResetConfirmRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if len(req.Password) < utils.MinPasswordLength {
			return utils.SendUnprocessableEntity(c, "Validation failed",
				map[string]string{"password": "Password must be at least 8 characters"})
		}

		user, err := webApp.AuthService.ConfirmPasswordReset(c.Context(), req.Token, req.Password)
		if err != nil {
			if errors.Is(err, webservices.ErrInvalidToken) {
				return utils.SendUnauthorized(c, "Invalid or expired token")
			}
			slog.Error("Password reset failed", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to reset password")
		}

		if err := webApp.SessionService.CreateSession(c, sessionFor(user)); err != nil {
			return utils.SendInternalServerError(c, "Failed to create session")
		}
		return utils.SendSuccess(c, sessionFor(user), "Password updated")
	}
}

// ValidateSession reports whether the current session cookie is valid
func ValidateSession(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := webApp.GetSession(c)
		if err != nil {
			return utils.SendUnauthorized(c, "No valid session")
		}
		return utils.SendSuccess(c, session, "Session valid")
	}
}
