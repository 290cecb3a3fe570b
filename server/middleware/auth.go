package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/vantagelearn/lumen/server/models"
	"github.com/vantagelearn/lumen/server/services"
	"github.com/vantagelearn/lumen/server/utils"
)

// AuthRequired middleware ensures the user is authenticated
func AuthRequired(sessions *services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := sessions.GetSession(c)
		if err != nil {
			slog.Debug("Auth required: no valid session", slog.String("error", err.Error()))
			return utils.SendUnauthorized(c, "Authentication required")
		}

		if session == nil || session.UserID == 0 {
			slog.Debug("Auth required: invalid session")
			return utils.SendUnauthorized(c, "Authentication required")
		}

		c.Locals("user", session)
		return c.Next()
	}
}

// AdminRequired middleware ensures the user has admin privileges
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user")
		if user == nil {
			slog.Warn("Admin required: no user in context")
			return utils.SendForbidden(c, "Access denied")
		}

		session, ok := user.(*models.UserSession)
		if !ok {
			slog.Warn("Admin required: invalid user session type")
			return utils.SendForbidden(c, "Access denied")
		}

		if !session.IsAdmin {
			slog.Warn("Admin required: user lacks admin privileges",
				slog.Int64("user_id", session.UserID),
				slog.String("username", session.Username))
			return utils.SendForbidden(c, "Admin access required")
		}

		return c.Next()
	}
}

// OptionalAuth middleware adds user info to context if authenticated, but
// doesn't require it
func OptionalAuth(sessions *services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := sessions.GetSession(c)
		if err == nil && session != nil && session.UserID != 0 {
			c.Locals("user", session)
		}
		return c.Next()
	}
}
