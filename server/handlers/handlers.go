package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/vantagelearn/lumen/lumen"
	"github.com/vantagelearn/lumen/server/config"
	webmodels "github.com/vantagelearn/lumen/server/models"
	webservices "github.com/vantagelearn/lumen/server/services"
	"github.com/vantagelearn/lumen/server/utils"
)

// WebApp represents the web application with all dependencies
type WebApp struct {
	Config         *config.WebAppConfig
	App            *lumen.App
	SessionService *webservices.SessionService
	AuthService    *webservices.AuthService
	Version        string
	Commit         string
}

// GetSession retrieves the current session from the request
func (w *WebApp) GetSession(c *fiber.Ctx) (*webmodels.UserSession, error) {
	return w.SessionService.GetSession(c)
}

// currentSession returns the session placed in context by AuthRequired.
func currentSession(c *fiber.Ctx) (*webmodels.UserSession, bool) {
	return utils.ExtractUserSession(c)
}

// parseInt64 is a utility function to parse int64 from string
func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// paramInt64 parses a route parameter as int64, or replies 400.
func paramInt64(c *fiber.Ctx, name string) (int64, bool) {
	id, err := parseInt64(c.Params(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// HealthCheck reports service health including database reachability
func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := webmodels.NewHealthCheck(webApp.Version)

		if webApp.App.DB == nil {
			health.AddComponent("database", "unhealthy", "not connected", nil)
		} else if err := webApp.App.DB.Ping(c.Context()); err != nil {
			health.AddComponent("database", "unhealthy", err.Error(), nil)
		} else {
			health.AddComponent("database", "healthy", "", nil)
		}

		status := fiber.StatusOK
		if health.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(health)
	}
}
