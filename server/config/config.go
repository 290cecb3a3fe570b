package config

import (
	"time"

	"github.com/vantagelearn/lumen/lumen"
)

// WebAppConfig contains web-specific configuration
type WebAppConfig struct {
	Config      *lumen.Config
	Debug       bool
	Environment string
}

// NewWebAppConfig creates a new web app configuration
func NewWebAppConfig(cfg *lumen.Config, debug bool) *WebAppConfig {
	environment := "production"
	if debug {
		environment = "development"
	}

	return &WebAppConfig{
		Config:      cfg,
		Debug:       debug,
		Environment: environment,
	}
}

func (w *WebAppConfig) GetAuthConfig() lumen.AuthConfig {
	return w.Config.Auth
}

func (w *WebAppConfig) GetServerConfig() lumen.ServerConfig {
	return w.Config.Server
}

// SessionTTL is how long a signed-in session stays valid.
func (w *WebAppConfig) SessionTTL() time.Duration {
	hours := w.Config.Auth.SessionHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// MagicLinkTTL is how long a sign-in link stays redeemable.
func (w *WebAppConfig) MagicLinkTTL() time.Duration {
	mins := w.Config.Auth.MagicLinkMins
	if mins <= 0 {
		mins = 15
	}
	return time.Duration(mins) * time.Minute
}

// ResetTokenTTL is how long a password reset token stays redeemable.
func (w *WebAppConfig) ResetTokenTTL() time.Duration {
	mins := w.Config.Auth.ResetTokenMins
	if mins <= 0 {
		mins = 30
	}
	return time.Duration(mins) * time.Minute
}
