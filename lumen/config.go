package lumen

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/vantagelearn/lumen/lumen/database"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log    LogConfig         `toml:"log"`
	Server ServerConfig      `toml:"server"`
	DB     database.DBConfig `toml:"db"`
	Auth   AuthConfig        `toml:"auth"`
	Spaces struct {
		Key       string `toml:"key"`
		Secret    string `toml:"secret"`
		Region    string `toml:"region"`
		Bucket    string `toml:"bucket"`
		AssetRoot string `toml:"assetroot"`
	} `toml:"spaces"`
	Legacy LegacyConfig `toml:"legacy"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type ServerConfig struct {
	Host          string   `toml:"host"`
	Port          int      `toml:"port"`
	Debug         bool     `toml:"debug"`
	PublicBaseURL string   `toml:"public_base_url"`
	CORSOrigins   []string `toml:"cors_origins"`
}

func (c ServerConfig) Addr() string {
	host := c.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := c.Port
	if port == 0 {
		port = 8080
	}
	return fmt.Sprintf("%s:%d", host, port)
}

type AuthConfig struct {
	SessionSecret   string `toml:"session_secret"`
	SessionHours    int    `toml:"session_hours"`
	MagicLinkMins   int    `toml:"magic_link_mins"`
	ResetTokenMins  int    `toml:"reset_token_mins"`
	MailFromAddress string `toml:"mail_from_address"`
}

// LegacyConfig points at the previous product's MongoDB export for the
// one-off content import.
type LegacyConfig struct {
	MongoURI  string `toml:"mongo_uri"`
	MongoDB   string `toml:"mongo_db"`
	BatchSize int    `toml:"batch_size"`
	UseCopy   bool   `toml:"use_copy"`
}
