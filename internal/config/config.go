package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Uploads  UploadsConfig
	Logging  LoggingConfig
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig contains the database connection settings.
type DatabaseConfig struct {
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// AuthConfig holds token signing material and web session behavior.
type AuthConfig struct {
	JWTSecret     string
	TokenLifetime time.Duration
	Session       SessionConfig
}

// SessionConfig controls the browser session used by the rendered pages.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// UploadsConfig controls where resume uploads are stored.
type UploadsConfig struct {
	Dir string
}

// LoggingConfig selects the log verbosity.
type LoggingConfig struct {
	Level string
}

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	cfg := Config{}

	cfg.Server = ServerConfig{
		Addr: firstNonEmpty(
			os.Getenv("SERVER_ADDR"),
			os.Getenv("ADDR"),
			":8080",
		),
	}

	cfg.Database = DatabaseConfig{
		URL: firstNonEmpty(
			os.Getenv("DATABASE_URL"),
			os.Getenv("DB_URL"),
			"",
		),
		MaxIdleConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_IDLE_CONNS"), 0),
		MaxOpenConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_OPEN_CONNS"), 0),
		ConnMaxLifetime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_LIFETIME"), 0),
		ConnMaxIdleTime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_IDLE_TIME"), 0),
	}

	cfg.Auth = AuthConfig{
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenLifetime: parseDurationWithDefault(os.Getenv("JWT_LIFETIME"), 24*time.Hour),
		Session: SessionConfig{
			Lifetime:     parseDurationWithDefault(os.Getenv("SESSION_LIFETIME"), 12*time.Hour),
			CookieName:   firstNonEmpty(os.Getenv("SESSION_COOKIE_NAME"), "folioforge_session"),
			CookieDomain: os.Getenv("SESSION_COOKIE_DOMAIN"),
			CookieSecure: parseBoolWithDefault(os.Getenv("SESSION_COOKIE_SECURE"), false),
		},
	}

	cfg.Uploads = UploadsConfig{
		Dir: firstNonEmpty(os.Getenv("UPLOADS_DIR"), "uploads"),
	}

	cfg.Logging = LoggingConfig{
		Level: os.Getenv("LOG_LEVEL"),
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}

	return cfg, nil
}

// ClientConfig carries the settings used by the terminal client.
type ClientConfig struct {
	BaseURL     string
	SessionPath string
}

// LoadClient builds the client configuration from the environment, defaulting
// the session file to a location under the user's home directory.
func LoadClient() (ClientConfig, error) {
	cfg := ClientConfig{
		BaseURL:     firstNonEmpty(os.Getenv("FOLIOFORGE_URL"), "http://localhost:8080"),
		SessionPath: os.Getenv("FOLIOFORGE_SESSION"),
	}

	if cfg.SessionPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ClientConfig{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SessionPath = filepath.Join(home, ".folioforge", "session.json")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseIntWithDefault(value string, def int) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return def
	}
	return parsed
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := time.ParseDuration(trimmed)
	if err != nil {
		return def
	}
	return parsed
}

func parseBoolWithDefault(value string, def bool) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return def
	}
	return parsed
}
