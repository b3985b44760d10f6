package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"http_server"`
	Session       SessionConfig       `mapstructure:"session" validate:"required"`
	Admin         AdminConfig         `mapstructure:"admin" validate:"required"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

// SessionConfig configures the durable admin-session record and the tokens
// handed to the UI after login.
type SessionConfig struct {
	StorePath     string        `mapstructure:"store_path" validate:"required"`
	TokenSecret   string        `mapstructure:"token_secret" validate:"required,min=32"`
	TokenDuration time.Duration `mapstructure:"token_duration" validate:"required,min=1m"`
}

// AdminConfig is the single configured admin identity. The console has
// exactly one credential pair; a real credential-verification collaborator
// would replace this block.
type AdminConfig struct {
	ID           string `mapstructure:"id" validate:"required"`
	Name         string `mapstructure:"name" validate:"required"`
	Email        string `mapstructure:"email" validate:"required,email"`
	Role         string `mapstructure:"role" validate:"required"`
	Avatar       string `mapstructure:"avatar"`
	PasswordHash string `mapstructure:"password_hash" validate:"required"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// LoadConfigFromEnv builds configuration from environment variables for
// containerized deployments where no config file is mounted.
func LoadConfigFromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              getEnvAsInt("SERVER_PORT", 8080),
			BaseURL:           getEnv("SERVER_BASE_URL", "http://localhost:8080"),
			AllowedOrigins:    getEnv("SERVER_ALLOWED_ORIGINS", "*"),
			ReadHeaderTimeout: getEnvAsDuration("SERVER_READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			IdleTimeout:       getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			WriteTimeout:      getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			StorePath:     getEnv("SESSION_STORE_PATH", "clovera_session.db"),
			TokenSecret:   getEnv("SESSION_TOKEN_SECRET", ""),
			TokenDuration: getEnvAsDuration("SESSION_TOKEN_DURATION", 12*time.Hour),
		},
		Admin: AdminConfig{
			ID:           getEnv("ADMIN_ID", "admin-001"),
			Name:         getEnv("ADMIN_NAME", "Admin User"),
			Email:        getEnv("ADMIN_EMAIL", "admin@clovera.com"),
			Role:         getEnv("ADMIN_ROLE", "Super Admin"),
			Avatar:       getEnv("ADMIN_AVATAR", "/avatar.png"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "json"),
			},
		},
	}
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Session.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("session config: %v", err))
	}

	if err := c.Admin.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("admin config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.AllowedOrigins != "" {
		origins := strings.Split(c.AllowedOrigins, ",")
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin == "*" {
				continue
			}
			if _, err := url.Parse(origin); err != nil {
				return fmt.Errorf("invalid allowed origin %s: %w", origin, err)
			}
		}
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

func (c *SessionConfig) Validate() error {
	if c.StorePath == "" {
		return errors.New("store_path is required")
	}
	if len(c.TokenSecret) < 32 {
		return errors.New("token secret must be at least 32 characters")
	}
	if c.TokenDuration < time.Minute {
		return errors.New("token duration must be at least 1 minute")
	}
	return nil
}

func (c *AdminConfig) Validate() error {
	if c.Email == "" {
		return errors.New("admin email is required")
	}
	if c.PasswordHash == "" {
		return errors.New("admin password_hash is required")
	}
	if c.ID == "" || c.Name == "" || c.Role == "" {
		return errors.New("admin id, name and role are required")
	}
	return nil
}
