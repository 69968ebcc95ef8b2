// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/stashbot/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	Server        ServerConfig
	Logging       logger.Config
	Database      DBConfig
	GitHub        GitHubConfig
	Jenkins       JenkinsConfig
	StorageDriver string
	MaxWorkers    int
	QueueSize     int
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string
	// PublicURL is the address Jenkins uses to reach the build report endpoint.
	PublicURL string
}

// DBConfig holds the Postgres connection settings.
type DBConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN renders the connection string for lib/pq.
func (c *DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode)
}

// GitHubConfig holds webhook and API credentials. Either a token or an
// app id with installation id and private key is needed.
type GitHubConfig struct {
	WebhookSecret  string
	Token          string
	AppID          int64
	InstallationID int64
	PrivateKeyPath string
	BaseURL        string
}

// UsesApp reports whether the client should authenticate as a GitHub App.
func (c *GitHubConfig) UsesApp() bool {
	return c.AppID != 0
}

// JenkinsConfig holds the HTTP behaviour of the build trigger client.
type JenkinsConfig struct {
	Timeout    time.Duration
	MaxElapsed time.Duration
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// LoadConfig reads configuration from environment variables and a .env file,
// sets defaults, and validates required fields.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("PUBLIC_URL", "http://localhost:8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("MAX_WORKERS", 5)
	v.SetDefault("QUEUE_SIZE", 100)
	v.SetDefault("STORAGE_DRIVER", StoragePostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "stashbot")
	v.SetDefault("DB_NAME", "stashbot")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", "5m")
	v.SetDefault("GITHUB_PRIVATE_KEY_PATH", "keys/stashbot.private-key.pem")
	v.SetDefault("JENKINS_TIMEOUT", "30s")
	v.SetDefault("JENKINS_MAX_ELAPSED", "1m")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:      v.GetString("SERVER_PORT"),
			PublicURL: strings.TrimRight(v.GetString("PUBLIC_URL"), "/"),
		},
		Logging: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		Database: DBConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			Username:        v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Database:        v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: v.GetDuration("DB_CONN_MAX_IDLE_TIME"),
		},
		GitHub: GitHubConfig{
			WebhookSecret:  v.GetString("GITHUB_WEBHOOK_SECRET"),
			Token:          v.GetString("GITHUB_TOKEN"),
			AppID:          v.GetInt64("GITHUB_APP_ID"),
			InstallationID: v.GetInt64("GITHUB_INSTALLATION_ID"),
			PrivateKeyPath: v.GetString("GITHUB_PRIVATE_KEY_PATH"),
			BaseURL:        v.GetString("GITHUB_BASE_URL"),
		},
		Jenkins: JenkinsConfig{
			Timeout:    v.GetDuration("JENKINS_TIMEOUT"),
			MaxElapsed: v.GetDuration("JENKINS_MAX_ELAPSED"),
		},
		StorageDriver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
		MaxWorkers:    v.GetInt("MAX_WORKERS"),
		QueueSize:     v.GetInt("QUEUE_SIZE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields LoadConfig cannot default.
func (c *Config) Validate() error {
	if c.GitHub.WebhookSecret == "" {
		return fmt.Errorf("GITHUB_WEBHOOK_SECRET must be set")
	}
	if c.GitHub.UsesApp() && c.GitHub.InstallationID == 0 {
		return fmt.Errorf("GITHUB_INSTALLATION_ID must be set when GITHUB_APP_ID is set")
	}
	if !c.GitHub.UsesApp() && c.GitHub.Token == "" {
		return fmt.Errorf("either GITHUB_TOKEN or GITHUB_APP_ID must be set")
	}
	switch c.StorageDriver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.MaxWorkers <= 0 {
		return fmt.Errorf("MAX_WORKERS must be positive, got %d", c.MaxWorkers)
	}
	return nil
}
