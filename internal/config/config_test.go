package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GITHUB_WEBHOOK_SECRET", "s3cret")
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("PUBLIC_URL", "https://stashbot.example.com/")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("JENKINS_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://stashbot.example.com", cfg.Server.PublicURL)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 5, cfg.MaxWorkers)
	assert.Equal(t, "5s", cfg.Jenkins.Timeout.String())
	assert.False(t, cfg.GitHub.UsesApp())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			GitHub:        GitHubConfig{WebhookSecret: "s", Token: "t"},
			StorageDriver: StoragePostgres,
			MaxWorkers:    1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid token config", mutate: func(*Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.GitHub.WebhookSecret = "" }, wantErr: true},
		{name: "no credentials", mutate: func(c *Config) { c.GitHub.Token = "" }, wantErr: true},
		{name: "app without installation", mutate: func(c *Config) { c.GitHub.Token = ""; c.GitHub.AppID = 12 }, wantErr: true},
		{name: "app with installation", mutate: func(c *Config) { c.GitHub.Token = ""; c.GitHub.AppID = 12; c.GitHub.InstallationID = 34 }},
		{name: "unknown storage", mutate: func(c *Config) { c.StorageDriver = "mysql" }, wantErr: true},
		{name: "no workers", mutate: func(c *Config) { c.MaxWorkers = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
