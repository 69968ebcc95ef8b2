package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevigo/stashbot/internal/core"
)

// ConfigManager implements core.ConfigStore on top of a Backend. It owns
// default materialisation and write-time validation so that every backend
// behaves the same way.
type ConfigManager struct {
	backend Backend
	logger  *slog.Logger
}

// NewConfigManager creates a ConfigManager.
func NewConfigManager(backend Backend, logger *slog.Logger) *ConfigManager {
	return &ConfigManager{backend: backend, logger: logger}
}

var _ core.ConfigStore = (*ConfigManager)(nil)

// GetServerConfig returns the named server, creating a default entry on first use.
func (m *ConfigManager) GetServerConfig(ctx context.Context, name string) (*core.ServerConfig, error) {
	cfg, err := m.backend.GetServer(ctx, name)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("failed to load server config %q: %w", name, err)
	}

	m.logger.Debug("creating default server config", "server", name)
	if err := m.backend.InsertServerIfAbsent(ctx, core.DefaultServerConfig(name)); err != nil {
		return nil, fmt.Errorf("failed to create server config %q: %w", name, err)
	}
	// Re-read so that a concurrent first read and this one agree on the row.
	cfg, err = m.backend.GetServer(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load server config %q: %w", name, err)
	}
	return cfg, nil
}

// GetDefaultServerConfig returns the server named core.DefaultServerName.
func (m *ConfigManager) GetDefaultServerConfig(ctx context.Context) (*core.ServerConfig, error) {
	return m.GetServerConfig(ctx, core.DefaultServerName)
}

// SetServerConfig validates the name and writes the server config.
func (m *ConfigManager) SetServerConfig(ctx context.Context, cfg *core.ServerConfig) error {
	if err := core.ValidateServerName(cfg.Name); err != nil {
		return fmt.Errorf("invalid server name %q: %w", cfg.Name, err)
	}
	if err := m.backend.UpsertServer(ctx, cfg); err != nil {
		return fmt.Errorf("failed to save server config %q: %w", cfg.Name, err)
	}
	m.logger.Info("server config saved", "server", cfg.Name, "url", cfg.URL)
	return nil
}

// DeleteServerConfig removes a server. Deleting a missing server is not an error.
func (m *ConfigManager) DeleteServerConfig(ctx context.Context, name string) error {
	err := m.backend.DeleteServer(ctx, name)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("failed to delete server config %q: %w", name, err)
	}
	return nil
}

// ListServerConfigs returns every stored server. With nothing stored, the
// default server is materialised and returned alone.
func (m *ConfigManager) ListServerConfigs(ctx context.Context) ([]*core.ServerConfig, error) {
	configs, err := m.backend.ListServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list server configs: %w", err)
	}
	if len(configs) > 0 {
		return configs, nil
	}
	def, err := m.GetDefaultServerConfig(ctx)
	if err != nil {
		return nil, err
	}
	return []*core.ServerConfig{def}, nil
}

// ListServerNames returns the names of all servers.
func (m *ConfigManager) ListServerNames(ctx context.Context) ([]string, error) {
	configs, err := m.ListServerConfigs(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(configs))
	for _, c := range configs {
		names = append(names, c.Name)
	}
	return names, nil
}

// GetRepoConfig returns the repository's build settings, creating defaults on first use.
func (m *ConfigManager) GetRepoConfig(ctx context.Context, repoID int64) (*core.RepoConfig, error) {
	cfg, err := m.backend.GetRepo(ctx, repoID)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("failed to load repository config %d: %w", repoID, err)
	}

	m.logger.Debug("creating default repository config", "repo_id", repoID)
	if err := m.backend.InsertRepoIfAbsent(ctx, core.DefaultRepoConfig(repoID)); err != nil {
		return nil, fmt.Errorf("failed to create repository config %d: %w", repoID, err)
	}
	cfg, err = m.backend.GetRepo(ctx, repoID)
	if err != nil {
		return nil, fmt.Errorf("failed to load repository config %d: %w", repoID, err)
	}
	return cfg, nil
}

// SetRepoConfig writes the repository's build settings. An empty server name
// means the default server; any other name must already exist.
func (m *ConfigManager) SetRepoConfig(ctx context.Context, cfg *core.RepoConfig) error {
	if cfg.ServerName == "" {
		cfg.ServerName = core.DefaultServerName
	}
	if err := m.validateServerExists(ctx, cfg.ServerName); err != nil {
		return err
	}
	if err := m.backend.UpsertRepo(ctx, cfg); err != nil {
		return fmt.Errorf("failed to save repository config %d: %w", cfg.RepoID, err)
	}
	m.logger.Info("repository config saved",
		"repo_id", cfg.RepoID,
		"ci_enabled", cfg.CIEnabled,
		"server", cfg.ServerName,
	)
	return nil
}

func (m *ConfigManager) validateServerExists(ctx context.Context, name string) error {
	if name == core.DefaultServerName {
		return nil
	}
	_, err := m.backend.GetServer(ctx, name)
	if errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("jenkins server %q: %w", name, core.ErrUnknownServer)
	}
	if err != nil {
		return fmt.Errorf("failed to look up server %q: %w", name, err)
	}
	return nil
}
