package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	// import db drivers
	_ "github.com/lib/pq"

	"github.com/sevigo/stashbot/internal/core"
)

type postgresBackend struct {
	db *sqlx.DB
}

// NewPostgresBackend creates a Backend on the tables created by the db migrations.
func NewPostgresBackend(db *sqlx.DB) Backend {
	return &postgresBackend{db: db}
}

const serverColumns = `name, url, username, password, host_username, host_password`

const repoColumns = `repo_id, ci_enabled, verify_branch_regex, verify_build_command,
	publish_branch_regex, publish_build_command, prebuild_command, server_name`

func (s *postgresBackend) GetServer(ctx context.Context, name string) (*core.ServerConfig, error) {
	var cfg core.ServerConfig
	err := s.db.GetContext(ctx, &cfg, `SELECT `+serverColumns+` FROM jenkins_servers WHERE name = $1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *postgresBackend) InsertServerIfAbsent(ctx context.Context, cfg *core.ServerConfig) error {
	query := `
		INSERT INTO jenkins_servers (` + serverColumns + `)
		VALUES (:name, :url, :username, :password, :host_username, :host_password)
		ON CONFLICT (name) DO NOTHING`
	_, err := s.db.NamedExecContext(ctx, query, cfg)
	return err
}

func (s *postgresBackend) UpsertServer(ctx context.Context, cfg *core.ServerConfig) error {
	query := `
		INSERT INTO jenkins_servers (` + serverColumns + `, updated_at)
		VALUES (:name, :url, :username, :password, :host_username, :host_password, NOW())
		ON CONFLICT (name) DO UPDATE SET
			url = EXCLUDED.url,
			username = EXCLUDED.username,
			password = EXCLUDED.password,
			host_username = EXCLUDED.host_username,
			host_password = EXCLUDED.host_password,
			updated_at = NOW()`
	_, err := s.db.NamedExecContext(ctx, query, cfg)
	return err
}

func (s *postgresBackend) DeleteServer(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM jenkins_servers WHERE name = $1`, name)
	return err
}

func (s *postgresBackend) ListServers(ctx context.Context) ([]*core.ServerConfig, error) {
	var configs []*core.ServerConfig
	err := s.db.SelectContext(ctx, &configs, `SELECT `+serverColumns+` FROM jenkins_servers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return configs, nil
}

func (s *postgresBackend) GetRepo(ctx context.Context, repoID int64) (*core.RepoConfig, error) {
	var cfg core.RepoConfig
	err := s.db.GetContext(ctx, &cfg, `SELECT `+repoColumns+` FROM repository_configs WHERE repo_id = $1`, repoID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *postgresBackend) InsertRepoIfAbsent(ctx context.Context, cfg *core.RepoConfig) error {
	query := `
		INSERT INTO repository_configs (` + repoColumns + `)
		VALUES (:repo_id, :ci_enabled, :verify_branch_regex, :verify_build_command,
			:publish_branch_regex, :publish_build_command, :prebuild_command, :server_name)
		ON CONFLICT (repo_id) DO NOTHING`
	_, err := s.db.NamedExecContext(ctx, query, cfg)
	return err
}

func (s *postgresBackend) UpsertRepo(ctx context.Context, cfg *core.RepoConfig) error {
	query := `
		INSERT INTO repository_configs (` + repoColumns + `, updated_at)
		VALUES (:repo_id, :ci_enabled, :verify_branch_regex, :verify_build_command,
			:publish_branch_regex, :publish_build_command, :prebuild_command, :server_name, NOW())
		ON CONFLICT (repo_id) DO UPDATE SET
			ci_enabled = EXCLUDED.ci_enabled,
			verify_branch_regex = EXCLUDED.verify_branch_regex,
			verify_build_command = EXCLUDED.verify_build_command,
			publish_branch_regex = EXCLUDED.publish_branch_regex,
			publish_build_command = EXCLUDED.publish_build_command,
			prebuild_command = EXCLUDED.prebuild_command,
			server_name = EXCLUDED.server_name,
			updated_at = NOW()`
	_, err := s.db.NamedExecContext(ctx, query, cfg)
	return err
}
