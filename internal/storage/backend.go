// Package storage persists server and repository build configuration.
package storage

import (
	"context"

	"github.com/sevigo/stashbot/internal/core"
)

// Backend holds the primitive, key-indexed operations a configuration store
// needs. Get methods return core.ErrNotFound for missing keys. The
// InsertIfAbsent methods must leave an existing row untouched.
type Backend interface {
	GetServer(ctx context.Context, name string) (*core.ServerConfig, error)
	InsertServerIfAbsent(ctx context.Context, cfg *core.ServerConfig) error
	UpsertServer(ctx context.Context, cfg *core.ServerConfig) error
	DeleteServer(ctx context.Context, name string) error
	ListServers(ctx context.Context) ([]*core.ServerConfig, error)

	GetRepo(ctx context.Context, repoID int64) (*core.RepoConfig, error)
	InsertRepoIfAbsent(ctx context.Context, cfg *core.RepoConfig) error
	UpsertRepo(ctx context.Context, cfg *core.RepoConfig) error
}
