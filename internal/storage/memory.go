package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/sevigo/stashbot/internal/core"
)

type memoryBackend struct {
	mu      sync.RWMutex
	servers map[string]core.ServerConfig
	repos   map[int64]core.RepoConfig
}

// NewMemoryBackend returns a Backend that keeps everything in process memory.
func NewMemoryBackend() Backend {
	return &memoryBackend{
		servers: make(map[string]core.ServerConfig),
		repos:   make(map[int64]core.RepoConfig),
	}
}

func (b *memoryBackend) GetServer(_ context.Context, name string) (*core.ServerConfig, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	cfg, ok := b.servers[name]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &cfg, nil
}

func (b *memoryBackend) InsertServerIfAbsent(_ context.Context, cfg *core.ServerConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.servers[cfg.Name]; !ok {
		b.servers[cfg.Name] = *cfg
	}
	return nil
}

func (b *memoryBackend) UpsertServer(_ context.Context, cfg *core.ServerConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.servers[cfg.Name] = *cfg
	return nil
}

func (b *memoryBackend) DeleteServer(_ context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.servers, name)
	return nil
}

func (b *memoryBackend) ListServers(_ context.Context) ([]*core.ServerConfig, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*core.ServerConfig, 0, len(b.servers))
	for _, cfg := range b.servers {
		out = append(out, &cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (b *memoryBackend) GetRepo(_ context.Context, repoID int64) (*core.RepoConfig, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	cfg, ok := b.repos[repoID]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &cfg, nil
}

func (b *memoryBackend) InsertRepoIfAbsent(_ context.Context, cfg *core.RepoConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.repos[cfg.RepoID]; !ok {
		b.repos[cfg.RepoID] = *cfg
	}
	return nil
}

func (b *memoryBackend) UpsertRepo(_ context.Context, cfg *core.RepoConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.repos[cfg.RepoID] = *cfg
	return nil
}
