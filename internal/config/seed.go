package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/stashbot/internal/core"
)

// ErrSeedParsing wraps every error caused by malformed seed file contents.
var ErrSeedParsing = errors.New("seed file parsing failed")

// Seed is a bulk description of servers and repositories, typically kept
// next to the Jenkins job definitions and imported with the CLI.
type Seed struct {
	Servers      []*core.ServerConfig
	Repositories []*core.RepoConfig
}

type seedFile struct {
	Servers      []*core.ServerConfig `yaml:"servers"`
	Repositories []yaml.Node          `yaml:"repositories"`
}

// LoadSeed reads a YAML seed file. Repository fields missing from the file
// keep their default values.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes seed file contents.
func ParseSeed(data []byte) (*Seed, error) {
	var raw seedFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeedParsing, err)
	}

	seed := &Seed{Servers: raw.Servers}
	for i, s := range raw.Servers {
		if s == nil {
			return nil, fmt.Errorf("%w: server %d is empty", ErrSeedParsing, i)
		}
	}
	for i := range raw.Repositories {
		repo := core.DefaultRepoConfig(0)
		if err := raw.Repositories[i].Decode(repo); err != nil {
			return nil, fmt.Errorf("%w: repository %d: %w", ErrSeedParsing, i, err)
		}
		if repo.RepoID <= 0 {
			return nil, fmt.Errorf("%w: repository %d: repo_id must be positive", ErrSeedParsing, i)
		}
		seed.Repositories = append(seed.Repositories, repo)
	}
	return seed, nil
}
