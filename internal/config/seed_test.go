package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/stashbot/internal/core"
)

const testSeed = `
servers:
  - name: build01
    url: https://jenkins.example.com
    username: stashbot
    password: api-token
repositories:
  - repo_id: 42
    ci_enabled: true
    publish_branch_regex: refs/heads/(main|release/.*)
    server_name: build01
  - repo_id: 43
`

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed([]byte(testSeed))
	require.NoError(t, err)

	require.Len(t, seed.Servers, 1)
	assert.Equal(t, "build01", seed.Servers[0].Name)
	assert.Equal(t, "api-token", seed.Servers[0].Password)

	require.Len(t, seed.Repositories, 2)
	first := seed.Repositories[0]
	assert.Equal(t, int64(42), first.RepoID)
	assert.True(t, first.CIEnabled)
	assert.Equal(t, "refs/heads/(main|release/.*)", first.PublishBranchRegex)
	assert.Equal(t, ".*", first.VerifyBranchRegex, "missing fields keep defaults")
	assert.Equal(t, "build01", first.ServerName)

	assert.Equal(t, core.DefaultServerName, seed.Repositories[1].ServerName)
	assert.False(t, seed.Repositories[1].CIEnabled)
}

func TestParseSeed_Errors(t *testing.T) {
	_, err := ParseSeed([]byte("repositories:\n  - ci_enabled: true\n"))
	assert.ErrorIs(t, err, ErrSeedParsing)

	_, err = ParseSeed([]byte("servers: [\n"))
	assert.ErrorIs(t, err, ErrSeedParsing)
}

func TestParseSeed_RejectsEmptyEntries(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "null server", data: "servers: [~]\n"},
		{name: "null server after valid one", data: "servers:\n  - name: build01\n    url: https://jenkins.example.com\n  -\n"},
		{name: "null repository", data: "repositories: [~]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, err := ParseSeed([]byte(tt.data))
			assert.ErrorIs(t, err, ErrSeedParsing)
			assert.Nil(t, seed)
		})
	}
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stashbot.yml")
	require.NoError(t, os.WriteFile(path, []byte(testSeed), 0600))

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Len(t, seed.Repositories, 2)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
