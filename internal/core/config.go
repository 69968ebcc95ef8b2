package core

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DefaultServerName is the reserved name of the server every repository
// uses unless configured otherwise.
const DefaultServerName = "default"

var serverNameRegexp = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// RepoConfig holds the per-repository build settings.
type RepoConfig struct {
	RepoID              int64  `db:"repo_id" yaml:"repo_id"`
	CIEnabled           bool   `db:"ci_enabled" yaml:"ci_enabled"`
	VerifyBranchRegex   string `db:"verify_branch_regex" yaml:"verify_branch_regex"`
	VerifyBuildCommand  string `db:"verify_build_command" yaml:"verify_build_command"`
	PublishBranchRegex  string `db:"publish_branch_regex" yaml:"publish_branch_regex"`
	PublishBuildCommand string `db:"publish_build_command" yaml:"publish_build_command"`
	PrebuildCommand     string `db:"prebuild_command" yaml:"prebuild_command"`
	ServerName          string `db:"server_name" yaml:"server_name"`
}

// DefaultRepoConfig returns the configuration a repository gets before anyone
// has configured it. CI starts out disabled.
func DefaultRepoConfig(repoID int64) *RepoConfig {
	return &RepoConfig{
		RepoID:              repoID,
		CIEnabled:           false,
		VerifyBranchRegex:   ".*",
		VerifyBuildCommand:  "./scripts/verify.sh",
		PublishBranchRegex:  "refs/heads/master",
		PublishBuildCommand: "./scripts/publish.sh",
		PrebuildCommand:     "./scripts/prebuild.sh",
		ServerName:          DefaultServerName,
	}
}

// BuildCommand returns the command configured for the given build kind.
func (c *RepoConfig) BuildCommand(kind BuildKind) string {
	if kind == BuildPublish {
		return c.PublishBuildCommand
	}
	return c.VerifyBuildCommand
}

// ServerConfig describes a Jenkins server and the credentials it uses to talk
// back to the source host.
type ServerConfig struct {
	Name         string `db:"name" yaml:"name"`
	URL          string `db:"url" yaml:"url"`
	Username     string `db:"username" yaml:"username"`
	Password     string `db:"password" yaml:"password"`
	HostUsername string `db:"host_username" yaml:"host_username"`
	HostPassword string `db:"host_password" yaml:"host_password"`
}

// DefaultServerConfig returns an unconfigured server entry.
func DefaultServerConfig(name string) *ServerConfig {
	return &ServerConfig{
		Name: name,
		URL:  "http://localhost:8080",
	}
}

// JobURL is the address of a Jenkins job on this server.
func (s *ServerConfig) JobURL(jobName string) string {
	return fmt.Sprintf("%s/job/%s", strings.TrimRight(s.URL, "/"), url.PathEscape(jobName))
}

// BuildURL is the address of one run of a Jenkins job.
func (s *ServerConfig) BuildURL(jobName string, buildNumber int64) string {
	return fmt.Sprintf("%s/%d/", s.JobURL(jobName), buildNumber)
}

// ValidateServerName checks a server name against [A-Za-z0-9]+.
func ValidateServerName(name string) error {
	if !serverNameRegexp.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// ConfigStore reads and writes server and repository configuration.
// Reads of entities that were never written materialise and return defaults.
//
//go:generate mockgen -destination=../../mocks/mock_config_store.go -package=mocks . ConfigStore
type ConfigStore interface {
	GetServerConfig(ctx context.Context, name string) (*ServerConfig, error)
	GetDefaultServerConfig(ctx context.Context) (*ServerConfig, error)
	SetServerConfig(ctx context.Context, cfg *ServerConfig) error
	DeleteServerConfig(ctx context.Context, name string) error
	ListServerNames(ctx context.Context) ([]string, error)
	ListServerConfigs(ctx context.Context) ([]*ServerConfig, error)
	GetRepoConfig(ctx context.Context, repoID int64) (*RepoConfig, error)
	SetRepoConfig(ctx context.Context, cfg *RepoConfig) error
}
