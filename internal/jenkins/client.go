// Package jenkins starts parameterised builds on a Jenkins server.
package jenkins

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/sevigo/stashbot/internal/config"
	"github.com/sevigo/stashbot/internal/core"
)

// ReportPath is the route prefix Jenkins calls back on when a build changes state.
const ReportPath = "/api/v1/build/report"

// Client implements core.BuildTrigger against the Jenkins remote access API.
type Client struct {
	store      core.ConfigStore
	hc         *http.Client
	publicURL  string
	maxElapsed time.Duration
	logger     *slog.Logger
}

// NewClient creates a Jenkins client. Server addresses and credentials are
// looked up per repository at trigger time.
func NewClient(store core.ConfigStore, cfg *config.Config, logger *slog.Logger) *Client {
	tr := &http.Transport{
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		store:      store,
		hc:         &http.Client{Transport: tr, Timeout: cfg.Jenkins.Timeout},
		publicURL:  strings.TrimRight(cfg.Server.PublicURL, "/"),
		maxElapsed: cfg.Jenkins.MaxElapsed,
		logger:     logger,
	}
}

var _ core.BuildTrigger = (*Client)(nil)

// CallbackURL is the report address handed to the job. Jenkins appends
// /OUTCOME/BUILD_NUMBER/BUILD_HEAD/MERGE_HEAD/PULL_REQUEST_ID.
func (c *Client) CallbackURL(repoID int64, kind core.BuildKind) string {
	return fmt.Sprintf("%s%s/%d/%s", c.publicURL, ReportPath, repoID, kind)
}

// TriggerBuild queues a build of the repository's job for the given kind.
// Transient failures are retried until the configured deadline.
func (c *Client) TriggerBuild(ctx context.Context, repo *core.Repository, kind core.BuildKind, commitHash string) error {
	rc, err := c.store.GetRepoConfig(ctx, repo.ID)
	if err != nil {
		return fmt.Errorf("failed to load repository config: %w", err)
	}
	server, err := c.store.GetServerConfig(ctx, rc.ServerName)
	if err != nil {
		return fmt.Errorf("failed to load jenkins server %q: %w", rc.ServerName, err)
	}

	jobName := kind.LabelFor(repo)
	endpoint := server.JobURL(jobName) + "/buildWithParameters"
	form := url.Values{
		"buildHead":       {commitHash},
		"repoId":          {strconv.FormatInt(repo.ID, 10)},
		"buildCommand":    {rc.BuildCommand(kind)},
		"prebuildCommand": {rc.PrebuildCommand},
		"callbackUrl":     {c.CallbackURL(repo.ID, kind)},
	}

	op := func() error {
		return c.post(ctx, endpoint, form, server)
	}

	if err := backoff.Retry(op, backoff.WithContext(c.newBackOff(), ctx)); err != nil {
		return fmt.Errorf("failed to trigger %s on %s: %w", jobName, server.Name, err)
	}

	c.logger.Info("jenkins build queued",
		"repo", repo.String(),
		"job", jobName,
		"server", server.Name,
		"commit", commitHash,
	)
	return nil
}

// newBackOff returns the retry policy for one trigger. A zero deadline
// disables retries.
func (c *Client) newBackOff() backoff.BackOff {
	if c.maxElapsed <= 0 {
		return &backoff.StopBackOff{}
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = c.maxElapsed
	return bo
}

// ErrRejected is returned when Jenkins refuses a trigger request outright.
var ErrRejected = errors.New("jenkins rejected build request")

func (c *Client) post(ctx context.Context, endpoint string, form url.Values, server *core.ServerConfig) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if server.Username != "" {
		req.SetBasicAuth(server.Username, server.Password)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return fmt.Errorf("jenkins %s", resp.Status)
	default:
		return backoff.Permanent(fmt.Errorf("%w: %s", ErrRejected, resp.Status))
	}
}
