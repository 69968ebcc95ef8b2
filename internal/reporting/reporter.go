// Package reporting turns Jenkins build-completion callbacks into commit
// statuses and pull request comments on the source host.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sevigo/stashbot/internal/core"
)

var (
	// ErrUnknownRepository means the notification named a repository the
	// source host could not resolve.
	ErrUnknownRepository = errors.New("unknown repository")
	// ErrUnknownPullRequest means the notification named a pull request the
	// source host could not resolve.
	ErrUnknownPullRequest = errors.New("unknown pull request")
)

// Reporter posts build outcomes back to the source host.
type Reporter struct {
	host   core.SourceHost
	store  core.ConfigStore
	logger *slog.Logger
}

// NewReporter creates a Reporter.
func NewReporter(host core.SourceHost, store core.ConfigStore, logger *slog.Logger) *Reporter {
	if host == nil {
		panic("source host cannot be nil")
	}
	if store == nil {
		panic("config store cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Reporter{host: host, store: store, logger: logger}
}

// Report sets the commit status of the built commit and, for merge builds of
// a pull request, leaves a comment on the pull request. The comment is only
// posted after the commit status was accepted.
func (r *Reporter) Report(ctx context.Context, n *core.BuildNotification) error {
	if n == nil {
		return fmt.Errorf("%w: empty notification", core.ErrInvalidNotification)
	}

	repo, err := r.host.GetRepositoryByID(ctx, n.RepoID)
	if err != nil {
		return fmt.Errorf("%w %d: %w", ErrUnknownRepository, n.RepoID, err)
	}

	buildURL, err := r.buildURL(ctx, repo, n)
	if err != nil {
		return err
	}

	status := &core.CommitStatus{
		Key:         n.Kind.LabelFor(repo),
		Name:        n.Kind.String(),
		State:       n.Outcome,
		URL:         buildURL,
		BuildNumber: n.BuildNumber,
	}

	r.logger.Info("reporting build status",
		"repo", repo.String(),
		"commit", n.BuildHead,
		"kind", n.Kind,
		"outcome", n.Outcome,
		"build", n.BuildNumber,
	)
	if err := r.host.SetCommitStatus(ctx, repo, n.BuildHead, status); err != nil {
		return fmt.Errorf("failed to set commit status on %s: %w", n.BuildHead, err)
	}

	if !n.HasMergeTarget() {
		return nil
	}

	pr, err := r.host.GetPullRequest(ctx, repo, int(n.PullRequestID))
	if err != nil {
		return fmt.Errorf("%w #%d in %s: %w", ErrUnknownPullRequest, n.PullRequestID, repo, err)
	}

	if err := r.host.AddPullRequestComment(ctx, repo, pr.Number, mergeComment(n, buildURL)); err != nil {
		return fmt.Errorf("failed to comment on pull request #%d: %w", pr.Number, err)
	}
	r.logger.Info("commented on pull request", "repo", repo.String(), "pr", pr.Number, "outcome", n.Outcome)
	return nil
}

func (r *Reporter) buildURL(ctx context.Context, repo *core.Repository, n *core.BuildNotification) (string, error) {
	rc, err := r.store.GetRepoConfig(ctx, repo.ID)
	if err != nil {
		return "", fmt.Errorf("failed to get repository config for %s: %w", repo, err)
	}
	server, err := r.store.GetServerConfig(ctx, rc.ServerName)
	if err != nil {
		return "", fmt.Errorf("failed to get jenkins server %q: %w", rc.ServerName, err)
	}
	return server.BuildURL(n.Kind.LabelFor(repo), n.BuildNumber), nil
}

func mergeComment(n *core.BuildNotification, buildURL string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s merge build #%d %s\n\n", n.Kind, n.BuildNumber, n.Outcome.Marker())
	fmt.Fprintf(&sb, "* Merge commit: `%s`\n", n.MergeHead)
	fmt.Fprintf(&sb, "* Built commit: `%s`\n", n.BuildHead)
	fmt.Fprintf(&sb, "* Details: %s\n", buildURL)
	return sb.String()
}
