// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/stashbot/internal/core"
)

// Client implements core.SourceHost on top of the go-github client.
type Client struct {
	client *github.Client
	logger *slog.Logger
}

// NewGitHubClient wraps an authenticated go-github client.
func NewGitHubClient(client *github.Client, logger *slog.Logger) *Client {
	return &Client{client: client, logger: logger}
}

var _ core.SourceHost = (*Client)(nil)

// GetRepositoryByID resolves a numeric repository id.
func (g *Client) GetRepositoryByID(ctx context.Context, id int64) (*core.Repository, error) {
	repo, _, err := g.client.Repositories.GetByID(ctx, id)
	if err != nil {
		g.logger.Error("failed to get repository", "repo_id", id, "error", err)
		return nil, translateError(err)
	}
	return &core.Repository{
		ID:       repo.GetID(),
		Owner:    repo.GetOwner().GetLogin(),
		Name:     repo.GetName(),
		FullName: repo.GetFullName(),
		HTMLURL:  repo.GetHTMLURL(),
	}, nil
}

// GetPullRequest retrieves a single pull request by its number.
func (g *Client) GetPullRequest(ctx context.Context, repo *core.Repository, number int) (*core.PullRequest, error) {
	pr, _, err := g.client.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		g.logger.Error("failed to get pull request", "repo", repo.String(), "pr", number, "error", err)
		return nil, translateError(err)
	}
	return &core.PullRequest{
		Number:  pr.GetNumber(),
		Title:   pr.GetTitle(),
		HTMLURL: pr.GetHTMLURL(),
		HeadSHA: pr.GetHead().GetSHA(),
		BaseRef: pr.GetBase().GetRef(),
	}, nil
}

// SetCommitStatus creates a commit status; GitHub keeps the latest status per context.
func (g *Client) SetCommitStatus(ctx context.Context, repo *core.Repository, commitHash string, status *core.CommitStatus) error {
	if _, _, err := g.client.Repositories.CreateStatus(ctx, repo.Owner, repo.Name, commitHash, toRepoStatus(status)); err != nil {
		g.logger.Error("failed to create commit status", "repo", repo.String(), "commit", commitHash, "error", err)
		return translateError(err)
	}
	return nil
}

// AddPullRequestComment creates a new comment on a pull request.
func (g *Client) AddPullRequestComment(ctx context.Context, repo *core.Repository, number int, text string) error {
	comment := &github.IssueComment{Body: &text}
	_, _, err := g.client.Issues.CreateComment(ctx, repo.Owner, repo.Name, number, comment)
	if err != nil {
		g.logger.Error("failed to create comment", "repo", repo.String(), "pr", number, "error", err)
		return translateError(err)
	}
	return nil
}

// translateError maps GitHub's 404 onto core.ErrNotFound, keeping the original error.
func translateError(err error) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", core.ErrNotFound, err)
	}
	return err
}
