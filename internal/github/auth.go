package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/sevigo/stashbot/internal/config"
)

// NewClientFromConfig creates a client authenticated either as a GitHub App
// installation or with a personal access token.
func NewClientFromConfig(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	var httpClient *http.Client
	if cfg.GitHub.UsesApp() {
		logger.Info("authenticating as GitHub App installation",
			"app_id", cfg.GitHub.AppID,
			"installation_id", cfg.GitHub.InstallationID,
		)
		tr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, cfg.GitHub.AppID, cfg.GitHub.InstallationID, cfg.GitHub.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub App transport: %w", err)
		}
		httpClient = &http.Client{Transport: tr}
	} else {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHub.Token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)
	if cfg.GitHub.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(cfg.GitHub.BaseURL, cfg.GitHub.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GITHUB_BASE_URL %q: %w", cfg.GitHub.BaseURL, err)
		}
	}
	return NewGitHubClient(client, logger), nil
}
