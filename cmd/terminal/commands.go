package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/stashbot/internal/app"
	"github.com/sevigo/stashbot/internal/core"
	"github.com/sevigo/stashbot/internal/gitutil"
	"github.com/sevigo/stashbot/internal/jobs"
	"github.com/sevigo/stashbot/internal/wire"
)

func initializeAppCmd() tea.Cmd {
	return func() tea.Msg {
		a, cleanup, err := wire.InitializeApp(context.Background())
		return appInitializedMsg{app: a, cleanup: cleanup, err: err}
	}
}

func listServersCmd(a *app.App) tea.Cmd {
	return func() tea.Msg {
		servers, err := a.Store.ListServerConfigs(context.Background())
		if err != nil {
			return errorMsg{fmt.Errorf("failed to list servers: %w", err)}
		}
		return outputMsg{serversMarkdown(servers)}
	}
}

func showRepoCmd(a *app.App, repoID int64) tea.Cmd {
	return func() tea.Msg {
		rc, err := a.Store.GetRepoConfig(context.Background(), repoID)
		if err != nil {
			return errorMsg{fmt.Errorf("failed to load repository %d: %w", repoID, err)}
		}
		return outputMsg{repoMarkdown(rc)}
	}
}

// updateRepoCmd loads the repository settings, applies change and saves them.
func updateRepoCmd(a *app.App, repoID int64, change func(*core.RepoConfig)) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		rc, err := a.Store.GetRepoConfig(ctx, repoID)
		if err != nil {
			return errorMsg{fmt.Errorf("failed to load repository %d: %w", repoID, err)}
		}
		change(rc)
		if err := a.Store.SetRepoConfig(ctx, rc); err != nil {
			return errorMsg{fmt.Errorf("failed to save repository %d: %w", repoID, err)}
		}
		return outputMsg{repoMarkdown(rc)}
	}
}

func pushCmd(a *app.App, path string, repoID int64, refs []string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		changes, err := gitutil.NewClient(a.Logger).RefChanges(path, refs)
		if err != nil {
			return errorMsg{err}
		}
		repo, err := a.Host.GetRepositoryByID(ctx, repoID)
		if err != nil {
			return errorMsg{fmt.Errorf("failed to resolve repository %d: %w", repoID, err)}
		}
		result, err := a.PushJob.Dispatch(ctx, &core.PushEvent{Repository: repo, RefChanges: changes})
		if err != nil {
			return errorMsg{err}
		}
		return outputMsg{dispatchMarkdown(repo, result)}
	}
}

func reportCmd(a *app.App, path string) tea.Cmd {
	return func() tea.Msg {
		n, err := core.ParseNotificationPath(path)
		if err != nil {
			return errorMsg{err}
		}
		if err := a.Reporter.Report(context.Background(), n); err != nil {
			return errorMsg{fmt.Errorf("failed to report build: %w", err)}
		}
		return outputMsg{fmt.Sprintf("**Status Updated**: `%s` %s build #%d of `%s`", n.Outcome.Marker(), n.Kind, n.BuildNumber, n.BuildHead)}
	}
}

func serversMarkdown(servers []*core.ServerConfig) string {
	var b strings.Builder
	b.WriteString("## Jenkins servers\n\n| Name | URL | User | Host user |\n|---|---|---|---|\n")
	for _, s := range servers {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", s.Name, s.URL, s.Username, s.HostUsername)
	}
	return b.String()
}

func repoMarkdown(rc *core.RepoConfig) string {
	ci := "disabled"
	if rc.CIEnabled {
		ci = "enabled"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## Repository %d\n\n| Setting | Value |\n|---|---|\n", rc.RepoID)
	fmt.Fprintf(&b, "| CI | %s |\n", ci)
	fmt.Fprintf(&b, "| Server | %s |\n", rc.ServerName)
	fmt.Fprintf(&b, "| Publish branches | `%s` |\n", rc.PublishBranchRegex)
	fmt.Fprintf(&b, "| Publish command | `%s` |\n", rc.PublishBuildCommand)
	fmt.Fprintf(&b, "| Verify branches | `%s` |\n", rc.VerifyBranchRegex)
	fmt.Fprintf(&b, "| Verify command | `%s` |\n", rc.VerifyBuildCommand)
	fmt.Fprintf(&b, "| Prebuild command | `%s` |\n", rc.PrebuildCommand)
	return b.String()
}

func dispatchMarkdown(repo *core.Repository, result *jobs.DispatchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Push replay for %s\n\n", repo)
	if len(result.Triggered) == 0 && len(result.Failed) == 0 {
		b.WriteString("No builds triggered.\n")
		return b.String()
	}
	for _, t := range result.Triggered {
		fmt.Fprintf(&b, "- ✓ **%s** `%s` @ `%s`\n", t.Kind, t.RefID, t.Commit)
	}
	for _, t := range result.Failed {
		fmt.Fprintf(&b, "- ✗ **%s** `%s` @ `%s`: %v\n", t.Kind, t.RefID, t.Commit, t.Err)
	}
	return b.String()
}
