package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/stashbot/internal/app"
	"github.com/sevigo/stashbot/internal/core"
	"github.com/sevigo/stashbot/internal/gitutil"
	"github.com/sevigo/stashbot/internal/jobs"
)

var pushFlags struct {
	repoID int64
	refs   []string
}

var pushCmd = &cobra.Command{
	Use:   "push PATH",
	Short: "Replay a push from a local clone",
	Long: `Replay a push from a local clone: the current tips of the selected refs
are run through the repository's build rules as if they had just been pushed,
and matching builds are triggered on Jenkins.

Examples:
  stashbot-cli push . --repo-id 42
  stashbot-cli push ~/src/app --repo-id 42 --ref master --ref feature/x`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if pushFlags.repoID <= 0 {
			return fmt.Errorf("--repo-id is required")
		}
		return withApp(func(ctx context.Context, a *app.App) error {
			changes, err := gitutil.NewClient(a.Logger).RefChanges(args[0], pushFlags.refs)
			if err != nil {
				return err
			}

			repo, err := a.Host.GetRepositoryByID(ctx, pushFlags.repoID)
			if err != nil {
				return fmt.Errorf("failed to resolve repository %d: %w", pushFlags.repoID, err)
			}

			titleColor.Printf("Replaying %d refs of %s\n", len(changes), repo)
			result, err := a.PushJob.Dispatch(ctx, &core.PushEvent{Repository: repo, RefChanges: changes})
			if err != nil {
				return err
			}
			return printDispatchResult(os.Stdout, result)
		})
	},
}

func printDispatchResult(w io.Writer, result *jobs.DispatchResult) error {
	if outputJSON() {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
		return dispatchFailure(result)
	}

	if len(result.Triggered) == 0 && len(result.Failed) == 0 {
		warnColor.Fprintln(w, "No builds triggered")
		return nil
	}
	for _, t := range result.Triggered {
		successColor.Fprintf(w, "  ✓ %-12s %s @ %s\n", t.Kind, t.RefID, t.Commit)
	}
	for _, t := range result.Failed {
		errorColor.Fprintf(w, "  ✗ %-12s %s @ %s: %v\n", t.Kind, t.RefID, t.Commit, t.Err)
	}
	return dispatchFailure(result)
}

func dispatchFailure(result *jobs.DispatchResult) error {
	if len(result.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d builds failed to start", len(result.Failed), len(result.Failed)+len(result.Triggered))
}

func init() { //nolint:gochecknoinits // Cobra command registration
	pushCmd.Flags().Int64Var(&pushFlags.repoID, "repo-id", 0, "Source host repository id")
	pushCmd.Flags().StringSliceVar(&pushFlags.refs, "ref", nil, "Ref to replay (repeatable); defaults to all local branches")
	rootCmd.AddCommand(pushCmd)
}
