package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/stashbot/internal/app"
	"github.com/sevigo/stashbot/internal/core"
)

var reportCmd = &cobra.Command{
	Use:   "report PATH",
	Short: "Report a build result as Jenkins would",
	Long: `Report a build result as Jenkins would. PATH uses the callback layout

  REPO_ID/KIND/OUTCOME/BUILD_NUMBER/BUILD_HEAD[/MERGE_HEAD[/PULL_REQUEST_ID]]

Example:
  stashbot-cli report 42/VERIFICATION/FAILED/17/38356e8a/9f1c2e7d/5`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		n, err := core.ParseNotificationPath(args[0])
		if err != nil {
			return err
		}
		return withApp(func(ctx context.Context, a *app.App) error {
			if err := a.Reporter.Report(ctx, n); err != nil {
				return fmt.Errorf("failed to report build: %w", err)
			}
			successColor.Printf("Status Updated: %s %s build #%d of %s\n", n.Outcome, n.Kind, n.BuildNumber, n.BuildHead)
			return nil
		})
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(reportCmd)
}
