package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevigo/stashbot/internal/app"
	"github.com/sevigo/stashbot/internal/core"
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Show or change per-repository build settings",
}

var repoShowCmd = &cobra.Command{
	Use:   "show REPO_ID",
	Short: "Show the build settings of a repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		repoID, err := parseRepoID(args[0])
		if err != nil {
			return err
		}
		return withApp(func(ctx context.Context, a *app.App) error {
			rc, err := a.Store.GetRepoConfig(ctx, repoID)
			if err != nil {
				return fmt.Errorf("failed to load repository %d: %w", repoID, err)
			}
			return printRepoConfig(rc)
		})
	},
}

var repoSetFlags struct {
	ciEnabled      bool
	verifyRegex    string
	verifyCommand  string
	publishRegex   string
	publishCommand string
	prebuild       string
	server         string
}

var repoSetCmd = &cobra.Command{
	Use:   "set REPO_ID",
	Short: "Change the build settings of a repository",
	Long: `Change the build settings of a repository. Only the flags given are
changed. The server must already exist unless it is "default".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repoID, err := parseRepoID(args[0])
		if err != nil {
			return err
		}
		return withApp(func(ctx context.Context, a *app.App) error {
			rc, err := a.Store.GetRepoConfig(ctx, repoID)
			if err != nil {
				return fmt.Errorf("failed to load repository %d: %w", repoID, err)
			}

			flags := cmd.Flags()
			if flags.Changed("ci-enabled") {
				rc.CIEnabled = repoSetFlags.ciEnabled
			}
			if flags.Changed("verify-regex") {
				rc.VerifyBranchRegex = repoSetFlags.verifyRegex
			}
			if flags.Changed("verify-command") {
				rc.VerifyBuildCommand = repoSetFlags.verifyCommand
			}
			if flags.Changed("publish-regex") {
				rc.PublishBranchRegex = repoSetFlags.publishRegex
			}
			if flags.Changed("publish-command") {
				rc.PublishBuildCommand = repoSetFlags.publishCommand
			}
			if flags.Changed("prebuild-command") {
				rc.PrebuildCommand = repoSetFlags.prebuild
			}
			if flags.Changed("server") {
				rc.ServerName = repoSetFlags.server
			}

			if err := a.Store.SetRepoConfig(ctx, rc); err != nil {
				return fmt.Errorf("failed to save repository %d: %w", repoID, err)
			}
			successColor.Printf("Saved repository %d\n", repoID)
			return printRepoConfig(rc)
		})
	},
}

func parseRepoID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid repository id %q", s)
	}
	return id, nil
}

func printRepoConfig(rc *core.RepoConfig) error {
	if outputJSON() {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rc)
	}

	enabled := warnColor.Sprint("disabled")
	if rc.CIEnabled {
		enabled = successColor.Sprint("enabled")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Repository\t%d\n", rc.RepoID)
	fmt.Fprintf(w, "CI\t%s\n", enabled)
	fmt.Fprintf(w, "Server\t%s\n", rc.ServerName)
	fmt.Fprintf(w, "Publish branches\t%s\n", rc.PublishBranchRegex)
	fmt.Fprintf(w, "Publish command\t%s\n", rc.PublishBuildCommand)
	fmt.Fprintf(w, "Verify branches\t%s\n", rc.VerifyBranchRegex)
	fmt.Fprintf(w, "Verify command\t%s\n", rc.VerifyBuildCommand)
	fmt.Fprintf(w, "Prebuild command\t%s\n", rc.PrebuildCommand)
	return w.Flush()
}

func init() { //nolint:gochecknoinits // Cobra command registration
	f := repoSetCmd.Flags()
	f.BoolVar(&repoSetFlags.ciEnabled, "ci-enabled", false, "Trigger builds for pushes to this repository")
	f.StringVar(&repoSetFlags.verifyRegex, "verify-regex", "", "Refs that get a verification build")
	f.StringVar(&repoSetFlags.verifyCommand, "verify-command", "", "Command run by verification builds")
	f.StringVar(&repoSetFlags.publishRegex, "publish-regex", "", "Refs that get a publish build")
	f.StringVar(&repoSetFlags.publishCommand, "publish-command", "", "Command run by publish builds")
	f.StringVar(&repoSetFlags.prebuild, "prebuild-command", "", "Command run before either build")
	f.StringVar(&repoSetFlags.server, "server", "", "Jenkins server name")

	repoCmd.AddCommand(repoShowCmd, repoSetCmd)
	rootCmd.AddCommand(repoCmd)
}
