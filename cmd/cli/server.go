package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevigo/stashbot/internal/app"
	"github.com/sevigo/stashbot/internal/core"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Manage Jenkins server entries",
}

var serverListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured Jenkins servers",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			servers, err := a.Store.ListServerConfigs(ctx)
			if err != nil {
				return fmt.Errorf("failed to list servers: %w", err)
			}

			if outputJSON() {
				masked := make([]core.ServerConfig, 0, len(servers))
				for _, s := range servers {
					masked = append(masked, maskServer(s))
				}
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(masked)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tURL\tUSERNAME\tHOST USERNAME")
			for _, s := range servers {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.URL, s.Username, s.HostUsername)
			}
			return w.Flush()
		})
	},
}

var serverSetFlags struct {
	url          string
	username     string
	password     string
	hostUsername string
	hostPassword string
}

var serverSetCmd = &cobra.Command{
	Use:   "set NAME",
	Short: "Create or update a Jenkins server",
	Long: `Create or update a Jenkins server. Only the flags given are changed;
a new server starts from the defaults. Names must be alphanumeric.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := core.ValidateServerName(name); err != nil {
			return fmt.Errorf("invalid server name %q: %w", name, err)
		}
		return withApp(func(ctx context.Context, a *app.App) error {
			cfg, err := a.Store.GetServerConfig(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to load server %q: %w", name, err)
			}

			flags := cmd.Flags()
			if flags.Changed("url") {
				cfg.URL = serverSetFlags.url
			}
			if flags.Changed("username") {
				cfg.Username = serverSetFlags.username
			}
			if flags.Changed("password") {
				cfg.Password = serverSetFlags.password
			}
			if flags.Changed("host-username") {
				cfg.HostUsername = serverSetFlags.hostUsername
			}
			if flags.Changed("host-password") {
				cfg.HostPassword = serverSetFlags.hostPassword
			}

			if err := a.Store.SetServerConfig(ctx, cfg); err != nil {
				return fmt.Errorf("failed to save server %q: %w", name, err)
			}
			successColor.Printf("Saved server %s (%s)\n", cfg.Name, cfg.URL)
			return nil
		})
	},
}

var serverDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a Jenkins server",
	Long: `Delete a Jenkins server. Repositories still pointing at it keep the
name and get a fresh default entry the next time they build.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			if err := a.Store.DeleteServerConfig(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete server %q: %w", args[0], err)
			}
			successColor.Printf("Deleted server %s\n", args[0])
			return nil
		})
	},
}

func maskServer(s *core.ServerConfig) core.ServerConfig {
	out := *s
	if out.Password != "" {
		out.Password = "****"
	}
	if out.HostPassword != "" {
		out.HostPassword = "****"
	}
	return out
}

func init() { //nolint:gochecknoinits // Cobra command registration
	f := serverSetCmd.Flags()
	f.StringVar(&serverSetFlags.url, "url", "", "Jenkins base URL")
	f.StringVar(&serverSetFlags.username, "username", "", "Jenkins user")
	f.StringVar(&serverSetFlags.password, "password", "", "Jenkins password or API token")
	f.StringVar(&serverSetFlags.hostUsername, "host-username", "", "Source host user the build checks out with")
	f.StringVar(&serverSetFlags.hostPassword, "host-password", "", "Source host password the build checks out with")

	serverCmd.AddCommand(serverListCmd, serverSetCmd, serverDeleteCmd)
	rootCmd.AddCommand(serverCmd)
}
