package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/stashbot/internal/app"
	"github.com/sevigo/stashbot/internal/config"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import servers and repository settings from a YAML file",
	Long: `Import servers and repository settings from a YAML file:

  servers:
    - name: build01
      url: https://jenkins.example.com
      username: stashbot
      password: secret
  repositories:
    - repo_id: 42
      ci_enabled: true
      server_name: build01

Servers are written first so repositories can refer to them. Fields left out
of a repository entry keep their defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		seed, err := config.LoadSeed(args[0])
		if err != nil {
			return err
		}
		return withApp(func(ctx context.Context, a *app.App) error {
			for _, s := range seed.Servers {
				if err := a.Store.SetServerConfig(ctx, s); err != nil {
					return fmt.Errorf("failed to import server %q: %w", s.Name, err)
				}
				dimColor.Printf("  server %s\n", s.Name)
			}
			for _, rc := range seed.Repositories {
				if err := a.Store.SetRepoConfig(ctx, rc); err != nil {
					return fmt.Errorf("failed to import repository %d: %w", rc.RepoID, err)
				}
				dimColor.Printf("  repository %d\n", rc.RepoID)
			}
			successColor.Printf("Imported %d servers and %d repositories\n", len(seed.Servers), len(seed.Repositories))
			return nil
		})
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(importCmd)
}
