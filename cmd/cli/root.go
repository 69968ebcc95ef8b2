package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/stashbot/internal/app"
	"github.com/sevigo/stashbot/internal/wire"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

var rootCmd = &cobra.Command{
	Use:   "stashbot-cli",
	Short: "stashbot-cli manages Jenkins servers and repository build settings for stashbot.",
	Long: `A CLI for administering stashbot: manage Jenkins servers and per-repository
build rules, import settings from YAML, replay pushes from a local clone and
report build results by hand.

The CLI reads the same environment and .env file as the server.`,
	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	for _, name := range []string{"json", "no-color"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			slog.Error("Error binding flag", "flag", name, "error", err)
			os.Exit(1)
		}
	}
}

// initConfig reads CLI settings from STASHBOT_* environment variables.
func initConfig() {
	viper.SetEnvPrefix("STASHBOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if viper.GetBool("no-color") {
		color.NoColor = true
	}
}

func outputJSON() bool {
	return viper.GetBool("json")
}

// withApp initializes the application components and hands them to fn.
func withApp(fn func(ctx context.Context, a *app.App) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer cleanup()

	return fn(ctx, a)
}
