// Package app holds the assembled service: configuration store, source host
// client, push dispatcher, build reporter and the HTTP server in front of them.
package app

import (
	"log/slog"

	"github.com/sevigo/stashbot/internal/config"
	"github.com/sevigo/stashbot/internal/core"
	"github.com/sevigo/stashbot/internal/jobs"
	"github.com/sevigo/stashbot/internal/reporting"
	"github.com/sevigo/stashbot/internal/server"
)

// App holds the main application components. The CLI uses the components
// directly without starting the server.
type App struct {
	Config     *config.Config
	Store      core.ConfigStore
	Host       core.SourceHost
	PushJob    *jobs.BuildTriggerJob
	Dispatcher *jobs.Dispatcher
	Reporter   *reporting.Reporter
	Server     *server.Server
	Logger     *slog.Logger
}

// NewApp sets up the application with all its dependencies.
func NewApp(
	cfg *config.Config,
	store core.ConfigStore,
	host core.SourceHost,
	pushJob *jobs.BuildTriggerJob,
	dispatcher *jobs.Dispatcher,
	reporter *reporting.Reporter,
	srv *server.Server,
	logger *slog.Logger,
) *App {
	return &App{
		Config:     cfg,
		Store:      store,
		Host:       host,
		PushJob:    pushJob,
		Dispatcher: dispatcher,
		Reporter:   reporter,
		Server:     srv,
		Logger:     logger,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.Logger.Info("starting stashbot",
		"server_port", a.Config.Server.Port,
		"public_url", a.Config.Server.PublicURL,
		"storage", a.Config.StorageDriver,
		"max_workers", a.Config.MaxWorkers)

	if err := a.Server.Start(); err != nil {
		a.Logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly. Queued pushes are drained after
// the server stops accepting new ones.
func (a *App) Stop() error {
	a.Logger.Info("shutting down stashbot services")

	serverErr := a.Server.Stop()
	if serverErr != nil {
		a.Logger.Error("error during HTTP server shutdown", "error", serverErr)
	}

	a.Dispatcher.Stop()

	if serverErr != nil {
		return serverErr
	}
	a.Logger.Info("stashbot stopped successfully")
	return nil
}
