package wire

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/stashbot/internal/app"
	"github.com/sevigo/stashbot/internal/config"
	"github.com/sevigo/stashbot/internal/core"
	"github.com/sevigo/stashbot/internal/db"
	ghclient "github.com/sevigo/stashbot/internal/github"
	"github.com/sevigo/stashbot/internal/jenkins"
	"github.com/sevigo/stashbot/internal/jobs"
	"github.com/sevigo/stashbot/internal/logger"
	"github.com/sevigo/stashbot/internal/reporting"
	"github.com/sevigo/stashbot/internal/server"
	"github.com/sevigo/stashbot/internal/server/handler"
	"github.com/sevigo/stashbot/internal/storage"
)

// AppSet provides every component of the application.
var AppSet = wire.NewSet(
	app.NewApp,
	server.NewServer,
	config.LoadConfig,
	jenkins.NewClient,
	jobs.NewBuildTriggerJob,
	reporting.NewReporter,
	provideLogger,
	provideConfigStore,
	provideSourceHost,
	provideDispatcher,
	wire.Bind(new(core.BuildTrigger), new(*jenkins.Client)),
	wire.Bind(new(core.JobDispatcher), new(*jobs.Dispatcher)),
	wire.Bind(new(handler.BuildReporter), new(*reporting.Reporter)),
)

func provideLogger(cfg *config.Config) *slog.Logger {
	return logger.NewLogger(cfg.Logging, nil)
}

// provideConfigStore selects the storage backend. The cleanup closes the
// database pool when postgres is used.
func provideConfigStore(cfg *config.Config, logger *slog.Logger) (core.ConfigStore, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Warn("using in-memory configuration storage; settings are lost on restart")
		return storage.NewConfigManager(storage.NewMemoryBackend(), logger), func() {}, nil
	case config.StoragePostgres:
		conn, cleanup, err := db.NewDatabase(&cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return storage.NewConfigManager(storage.NewPostgresBackend(conn.DB), logger), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func provideSourceHost(ctx context.Context, cfg *config.Config, logger *slog.Logger) (core.SourceHost, error) {
	return ghclient.NewClientFromConfig(ctx, cfg, logger)
}

func provideDispatcher(cfg *config.Config, job *jobs.BuildTriggerJob, logger *slog.Logger) (*jobs.Dispatcher, func()) {
	d := jobs.NewDispatcher(job, cfg.MaxWorkers, cfg.QueueSize, logger)
	return d, d.Stop
}
