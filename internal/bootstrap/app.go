package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SmsAuto_Go/internal/config"
	"github.com/osse101/SmsAuto_Go/internal/database"
	"github.com/osse101/SmsAuto_Go/internal/database/postgres"
	"github.com/osse101/SmsAuto_Go/internal/event"
	"github.com/osse101/SmsAuto_Go/internal/extract"
	"github.com/osse101/SmsAuto_Go/internal/history"
	"github.com/osse101/SmsAuto_Go/internal/logger"
	"github.com/osse101/SmsAuto_Go/internal/record"
	"github.com/osse101/SmsAuto_Go/internal/server"
	"github.com/osse101/SmsAuto_Go/internal/sink"
	"github.com/osse101/SmsAuto_Go/internal/source"
	"github.com/osse101/SmsAuto_Go/internal/source/discord"
	"github.com/osse101/SmsAuto_Go/internal/source/ingest"
	"github.com/osse101/SmsAuto_Go/internal/source/termux"
	"github.com/osse101/SmsAuto_Go/internal/sse"
	"github.com/osse101/SmsAuto_Go/internal/watcher"
	"github.com/osse101/SmsAuto_Go/internal/worker"
)

// App is the wired daemon.
type App struct {
	Server  *server.Server
	Watcher *watcher.Watcher
	Sink    *sink.CodeSink
	Store   *record.Store
	Hub     *sse.Hub

	pool       *worker.Pool
	sources    []source.Source
	cleanup    *worker.Periodic
	db         *pgxpool.Pool
	unregister func()
}

// New builds every component from cfg. Nothing runs until Start.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{}

	// Transport: single subscriber, fallback bus streamed to the live view.
	fallback := event.NewMemoryBus()
	dispatcher := event.NewDispatcher(fallback)

	app.Hub = sse.NewHub()
	sse.NewSubscriber(app.Hub, fallback).Subscribe()

	app.Store = record.NewStore(cfg.RecordPath)
	app.pool = worker.NewPool(cfg.WriteWorkers, cfg.WriteQueueSize)

	sinkOpts := []sink.Option{sink.WithBroadcaster(app.Hub)}

	var historySvc *history.Service
	if cfg.HistoryEnabled {
		db, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabase, err)
		}
		if err := database.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgMigrateDatabase, err)
		}
		app.db = db

		historySvc = history.NewService(postgres.NewHistoryRepository(db), history.RetentionFromDays(cfg.HistoryRetentionDays))
		sinkOpts = append(sinkOpts, sink.WithHistory(historySvc))

		pool := app.pool
		app.cleanup = worker.NewPeriodic(historyCleanupWorker, HistoryCleanupInterval, func(ctx context.Context) error {
			return pool.Enqueue(ctx, history.NewCleanupJob(historySvc))
		})
		logger.Info(LogMsgHistoryEnabled, "retention_days", cfg.HistoryRetentionDays)
	}

	app.Sink = sink.New(app.Store, app.pool, sinkOpts...)
	app.unregister = dispatcher.Register(app.Sink.Handle)

	extractor := extract.New(extract.Options{FoldWidth: cfg.ExtractFoldWidth})
	app.Watcher = watcher.New(extractor, dispatcher,
		watcher.WithDeduper(watcher.NewDeduper(cfg.DedupeSize, cfg.DedupeTTL)))

	deps := server.Deps{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		ListenerEnabled: cfg.ListenerEnabled(),
		State:           app.Watcher,
		Records:         app.Store,
		Deleter:         app.Sink,
		Logs:            app.Sink,
		Hub:             app.Hub,
	}
	if historySvc != nil {
		deps.History = historySvc
		deps.DB = app.db
	}

	if cfg.IngestEnabled {
		in := ingest.New(app.Watcher)
		app.sources = append(app.sources, in)
		deps.Receiver = in
	}
	if cfg.TermuxEnabled {
		app.sources = append(app.sources, termux.New(app.Watcher, cfg.TermuxCommand, cfg.TermuxPollInterval, nil))
	}
	if cfg.DiscordEnabled() {
		d, err := discord.New(app.Watcher, cfg.DiscordToken, cfg.DiscordChannelList())
		if err != nil {
			app.closeDB()
			return nil, fmt.Errorf("%s: %w", ErrMsgCreateDiscord, err)
		}
		app.sources = append(app.sources, d)
	}
	if len(app.sources) == 0 {
		logger.Warn(LogMsgNoSourcesEnabled)
	}

	app.Server = server.NewServer(deps)
	return app, nil
}

// Start launches the background components and the sources. A source that
// fails to start is logged and left disconnected. The HTTP server is not
// started here; call Server.Start.
func (a *App) Start(ctx context.Context) {
	a.Hub.Start()
	a.pool.Start()
	if a.cleanup != nil {
		a.cleanup.Start()
	}

	for _, s := range a.sources {
		if err := s.Start(ctx); err != nil {
			logger.Error(LogMsgSourceStartFailed, "source", s.Name(), "error", err)
			continue
		}
		logger.Info(LogMsgSourceStarted, "source", s.Name())
	}
}

// Shutdown stops everything in dependency order: the server stops taking
// requests (closing the event streams first), sources stop producing,
// queued record writes drain, then the database closes. Errors are logged
// and shutdown continues.
func (a *App) Shutdown(ctx context.Context) {
	logger.Info(LogMsgShuttingDownServer)
	if err := a.Server.Stop(ctx); err != nil {
		logger.Error(LogMsgServerForcedShutdown, "error", err)
	}

	for _, s := range a.sources {
		if err := s.Stop(ctx); err != nil {
			logger.Error(LogMsgSourceStopFailed, "source", s.Name(), "error", err)
		}
	}
	a.unregister()

	if a.cleanup != nil {
		if err := a.cleanup.Shutdown(ctx); err != nil {
			logger.Error(LogMsgWorkerShutdownFailed, "worker", historyCleanupWorker, "error", err)
		}
	}

	if err := a.pool.Stop(ctx); err != nil {
		logger.Error(LogMsgWritePoolStopFailed, "error", err)
	}

	a.Hub.Stop()
	a.closeDB()

	logger.Info(LogMsgServerStopped)
}

func (a *App) closeDB() {
	if a.db != nil {
		a.db.Close()
	}
}
