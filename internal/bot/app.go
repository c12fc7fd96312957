// Package bot initializes and runs the teammate-search bot: storage and
// migrations, the conversation engine, Telegram long polling and the ops
// HTTP server, with graceful shutdown on SIGINT/SIGTERM.
package bot

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/teamfinder/internal/bot/config"
	"github.com/dmitrijs2005/teamfinder/internal/bot/engine"
	"github.com/dmitrijs2005/teamfinder/internal/bot/metrics"
	"github.com/dmitrijs2005/teamfinder/internal/bot/ops"
	"github.com/dmitrijs2005/teamfinder/internal/bot/ratelimit"
	"github.com/dmitrijs2005/teamfinder/internal/bot/repositories/repomanager"
	"github.com/dmitrijs2005/teamfinder/internal/bot/services"
	"github.com/dmitrijs2005/teamfinder/internal/bot/session"
	"github.com/dmitrijs2005/teamfinder/internal/bot/telegram"
	"github.com/dmitrijs2005/teamfinder/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	engine *engine.Engine
	client *telegram.Client
	ops    *ops.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, m, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	us := services.NewUserService(db, m, c)
	as := services.NewApplicationService(db, m)

	store := session.NewMemoryStore(c.SessionCapacity, c.SessionTTL)
	metrics.TrackSessions(store.Len)
	limiter := ratelimit.New(c.RateLimit, c.RateBurst, c.SessionCapacity)

	client, err := telegram.New(telegram.Options{Token: c.BotToken, PollTimeout: c.PollTimeout}, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &App{
		config: c,
		logger: logger,
		db:     db,
		engine: engine.New(engine.OptionsFromConfig(c), us, as, store, client, limiter, logger),
		client: client,
	}
	if c.OpsAddr != "" {
		app.ops = ops.NewServer(c.OpsAddr, db, logger)
	}
	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// startPolling stops the whole app once polling ends.
func (app *App) startPolling(ctx context.Context, cancelFunc context.CancelFunc) {
	defer cancelFunc()
	if err := app.client.Run(ctx, app.engine); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}

func (app *App) startOpsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.ops.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a shutdown signal or a fatal component error, then waits
// for in-flight updates and closes the database.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"moderator_chat_id", app.config.ModeratorChatID, "public_channel", app.config.PublicChannel)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startPolling(ctx, cancelFunc)
	}()

	if app.ops != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startOpsServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
