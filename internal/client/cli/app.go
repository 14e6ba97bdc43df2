// Package cli is the terminal view layer: it renders engine state and
// turns user input into engine calls. All consistency rules live in the
// services; the CLI only routes intents.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/IrtizaAhmed131198/dating-app/internal/bus"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/client"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/config"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/services"
	"github.com/IrtizaAhmed131198/dating-app/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	api     client.Client
	repos   *client.Repositories
	bus     bus.MessageBus
	session services.SessionService
	deck    *services.DeckService
	logger  logging.Logger
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	api := client.NewHTTPClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	b := bus.New(logger)

	session := services.NewSessionService(api, repos.DB, repos.Messages, b, logger)
	deck := services.NewDeckService(api, b, logger, cfg.DeckLimit)

	return &App{
		config:  cfg,
		api:     api,
		repos:   repos,
		bus:     b,
		session: session,
		deck:    deck,
		logger:  logger.With("component", "cli"),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.bus.Close()
	defer func() { _ = a.repos.DB.Close() }()

	// Fire-and-forget liveness probe; gates nothing.
	go func() {
		if err := a.api.Health(ctx); err != nil {
			a.logger.Warn(ctx, "health check failed", "error", err)
		} else {
			a.logger.Info(ctx, "backend reachable")
		}
	}()

	a.session.Restore(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
