// Package app wires the application's services together.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nfrund/instaclone/internal/audit"
	"github.com/nfrund/instaclone/internal/config"
	"github.com/nfrund/instaclone/internal/graphql"
	"github.com/nfrund/instaclone/internal/loginform"
	"github.com/nfrund/instaclone/internal/metrics"
	"github.com/nfrund/instaclone/internal/pubsub"
	"github.com/nfrund/instaclone/internal/rendering"
	"github.com/nfrund/instaclone/internal/server"
	"github.com/nfrund/instaclone/internal/signupform"
	"github.com/samber/do/v2"
)

// sweepInterval is how often expired login forms are dropped.
const sweepInterval = time.Minute

// App is the assembled web application.
type App struct {
	Server *server.Server
	Forms  *loginform.Store
	Bus    *pubsub.WatermillBridge
	logger *slog.Logger
}

// New builds every service from cfg.
func New(cfg config.Provider, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	i := do.New()
	do.ProvideValue[config.Provider](i, cfg)
	do.ProvideValue(i, logger)
	do.Provide(i, provideBus)
	do.Provide(i, provideGraphQLClient)
	do.Provide(i, provideLoginStore)
	do.Provide(i, provideLoginSubmitter)
	do.Provide(i, provideSignUpSubmitter)
	do.Provide(i, provideServer)

	srv, err := do.Invoke[*server.Server](i)
	if err != nil {
		return nil, fmt.Errorf("build server: %w", err)
	}
	srv.RegisterRoutes()

	return &App{
		Server: srv,
		Forms:  do.MustInvoke[*loginform.Store](i),
		Bus:    do.MustInvoke[*pubsub.WatermillBridge](i),
		logger: logger,
	}, nil
}

// Run starts the background workers and serves until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.Bus.Close(); err != nil {
			a.logger.Error("Failed to close event bus", "error", err)
		}
	}()

	if err := audit.Subscribe(ctx, a.Bus, a.logger); err != nil {
		return fmt.Errorf("subscribe audit log: %w", err)
	}
	go a.Forms.Run(ctx, sweepInterval)

	return a.Server.Start(ctx)
}

func provideBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return pubsub.NewWatermillBridge(cfg.GetLogLevel() == "debug"), nil
}

func provideGraphQLClient(i do.Injector) (*graphql.Client, error) {
	cfg := do.MustInvoke[config.Provider](i)
	logger := do.MustInvoke[*slog.Logger](i)
	// The per-call timeout comes from the submitters' contexts; this one only
	// guards against a hung connection outliving them.
	httpClient := &http.Client{Timeout: 2 * cfg.GetAuthTimeout()}
	return graphql.NewClient(cfg.GetGraphQLEndpoint(), httpClient, logger), nil
}

func provideLoginStore(i do.Injector) (*loginform.Store, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return loginform.NewStore(cfg.GetFormTTL(), loginform.WithSizeReporter(metrics.SetLoginFormsActive)), nil
}

func provideLoginSubmitter(i do.Injector) (*loginform.Submitter, error) {
	cfg := do.MustInvoke[config.Provider](i)
	logger := do.MustInvoke[*slog.Logger](i)
	client := do.MustInvoke[*graphql.Client](i)
	bus := do.MustInvoke[*pubsub.WatermillBridge](i)

	return loginform.NewSubmitter(client,
		loginform.WithTimeout(cfg.GetAuthTimeout()),
		loginform.WithLogger(logger),
		loginform.WithObserver(metrics.LoginRecorder{}, audit.NewPublisher(bus, logger)),
	), nil
}

func provideSignUpSubmitter(i do.Injector) (*signupform.Submitter, error) {
	cfg := do.MustInvoke[config.Provider](i)
	logger := do.MustInvoke[*slog.Logger](i)
	client := do.MustInvoke[*graphql.Client](i)
	return signupform.NewSubmitter(client, cfg.GetAuthTimeout(), logger), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	return server.New(server.Dependencies{
		Config:          do.MustInvoke[config.Provider](i),
		Renderer:        rendering.NewUniversalRenderer(),
		LoginForms:      do.MustInvoke[*loginform.Store](i),
		LoginSubmitter:  do.MustInvoke[*loginform.Submitter](i),
		SignUpSubmitter: do.MustInvoke[*signupform.Submitter](i),
	}), nil
}
