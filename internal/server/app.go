// Package server assembles the jobapp HTTP API process: it loads the seed,
// builds the state core, and runs the HTTP server until SIGINT, SIGTERM or
// SIGQUIT arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/jobapp/internal/logging"
	"github.com/dmitrijs2005/jobapp/internal/seed"
	"github.com/dmitrijs2005/jobapp/internal/server/auth"
	"github.com/dmitrijs2005/jobapp/internal/server/config"
	"github.com/dmitrijs2005/jobapp/internal/server/httpapi"
	"github.com/dmitrijs2005/jobapp/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type App struct {
	config *config.Config
	logger logging.Logger
	core   *services.Core
	http   *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(logging.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		File:   c.LogFile,
	})

	data, err := seed.Load(c.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("seed init error: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	core, err := services.NewCore(data, services.WithLogger(logger), services.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("core init error: %w", err)
	}

	issuer := auth.NewIssuer([]byte(c.SecretKey), c.AccessTokenValidityDuration, nil)
	hs := httpapi.NewServer(c.EndpointAddrHTTP, core, issuer, logger, reg)

	return &App{config: c, logger: logger, core: core, http: hs}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.http.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a signal arrives or the server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.logger.Info(ctx, "App stopped")
}
