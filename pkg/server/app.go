package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"CycleScan/internal/usecase"
	"CycleScan/pkg/cache"
	"CycleScan/pkg/config"
	xhttp "CycleScan/pkg/http"
	xlogger "CycleScan/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	handler    xhttp.Handler
	refresher  *usecase.Refresher // nil when refresh is disabled
	cache      cache.Service
	logger     *xlogger.Logger
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	handler xhttp.Handler,
	refresher *usecase.Refresher,
	c cache.Service,
	logger *xlogger.Logger,
) *App {
	return &App{
		cfg:       cfg,
		handler:   handler,
		refresher: refresher,
		cache:     c,
		logger:    logger,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", xlogger.Error(err))
		return err
	}
	a.logger.Info("serving",
		xlogger.Int("port", a.cfg.Server.Port),
		xlogger.Strings("symbols", a.cfg.Finnhub.Symbols))

	if a.refresher != nil {
		if err := a.refresher.Start(); err != nil {
			a.logger.Error("refresher start error", xlogger.Error(err))
			return err
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	if a.refresher != nil {
		a.refresher.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", xlogger.Error(err))
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("cache close error", xlogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
