//go:build wireinject
// +build wireinject

package di

import (
	"CycleScan/pkg/config"
	"CycleScan/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideCandleSource,
		ProvideCache,

		// Use cases
		ProvideSpectrumService,
		ProvideRefresher,

		// HTTP
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
