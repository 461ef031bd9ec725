package di

import (
	"fmt"

	"CycleScan/internal/domain/models"
	"CycleScan/internal/domain/repository"
	"CycleScan/internal/handler/api"
	"CycleScan/internal/service/finnhub"
	"CycleScan/internal/services/analytics"
	"CycleScan/internal/usecase"
	"CycleScan/pkg/cache"
	"CycleScan/pkg/config"
	xhttp "CycleScan/pkg/http"
	xlogger "CycleScan/pkg/logger"
	"CycleScan/pkg/metrics"
	"CycleScan/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	l, err := xlogger.New(&xlogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCandleSource creates the Finnhub daily-candle client.
func ProvideCandleSource(cfg *config.Config) repository.CandleSource {
	return finnhub.New(
		cfg.Finnhub.APIKey,
		cfg.Finnhub.BaseURL,
		cfg.Finnhub.Timeout,
		cfg.Finnhub.RateLimit,
		cfg.Finnhub.RateBurst,
	)
}

// ProvideCache creates the report cache. With Redis enabled it is a
// layered memory+Redis cache; a Redis connection failure degrades to
// memory-only rather than failing startup.
func ProvideCache(cfg *config.Config, logger *xlogger.Logger) cache.Service {
	if !cfg.Quant.Redis.Enabled {
		return cache.NewMemoryCache()
	}

	rc, err := cache.NewRedisCache(
		cache.WithRedisAddr(cfg.Quant.Redis.Host, cfg.Quant.Redis.Port),
		cache.WithRedisAuth(cfg.Quant.Redis.Password, cfg.Quant.Redis.DB),
	)
	if err != nil {
		logger.Warn("redis unavailable, using memory cache only", xlogger.Error(err))
		return cache.NewMemoryCache()
	}
	return cache.NewLayeredCache(rc)
}

// ProvideSpectrumService creates the scan orchestrator. The remote quant
// analyzer is only wired when a service URL is configured; the local
// engine is always present as the fallback.
func ProvideSpectrumService(
	cfg *config.Config,
	source repository.CandleSource,
	c cache.Service,
	m repository.Metrics,
	logger *xlogger.Logger,
) *usecase.SpectrumService {
	var remote *analytics.HTTPCycleAnalyzer
	if cfg.Quant.ServiceURL != "" {
		remote = analytics.NewHTTPCycleAnalyzer(cfg)
	}

	if remote != nil {
		return usecase.NewSpectrumService(source, remote, analytics.NewLocalCycleAnalyzer(), c, m, logger, cfg.Quant.CacheTTL)
	}
	return usecase.NewSpectrumService(source, nil, analytics.NewLocalCycleAnalyzer(), c, m, logger, cfg.Quant.CacheTTL)
}

// ProvideRefresher creates the cache-warming cron job, or nil when
// refresh is disabled.
func ProvideRefresher(cfg *config.Config, service *usecase.SpectrumService, logger *xlogger.Logger) *usecase.Refresher {
	if !cfg.Refresh.Enabled {
		return nil
	}
	base := models.SpectrumRequest{
		Window:    cfg.Spectral.WindowSize,
		NumFreq:   cfg.Spectral.NumFreq,
		Bars:      cfg.Spectral.OutputBars,
		Threshold: cfg.Spectral.ThresholdPct,
	}
	return usecase.NewRefresher(service, cfg.Finnhub.Symbols, cfg.Refresh.Schedule, base, logger)
}

// ProvideHandler creates the Echo route handler.
func ProvideHandler(logger *xlogger.Logger, service *usecase.SpectrumService) xhttp.Handler {
	return api.NewSpectrumHandler(logger, service)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	handler xhttp.Handler,
	refresher *usecase.Refresher,
	c cache.Service,
	logger *xlogger.Logger,
) *server.App {
	return server.New(cfg, handler, refresher, c, logger)
}
