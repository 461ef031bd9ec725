package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"CycleScan/internal/domain/models"
	drepo "CycleScan/internal/domain/repository"
	domsvc "CycleScan/internal/domain/service"
	"CycleScan/internal/services/features"
	"CycleScan/internal/spectral"
	"CycleScan/pkg/cache"
	xlogger "CycleScan/pkg/logger"
)

// Source labels for reports and metrics.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
	SourceCache  = "cache"
)

// SpectrumService orchestrates one scan: fetch candles, try the remote
// quant service, fall back to the local engine, cache the report.
type SpectrumService struct {
	source   drepo.CandleSource
	remote   domsvc.CycleAnalyzer // nil when no quant service is configured
	local    domsvc.CycleAnalyzer
	cache    cache.Service // nil disables caching
	metrics  drepo.Metrics
	logger   *xlogger.Logger
	cacheTTL time.Duration
}

func NewSpectrumService(
	source drepo.CandleSource,
	remote domsvc.CycleAnalyzer,
	local domsvc.CycleAnalyzer,
	c cache.Service,
	metrics drepo.Metrics,
	logger *xlogger.Logger,
	cacheTTL time.Duration,
) *SpectrumService {
	return &SpectrumService{
		source:   source,
		remote:   remote,
		local:    local,
		cache:    c,
		metrics:  metrics,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// Scan computes (or retrieves) the rolling spectrum report for a symbol.
func (s *SpectrumService) Scan(ctx context.Context, req *models.SpectrumRequest) (*models.SpectrumReport, error) {
	key := scanKey(req)

	if s.cache != nil {
		var cached models.SpectrumReport
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			cached.Source = SourceCache
			s.metrics.RecordScan(SourceCache, req.Symbol)
			return &cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("cache get failed", xlogger.Error(err))
		}
	}

	prices, err := s.source.DailyCloses(ctx, req.Symbol, req.Window+req.Bars)
	if err != nil {
		s.metrics.RecordError("candles")
		return nil, fmt.Errorf("fetch candles: %w", err)
	}

	result, source, err := s.analyze(ctx, prices, req)
	if err != nil {
		return nil, err
	}

	report := &models.SpectrumReport{
		Symbol:   req.Symbol,
		Source:   source,
		Result:   result,
		Snapshot: features.ComputeTrendSnapshot(prices),
	}

	s.metrics.RecordScan(source, req.Symbol)
	s.metrics.RecordSignal(req.Symbol, signalValue(result.CurrentSignal))

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, report, s.cacheTTL); err != nil {
			s.logger.Warn("cache set failed", xlogger.Error(err))
		}
	}
	return report, nil
}

// analyze runs the remote analyzer when configured and falls back to the
// local engine on any remote failure. Parameter errors are not retried
// against the other backend: both would reject them identically.
func (s *SpectrumService) analyze(ctx context.Context, prices []models.PricePoint, req *models.SpectrumRequest) (*models.RollingResult, string, error) {
	start := time.Now()

	if s.remote != nil {
		result, err := s.remote.RollingSpectrum(ctx, prices, req.Window, req.NumFreq, req.Bars, req.Threshold)
		if err == nil {
			s.metrics.RecordDuration(SourceRemote, time.Since(start).Seconds())
			return result, SourceRemote, nil
		}
		s.metrics.RecordError("remote")
		s.logger.Warn("quant service failed, using local engine",
			xlogger.String("symbol", req.Symbol), xlogger.Error(err))
	}

	start = time.Now()
	result, err := s.local.RollingSpectrum(ctx, prices, req.Window, req.NumFreq, req.Bars, req.Threshold)
	if err != nil {
		s.metrics.RecordError("local")
		return nil, "", err
	}
	s.metrics.RecordDuration(SourceLocal, time.Since(start).Seconds())
	return result, SourceLocal, nil
}

// IsClientError reports whether the error is the caller's fault (bad
// parameters or not enough history) rather than an upstream failure.
func IsClientError(err error) bool {
	return errors.Is(err, spectral.ErrInvalidParameters) ||
		errors.Is(err, spectral.ErrInsufficientHistory)
}

func scanKey(req *models.SpectrumRequest) string {
	return fmt.Sprintf("spectrum:%s:%d:%d:%d:%g",
		req.Symbol, req.Window, req.NumFreq, req.Bars, req.Threshold)
}

func signalValue(sig models.Signal) float64 {
	switch sig {
	case models.SignalBullish:
		return 1
	case models.SignalBearish:
		return -1
	default:
		return 0
	}
}
