package analytics

import (
	"context"
	"fmt"

	"CycleScan/internal/domain/models"
	domsvc "CycleScan/internal/domain/service"
	"CycleScan/pkg/config"
)

// HTTPCycleAnalyzer asks the remote quant service for a rolling spectrum.
// The endpoint returns the same JSON shape the local engine produces, so
// callers cannot tell the two apart.
type HTTPCycleAnalyzer struct {
	base    *HTTPServiceBase
	retries int
}

func NewHTTPCycleAnalyzer(cfg *config.Config) *HTTPCycleAnalyzer {
	retries := cfg.Quant.Retries
	if retries <= 0 {
		retries = 1
	}
	return &HTTPCycleAnalyzer{base: NewHTTPServiceBase(cfg), retries: retries}
}

type spectrumReq struct {
	Prices       []models.PricePoint `json:"prices"`
	WindowSize   int                 `json:"window_size"`
	NumFreq      int                 `json:"num_freq"`
	OutputBars   int                 `json:"output_bars"`
	ThresholdPct float64             `json:"threshold_pct"`
}

func (a *HTTPCycleAnalyzer) RollingSpectrum(ctx context.Context, prices []models.PricePoint, windowSize, numFreq, outputBars int, thresholdPct float64) (*models.RollingResult, error) {
	req := spectrumReq{
		Prices:       prices,
		WindowSize:   windowSize,
		NumFreq:      numFreq,
		OutputBars:   outputBars,
		ThresholdPct: thresholdPct,
	}

	var result models.RollingResult
	if err := a.base.PostJSONWithRetry(ctx, "/spectrum/rolling", req, &result, a.retries); err != nil {
		return nil, fmt.Errorf("post spectrum: %w", err)
	}
	if len(result.RollingCurve) == 0 {
		return nil, fmt.Errorf("quant service returned an empty rolling curve")
	}
	return &result, nil
}

var _ domsvc.CycleAnalyzer = (*HTTPCycleAnalyzer)(nil)
