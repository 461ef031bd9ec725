package analytics

import (
	"context"

	"CycleScan/internal/domain/models"
	domsvc "CycleScan/internal/domain/service"
	"CycleScan/internal/spectral"
)

// LocalCycleAnalyzer runs the in-process spectral engine. It is the
// fallback when the quant service is unreachable and the reference the
// remote endpoint must agree with.
type LocalCycleAnalyzer struct{}

func NewLocalCycleAnalyzer() *LocalCycleAnalyzer { return &LocalCycleAnalyzer{} }

func (a *LocalCycleAnalyzer) RollingSpectrum(_ context.Context, prices []models.PricePoint, windowSize, numFreq, outputBars int, thresholdPct float64) (*models.RollingResult, error) {
	return spectral.ComputeRolling(prices, spectral.Params{
		WindowSize:   windowSize,
		NumFreq:      numFreq,
		OutputBars:   outputBars,
		ThresholdPct: thresholdPct,
	})
}

var _ domsvc.CycleAnalyzer = (*LocalCycleAnalyzer)(nil)
