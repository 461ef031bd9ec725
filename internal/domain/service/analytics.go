package service

import (
	"context"

	"CycleScan/internal/domain/models"
)

// CycleAnalyzer computes a rolling spectrum for a price series. The
// primary implementation calls the remote quant service; the fallback is
// the in-process spectral engine. Both return the identical JSON shape.
type CycleAnalyzer interface {
	RollingSpectrum(ctx context.Context, prices []models.PricePoint, windowSize, numFreq, outputBars int, thresholdPct float64) (*models.RollingResult, error)
}
