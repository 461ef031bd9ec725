// Package spectral implements the rolling-window cycle detector: each
// close in the output range gets a fair value rebuilt from the few lowest
// DFT frequencies of its detrended, Hann-tapered trailing window, and the
// close is classified bullish or bearish against that fair value.
//
// Everything in this package is a pure function of its inputs. No
// randomness, no I/O, no shared state between windows.
package spectral

import (
	"fmt"

	"CycleScan/internal/domain/models"
)

// Params configures one rolling computation.
type Params struct {
	WindowSize   int     // bars per window (N)
	NumFreq      int     // non-zero frequency bins kept (K)
	OutputBars   int     // rolling bars to produce (B)
	ThresholdPct float64 // classification dead-band, e.g. 0.002 = 0.2%
}

// DefaultParams returns the production defaults.
func DefaultParams() Params {
	return Params{WindowSize: 256, NumFreq: 8, OutputBars: 60, ThresholdPct: 0.002}
}

func (p Params) validate() error {
	if p.WindowSize <= 0 || p.OutputBars <= 0 || p.NumFreq <= 0 {
		return fmt.Errorf("%w: window=%d freq=%d bars=%d must be positive",
			ErrInvalidParameters, p.WindowSize, p.NumFreq, p.OutputBars)
	}
	// A window of N bars cannot resolve more than N/2 cycles; keep a
	// margin of one bin on top of Nyquist.
	if p.WindowSize < 2*p.NumFreq+2 {
		return fmt.Errorf("%w: window %d too small for %d frequencies (need >= %d)",
			ErrInvalidParameters, p.WindowSize, p.NumFreq, 2*p.NumFreq+2)
	}
	return nil
}

// ComputeRolling runs the detector over the last OutputBars closes of the
// series. Prices must be chronologically ascending. For each output bar
// the trailing WindowSize closes, ending at and including that bar, are
// detrended, tapered and transformed; the truncated spectrum is inverted
// at the window's last point to give the reconstructed fair value.
//
// Output is bit-for-bit reproducible for identical inputs. Either the
// full curve is returned or an error; there are no partial results.
func ComputeRolling(prices []models.PricePoint, p Params) (*models.RollingResult, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if len(prices) < p.WindowSize+p.OutputBars {
		return nil, fmt.Errorf("%w: have %d bars, need %d (window %d + output %d)",
			ErrInsufficientHistory, len(prices), p.WindowSize+p.OutputBars, p.WindowSize, p.OutputBars)
	}

	closes := make([]float64, len(prices))
	for i, pt := range prices {
		closes[i] = pt.Close
	}

	curve := make([]models.RollingBar, 0, p.OutputBars)
	var last spectrum

	// Indices must advance in order: "current signal" is defined by the
	// final bar of the curve.
	for i := len(prices) - p.OutputBars; i < len(prices); i++ {
		// The window ends at and includes bar i, so the window's last
		// price is the price being classified.
		w := newWindow(closes, i+1, p.WindowSize)
		s := transform(w.tapered, p.NumFreq)
		fair := reconstructLast(s, w.trendLast)

		above := exceeds(closes[i], fair, p.ThresholdPct)
		position := 0
		if above {
			position = 1
		}
		curve = append(curve, models.RollingBar{
			Date:          prices[i].Date,
			Price:         closes[i],
			Reconstructed: fair,
			AboveRecon:    above,
			Position:      position,
		})
		last = s
	}

	return &models.RollingResult{
		RollingCurve:      curve,
		ComplexComponents: last.components(),
		CurrentSignal:     classify(curve),
		WindowSize:        p.WindowSize,
		NumFreqKept:       p.NumFreq,
		ThresholdPct:      p.ThresholdPct,
	}, nil
}

// exceeds reports whether price clears the reconstructed value by more
// than the threshold. Strictly greater: a price sitting exactly on the
// threshold boundary does not count as above.
func exceeds(price, fair, threshold float64) bool {
	return price > fair*(1+threshold)
}

// classify maps the final rolling bar to a signal. Neutral only appears
// when the curve is empty; there is no per-bar dead-zone beyond the
// threshold already applied to each bar.
func classify(curve []models.RollingBar) models.Signal {
	if len(curve) == 0 {
		return models.SignalNeutral
	}
	if curve[len(curve)-1].AboveRecon {
		return models.SignalBullish
	}
	return models.SignalBearish
}
