package spectral

import "math"

// window holds one detrended, tapered slice of closes together with the
// linear trend that was removed from it.
type window struct {
	prices    []float64 // raw closes, length n
	tapered   []float64 // detrended then Hann-weighted, length n
	slope     float64
	intercept float64
	trendLast float64 // trend value at the window's last index
}

// newWindow takes the length-n slice ending at index end (exclusive) of
// prices, removes the endpoint-to-endpoint linear trend and applies a Hann
// taper. The caller must guarantee end >= n and end <= len(prices).
func newWindow(prices []float64, end, n int) window {
	p := prices[end-n : end]

	// Line through the first and last point. This removes the dominant
	// drift so the extracted frequencies describe oscillation around the
	// trend, not the trend itself.
	slope := (p[n-1] - p[0]) / float64(n-1)
	intercept := p[0]

	tapered := make([]float64, n)
	for j := 0; j < n; j++ {
		detrended := p[j] - (intercept + slope*float64(j))
		// Hann taper suppresses the edge discontinuities that would
		// otherwise leak energy across all bins.
		hann := 0.5 * (1 - math.Cos(2*math.Pi*float64(j)/float64(n-1)))
		tapered[j] = detrended * hann
	}

	return window{
		prices:    p,
		tapered:   tapered,
		slope:     slope,
		intercept: intercept,
		trendLast: intercept + slope*float64(n-1),
	}
}
