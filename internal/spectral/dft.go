package spectral

import (
	"math"

	"CycleScan/internal/domain/models"
)

// spectrum holds the truncated DFT of one tapered window: bins 0..k
// inclusive, where bin 0 is the mean/DC term.
type spectrum struct {
	re []float64
	im []float64
	n  int
}

// transform evaluates the DFT of the tapered series restricted to the
// first numFreq+1 bins. A direct O(n*numFreq) double loop is deliberate:
// only a handful of low frequencies are wanted and n is a few hundred, so
// no radix-2 FFT machinery is needed.
func transform(tapered []float64, numFreq int) spectrum {
	n := len(tapered)
	re := make([]float64, numFreq+1)
	im := make([]float64, numFreq+1)

	for k := 0; k <= numFreq; k++ {
		var sumRe, sumIm float64
		for j := 0; j < n; j++ {
			ang := 2 * math.Pi * float64(k) * float64(j) / float64(n)
			sumRe += tapered[j] * math.Cos(ang)
			sumIm -= tapered[j] * math.Sin(ang)
		}
		re[k] = sumRe
		im[k] = sumIm
	}

	return spectrum{re: re, im: im, n: n}
}

// components builds the reporting table for bins 1..numFreq. The DC term
// is excluded: it is the window mean, not a cycle, and the contribution
// normalization is cycle-relative by design.
func (s spectrum) components() []models.SpectralComponent {
	numFreq := len(s.re) - 1
	out := make([]models.SpectralComponent, 0, numFreq)

	// Contribution percentages are normalized against the total raw
	// magnitude of the kept non-zero bins. A degenerate all-zero window
	// would make that total zero; fall back to 1 so nothing divides by
	// zero or turns into NaN.
	var total float64
	for k := 1; k <= numFreq; k++ {
		total += math.Hypot(s.re[k], s.im[k])
	}
	if total == 0 {
		total = 1
	}

	for k := 1; k <= numFreq; k++ {
		raw := math.Hypot(s.re[k], s.im[k])
		phaseRad := math.Atan2(-s.im[k], s.re[k])
		phaseDeg := math.Mod(phaseRad*180/math.Pi+360, 360)

		out = append(out, models.SpectralComponent{
			FreqIndex:       k,
			PeriodDays:      int(math.Round(float64(s.n) / float64(k))),
			Magnitude:       raw / float64(s.n),
			PhaseRad:        phaseRad,
			PhaseDeg:        phaseDeg,
			Real:            s.re[k],
			Imag:            s.im[k],
			ContributionPct: raw / total * 100,
		})
	}
	return out
}
