package spectral

import "math"

// reconstructLast evaluates the inverse DFT of the truncated spectrum at
// the window's last index only (n-1) and re-adds the removed trend. Only
// the latest value is needed per window, so a full inverse transform over
// all n points would be wasted work.
//
// The factor of 2 folds the conjugate-symmetric negative-frequency terms
// of the real-valued input into the kept positive bins.
func reconstructLast(s spectrum, trendLast float64) float64 {
	n := float64(s.n)
	recon := s.re[0] / n

	for k := 1; k < len(s.re); k++ {
		ang := 2 * math.Pi * float64(k) * (n - 1) / n
		recon += 2 * (s.re[k]*math.Cos(ang) - s.im[k]*math.Sin(ang)) / n
	}

	return recon + trendLast
}
