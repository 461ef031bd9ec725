package spectral

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"CycleScan/internal/domain/models"
)

func syntheticSeries(m int, f func(n int) float64) []models.PricePoint {
	out := make([]models.PricePoint, m)
	for n := 0; n < m; n++ {
		out[n] = models.PricePoint{
			Date:  fmt.Sprintf("2024-%02d-%02d", n/28+1, n%28+1),
			Close: f(n),
		}
	}
	return out
}

func TestComputeRollingDeterminism(t *testing.T) {
	prices := syntheticSeries(96, func(n int) float64 {
		return 80 + 0.2*float64(n) + 3*math.Sin(2*math.Pi*float64(n)/20)
	})
	p := Params{WindowSize: 64, NumFreq: 6, OutputBars: 30, ThresholdPct: 0.002}

	a, err := ComputeRolling(prices, p)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := ComputeRolling(prices, p)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different results")
	}
}

// A perfectly linear series has nothing left after detrending, so every
// reconstructed value equals the trend value, which is the price itself.
func TestComputeRollingLinearSeries(t *testing.T) {
	prices := syntheticSeries(80, func(n int) float64 { return 100 + 0.5*float64(n) })
	p := Params{WindowSize: 64, NumFreq: 4, OutputBars: 16, ThresholdPct: 0.002}

	res, err := ComputeRolling(prices, p)
	if err != nil {
		t.Fatalf("ComputeRolling: %v", err)
	}
	if len(res.RollingCurve) != 16 {
		t.Fatalf("curve length = %d, want 16", len(res.RollingCurve))
	}
	for _, bar := range res.RollingCurve {
		if math.Abs(bar.Reconstructed-bar.Price) > 1e-9 {
			t.Fatalf("linear series: reconstructed %v != price %v at %s", bar.Reconstructed, bar.Price, bar.Date)
		}
		if bar.AboveRecon || bar.Position != 0 {
			t.Fatalf("price equal to reconstruction must not count as above")
		}
	}
	if res.CurrentSignal != models.SignalBearish {
		t.Fatalf("signal = %s, want bearish (price never clears threshold)", res.CurrentSignal)
	}
}

func TestComputeRollingCarriesDates(t *testing.T) {
	prices := syntheticSeries(70, func(n int) float64 {
		return 40 + 2*math.Cos(2*math.Pi*float64(n)/10)
	})
	p := Params{WindowSize: 60, NumFreq: 5, OutputBars: 10, ThresholdPct: 0.002}

	res, err := ComputeRolling(prices, p)
	if err != nil {
		t.Fatalf("ComputeRolling: %v", err)
	}
	for i, bar := range res.RollingCurve {
		src := prices[len(prices)-10+i]
		if bar.Date != src.Date {
			t.Fatalf("bar %d date = %s, want %s", i, bar.Date, src.Date)
		}
		if bar.Price != src.Close {
			t.Fatalf("bar %d price = %v, want the window's last close %v", i, bar.Price, src.Close)
		}
	}
	if len(res.ComplexComponents) != 5 {
		t.Fatalf("components = %d, want 5", len(res.ComplexComponents))
	}
	for i, c := range res.ComplexComponents {
		if c.FreqIndex != i+1 {
			t.Fatalf("components not sorted by frequency: index %d holds k=%d", i, c.FreqIndex)
		}
	}
}

func TestComputeRollingInsufficientHistory(t *testing.T) {
	p := Params{WindowSize: 16, NumFreq: 2, OutputBars: 4, ThresholdPct: 0.002}

	// One bar short of window+output must be rejected, not truncated.
	short := syntheticSeries(19, func(n int) float64 { return float64(n) })
	if _, err := ComputeRolling(short, p); !errors.Is(err, ErrInsufficientHistory) {
		t.Fatalf("err = %v, want ErrInsufficientHistory", err)
	}

	enough := syntheticSeries(20, func(n int) float64 { return float64(n) })
	res, err := ComputeRolling(enough, p)
	if err != nil {
		t.Fatalf("exact minimum history should succeed: %v", err)
	}
	if len(res.RollingCurve) != 4 {
		t.Fatalf("curve length = %d, want 4", len(res.RollingCurve))
	}
}

func TestComputeRollingInvalidParameters(t *testing.T) {
	prices := syntheticSeries(100, func(n int) float64 { return float64(n) })

	cases := []Params{
		{WindowSize: 16, NumFreq: 8, OutputBars: 4, ThresholdPct: 0.002}, // 16 < 2*8+2
		{WindowSize: 0, NumFreq: 2, OutputBars: 4, ThresholdPct: 0.002},
		{WindowSize: 16, NumFreq: 2, OutputBars: 0, ThresholdPct: 0.002},
		{WindowSize: 16, NumFreq: 0, OutputBars: 4, ThresholdPct: 0.002},
	}
	for i, p := range cases {
		if _, err := ComputeRolling(prices, p); !errors.Is(err, ErrInvalidParameters) {
			t.Fatalf("case %d: err = %v, want ErrInvalidParameters", i, err)
		}
	}
}

func TestThresholdBoundaryExclusive(t *testing.T) {
	if exceeds(100, 100, 0) {
		t.Fatal("price equal to reconstruction must not be above")
	}
	// 1+0.25 and 100*1.25 are exact in binary, so this pins the boundary.
	if exceeds(125, 100, 0.25) {
		t.Fatal("price exactly on the threshold boundary must not be above")
	}
	if !exceeds(125.00001, 100, 0.25) {
		t.Fatal("price past the boundary must be above")
	}
}

func TestClassify(t *testing.T) {
	if got := classify(nil); got != models.SignalNeutral {
		t.Fatalf("empty curve: %s, want neutral", got)
	}
	up := []models.RollingBar{{AboveRecon: false}, {AboveRecon: true}}
	if got := classify(up); got != models.SignalBullish {
		t.Fatalf("last bar above: %s, want bullish", got)
	}
	down := []models.RollingBar{{AboveRecon: true}, {AboveRecon: false}}
	if got := classify(down); got != models.SignalBearish {
		t.Fatalf("last bar below: %s, want bearish", got)
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if err := p.validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if p.WindowSize != 256 || p.NumFreq != 8 || p.OutputBars != 60 || p.ThresholdPct != 0.002 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}
