package features

import (
	"fmt"
	"math"
	"testing"

	"CycleScan/internal/domain/models"
)

func series(m int, f func(n int) float64) []models.PricePoint {
	out := make([]models.PricePoint, m)
	for n := range out {
		out[n] = models.PricePoint{Date: fmt.Sprintf("day-%03d", n), Close: f(n)}
	}
	return out
}

func TestComputeTrendSnapshotUptrend(t *testing.T) {
	prices := series(120, func(n int) float64 { return 50 + float64(n) })

	s := ComputeTrendSnapshot(prices)
	if s == nil {
		t.Fatal("expected snapshot")
	}
	if !s.AboveSMA20 || !s.AboveSMA50 {
		t.Fatalf("steady uptrend must sit above both averages: %+v", s)
	}
	// Monotonic gains push RSI to its ceiling.
	if s.RSICategory != "overbought" {
		t.Fatalf("rsi category = %s, want overbought (rsi %v)", s.RSICategory, s.RSI14)
	}
	// SMA20 of an arithmetic series is the mean of the last 20 terms.
	wantSMA20 := 50 + (float64(119)+float64(100))/2
	if math.Abs(s.SMA20-wantSMA20) > 1e-9 {
		t.Fatalf("sma20 = %v, want %v", s.SMA20, wantSMA20)
	}
}

func TestComputeTrendSnapshotInsufficientHistory(t *testing.T) {
	prices := series(30, func(n int) float64 { return 10 })
	if s := ComputeTrendSnapshot(prices); s != nil {
		t.Fatalf("expected nil snapshot for short history, got %+v", s)
	}
}
