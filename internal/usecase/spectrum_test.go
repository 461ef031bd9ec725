package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"CycleScan/internal/domain/models"
	"CycleScan/internal/services/analytics"
	"CycleScan/internal/spectral"
	"CycleScan/pkg/cache"
	xlogger "CycleScan/pkg/logger"
)

type fakeSource struct {
	prices []models.PricePoint
	err    error
	calls  int
}

func (f *fakeSource) DailyCloses(_ context.Context, _ string, bars int) ([]models.PricePoint, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if bars > len(f.prices) {
		bars = len(f.prices)
	}
	return f.prices[len(f.prices)-bars:], nil
}

type failingAnalyzer struct{ calls int }

func (f *failingAnalyzer) RollingSpectrum(context.Context, []models.PricePoint, int, int, int, float64) (*models.RollingResult, error) {
	f.calls++
	return nil, errors.New("quant service unreachable")
}

type fakeMetrics struct {
	scans  map[string]int
	errors map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{scans: map[string]int{}, errors: map[string]int{}}
}

func (m *fakeMetrics) RecordScan(source, _ string)    { m.scans[source]++ }
func (m *fakeMetrics) RecordError(kind string)        { m.errors[kind]++ }
func (m *fakeMetrics) RecordSignal(string, float64)   {}
func (m *fakeMetrics) RecordDuration(string, float64) {}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func testPrices(m int) []models.PricePoint {
	out := make([]models.PricePoint, m)
	for n := range out {
		out[n] = models.PricePoint{
			Date:  fmt.Sprintf("2023-%02d-%02d", n/28%12+1, n%28+1),
			Close: 100 + 0.1*float64(n) + 4*math.Sin(2*math.Pi*float64(n)/32),
		}
	}
	return out
}

func defaultRequest() *models.SpectrumRequest {
	return &models.SpectrumRequest{Symbol: "AAPL", Window: 64, NumFreq: 6, Bars: 20, Threshold: 0.002}
}

func TestScanFallsBackToLocal(t *testing.T) {
	source := &fakeSource{prices: testPrices(120)}
	remote := &failingAnalyzer{}
	metrics := newFakeMetrics()

	svc := NewSpectrumService(source, remote, analytics.NewLocalCycleAnalyzer(), nil, metrics, testLogger(t), time.Minute)

	report, err := svc.Scan(context.Background(), defaultRequest())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if remote.calls != 1 {
		t.Fatalf("remote calls = %d, want 1", remote.calls)
	}
	if report.Source != SourceLocal {
		t.Fatalf("source = %s, want local", report.Source)
	}
	if len(report.Result.RollingCurve) != 20 {
		t.Fatalf("curve length = %d, want 20", len(report.Result.RollingCurve))
	}
	if metrics.errors["remote"] != 1 {
		t.Fatalf("remote error not counted: %v", metrics.errors)
	}
	if report.Snapshot == nil {
		t.Fatal("expected trend snapshot with 120 bars of history")
	}
}

func TestScanServesFromCache(t *testing.T) {
	source := &fakeSource{prices: testPrices(120)}
	metrics := newFakeMetrics()
	mem := cache.NewMemoryCache()
	defer mem.Close()

	svc := NewSpectrumService(source, nil, analytics.NewLocalCycleAnalyzer(), mem, metrics, testLogger(t), time.Minute)

	first, err := svc.Scan(context.Background(), defaultRequest())
	if err != nil {
		t.Fatalf("first scan: %v", err)
	}
	if first.Source != SourceLocal {
		t.Fatalf("first source = %s, want local", first.Source)
	}

	second, err := svc.Scan(context.Background(), defaultRequest())
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}
	if second.Source != SourceCache {
		t.Fatalf("second source = %s, want cache", second.Source)
	}
	if source.calls != 1 {
		t.Fatalf("provider calls = %d, want 1 (second scan cached)", source.calls)
	}
	if second.Result.CurrentSignal != first.Result.CurrentSignal {
		t.Fatal("cached result must match the computed one")
	}
}

func TestScanPropagatesProviderError(t *testing.T) {
	source := &fakeSource{err: errors.New("upstream down")}
	metrics := newFakeMetrics()

	svc := NewSpectrumService(source, nil, analytics.NewLocalCycleAnalyzer(), nil, metrics, testLogger(t), time.Minute)

	if _, err := svc.Scan(context.Background(), defaultRequest()); err == nil {
		t.Fatal("expected error when candles cannot be fetched")
	}
	if metrics.errors["candles"] != 1 {
		t.Fatalf("candle error not counted: %v", metrics.errors)
	}
}

func TestScanShortHistoryIsClientError(t *testing.T) {
	source := &fakeSource{prices: testPrices(50)} // below window+bars
	metrics := newFakeMetrics()

	svc := NewSpectrumService(source, nil, analytics.NewLocalCycleAnalyzer(), nil, metrics, testLogger(t), time.Minute)

	_, err := svc.Scan(context.Background(), defaultRequest())
	if !errors.Is(err, spectral.ErrInsufficientHistory) {
		t.Fatalf("err = %v, want ErrInsufficientHistory", err)
	}
	if !IsClientError(err) {
		t.Fatal("insufficient history should classify as client error")
	}
}

func TestSignalValue(t *testing.T) {
	if signalValue(models.SignalBullish) != 1 ||
		signalValue(models.SignalBearish) != -1 ||
		signalValue(models.SignalNeutral) != 0 {
		t.Fatal("unexpected signal gauge mapping")
	}
}
