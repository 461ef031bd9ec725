package features

import (
	"github.com/markcheno/go-talib"

	"CycleScan/internal/domain/models"
)

const (
	smaShort  = 20
	smaLong   = 50
	rsiPeriod = 14
)

// ComputeTrendSnapshot derives a few indicator values from daily closes
// for display next to the spectrum. Returns nil when there is not enough
// history for the longest indicator.
func ComputeTrendSnapshot(prices []models.PricePoint) *models.TrendSnapshot {
	if len(prices) < smaLong+1 {
		return nil
	}

	closes := make([]float64, len(prices))
	for i, p := range prices {
		closes[i] = p.Close
	}

	sma20 := talib.Sma(closes, smaShort)
	sma50 := talib.Sma(closes, smaLong)
	rsi := talib.Rsi(closes, rsiPeriod)

	last := len(closes) - 1
	s := &models.TrendSnapshot{
		SMA20:     sma20[last],
		SMA50:     sma50[last],
		RSI14:     rsi[last],
		LastClose: closes[last],
	}
	s.AboveSMA20 = s.LastClose > s.SMA20
	s.AboveSMA50 = s.LastClose > s.SMA50
	s.RSICategory = rsiCategory(s.RSI14)
	return s
}

func rsiCategory(v float64) string {
	switch {
	case v < 30:
		return "oversold"
	case v > 70:
		return "overbought"
	default:
		return "neutral"
	}
}
