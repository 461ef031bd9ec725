package repository

import (
	"context"

	"CycleScan/internal/domain/models"
)

// CandleSource fetches historical daily closes for a symbol, oldest
// first. Implementations own the provider wire format; dates come back
// as ISO-8601 strings and are never reformatted downstream.
type CandleSource interface {
	DailyCloses(ctx context.Context, symbol string, bars int) ([]models.PricePoint, error)
}

// Metrics abstracts the metrics backend.
type Metrics interface {
	RecordScan(source, symbol string)
	RecordError(kind string)
	RecordSignal(symbol string, value float64)
	RecordDuration(source string, seconds float64)
}
