package finnhub

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"CycleScan/internal/domain/models"
	drepo "CycleScan/internal/domain/repository"
	"CycleScan/internal/service/ratelimit"
	xhttp "CycleScan/pkg/http"
	"CycleScan/pkg/util"
)

// Client implements a CandleSource backed by the Finnhub REST API.
type Client struct {
	apiKey    string
	baseURL   string
	http      *xhttp.Client
	limiter   *ratelimit.Limiter
	rateLimit float64
	rateBurst float64
}

// New creates a new Finnhub candle source.
func New(apiKey, baseURL string, timeout time.Duration, rateLimit, rateBurst float64) drepo.CandleSource {
	if baseURL == "" {
		baseURL = "https://finnhub.io/api/v1"
	}
	return &Client{
		apiKey:    apiKey,
		baseURL:   baseURL,
		http:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
		limiter:   ratelimit.New(),
		rateLimit: rateLimit,
		rateBurst: rateBurst,
	}
}

// candleResponse is the wire shape of /stock/candle. Arrays are parallel.
type candleResponse struct {
	Status     string    `json:"s"` // "ok" or "no_data"
	Timestamps []int64   `json:"t"` // unix seconds
	Closes     []float64 `json:"c"`
}

// DailyCloses fetches the last `bars` daily candles for symbol, oldest
// first. Finnhub skips non-trading days, so the request window is padded
// before truncating to the requested count.
func (c *Client) DailyCloses(ctx context.Context, symbol string, bars int) ([]models.PricePoint, error) {
	if !c.limiter.Allow("candles", c.rateBurst, c.rateLimit) {
		return nil, fmt.Errorf("finnhub: rate limited")
	}

	to := time.Now().UTC()
	// Calendar days per trading day is roughly 7/5; pad generously.
	from := to.AddDate(0, 0, -(bars*2 + 30))

	var resp candleResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/stock/candle",
		QueryParams: map[string][]string{
			"symbol":     {symbol},
			"resolution": {"D"},
			"from":       {strconv.FormatInt(from.Unix(), 10)},
			"to":         {strconv.FormatInt(to.Unix(), 10)},
			"token":      {c.apiKey},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("finnhub candles %s: %w", symbol, err)
	}

	if resp.Status != "ok" {
		return nil, fmt.Errorf("finnhub candles %s: status %q", symbol, resp.Status)
	}
	if len(resp.Timestamps) != len(resp.Closes) {
		return nil, fmt.Errorf("finnhub candles %s: %d timestamps vs %d closes",
			symbol, len(resp.Timestamps), len(resp.Closes))
	}

	points := make([]models.PricePoint, 0, len(resp.Closes))
	for i := range resp.Closes {
		points = append(points, models.PricePoint{
			Date:  util.DateFromUnix(resp.Timestamps[i]),
			Close: resp.Closes[i],
		})
	}

	if len(points) > bars {
		points = points[len(points)-bars:]
	}
	return points, nil
}
