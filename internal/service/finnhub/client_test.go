package finnhub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDailyCloses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("resolution"); got != "D" {
			t.Errorf("resolution = %q, want D", got)
		}
		if got := r.URL.Query().Get("symbol"); got != "AAPL" {
			t.Errorf("symbol = %q, want AAPL", got)
		}
		w.Header().Set("Content-Type", "application/json")
		// 2024-10-08, 2024-10-09, 2024-10-10 (unix seconds, UTC midnight)
		_, _ = w.Write([]byte(`{"s":"ok","t":[1728345600,1728432000,1728518400],"c":[101.5,102.25,100.75]}`))
	}))
	defer srv.Close()

	src := New("test-key", srv.URL, time.Second, 10, 10)

	points, err := src.DailyCloses(context.Background(), "AAPL", 2)
	if err != nil {
		t.Fatalf("DailyCloses: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2 (truncated to requested bars)", len(points))
	}
	if points[0].Date != "2024-10-09" || points[1].Date != "2024-10-10" {
		t.Fatalf("unexpected dates %s, %s", points[0].Date, points[1].Date)
	}
	if points[1].Close != 100.75 {
		t.Fatalf("last close = %v, want 100.75", points[1].Close)
	}
}

func TestDailyClosesNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"s":"no_data"}`))
	}))
	defer srv.Close()

	src := New("test-key", srv.URL, time.Second, 10, 10)

	if _, err := src.DailyCloses(context.Background(), "XXXX", 10); err == nil {
		t.Fatal("no_data status should be an error")
	}
}

func TestDailyClosesRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"s":"ok","t":[1728518400],"c":[1]}`))
	}))
	defer srv.Close()

	src := New("test-key", srv.URL, time.Second, 0, 1) // burst of one, no refill

	if _, err := src.DailyCloses(context.Background(), "AAPL", 1); err != nil {
		t.Fatalf("first call should pass: %v", err)
	}
	if _, err := src.DailyCloses(context.Background(), "AAPL", 1); err == nil {
		t.Fatal("second call should be rate limited")
	}
}
