package usecase

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"CycleScan/internal/domain/models"
	xlogger "CycleScan/pkg/logger"
)

// Refresher recomputes the spectrum for a fixed set of symbols on a cron
// schedule so dashboard polls hit a warm cache.
type Refresher struct {
	service  *SpectrumService
	symbols  []string
	schedule string
	base     models.SpectrumRequest // parameter template, Symbol filled per scan
	logger   *xlogger.Logger
	cron     *cron.Cron
}

func NewRefresher(service *SpectrumService, symbols []string, schedule string, base models.SpectrumRequest, logger *xlogger.Logger) *Refresher {
	return &Refresher{
		service:  service,
		symbols:  symbols,
		schedule: schedule,
		base:     base,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start registers the cron entry and begins the schedule.
func (r *Refresher) Start() error {
	if _, err := r.cron.AddFunc(r.schedule, r.refreshAll); err != nil {
		return err
	}
	r.cron.Start()
	r.logger.Info("refresher started",
		xlogger.String("schedule", r.schedule),
		xlogger.Strings("symbols", r.symbols))
	return nil
}

// Stop halts the schedule and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Refresher) refreshAll() {
	for _, symbol := range r.symbols {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		req := r.base
		req.Symbol = symbol
		if _, err := r.service.Scan(ctx, &req); err != nil {
			r.logger.Warn("scheduled refresh failed",
				xlogger.String("symbol", symbol), xlogger.Error(err))
		}
		cancel()
	}
}
