package cleanup

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// IdleTableStore is the part of the table manager the worker needs.
type IdleTableStore interface {
	CleanupIdle(maxIdle time.Duration) int
}

type Worker struct {
	Tables   IdleTableStore
	MaxIdle  time.Duration
	Interval time.Duration
	logger   *zap.Logger
}

func NewWorker(tables IdleTableStore, maxIdle, interval time.Duration, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{Tables: tables, MaxIdle: maxIdle, Interval: interval, logger: logger.Named("cleanup")}
}

// Start runs a first pass right away, then one per Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("background worker started",
		zap.Duration("interval", w.Interval),
		zap.Duration("max_idle", w.MaxIdle),
	)
	w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

func (w *Worker) runCleanup() {
	removed := w.Tables.CleanupIdle(w.MaxIdle)
	if removed > 0 {
		w.logger.Debug("cleanup pass", zap.Int("removed", removed))
	}
}
