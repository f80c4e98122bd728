package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jusunglee/boothko/internal/metrics"
)

// Prune deletes history older than retention, measured from now.
func Prune(ctx context.Context, repo Repository, retention time.Duration, now time.Time) (int64, error) {
	n, err := repo.DeleteOldSearchHistory(ctx, now.Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("pruning search history: %w", err)
	}
	metrics.HistoryPruned.Add(float64(n))
	return n, nil
}

// RunRetention prunes once at startup and then every interval until ctx is
// done. Failed sweeps are logged and retried on the next tick.
func RunRetention(ctx context.Context, repo Repository, log *slog.Logger, retention, every time.Duration) error {
	sweep := func() {
		n, err := Prune(ctx, repo, retention, time.Now())
		if err != nil {
			if ctx.Err() == nil {
				log.ErrorContext(ctx, "retention sweep failed", "error", err)
			}
			return
		}
		if n > 0 {
			log.InfoContext(ctx, "pruned search history", "deleted", n, "retention", retention)
		}
	}

	sweep()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			sweep()
		}
	}
}
