package worker

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Saad200724/ZnPOS/internal/model"
	"github.com/Saad200724/ZnPOS/internal/repository"
)

const defaultBatchSize = 100

// itemSumTolerance absorbs float rounding drift when comparing persisted item
// totals against the header subtotal.
const itemSumTolerance = 0.01

// ReconcilerConfig wires the pending-transaction reconciler.
type ReconcilerConfig struct {
	Transactions repository.TransactionRepository
	// Interval between sweeps.
	Interval time.Duration
	// PendingTTL is how long a header may stay pending before it is
	// considered abandoned by its writer.
	PendingTTL time.Duration
	BatchSize  int
}

// StartReconciler sweeps for transaction headers stuck in "pending" longer
// than the TTL. A header is completed only when its persisted item totals
// reconcile with the header subtotal (the writer died after the item inserts,
// before the final flip); anything else — no items, or a partial item set —
// is voided. Runs until ctx is cancelled.
func StartReconciler(ctx context.Context, cfg ReconcilerConfig) {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}

	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().
			Dur("interval", cfg.Interval).
			Dur("pending_ttl", cfg.PendingTTL).
			Msg("reconciler: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("reconciler: stopped")
				return
			case <-ticker.C:
				if err := runOnce(ctx, cfg); err != nil {
					log.Error().Err(err).Msg("reconciler: sweep failed")
				}
			}
		}
	}()
}

func runOnce(ctx context.Context, cfg ReconcilerConfig) error {
	cutoff := time.Now().Add(-cfg.PendingTTL)
	stale, err := cfg.Transactions.ListStalePending(ctx, cutoff, cfg.BatchSize)
	if err != nil {
		return err
	}

	for i := range stale {
		tx := &stale[i]
		items, err := cfg.Transactions.ListItems(ctx, tx.ID)
		if err != nil {
			log.Error().
				Int64("transaction_id", tx.ID).
				Err(err).
				Msg("reconciler: item load failed")
			continue
		}

		// A header with a partial item set must not surface as a completed
		// sale: the item sum has to match what the writer declared.
		var itemSum float64
		for _, it := range items {
			itemSum += it.Total
		}
		status := model.TxStatusVoid
		if len(items) > 0 && math.Abs(itemSum-tx.Subtotal) <= itemSumTolerance {
			status = model.TxStatusCompleted
		}

		if err := cfg.Transactions.SetStatus(ctx, tx.BusinessID, tx.ID, status); err != nil {
			log.Error().
				Int64("transaction_id", tx.ID).
				Str("status", status).
				Err(err).
				Msg("reconciler: status flip failed")
			continue
		}

		if status == model.TxStatusVoid {
			log.Warn().
				Int64("business_id", tx.BusinessID).
				Int64("transaction_id", tx.ID).
				Int("items", len(items)).
				Float64("item_sum", itemSum).
				Float64("subtotal", tx.Subtotal).
				Msg("reconciler: voided stale pending transaction")
		} else {
			log.Info().
				Int64("business_id", tx.BusinessID).
				Int64("transaction_id", tx.ID).
				Int("items", len(items)).
				Msg("reconciler: completed stale pending transaction")
		}
	}
	return nil
}
