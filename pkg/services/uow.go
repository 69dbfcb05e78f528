package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maestro-ai/maestro/ent"
)

// slowTransactionThreshold flags transactions worth a warning log.
const slowTransactionThreshold = 100 * time.Millisecond

// TransactionObserver receives transaction timing for metrics collection.
type TransactionObserver interface {
	ObserveTransaction(label string, duration time.Duration, committed bool)
}

// UnitOfWork runs labeled database transactions. The runtime commits after
// each processing step (micro-commits) so a crash mid-stream loses at most
// the step in flight, never already-streamed state.
type UnitOfWork struct {
	client   *ent.Client
	logger   *slog.Logger
	observer TransactionObserver
}

// NewUnitOfWork creates a new UnitOfWork. The observer may be nil.
func NewUnitOfWork(client *ent.Client, logger *slog.Logger, observer TransactionObserver) *UnitOfWork {
	return &UnitOfWork{
		client:   client,
		logger:   logger,
		observer: observer,
	}
}

// Do runs fn inside a transaction and commits on success. The label names
// the processing step for logs and metrics.
func (u *UnitOfWork) Do(ctx context.Context, label string, fn func(tx *ent.Tx) error) (err error) {
	start := time.Now()
	committed := false
	defer func() {
		duration := time.Since(start)
		if duration > slowTransactionThreshold {
			u.logger.Warn("slow transaction",
				"label", label,
				"duration_ms", duration.Milliseconds(),
				"committed", committed)
		}
		if u.observer != nil {
			u.observer.ObserveTransaction(label, duration, committed)
		}
	}()

	tx, err := u.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction %s: %w", label, err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction %s failed: %w (rollback failed: %v)", label, err, rbErr)
		}
		return fmt.Errorf("transaction %s failed: %w", label, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction %s: %w", label, err)
	}
	committed = true
	return nil
}
