package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/maestro-ai/maestro/pkg/fsm"
	"github.com/maestro-ai/maestro/pkg/services"
	"github.com/maestro-ai/maestro/pkg/session"
)

// Janitor deletes conversations past their retention TTL and releases the
// per-session in-memory state they held.
type Janitor struct {
	conversations *services.ConversationService
	locks         *session.LockManager
	machine       *fsm.Orchestrator
	ttl           time.Duration
	interval      time.Duration
	logger        *slog.Logger
}

// NewJanitor creates a new Janitor
func NewJanitor(conversations *services.ConversationService, locks *session.LockManager, machine *fsm.Orchestrator, ttl, interval time.Duration, logger *slog.Logger) *Janitor {
	return &Janitor{
		conversations: conversations,
		locks:         locks,
		machine:       machine,
		ttl:           ttl,
		interval:      interval,
		logger:        logger,
	}
}

// Run sweeps on the configured interval until the context is cancelled.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep performs one cleanup pass.
func (j *Janitor) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-j.ttl)
	expired, err := j.conversations.DeleteExpired(ctx, cutoff)
	if err != nil {
		j.logger.Error("conversation cleanup failed", "error", err)
		return
	}
	for _, sessionID := range expired {
		j.locks.Forget(sessionID)
		j.machine.Forget(sessionID)
	}
	if len(expired) > 0 {
		j.logger.Info("expired conversations removed",
			"count", len(expired), "cutoff", cutoff)
	}
}
