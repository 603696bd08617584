package workers

import (
	"context"
	"log/slog"
	"time"

	"slot-lab/contract"
	"slot-lab/repositories"
)

// DeletionSweeper performs due channel deletions. Termination only persists
// a deletion order with a due time; this worker wakes up periodically,
// scans for orders past due and removes the channels. Because the orders
// live in the store, a restart in the middle of the 8 hour grace period
// loses nothing.
type DeletionSweeper struct {
	deletions repositories.IDeletionRepository
	provider  contract.ChannelProvider
	log       *slog.Logger
	interval  time.Duration
	now       func() time.Time
}

func NewDeletionSweeper(
	deletions repositories.IDeletionRepository,
	provider contract.ChannelProvider,
	log *slog.Logger,
	interval time.Duration,
) *DeletionSweeper {
	return &DeletionSweeper{
		deletions: deletions,
		provider:  provider,
		log:       log,
		interval:  interval,
		now:       time.Now,
	}
}

func (w *DeletionSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// One pass at startup to catch orders that came due while down
	w.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep deletes every channel whose grace period has elapsed. Deletion is
// idempotent at the provider boundary: a channel that is already gone
// counts as deleted, so a re-fired order is a no-op. A failed deletion
// keeps its order and is retried on the next pass.
func (w *DeletionSweeper) Sweep(ctx context.Context) {
	due, err := w.deletions.Due(w.now().UTC())
	if err != nil {
		w.log.Error("Failed to load due deletions", "error", err)
		return
	}

	for _, d := range due {
		if ctx.Err() != nil {
			return
		}
		if err := w.provider.DeleteChannel(ctx, d.ChannelRef); err != nil {
			w.log.Warn("Channel deletion failed, will retry", "channel", d.ChannelRef, "error", err)
			continue
		}
		if err := w.deletions.Complete(d); err != nil {
			w.log.Error("Failed to clear deletion order", "channel", d.ChannelRef, "error", err)
			continue
		}
		w.log.Info("Terminated slot channel deleted", "channel", d.ChannelRef, "user", d.UserID)
	}
}
