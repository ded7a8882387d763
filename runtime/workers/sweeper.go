package workers

import (
	"context"
	"log/slog"
	"time"

	"messenger/errors"
	"messenger/observability"
	"messenger/repositories"
	"messenger/services"
)

// Sweeper is the retention job: on every tick it deletes non-permanent
// messages older than the retention window, in bounded pages, through the
// same lifecycle delete used by owner-initiated deletion, so the
// empty-chat cleanup applies uniformly.
type Sweeper struct {
	messages  repositories.IMessageRepository
	chats     repositories.IChatRepository
	lifecycle services.IMessageService
	monitor   *observability.SweepMonitor
	interval  time.Duration
	retention time.Duration
	pageSize  int
	log       *slog.Logger
}

func NewSweeper(
	messages repositories.IMessageRepository,
	chats repositories.IChatRepository,
	lifecycle services.IMessageService,
	monitor *observability.SweepMonitor,
	interval, retention time.Duration,
	pageSize int,
	log *slog.Logger,
) *Sweeper {
	return &Sweeper{
		messages:  messages,
		chats:     chats,
		lifecycle: lifecycle,
		monitor:   monitor,
		interval:  interval,
		retention: retention,
		pageSize:  pageSize,
		log:       log,
	}
}

// Run executes one sweep per interval until the context is canceled. An
// immediate sweep on startup catches up after downtime.
func (w *Sweeper) Run(ctx context.Context) error {
	w.log.Info("Starting retention sweeper", "interval", w.interval, "retention", w.retention)
	w.Sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep walks the expiry index page by page until a page comes back empty.
// Each deletion is isolated: a failing record is counted and skipped, never
// aborting the rest of the batch.
func (w *Sweeper) Sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-w.retention)
	removed, failed := 0, 0

	var cursor *string
	for {
		if ctx.Err() != nil {
			return
		}
		ids, next, err := w.messages.PageExpired(cutoff, cursor, w.pageSize)
		if err != nil {
			w.log.Error("Expiry page query failed, aborting sweep", "err", err)
			w.monitor.SweepError()
			return
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			message, err := w.messages.GetByID(id)
			if err == errors.ErrNotFound {
				// Deleted by its owner since the page was read.
				continue
			}
			if err != nil {
				w.log.Warn("Skipping unreadable expired message", "messageId", id, "err", err)
				w.monitor.SweepError()
				failed++
				continue
			}
			if err := w.lifecycle.Delete(id); err != nil {
				w.log.Warn("Failed to delete expired message", "messageId", id, "err", err)
				w.monitor.SweepError()
				failed++
				continue
			}
			w.monitor.MessageRemoved()
			removed++

			exists, err := w.chats.ExistsByID(message.ChatID)
			if err == nil && !exists {
				w.monitor.ChatRemoved()
			}
		}
		cursor = next
	}

	w.monitor.SweepFinished(time.Now().UTC())
	w.log.Info("Retention sweep finished", "cutoff", cutoff, "removed", removed, "failed", failed)
}
