package workers

import (
	"context"
	"log/slog"
	"time"

	"chatsim/contract"
	"chatsim/domain"
)

// PresenceWorker fakes a live roster: on every tick it posts a presence
// perturbation through the dispatcher. It never mutates state itself, so
// the exclusion of the selected contact stays the session's concern.
type PresenceWorker struct {
	dispatcher contract.Dispatcher
	interval   time.Duration
	log        *slog.Logger
}

func NewPresenceWorker(dispatcher contract.Dispatcher, interval time.Duration, log *slog.Logger) *PresenceWorker {
	return &PresenceWorker{dispatcher: dispatcher, interval: interval, log: log}
}

// Run ticks until the context is cancelled. The ticker is released on exit
// so a torn-down session leaves no background timer behind.
func (w *PresenceWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping presence worker")
			return ctx.Err()
		case <-ticker.C:
			if err := w.dispatcher.Dispatch(domain.PerturbPresenceCommand{}); err != nil {
				w.log.Warn("Presence tick rejected", "error", err)
			}
		}
	}
}
