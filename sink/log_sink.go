// Package sink provides auxiliary event consumers plugged into the engine
// fanout alongside the conversation projection.
package sink

import (
	"context"
	"log/slog"

	"chatsim/domain/event"
)

// LogSink traces every domain event through the structured logger. Purely
// observational; it never influences the session.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageAppended:
		s.log.Debug("Event", "name", e.EventName(), "sender", evt.Message.Sender, "time", evt.Message.Time)
	case event.PresenceChanged:
		s.log.Debug("Event", "name", e.EventName(), "contact", evt.ContactID, "status", evt.Status)
	default:
		s.log.Debug("Event", "name", e.EventName())
	}
	return nil
}
