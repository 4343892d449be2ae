package sink

import (
	"context"
	"log/slog"
	"testing"

	"chatsim/domain"
	"chatsim/domain/event"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestLogSink_ConsumesEveryEventKind(t *testing.T) {
	req := require.New(t)
	s := NewLogSink(logs.GetLoggerFromLevel(slog.LevelDebug))
	ctx := context.Background()

	events := []event.DomainEvent{
		event.SessionStarted{User: domain.NewUser("alice@example.com")},
		event.ContactSelected{Contact: domain.Contact{ID: 1, Name: "Alexey"}, Generation: 1},
		event.PresenceChanged{ContactID: 2, Status: domain.PresenceOffline},
		event.MessageAppended{Message: domain.CannedMessage(domain.SenderMe, "hi", "10:00")},
		event.SessionEnded{},
	}
	for _, evt := range events {
		req.NoError(s.Consume(ctx, evt))
	}
}
