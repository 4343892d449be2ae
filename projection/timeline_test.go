package projection

import (
	"context"
	"testing"

	"chatsim/domain"
	"chatsim/domain/event"

	"github.com/stretchr/testify/require"
)

func TestTimeline_FollowsConversationLifecycle(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline()
	ctx := context.Background()

	req.Equal(ViewNoSelection, timeline.Phase())

	maria := domain.Contact{ID: 2, Name: "Maria", Status: domain.PresenceOnline}
	req.NoError(timeline.Consume(ctx, event.ContactSelected{Contact: maria, Generation: 1}))
	req.Equal(ViewLoading, timeline.Phase())
	req.Empty(timeline.Messages())

	transcript := []domain.Message{
		domain.CannedMessage(domain.SenderOther, "Hey! How was your day?", "10:15"),
		domain.CannedMessage(domain.SenderMe, "Great, thanks! And yours?", "10:16"),
	}
	req.NoError(timeline.Consume(ctx, event.TranscriptLoaded{ContactID: 2, Messages: transcript}))
	req.Equal(ViewReady, timeline.Phase())
	req.Len(timeline.Messages(), 2)

	sent := domain.CannedMessage(domain.SenderMe, "hello", "11:00")
	req.NoError(timeline.Consume(ctx, event.MessageAppended{Message: sent}))
	req.Len(timeline.Messages(), 3)
	req.Equal("hello", timeline.Messages()[2].Text)

	req.NoError(timeline.Consume(ctx, event.SessionEnded{}))
	req.Equal(ViewNoSelection, timeline.Phase())
	req.Empty(timeline.Messages())
}

func TestTimeline_TracksFocusedContactPresence(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline()
	ctx := context.Background()

	ivan := domain.Contact{ID: 3, Name: "Ivan", Status: domain.PresenceOnline}
	req.NoError(timeline.Consume(ctx, event.ContactSelected{Contact: ivan, Generation: 1}))

	// A presence flip for another contact is ignored by the view.
	req.NoError(timeline.Consume(ctx, event.PresenceChanged{ContactID: 5, Status: domain.PresenceOffline}))
	req.Equal(domain.PresenceOnline, timeline.Contact().Status)

	req.NoError(timeline.Consume(ctx, event.PresenceChanged{ContactID: 3, Status: domain.PresenceOffline}))
	req.Equal(domain.PresenceOffline, timeline.Contact().Status)
}

func TestTimeline_ReselectionResetsMessages(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline()
	ctx := context.Background()

	req.NoError(timeline.Consume(ctx, event.ContactSelected{Contact: domain.Contact{ID: 1}, Generation: 1}))
	req.NoError(timeline.Consume(ctx, event.TranscriptLoaded{ContactID: 1, Messages: []domain.Message{
		domain.CannedMessage(domain.SenderOther, "old", "10:15"),
	}}))

	req.NoError(timeline.Consume(ctx, event.ContactSelected{Contact: domain.Contact{ID: 2}, Generation: 2}))
	req.Equal(ViewLoading, timeline.Phase())
	req.Empty(timeline.Messages())
}
