// Package projection builds a local conversation view from observed
// events. It tracks the NoSelection -> Loading -> Ready state machine for
// renderers without reaching back into the session store.
package projection

import (
	"context"
	"sync"

	"chatsim/domain"
	"chatsim/domain/event"
)

type ViewPhase int

const (
	ViewNoSelection ViewPhase = iota
	ViewLoading
	ViewReady
)

// Timeline mirrors the active conversation for presentation. It is safe
// for concurrent use: the engine feeds it from timer goroutines while the
// UI reads it.
type Timeline struct {
	mu       sync.RWMutex
	phase    ViewPhase
	contact  domain.Contact
	messages []domain.Message
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch evt := e.(type) {
	case event.ContactSelected:
		t.phase = ViewLoading
		t.contact = evt.Contact
		t.messages = nil
	case event.TranscriptLoaded:
		t.phase = ViewReady
		t.messages = append([]domain.Message(nil), evt.Messages...)
	case event.MessageAppended:
		t.messages = append(t.messages, evt.Message)
	case event.PresenceChanged:
		if evt.ContactID == t.contact.ID {
			t.contact.Status = evt.Status
		}
	case event.SessionEnded:
		t.phase = ViewNoSelection
		t.contact = domain.Contact{}
		t.messages = nil
	}
	return nil
}

func (t *Timeline) Phase() ViewPhase {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.phase
}

// Contact returns the contact the view is focused on; meaningful only
// outside ViewNoSelection.
func (t *Timeline) Contact() domain.Contact {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.contact
}

func (t *Timeline) Messages() []domain.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]domain.Message(nil), t.messages...)
}
