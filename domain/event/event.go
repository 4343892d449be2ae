// Package event defines the domain events emitted by the session store.
// Sinks consume them to build projections or drive the presentation layer.
package event

import (
	"chatsim/domain"
)

type DomainEvent interface {
	EventName() string
}

// SessionStarted is emitted when a user logs in.
type SessionStarted struct {
	User domain.User
}

func (SessionStarted) EventName() string { return "SessionStarted" }

// SessionEnded is emitted on logout, after the session state was cleared.
type SessionEnded struct{}

func (SessionEnded) EventName() string { return "SessionEnded" }

// ContactSelected is emitted when the active conversation changes. The log
// is already empty at that point and a history load is pending.
type ContactSelected struct {
	Contact    domain.Contact
	Generation uint64
}

func (ContactSelected) EventName() string { return "ContactSelected" }

// TranscriptLoaded is emitted when a simulated history load completes for
// the still-current selection.
type TranscriptLoaded struct {
	ContactID domain.ContactID
	Messages  []domain.Message
}

func (TranscriptLoaded) EventName() string { return "TranscriptLoaded" }

// MessageAppended is emitted for every message added to the active log,
// sent and echoed alike.
type MessageAppended struct {
	Message domain.Message
}

func (MessageAppended) EventName() string { return "MessageAppended" }

// PresenceChanged is emitted when a contact's status flips, either by the
// presence simulator or by a selection forcing the contact online.
type PresenceChanged struct {
	ContactID domain.ContactID
	Status    domain.Presence
}

func (PresenceChanged) EventName() string { return "PresenceChanged" }
