// Package domain contains core concepts of the chat session.
// This file defines Message records and their construction rules.
// Messages are immutable once appended to a conversation log.
package domain

import (
	"strings"
	"time"

	"chatsim/errors"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderMe    Sender = "me"
	SenderOther Sender = "other"
)

// MessageKind tags the payload variant so the text-or-attachment invariant
// is carried by the type instead of being re-checked everywhere.
type MessageKind int

const (
	TextOnly MessageKind = iota
	AttachmentOnly
	TextWithAttachment
)

// DisplayTimeLayout is the wall-clock format shown next to a message.
const DisplayTimeLayout = "15:04"

// Message is a single entry of the active conversation log. Time is
// formatted once at creation and never re-derived.
type Message struct {
	ID         uuid.UUID
	Kind       MessageKind
	Text       string
	Attachment *Attachment
	Sender     Sender
	Time       string
	CreatedAt  time.Time
}

// NewMessage builds a Message from trimmed text and an optional attachment.
// A message with neither is rejected with ErrEmptyMessage.
func NewMessage(sender Sender, text string, att *Attachment, at time.Time) (Message, error) {
	text = strings.TrimSpace(text)

	var kind MessageKind
	switch {
	case text != "" && att != nil:
		kind = TextWithAttachment
	case text != "":
		kind = TextOnly
	case att != nil:
		kind = AttachmentOnly
	default:
		return Message{}, errors.ErrEmptyMessage
	}

	return Message{
		ID:         uuid.New(),
		Kind:       kind,
		Text:       text,
		Attachment: att,
		Sender:     sender,
		Time:       at.Format(DisplayTimeLayout),
		CreatedAt:  at,
	}, nil
}

// CannedMessage builds a transcript entry with a fixed display time.
// Used for the simulated history load, which has no real clock origin.
func CannedMessage(sender Sender, text, displayTime string) Message {
	return Message{
		ID:     uuid.New(),
		Kind:   TextOnly,
		Text:   text,
		Sender: sender,
		Time:   displayTime,
	}
}
