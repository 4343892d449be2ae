package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDraft_StagingIsLastWriteWins(t *testing.T) {
	req := require.New(t)
	var draft Draft

	draft.Stage(NewAttachment("first.pdf", "application/pdf"))
	draft.Stage(NewAttachment("second.png", "image/png"))

	req.NotNil(draft.Attachment())
	req.Equal("second.png", draft.Attachment().Name)
}

func TestDraft_TakeClearsTextAndAttachmentTogether(t *testing.T) {
	req := require.New(t)
	var draft Draft

	draft.SetText("  hello ")
	draft.Stage(NewAttachment("notes.txt", "text/plain"))

	text, att, ok := draft.Take()
	req.True(ok)
	req.Equal("hello", text)
	req.NotNil(att)

	req.Equal("", draft.Text())
	req.Nil(draft.Attachment())
	req.False(draft.Sendable())
}

func TestDraft_TakeIgnoresEmptyDraft(t *testing.T) {
	req := require.New(t)
	var draft Draft

	draft.SetText("   ")
	_, _, ok := draft.Take()
	req.False(ok)
	req.Equal("   ", draft.Text(), "a refused take must not clear the draft")
}

func TestDraft_AttachmentAloneIsSendable(t *testing.T) {
	var draft Draft
	draft.Stage(NewAttachment("cat.jpg", "image/jpeg"))
	require.True(t, draft.Sendable())
}
