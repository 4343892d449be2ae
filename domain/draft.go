package domain

import "strings"

// Draft holds the unsent composer state: free text and at most one staged
// attachment. Staging is single-slot, last write wins.
type Draft struct {
	text       string
	attachment *Attachment
}

func (d *Draft) SetText(text string) {
	d.text = text
}

func (d *Draft) Text() string {
	return d.text
}

// Stage replaces any previously staged attachment.
func (d *Draft) Stage(att Attachment) {
	d.attachment = &att
}

func (d *Draft) ClearAttachment() {
	d.attachment = nil
}

func (d *Draft) Attachment() *Attachment {
	return d.attachment
}

// Sendable reports whether the draft carries anything worth sending.
func (d *Draft) Sendable() bool {
	return strings.TrimSpace(d.text) != "" || d.attachment != nil
}

// Take returns the trimmed text and staged attachment, clearing both in the
// same step. A draft that is not sendable is left untouched and ok is false.
func (d *Draft) Take() (text string, att *Attachment, ok bool) {
	if !d.Sendable() {
		return "", nil, false
	}
	text, att = strings.TrimSpace(d.text), d.attachment
	d.text = ""
	d.attachment = nil
	return text, att, true
}
