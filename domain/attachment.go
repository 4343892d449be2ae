package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Attachment is the metadata kept for a user-selected file. Binary content
// never enters the domain: image files only contribute a transient preview
// reference resolvable by the presentation layer.
type Attachment struct {
	Name    string
	MIME    string
	Preview string // empty unless the MIME type is image-like
}

// NewAttachment builds an Attachment from a filename and its MIME type.
// Only image types receive a renderable preview reference.
func NewAttachment(name, mimeType string) Attachment {
	att := Attachment{Name: name, MIME: mimeType}
	if att.IsImage() {
		att.Preview = fmt.Sprintf("mem://preview/%s", uuid.New())
	}
	return att
}

func (a Attachment) IsImage() bool {
	return strings.HasPrefix(a.MIME, "image/")
}
