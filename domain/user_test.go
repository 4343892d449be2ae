package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		wantName   string
		wantAvatar string
	}{
		{"plain address", "alice@example.com", "alice", "https://placehold.co/40x40/3b82f6/ffffff?text=A"},
		{"dotted local part", "jean.dupont@example.fr", "jean.dupont", "https://placehold.co/40x40/3b82f6/ffffff?text=J"},
		{"already uppercase", "Boris@example.com", "Boris", "https://placehold.co/40x40/3b82f6/ffffff?text=B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := NewUser(tt.email)
			require.Equal(t, tt.wantName, user.Name)
			require.Equal(t, tt.wantAvatar, user.Avatar)
			require.Equal(t, tt.email, user.Email)
		})
	}
}

func TestNewAttachment_PreviewOnlyForImages(t *testing.T) {
	req := require.New(t)

	image := NewAttachment("photo.png", "image/png")
	req.True(image.IsImage())
	req.NotEmpty(image.Preview)

	document := NewAttachment("report.pdf", "application/pdf")
	req.False(document.IsImage())
	req.Empty(document.Preview)
}
