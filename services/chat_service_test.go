package services

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"chatsim/domain"
	"chatsim/projection"
	"chatsim/runtime"
	"chatsim/session"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*ChatService, *projection.Timeline) {
	t.Helper()
	engine := runtime.NewEngine(
		logs.GetLoggerFromLevel(slog.LevelDebug),
		session.New(domain.SeedRoster()),
		runtime.NewScheduler(),
		runtime.Options{
			LoadDelay:        5 * time.Millisecond,
			EchoDelay:        10 * time.Millisecond,
			PresenceInterval: time.Hour,
		},
	)
	t.Cleanup(engine.Shutdown)

	timeline := projection.NewTimeline()
	engine.RegisterSinks(timeline)
	return NewChatService(engine), timeline
}

func TestChatService_SelectFile(t *testing.T) {
	t.Run("image file gets a preview", func(t *testing.T) {
		req := require.New(t)
		svc, _ := newTestService(t)

		path := filepath.Join(t.TempDir(), "pixel.png")
		pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
		req.NoError(os.WriteFile(path, pngHeader, 0o600))

		att, err := svc.SelectFile(path)
		req.NoError(err)
		req.Equal("pixel.png", att.Name)
		req.Equal("image/png", att.MIME)
		req.NotEmpty(att.Preview)
	})

	t.Run("plain file gets no preview", func(t *testing.T) {
		req := require.New(t)
		svc, _ := newTestService(t)

		path := filepath.Join(t.TempDir(), "notes.txt")
		req.NoError(os.WriteFile(path, []byte("just some notes\n"), 0o600))

		att, err := svc.SelectFile(path)
		req.NoError(err)
		req.Equal("notes.txt", att.Name)
		req.Empty(att.Preview)
	})

	t.Run("missing file", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.SelectFile(filepath.Join(t.TempDir(), "nope.bin"))
		require.Error(t, err)
	})
}

func TestChatService_FullSessionFlow(t *testing.T) {
	req := require.New(t)
	svc, timeline := newTestService(t)

	user, err := svc.Login("dave@example.com", "ignored")
	req.NoError(err)
	req.Equal("dave", user.Name)

	req.NoError(svc.SelectContact(2))
	req.Empty(svc.Messages())

	req.Eventually(func() bool {
		return svc.Phase() == session.PhaseReady
	}, time.Second, time.Millisecond, "history load should complete")
	req.Len(svc.Messages(), 3)

	svc.SetDraftText("hi Maria")
	svc.StageAttachment("second.png", "image/png")
	req.NoError(svc.Send())
	req.Len(svc.Messages(), 4)

	req.Eventually(func() bool {
		return len(svc.Messages()) == 5
	}, time.Second, time.Millisecond, "echo should arrive")

	last := svc.Messages()[4]
	req.Equal(domain.SenderOther, last.Sender)
	req.Equal(session.EchoText, last.Text)

	// The projection saw the same conversation the store holds.
	req.Len(timeline.Messages(), 5)

	svc.Logout()
	req.Empty(svc.Messages())
	req.Equal(session.PhaseNoSelection, svc.Phase())
	req.Equal(projection.ViewNoSelection, timeline.Phase())
}
