package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type flakyWorker struct {
	runs atomic.Int64
}

// Run panics on its first execution, then blocks until cancelled.
func (w *flakyWorker) Run(ctx context.Context) error {
	if w.runs.Add(1) == 1 {
		panic("boom")
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestSupervisor_RestartsPanickedWorker(t *testing.T) {
	req := require.New(t)
	supervisor := NewSupervisor(logs.GetLoggerFromLevel(slog.LevelDebug))
	worker := &flakyWorker{}
	supervisor.Add(worker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		supervisor.Run(ctx)
		close(done)
	}()

	req.Eventually(func() bool {
		return worker.runs.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond, "worker should be restarted after the panic")

	supervisor.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not shut down")
	}
}
