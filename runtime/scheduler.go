package runtime

import (
	"time"

	"chatsim/contract"
)

// Scheduler is the production task scheduler, backed by time.AfterFunc.
// Callbacks run on their own goroutine and are expected to re-enter the
// engine through Dispatch rather than touch state directly.
type Scheduler struct{}

func NewScheduler() Scheduler { return Scheduler{} }

func (Scheduler) After(d time.Duration, fn func()) contract.TaskHandle {
	return timerHandle{timer: time.AfterFunc(d, fn)}
}

type timerHandle struct {
	timer *time.Timer
}

func (h timerHandle) Stop() bool { return h.timer.Stop() }
