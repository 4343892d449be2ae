package contract

import (
	"context"
	"reflect"
	"time"

	"chatsim/domain"
	"chatsim/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself; the supervisor recovers panics and
// restarts it.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// Dispatcher applies a scheduled task result through the single
// state-owning component.
type Dispatcher interface {
	Dispatch(cmd domain.Command) error
}

// TaskHandle allows a scheduled one-shot task to be stopped before firing.
// Stop reports whether the task was prevented from running.
type TaskHandle interface {
	Stop() bool
}

// IScheduler posts one-shot delayed work. The production implementation is
// backed by time.AfterFunc; tests substitute a manually fired one.
type IScheduler interface {
	After(d time.Duration, fn func()) TaskHandle
}
