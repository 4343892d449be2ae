// Package runtime drives the session store: it serializes every mutation,
// schedules the simulated delays, and fans domain events out to sinks.
// It orchestrates the system without containing domain rules.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"chatsim/contract"
	"chatsim/domain"
	"chatsim/domain/event"
	"chatsim/errors"
	"chatsim/runtime/workers"
	"chatsim/session"
)

const (
	defaultLoadDelay        = 300 * time.Millisecond
	defaultEchoDelay        = time.Second
	defaultPresenceInterval = 15 * time.Second
)

type Options struct {
	LoadDelay        time.Duration
	EchoDelay        time.Duration
	PresenceInterval time.Duration
	Rand             *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.LoadDelay <= 0 {
		o.LoadDelay = defaultLoadDelay
	}
	if o.EchoDelay <= 0 {
		o.EchoDelay = defaultEchoDelay
	}
	if o.PresenceInterval <= 0 {
		o.PresenceInterval = defaultPresenceInterval
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return o
}

// Engine owns the Session exclusively. Every mutation, synchronous user
// action or delayed task result alike, goes through the engine's mutex, so
// the session itself stays lock-free. Delayed work re-enters via Dispatch
// carrying the selection generation it was issued under.
type Engine struct {
	mu        sync.Mutex
	log       *slog.Logger
	session   *session.Session
	scheduler contract.IScheduler
	opts      Options
	sinks     []contract.EventSink

	loadTask       contract.TaskHandle
	presenceCancel context.CancelFunc
}

func NewEngine(log *slog.Logger, sess *session.Session, scheduler contract.IScheduler, opts Options) *Engine {
	return &Engine{
		log:       log,
		session:   sess,
		scheduler: scheduler,
		opts:      opts.withDefaults(),
	}
}

// RegisterSinks attaches event consumers. Must be called before the first
// operation; the sink list is read without locking afterwards.
func (e *Engine) RegisterSinks(sinks ...contract.EventSink) {
	e.sinks = append(e.sinks, sinks...)
}

// Login validates the email, installs the user, and starts the presence
// simulator for the lifetime of the session.
func (e *Engine) Login(email, password string) (domain.User, error) {
	e.mu.Lock()
	user, err := e.session.Login(email, password)
	events := e.session.FlushEvents()
	e.mu.Unlock()

	e.fanout(events)
	if err != nil {
		return domain.User{}, err
	}
	e.startPresence()
	return user, nil
}

// Logout tears the session down: presence simulation stops, any pending
// history load is cancelled, and the store is cleared. Idempotent.
func (e *Engine) Logout() {
	e.stopPresence()

	e.mu.Lock()
	if e.loadTask != nil {
		e.loadTask.Stop()
		e.loadTask = nil
	}
	e.session.Logout()
	events := e.session.FlushEvents()
	e.mu.Unlock()

	e.fanout(events)
}

// SelectContact activates a conversation. The log is cleared synchronously;
// the canned history arrives after the load delay, unless the selection
// moves on first. The previous load's timer is stopped eagerly, and the
// generation check in Dispatch drops it even if it already fired.
func (e *Engine) SelectContact(id domain.ContactID) error {
	e.mu.Lock()
	gen, err := e.session.SelectContact(id)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	if e.loadTask != nil {
		e.loadTask.Stop()
	}
	e.loadTask = e.scheduler.After(e.opts.LoadDelay, func() {
		_ = e.Dispatch(domain.ApplyTranscriptCommand{
			Generation: gen,
			Messages:   session.CannedTranscript(),
		})
	})
	events := e.session.FlushEvents()
	e.mu.Unlock()

	e.fanout(events)
	return nil
}

// Send turns the pending draft into a sent message and schedules the
// synthetic peer acknowledgement. An empty draft is ignored without error.
func (e *Engine) Send() error {
	e.mu.Lock()
	if !e.session.Draft().Sendable() {
		e.mu.Unlock()
		return nil
	}
	if _, ok := e.session.SelectedContact(); !ok {
		e.mu.Unlock()
		return errors.ErrInvalidState
	}

	text, att, _ := e.session.Draft().Take()
	msg, err := domain.NewMessage(domain.SenderMe, text, att, time.Now())
	if err != nil {
		e.mu.Unlock()
		return err
	}
	if err = e.session.AppendMessage(msg); err != nil {
		e.mu.Unlock()
		return err
	}

	gen := e.session.Generation()
	e.scheduler.After(e.opts.EchoDelay, func() {
		_ = e.Dispatch(domain.AppendEchoCommand{Generation: gen, Text: session.EchoText})
	})
	events := e.session.FlushEvents()
	e.mu.Unlock()

	e.fanout(events)
	return nil
}

// Dispatch applies a scheduled task result. Results carrying a stale
// selection generation are dropped silently: the state they targeted no
// longer exists.
func (e *Engine) Dispatch(cmd domain.Command) error {
	e.mu.Lock()
	var err error
	switch c := cmd.(type) {
	case domain.ApplyTranscriptCommand:
		if !e.session.ApplyTranscript(c.Generation, c.Messages) {
			e.log.Debug("Dropping stale history load", "generation", c.Generation)
		}
	case domain.AppendEchoCommand:
		err = e.appendEcho(c)
	case domain.PerturbPresenceCommand:
		e.session.PerturbPresence(e.opts.Rand)
	default:
		err = fmt.Errorf("unknown command %s", cmd.CommandName())
	}
	events := e.session.FlushEvents()
	e.mu.Unlock()

	e.fanout(events)
	return err
}

func (e *Engine) appendEcho(cmd domain.AppendEchoCommand) error {
	if cmd.Generation != e.session.Generation() {
		e.log.Debug("Dropping stale echo", "generation", cmd.Generation)
		return nil
	}
	msg, err := domain.NewMessage(domain.SenderOther, cmd.Text, nil, time.Now())
	if err != nil {
		return err
	}
	return e.session.AppendMessage(msg)
}

// SetDraftText updates the composed text of the pending draft.
func (e *Engine) SetDraftText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.Draft().SetText(text)
}

// StageAttachment stages a single attachment, replacing any previous one.
func (e *Engine) StageAttachment(att domain.Attachment) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.Draft().Stage(att)
}

// ClearAttachment drops the staged attachment without touching the text.
func (e *Engine) ClearAttachment() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.Draft().ClearAttachment()
}

func (e *Engine) User() (domain.User, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.User()
}

func (e *Engine) SelectedContact() (domain.Contact, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.SelectedContact()
}

func (e *Engine) Roster() []domain.Contact {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Roster()
}

func (e *Engine) FilterContacts(query string) []domain.Contact {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.FilterContacts(query)
}

func (e *Engine) Messages() []domain.Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Messages()
}

func (e *Engine) Phase() session.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Phase()
}

// Shutdown releases background work. Safe to call more than once.
func (e *Engine) Shutdown() {
	e.stopPresence()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.loadTask != nil {
		e.loadTask.Stop()
		e.loadTask = nil
	}
}

func (e *Engine) startPresence() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.presenceCancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.presenceCancel = cancel

	supervisor := workers.NewSupervisor(e.log)
	supervisor.Add(workers.NewPresenceWorker(e, e.opts.PresenceInterval, e.log))
	go supervisor.Run(ctx)
}

func (e *Engine) stopPresence() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.presenceCancel != nil {
		e.presenceCancel()
		e.presenceCancel = nil
	}
}

func (e *Engine) fanout(events []event.DomainEvent) {
	ctx := context.Background()
	for _, evt := range events {
		for _, sink := range e.sinks {
			if err := sink.Consume(ctx, evt); err != nil {
				e.log.Warn("Sink rejected event", "event", evt.EventName(), "error", err)
			}
		}
	}
}
