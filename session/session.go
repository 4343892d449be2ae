// Package session holds the single source of truth for a chat session:
// identity, roster, active selection, conversation log, and draft.
// A Session is not safe for concurrent use; the runtime engine owns it
// and serializes every mutation, including scheduled task results.
package session

import (
	"math/rand/v2"
	"strings"

	"chatsim/auth"
	"chatsim/domain"
	"chatsim/domain/event"
	"chatsim/errors"

	"github.com/samber/lo"
)

// Phase is the conversation view state.
type Phase int

const (
	PhaseNoSelection Phase = iota
	PhaseLoading
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	default:
		return "no_selection"
	}
}

// forceOnlineBias is the probability that the presence simulator pins a
// contact online regardless of the follow-up coin flip.
const forceOnlineBias = 0.3

type Session struct {
	user     *domain.User
	roster   []domain.Contact
	selected *domain.ContactID
	log      []domain.Message
	draft    domain.Draft
	phase    Phase

	// generation increments whenever the selection becomes invalid
	// (re-selection, logout). Scheduled tasks carry the generation they
	// were issued under and are dropped on mismatch.
	generation uint64

	events []event.DomainEvent
}

func New(roster []domain.Contact) *Session {
	return &Session{roster: roster}
}

// Login validates the email and installs the User. The roster and any
// selection are left untouched.
func (s *Session) Login(email, password string) (domain.User, error) {
	if err := auth.ValidateLogin(auth.LoginRequest{Email: email, Password: password}); err != nil {
		return domain.User{}, err
	}
	user := domain.NewUser(email)
	s.user = &user
	s.emit(event.SessionStarted{User: user})
	return user, nil
}

// Logout clears the user, the selection, the log, and the draft. It is
// idempotent and invalidates every in-flight scheduled task.
func (s *Session) Logout() {
	wasActive := s.user != nil
	s.user = nil
	s.selected = nil
	s.log = nil
	s.draft = domain.Draft{}
	s.phase = PhaseNoSelection
	s.generation++
	if wasActive {
		s.emit(event.SessionEnded{})
	}
}

func (s *Session) User() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// SelectContact makes the contact the active conversation: the log is
// cleared synchronously, the contact is forced online, and the selection
// generation advances so any pending load for the previous selection
// becomes stale.
func (s *Session) SelectContact(id domain.ContactID) (uint64, error) {
	idx, found := s.indexOf(id)
	if !found {
		return 0, errors.ErrContactNotFound
	}

	s.selected = &id
	s.log = nil
	s.phase = PhaseLoading
	s.generation++

	if s.roster[idx].Status != domain.PresenceOnline {
		s.roster[idx].Status = domain.PresenceOnline
		s.emit(event.PresenceChanged{ContactID: id, Status: domain.PresenceOnline})
	}
	s.emit(event.ContactSelected{Contact: s.roster[idx], Generation: s.generation})
	return s.generation, nil
}

// SelectedContact returns the active contact, if any.
func (s *Session) SelectedContact() (domain.Contact, bool) {
	if s.selected == nil {
		return domain.Contact{}, false
	}
	idx, found := s.indexOf(*s.selected)
	if !found {
		return domain.Contact{}, false
	}
	return s.roster[idx], true
}

// AppendMessage adds a message to the end of the active log. Appending
// without a selection is a contract violation, not a recoverable state.
func (s *Session) AppendMessage(msg domain.Message) error {
	if s.selected == nil {
		return errors.ErrInvalidState
	}
	s.log = append(s.log, msg)
	s.emit(event.MessageAppended{Message: msg})
	return nil
}

// ApplyTranscript replaces the log wholesale with the loaded history,
// provided the selection the load was issued for is still current.
// A stale load is a no-op and reports false.
func (s *Session) ApplyTranscript(generation uint64, msgs []domain.Message) bool {
	if generation != s.generation || s.selected == nil {
		return false
	}
	s.log = msgs
	s.phase = PhaseReady
	s.emit(event.TranscriptLoaded{ContactID: *s.selected, Messages: msgs})
	return true
}

// PerturbPresence randomizes the status of every contact except the
// selected one: with probability 0.3 the contact is pinned online,
// otherwise online/offline is an even coin flip. Membership never changes.
func (s *Session) PerturbPresence(rng *rand.Rand) {
	for i := range s.roster {
		if s.selected != nil && s.roster[i].ID == *s.selected {
			continue
		}

		status := domain.PresenceOnline
		if rng.Float64() >= forceOnlineBias && rng.Float64() < 0.5 {
			status = domain.PresenceOffline
		}
		if s.roster[i].Status != status {
			s.roster[i].Status = status
			s.emit(event.PresenceChanged{ContactID: s.roster[i].ID, Status: status})
		}
	}
}

// FilterContacts is a pure, case-insensitive substring match on display
// names. An empty query returns the full roster in canonical order;
// matches keep that order too.
func (s *Session) FilterContacts(query string) []domain.Contact {
	query = strings.ToLower(query)
	return lo.Filter(s.roster, func(c domain.Contact, _ int) bool {
		return strings.Contains(strings.ToLower(c.Name), query)
	})
}

// Roster returns a copy of the contact list in canonical order.
func (s *Session) Roster() []domain.Contact {
	out := make([]domain.Contact, len(s.roster))
	copy(out, s.roster)
	return out
}

// Messages returns a copy of the active conversation log.
func (s *Session) Messages() []domain.Message {
	out := make([]domain.Message, len(s.log))
	copy(out, s.log)
	return out
}

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) Generation() uint64 { return s.generation }

// Draft exposes the pending composer state for mutation by the engine.
func (s *Session) Draft() *domain.Draft { return &s.draft }

// FlushEvents drains the buffered domain events emitted since the last
// flush. The engine fans them out to registered sinks after each mutation.
func (s *Session) FlushEvents() []event.DomainEvent {
	out := s.events
	s.events = nil
	return out
}

func (s *Session) emit(e event.DomainEvent) {
	s.events = append(s.events, e)
}

func (s *Session) indexOf(id domain.ContactID) (int, bool) {
	for i := range s.roster {
		if s.roster[i].ID == id {
			return i, true
		}
	}
	return 0, false
}
