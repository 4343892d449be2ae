package domain

// Command is the result of a scheduled task posted back to the session
// engine. Delayed work never mutates state directly: it is reified as a
// command and applied by the single state-owning component, which checks
// the carried generation against the current selection.
type Command interface {
	CommandName() string
}

// ApplyTranscriptCommand delivers the simulated history load for the
// selection identified by Generation.
type ApplyTranscriptCommand struct {
	Generation uint64
	Messages   []Message
}

func (ApplyTranscriptCommand) CommandName() string { return "ApplyTranscript" }

// AppendEchoCommand delivers the synthetic peer acknowledgement for a sent
// message. It carries the generation of the selection the send happened in.
type AppendEchoCommand struct {
	Generation uint64
	Text       string
}

func (AppendEchoCommand) CommandName() string { return "AppendEcho" }

// PerturbPresenceCommand is a presence simulator tick.
type PerturbPresenceCommand struct{}

func (PerturbPresenceCommand) CommandName() string { return "PerturbPresence" }
