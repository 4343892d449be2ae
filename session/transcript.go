package session

import "chatsim/domain"

// CannedTranscript is the fixed history materialized by a simulated load:
// three text messages with frozen display times. A fresh slice is built on
// every call so a later selection cannot alias a previous log.
func CannedTranscript() []domain.Message {
	return []domain.Message{
		domain.CannedMessage(domain.SenderOther, "Hey! How was your day?", "10:15"),
		domain.CannedMessage(domain.SenderMe, "Great, thanks! And yours?", "10:16"),
		domain.CannedMessage(domain.SenderOther, "All good, working on a project", "10:18"),
	}
}

// EchoText is the acknowledgement appended on behalf of the peer after a
// send, simulating a remote response without any real peer.
const EchoText = "Message received"
