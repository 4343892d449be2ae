// Package domain contains core concepts of the chat session.
// This file defines Contact entries and the seeded roster.
// No runtime, network, or UI logic should be added here.
package domain

type ContactID int

// Presence is the cosmetic online/offline flag shown next to a contact.
type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceOffline Presence = "offline"
)

// Contact is a roster entry. The roster is fixed for the lifetime of a
// session: only Status may change after seeding.
type Contact struct {
	ID     ContactID
	Name   string
	Status Presence
	Avatar string
}

// SeedRoster returns the fixed set of contacts available to every user.
// Avatar colors follow the placeholder palette of the presentation layer.
func SeedRoster() []Contact {
	return []Contact{
		{ID: 1, Name: "Alexey", Status: PresenceOnline, Avatar: "https://placehold.co/40x40/3b82f6/ffffff?text=A"},
		{ID: 2, Name: "Maria", Status: PresenceOffline, Avatar: "https://placehold.co/40x40/10b981/ffffff?text=M"},
		{ID: 3, Name: "Ivan", Status: PresenceOffline, Avatar: "https://placehold.co/40x40/f59e0b/ffffff?text=I"},
		{ID: 4, Name: "Ekaterina", Status: PresenceOnline, Avatar: "https://placehold.co/40x40/8b5cf6/ffffff?text=E"},
		{ID: 5, Name: "Dmitry", Status: PresenceOffline, Avatar: "https://placehold.co/40x40/ef4444/ffffff?text=D"},
	}
}
