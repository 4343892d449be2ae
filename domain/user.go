package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// User is the authenticated actor. Exactly one User exists at a time;
// it is created on login and cleared on logout, never persisted.
type User struct {
	Email  string
	Name   string
	Avatar string
}

// NewUser derives a User from a validated email address. The display name
// is the local part of the address and the avatar is a deterministic
// placeholder keyed by its first character.
func NewUser(email string) User {
	name, _, _ := strings.Cut(email, "@")
	return User{
		Email:  email,
		Name:   name,
		Avatar: avatarFor(name),
	}
}

func avatarFor(name string) string {
	initial := "?"
	if r := []rune(name); len(r) > 0 {
		initial = string(unicode.ToUpper(r[0]))
	}
	return fmt.Sprintf("https://placehold.co/40x40/3b82f6/ffffff?text=%s", initial)
}
