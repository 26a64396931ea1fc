package models

import "strings"

// Member represents one person in a group.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// GroupID is the group this member belongs to.
	GroupID string

	// Name is the display name of the member.
	// Names are unique within a group, compared case-insensitively.
	Name string

	// CreatedAt is the Unix timestamp when the member was added.
	CreatedAt int64
}

// NameKey returns the form of the member's name used for uniqueness checks.
func (m Member) NameKey() string {
	return NameKey(m.Name)
}

// NameKey normalises a display name for case-insensitive comparison.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
