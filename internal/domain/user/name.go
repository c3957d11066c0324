package user

import (
	"strings"
	"unicode/utf8"
)

const (
	minNameLength = 1
	maxNameLength = 16

	forbiddenNameChars = `<>"'`
)

// Name is a validated display name.
type Name struct {
	value string
}

// NewName validates raw and wraps it. Length is counted in runes.
func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, invalid(ReasonInvalidName, "Name cannot be blank")
	}
	if n := utf8.RuneCountInString(raw); n < minNameLength || n > maxNameLength {
		return Name{}, invalid(ReasonInvalidName, "Name must be between 1 and 16 characters")
	}
	if strings.ContainsAny(raw, forbiddenNameChars) {
		return Name{}, invalid(ReasonInvalidName, "Name contains invalid characters")
	}
	return Name{value: raw}, nil
}

// Value returns the name as given.
func (n Name) Value() string { return n.value }

// String implements fmt.Stringer.
func (n Name) String() string { return n.value }

// Equals reports whether both names are identical.
func (n Name) Equals(other Name) bool { return n.value == other.value }
