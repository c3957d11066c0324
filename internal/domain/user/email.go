package user

import (
	"regexp"
	"strings"
)

const maxEmailLength = 64

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Email is a validated e-mail address. The zero value is not a valid Email;
// obtain one through NewEmail.
type Email struct {
	value string
}

// NewEmail validates raw and wraps it.
func NewEmail(raw string) (Email, error) {
	if strings.TrimSpace(raw) == "" {
		return Email{}, invalid(ReasonInvalidEmail, "Email cannot be blank")
	}
	if !emailPattern.MatchString(raw) {
		return Email{}, invalid(ReasonInvalidEmail, "Invalid email format: "+raw)
	}
	if len(raw) > maxEmailLength {
		return Email{}, invalid(ReasonInvalidEmail, "Email cannot exceed 64 characters")
	}
	return Email{value: raw}, nil
}

// Value returns the address as given.
func (e Email) Value() string { return e.value }

// String implements fmt.Stringer.
func (e Email) String() string { return e.value }

// Equals reports whether both addresses are byte-for-byte equal.
func (e Email) Equals(other Email) bool { return e.value == other.value }
