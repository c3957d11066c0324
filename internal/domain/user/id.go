package user

import (
	"bytes"

	"github.com/google/uuid"
)

// canonical 8-4-4-4-12 form
const canonicalIDLength = 36

// ID identifies a User. It wraps a UUID so ids cannot be mixed up with other
// strings in signatures.
type ID struct {
	value uuid.UUID
}

// GenerateID returns a new random (v4) id.
func GenerateID() ID {
	return ID{value: uuid.New()}
}

// IDFrom wraps an existing UUID.
func IDFrom(u uuid.UUID) ID {
	return ID{value: u}
}

// ParseID parses the canonical hyphenated form. Other encodings accepted by
// uuid.Parse (braces, urn prefix, no hyphens) are rejected.
func ParseID(s string) (ID, error) {
	if len(s) != canonicalIDLength {
		return ID{}, malformedID(s, nil)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, malformedID(s, err)
	}
	return ID{value: u}, nil
}

func malformedID(s string, err error) *ValidationError {
	return &ValidationError{
		Reason:  ReasonMalformedIdentifier,
		Message: "Invalid user id: " + s,
		Err:     err,
	}
}

// UUID returns the underlying UUID.
func (id ID) UUID() uuid.UUID { return id.value }

// String returns the canonical lowercase hyphenated form.
func (id ID) String() string { return id.value.String() }

// Equals reports whether both ids are the same.
func (id ID) Equals(other ID) bool { return id.value == other.value }

// Compare orders ids by their underlying bytes.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id.value[:], other.value[:])
}

// IsZero reports whether id is the nil UUID.
func (id ID) IsZero() bool { return id.value == uuid.Nil }
