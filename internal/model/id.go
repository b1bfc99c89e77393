package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrMalformedID is returned by ParseID for input that is not an identifier.
var ErrMalformedID = errors.New("malformed identifier")

// ID identifies a user or an exercise entry. The zero value is not a valid ID.
type ID uuid.UUID

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID validates s and returns the identifier it encodes.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}

	return ID(u), nil
}

func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

func (id ID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

func (id ID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := ParseID(string(data))
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}
