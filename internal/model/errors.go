package model

import (
	"errors"
	"fmt"
)

var (
	// returned when a stored-record lookup yields no document
	ErrNotFound = errors.New("book not found")
)

// UnknownVariantError reports an enum token that matches no known spelling.
// The original token is kept for diagnostics.
type UnknownVariantError struct {
	Kind  string
	Token string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Token)
}
