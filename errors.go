package charabia

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSeparators is returned when a separator configuration is
	// malformed: empty, longer than 42 characters, containing a
	// non-alphanumeric character, or starving a digit bucket.
	ErrInvalidSeparators = errors.New("charabia: invalid separators")

	// ErrNotConfigured is returned when an encode, decode or split
	// operation is attempted before a valid configuration exists.
	ErrNotConfigured = errors.New("charabia: separators have not been configured (use Configure)")

	// ErrMalformedInput is returned when decode input does not parse under
	// the current separator configuration.
	ErrMalformedInput = errors.New("charabia: malformed input")
)

// UnknownCharError is returned by Decode when the input contains a
// character that is not present in the decoding index.
type UnknownCharError struct {
	Char rune
}

func (e *UnknownCharError) Error() string {
	if e.Char == ' ' {
		return "charabia: spaces shouldn't appear inside Decode; perhaps you meant to use Encode?"
	}
	return fmt.Sprintf("charabia: unexpected character in token: %q", e.Char)
}

// Is makes errors.Is(err, ErrMalformedInput) match: an unknown character
// is one way decode input fails to parse under the configuration.
func (e *UnknownCharError) Is(target error) bool {
	return target == ErrMalformedInput
}
