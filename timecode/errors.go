package timecode

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single error kind reported by this package.
// Every failure wraps it and carries a message naming the offending
// argument; test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
