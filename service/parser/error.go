package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat reports a patch whose dialect could not be recognized.
	ErrUnknownFormat = errors.New("only garbage was found in the patch input")
	// ErrMalformed reports a patch line that does not fit the detected dialect.
	ErrMalformed = errors.New("malformed patch")
)

func malformed(lineNumber int, format string, args ...interface{}) error {
	return fmt.Errorf("%w at line %d: %s", ErrMalformed, lineNumber, fmt.Sprintf(format, args...))
}
