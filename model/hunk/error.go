package hunk

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is matched (errors.Is) by every RangeError.
var ErrInvalidRange = errors.New("invalid range")

// RangeError reports range text that could not be decoded.
type RangeError struct {
	Text string
	Err  error
}

func (e *RangeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid range %q", e.Text)
	}
	return fmt.Sprintf("invalid range %q: %v", e.Text, e.Err)
}

func (e *RangeError) Unwrap() error { return e.Err }

func (e *RangeError) Is(target error) bool { return target == ErrInvalidRange }
