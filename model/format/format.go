package format

import (
	"fmt"
	"strings"
)

// Format identifies a diff dialect.
type Format int

const (
	// None is the zero value; no Range, Line or Hunk may carry it.
	None Format = iota
	Normal
	Unified
	Context
	EditScript
)

func (f Format) String() string {
	switch f {
	case Normal:
		return "normal"
	case Unified:
		return "unified"
	case Context:
		return "context"
	case EditScript:
		return "ed"
	default:
		return "none"
	}
}

// IsValid reports whether f is one of the four dialects.
func (f Format) IsValid() bool {
	return f >= Normal && f <= EditScript
}

// Parse converts a dialect name (as printed by String, or the diff(1) flag letter) to Format.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal", "n":
		return Normal, nil
	case "unified", "u":
		return Unified, nil
	case "context", "c":
		return Context, nil
	case "ed", "e", "edit-script", "editscript":
		return EditScript, nil
	}
	return None, fmt.Errorf("unknown diff format: %q", name)
}
