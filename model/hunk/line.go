package hunk

import (
	"fmt"
	"strings"

	"github.com/viant/textpatch/model/format"
)

// Line is one parsed line of a hunk. The set of implementations is closed;
// apply code switches over the concrete types.
type Line interface {
	// Format returns the dialect the line belongs to.
	Format() format.Format
	// Raw returns the line as it appeared in the diff.
	Raw() string
	// Text returns the file content carried by the line, without the dialect prefix.
	Text() string
	line()
}

type text struct {
	raw   string
	value string
}

func (t text) Raw() string  { return t.raw }
func (t text) Text() string { return t.value }
func (t text) line()        {}

func stripped(raw string, prefix int) text {
	if prefix > len(raw) {
		prefix = len(raw)
	}
	return text{raw: raw, value: raw[prefix:]}
}

func verbatim(raw string) text { return text{raw: raw, value: raw} }

// NoNewline is the "\ No newline at end of file" marker: the diff line before it
// had no trailing newline in the file it came from.
type NoNewline struct {
	text
	dialect format.Format
}

func NewNoNewline(raw string, dialect format.Format) NoNewline {
	return NoNewline{text: verbatim(raw), dialect: dialect}
}

func (l NoNewline) Format() format.Format { return l.dialect }

// ---------------------------------------------------------------------------
// Normal
// ---------------------------------------------------------------------------

// NormalRange is a normal diff command line, e.g. "2,3c2".
type NormalRange struct {
	text
	Left  Range
	Right Range
	Kind  Kind
}

func NewNormalRange(raw string) (NormalRange, error) {
	left, right, kind, err := ParseNormalHeader(raw)
	if err != nil {
		return NormalRange{}, err
	}
	return NormalRange{text: verbatim(raw), Left: left, Right: right, Kind: kind}, nil
}

func (NormalRange) Format() format.Format { return format.Normal }

// NormalSeparator is the "---" line between the old and new side of a change.
type NormalSeparator struct{ text }

func NewNormalSeparator(raw string) NormalSeparator { return NormalSeparator{verbatim(raw)} }

func (NormalSeparator) Format() format.Format { return format.Normal }

// NormalInsert is a "> " line.
type NormalInsert struct{ text }

func NewNormalInsert(raw string) NormalInsert { return NormalInsert{stripped(raw, 2)} }

func (NormalInsert) Format() format.Format { return format.Normal }

// NormalDelete is a "< " line.
type NormalDelete struct{ text }

func NewNormalDelete(raw string) NormalDelete { return NormalDelete{stripped(raw, 2)} }

func (NormalDelete) Format() format.Format { return format.Normal }

// ---------------------------------------------------------------------------
// Unified
// ---------------------------------------------------------------------------

// UnifiedHeader is the "@@ -a,b +c,d @@" line.
type UnifiedHeader struct {
	text
	F1 Range
	F2 Range
}

func NewUnifiedHeader(raw string) (UnifiedHeader, error) {
	fields := strings.Fields(raw)
	if len(fields) < 4 || fields[0] != "@@" || fields[3] != "@@" ||
		!strings.HasPrefix(fields[1], "-") || !strings.HasPrefix(fields[2], "+") {
		return UnifiedHeader{}, &RangeError{Text: raw, Err: fmt.Errorf("malformed unified hunk header")}
	}
	f1, err := ParseUnifiedRange(fields[1])
	if err != nil {
		return UnifiedHeader{}, err
	}
	f2, err := ParseUnifiedRange(fields[2])
	if err != nil {
		return UnifiedHeader{}, err
	}
	return UnifiedHeader{text: verbatim(raw), F1: f1, F2: f2}, nil
}

func (UnifiedHeader) Format() format.Format { return format.Unified }

// UnifiedDeleted is a "-" line.
type UnifiedDeleted struct{ text }

func NewUnifiedDeleted(raw string) UnifiedDeleted { return UnifiedDeleted{stripped(raw, 1)} }

func (UnifiedDeleted) Format() format.Format { return format.Unified }

// UnifiedUnchanged is a " " line.
type UnifiedUnchanged struct{ text }

func NewUnifiedUnchanged(raw string) UnifiedUnchanged { return UnifiedUnchanged{stripped(raw, 1)} }

func (UnifiedUnchanged) Format() format.Format { return format.Unified }

// UnifiedInserted is a "+" line.
type UnifiedInserted struct{ text }

func NewUnifiedInserted(raw string) UnifiedInserted { return UnifiedInserted{stripped(raw, 1)} }

func (UnifiedInserted) Format() format.Format { return format.Unified }

// ---------------------------------------------------------------------------
// Context
// ---------------------------------------------------------------------------

// ContextRange is "*** a,b ****" (original side) or "--- c,d ----" (modified side).
type ContextRange struct {
	text
	Range    Range
	Modified bool
}

func NewContextRange(raw string) (ContextRange, error) {
	var modified bool
	switch {
	case strings.HasPrefix(raw, "*** ") && strings.HasSuffix(raw, " ****"):
	case strings.HasPrefix(raw, "--- ") && strings.HasSuffix(raw, " ----"):
		modified = true
	default:
		return ContextRange{}, &RangeError{Text: raw, Err: fmt.Errorf("malformed context range line")}
	}
	r, err := ParseContextRange(raw)
	if err != nil {
		return ContextRange{}, err
	}
	return ContextRange{text: verbatim(raw), Range: r, Modified: modified}, nil
}

func (ContextRange) Format() format.Format { return format.Context }

// ContextSeparator is the "***************" line opening a context hunk.
type ContextSeparator struct{ text }

func NewContextSeparator(raw string) ContextSeparator { return ContextSeparator{verbatim(raw)} }

func (ContextSeparator) Format() format.Format { return format.Context }

// ContextInserted is a "+ " line, or a "! " line on the modified side when IsChange.
type ContextInserted struct {
	text
	IsChange bool
}

func NewContextInserted(raw string, isChange bool) ContextInserted {
	return ContextInserted{text: stripped(raw, 2), IsChange: isChange}
}

func (ContextInserted) Format() format.Format { return format.Context }

// ContextDeleted is a "- " line, or a "! " line on the original side when IsChange.
type ContextDeleted struct {
	text
	IsChange bool
}

func NewContextDeleted(raw string, isChange bool) ContextDeleted {
	return ContextDeleted{text: stripped(raw, 2), IsChange: isChange}
}

func (ContextDeleted) Format() format.Format { return format.Context }

// ContextUnchanged is a "  " line.
type ContextUnchanged struct{ text }

func NewContextUnchanged(raw string) ContextUnchanged { return ContextUnchanged{stripped(raw, 2)} }

func (ContextUnchanged) Format() format.Format { return format.Context }

// ---------------------------------------------------------------------------
// EditScript
// ---------------------------------------------------------------------------

// EditScriptRange is an ed command line such as "4,6d". Its Kind comes from the
// trailing command letter.
type EditScriptRange struct {
	text
	Range Range
	Kind  Kind
}

func NewEditScriptRange(raw string) (EditScriptRange, error) {
	kind, err := ParseEditScriptKind(raw)
	if err != nil {
		return EditScriptRange{}, err
	}
	r, err := ParseEditScriptRange(raw)
	if err != nil {
		return EditScriptRange{}, err
	}
	return EditScriptRange{text: verbatim(raw), Range: r, Kind: kind}, nil
}

func (EditScriptRange) Format() format.Format { return format.EditScript }

// EditScriptInsert is a text line following an "a" command.
type EditScriptInsert struct{ text }

func NewEditScriptInsert(raw string) EditScriptInsert { return EditScriptInsert{verbatim(raw)} }

func (EditScriptInsert) Format() format.Format { return format.EditScript }

// EditScriptChange is a text line following a "c" command.
type EditScriptChange struct{ text }

func NewEditScriptChange(raw string) EditScriptChange { return EditScriptChange{verbatim(raw)} }

func (EditScriptChange) Format() format.Format { return format.EditScript }
