package hunk

import (
	"fmt"

	"github.com/viant/textpatch/model/format"
)

// Hunk is one change region. Implementations are NormalData, UnifiedData,
// ContextData and EditScriptData.
type Hunk interface {
	// Format returns the dialect of the hunk.
	Format() format.Format
	// Append adds the next diff line; it panics when the line dialect differs.
	Append(line Line)
	// Lines returns every line in diff order.
	Lines() []Line
	hunk()
}

func ensureFormat(expect format.Format, line Line) {
	if line.Format() != expect {
		panic(fmt.Sprintf("hunk: only %v lines are allowed in %v hunk, got %v line %q", expect, expect, line.Format(), line.Raw()))
	}
}

// NormalData is a normal diff hunk: one command line plus "<", "---" and ">" lines.
type NormalData struct {
	left  Range
	right Range
	kind  Kind
	lines []Line
}

// NewNormalData starts a hunk from its command line, which becomes its first line.
func NewNormalData(header NormalRange) *NormalData {
	return &NormalData{left: header.Left, right: header.Right, kind: header.Kind, lines: []Line{header}}
}

func (d *NormalData) Format() format.Format { return format.Normal }

func (d *NormalData) Append(line Line) {
	ensureFormat(format.Normal, line)
	d.lines = append(d.lines, line)
}

func (d *NormalData) Lines() []Line { return d.lines }

// Left returns the range in the original file.
func (d *NormalData) Left() Range { return d.left }

// Right returns the range in the modified file.
func (d *NormalData) Right() Range { return d.right }

func (d *NormalData) Kind() Kind { return d.kind }

func (d *NormalData) hunk() {}

// UnifiedData is a unified diff hunk.
type UnifiedData struct {
	f1    Range
	f2    Range
	lines []Line
}

// NewUnifiedData starts a hunk from its "@@" line, which becomes its first line.
func NewUnifiedData(header UnifiedHeader) *UnifiedData {
	return &UnifiedData{f1: header.F1, f2: header.F2, lines: []Line{header}}
}

func (d *UnifiedData) Format() format.Format { return format.Unified }

func (d *UnifiedData) Append(line Line) {
	ensureFormat(format.Unified, line)
	d.lines = append(d.lines, line)
}

func (d *UnifiedData) Lines() []Line { return d.lines }

func (d *UnifiedData) F1Range() Range { return d.f1 }

func (d *UnifiedData) F2Range() Range { return d.f2 }

func (d *UnifiedData) hunk() {}

// EditScriptData is one ed command with its text lines (the "." terminator is
// not stored).
type EditScriptData struct {
	rng   Range
	kind  Kind
	lines []Line
}

// NewEditScriptData starts a hunk from its command line, which becomes its first line.
func NewEditScriptData(header EditScriptRange) *EditScriptData {
	return &EditScriptData{rng: header.Range, kind: header.Kind, lines: []Line{header}}
}

func (d *EditScriptData) Format() format.Format { return format.EditScript }

func (d *EditScriptData) Append(line Line) {
	ensureFormat(format.EditScript, line)
	d.lines = append(d.lines, line)
}

func (d *EditScriptData) Lines() []Line { return d.lines }

func (d *EditScriptData) Range() Range { return d.rng }

func (d *EditScriptData) Kind() Kind { return d.kind }

func (d *EditScriptData) hunk() {}
