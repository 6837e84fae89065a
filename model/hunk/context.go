package hunk

import "github.com/viant/textpatch/model/format"

// ContextData is a context diff hunk. Lines up to the "--- c,d ----" range line
// form the original sub-list; that line and everything after it form the
// modified sub-list.
//
// diff(1) prints both range lines even when a side has nothing to show; such a
// side is a placeholder holding only its range line. Whether the original side
// is a placeholder is resolved once, when the modified range line arrives.
type ContextData struct {
	f1              Range
	f2              Range
	hasF1           bool
	hasF2           bool
	original        []Line
	modified        []Line
	originalOmitted bool
}

func NewContextData() *ContextData { return &ContextData{} }

func (d *ContextData) Format() format.Format { return format.Context }

func (d *ContextData) Append(line Line) {
	ensureFormat(format.Context, line)
	if r, ok := line.(ContextRange); ok {
		if r.Modified {
			d.f2, d.hasF2 = r.Range, true
			d.originalOmitted = !hasContent(d.original)
			d.modified = append(d.modified, line)
			return
		}
		d.f1, d.hasF1 = r.Range, true
	}
	if d.hasF2 {
		d.modified = append(d.modified, line)
		return
	}
	d.original = append(d.original, line)
}

func (d *ContextData) Lines() []Line {
	result := make([]Line, 0, len(d.original)+len(d.modified))
	result = append(result, d.original...)
	return append(result, d.modified...)
}

// F1Range returns the original side range, if its range line was read.
func (d *ContextData) F1Range() (Range, bool) { return d.f1, d.hasF1 }

// F2Range returns the modified side range, if its range line was read.
func (d *ContextData) F2Range() (Range, bool) { return d.f2, d.hasF2 }

func (d *ContextData) OriginalLines() []Line { return d.original }

func (d *ContextData) ModifiedLines() []Line { return d.modified }

// OriginalOmitted reports whether the original side is a placeholder.
func (d *ContextData) OriginalOmitted() bool { return d.originalOmitted }

// ChangeAt returns the index-th "!" line of the modified side, or nil.
func (d *ContextData) ChangeAt(index int) Line {
	for _, line := range d.modified {
		if inserted, ok := line.(ContextInserted); ok && inserted.IsChange {
			if index == 0 {
				return line
			}
			index--
		}
	}
	return nil
}

// Effective returns the hunk as a single sequence in file order: unchanged,
// deleted and inserted lines plus no-newline markers. A placeholder side
// contributes nothing; otherwise both sides are merged, a block of "!" lines
// from the original side being followed by the matching block of the modified side.
func (d *ContextData) Effective() []Line {
	original := content(d.original)
	modified := content(d.modified)
	if d.originalOmitted {
		return modified
	}
	if len(modified) == 0 {
		return original
	}
	result := make([]Line, 0, len(original)+len(modified))
	i, j := 0, 0
	for i < len(original) || j < len(modified) {
		switch {
		case i < len(original) && isNoNewline(original[i]):
			result = append(result, original[i])
			i++
		case j < len(modified) && isNoNewline(modified[j]):
			result = append(result, modified[j])
			j++
		case i < len(original) && isDeleted(original[i], false):
			result = append(result, original[i])
			i++
		case j < len(modified) && isInserted(modified[j], false):
			result = append(result, modified[j])
			j++
		case i < len(original) && isDeleted(original[i], true),
			j < len(modified) && isInserted(modified[j], true):
			for i < len(original) && (isDeleted(original[i], true) || isNoNewline(original[i])) {
				result = append(result, original[i])
				i++
			}
			for j < len(modified) && (isInserted(modified[j], true) || isNoNewline(modified[j])) {
				result = append(result, modified[j])
				j++
			}
		default:
			if i < len(original) {
				result = append(result, original[i])
			} else {
				result = append(result, modified[j])
			}
			i++
			j++
		}
	}
	return result
}

func (d *ContextData) hunk() {}

func hasContent(lines []Line) bool {
	return len(content(lines)) > 0
}

// content drops the structural range and separator lines.
func content(lines []Line) []Line {
	var result []Line
	for _, line := range lines {
		switch line.(type) {
		case ContextRange, ContextSeparator:
			continue
		}
		result = append(result, line)
	}
	return result
}

func isNoNewline(line Line) bool {
	_, ok := line.(NoNewline)
	return ok
}

func isDeleted(line Line, change bool) bool {
	deleted, ok := line.(ContextDeleted)
	return ok && deleted.IsChange == change
}

func isInserted(line Line, change bool) bool {
	inserted, ok := line.(ContextInserted)
	return ok && inserted.IsChange == change
}
