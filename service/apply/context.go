package apply

import (
	"github.com/viant/textpatch/model/format"
	"github.com/viant/textpatch/model/hunk"
	"github.com/viant/textpatch/service/patchfile"
)

func contextData(item hunk.Hunk) *hunk.ContextData {
	data, ok := item.(*hunk.ContextData)
	if !ok {
		panic("apply: expected context hunk, got " + item.Format().String())
	}
	return data
}

func contextRange(data *hunk.ContextData, modified bool) hunk.Range {
	get := data.F1Range
	if modified {
		get = data.F2Range
	}
	r, ok := get()
	if !ok {
		panic("apply: context hunk without range line")
	}
	return r
}

// consumes reports whether any effective line reads the source file in the
// given direction.
func consumes(lines []hunk.Line, reverse bool) bool {
	for _, line := range lines {
		switch line.(type) {
		case hunk.ContextUnchanged:
			return true
		case hunk.ContextDeleted:
			if !reverse {
				return true
			}
		case hunk.ContextInserted:
			if reverse {
				return true
			}
		}
	}
	return false
}

func (h *Hunks) applyContext() error {
	return h.applyContextLines(false)
}

func (h *Hunks) applyContextReverse() error {
	return h.applyContextLines(true)
}

func (h *Hunks) applyContextLines(reverse bool) error {
	c := newCursor()
	ordered := h.sorted(func(item hunk.Hunk) int { return contextRange(contextData(item), false).Start() })
	for _, item := range ordered {
		data := contextData(item)
		lines := data.Effective()
		boundary := contextRange(data, reverse).Start()
		if !consumes(lines, reverse) {
			boundary++
		}
		if err := h.seek(c, boundary); err != nil {
			return err
		}
		var previous hunk.Line
		for _, line := range lines {
			var err error
			switch line.(type) {
			case hunk.ContextUnchanged:
				err = h.keep(c, line)
			case hunk.ContextDeleted:
				if reverse {
					err = h.insert(c, line)
				} else {
					err = h.skip(c)
				}
			case hunk.ContextInserted:
				if reverse {
					err = h.skip(c)
				} else {
					err = h.insert(c, line)
				}
			case hunk.NoNewline:
				c.mark(previous)
			default:
				panic(invalidLine(format.Context, line))
			}
			if err != nil {
				return err
			}
			previous = line
		}
	}
	if reverse {
		return h.finish(c, patchfile.Modified)
	}
	return h.finish(c, patchfile.Original)
}
