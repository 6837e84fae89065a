package apply

import (
	"github.com/viant/textpatch/model/format"
	"github.com/viant/textpatch/model/hunk"
	"github.com/viant/textpatch/service/patchfile"
)

func unifiedData(item hunk.Hunk) *hunk.UnifiedData {
	data, ok := item.(*hunk.UnifiedData)
	if !ok {
		panic("apply: expected unified hunk, got " + item.Format().String())
	}
	return data
}

// unifiedBoundary returns the first source line a hunk touches; an empty
// range ("-2,0") means the hunk goes after its start line.
func unifiedBoundary(r hunk.Range) int {
	if r.Count() == 0 {
		return r.Start() + 1
	}
	return r.Start()
}

func (h *Hunks) applyUnified() error {
	c := newCursor()
	ordered := h.sorted(func(item hunk.Hunk) int { return unifiedData(item).F1Range().Start() })
	for _, item := range ordered {
		data := unifiedData(item)
		if err := h.seek(c, unifiedBoundary(data.F1Range())); err != nil {
			return err
		}
		var previous hunk.Line
		for _, line := range data.Lines() {
			var err error
			switch line.(type) {
			case hunk.UnifiedHeader:
			case hunk.UnifiedUnchanged:
				err = h.keep(c, line)
			case hunk.UnifiedDeleted:
				err = h.skip(c)
			case hunk.UnifiedInserted:
				err = h.insert(c, line)
			case hunk.NoNewline:
				c.mark(previous)
			default:
				panic(invalidLine(format.Unified, line))
			}
			if err != nil {
				return err
			}
			previous = line
		}
	}
	return h.finish(c, patchfile.Original)
}

func (h *Hunks) applyUnifiedReverse() error {
	c := newCursor()
	ordered := h.sorted(func(item hunk.Hunk) int { return unifiedData(item).F2Range().End() })
	for _, item := range ordered {
		data := unifiedData(item)
		if err := h.seek(c, unifiedBoundary(data.F2Range())); err != nil {
			return err
		}
		var previous hunk.Line
		for _, line := range data.Lines() {
			var err error
			switch line.(type) {
			case hunk.UnifiedHeader:
			case hunk.UnifiedUnchanged:
				err = h.keep(c, line)
			case hunk.UnifiedInserted:
				err = h.skip(c)
			case hunk.UnifiedDeleted:
				err = h.insert(c, line)
			case hunk.NoNewline:
				c.mark(previous)
			default:
				panic(invalidLine(format.Unified, line))
			}
			if err != nil {
				return err
			}
			previous = line
		}
	}
	return h.finish(c, patchfile.Modified)
}
