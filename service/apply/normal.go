package apply

import (
	"github.com/viant/textpatch/model/format"
	"github.com/viant/textpatch/model/hunk"
	"github.com/viant/textpatch/service/patchfile"
)

func normalData(item hunk.Hunk) *hunk.NormalData {
	data, ok := item.(*hunk.NormalData)
	if !ok {
		panic("apply: expected normal hunk, got " + item.Format().String())
	}
	return data
}

func (h *Hunks) applyNormal() error {
	c := newCursor()
	ordered := h.sorted(func(item hunk.Hunk) int { return normalData(item).Right().Start() })
	for _, item := range ordered {
		data := normalData(item)
		boundary := data.Left().Start()
		if data.Kind() == hunk.Insert {
			boundary++
		}
		if err := h.seek(c, boundary); err != nil {
			return err
		}
		var previous hunk.Line
		for _, line := range data.Lines() {
			var err error
			switch line.(type) {
			case hunk.NormalRange, hunk.NormalSeparator:
			case hunk.NormalDelete:
				err = h.skip(c)
			case hunk.NormalInsert:
				err = h.insert(c, line)
			case hunk.NoNewline:
				c.mark(previous)
			default:
				panic(invalidLine(format.Normal, line))
			}
			if err != nil {
				return err
			}
			previous = line
		}
	}
	return h.finish(c, patchfile.Original)
}

func (h *Hunks) applyNormalReverse() error {
	c := newCursor()
	ordered := h.sorted(func(item hunk.Hunk) int { return normalData(item).Left().Start() })
	for _, item := range ordered {
		data := normalData(item)
		boundary := data.Right().Start()
		if data.Kind() == hunk.Delete {
			boundary++
		}
		if err := h.seek(c, boundary); err != nil {
			return err
		}
		var previous hunk.Line
		for _, line := range data.Lines() {
			var err error
			switch line.(type) {
			case hunk.NormalRange, hunk.NormalSeparator:
			case hunk.NormalInsert:
				err = h.skip(c)
			case hunk.NormalDelete:
				err = h.insert(c, line)
			case hunk.NoNewline:
				c.mark(previous)
			default:
				panic(invalidLine(format.Normal, line))
			}
			if err != nil {
				return err
			}
			previous = line
		}
	}
	return h.finish(c, patchfile.Modified)
}
