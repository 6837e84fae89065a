package apply

import (
	"github.com/viant/textpatch/model/format"
	"github.com/viant/textpatch/model/hunk"
	"github.com/viant/textpatch/service/patchfile"
)

func editScriptData(item hunk.Hunk) *hunk.EditScriptData {
	data, ok := item.(*hunk.EditScriptData)
	if !ok {
		panic("apply: expected ed hunk, got " + item.Format().String())
	}
	return data
}

// applyEditScript runs the ed commands against the source file. diff -e lists
// commands bottom up; they are applied in ascending order of their range end.
func (h *Hunks) applyEditScript() error {
	c := newCursor()
	ordered := h.sorted(func(item hunk.Hunk) int { return editScriptData(item).Range().End() })
	for _, item := range ordered {
		data := editScriptData(item)
		boundary := data.Range().Start()
		if data.Kind() == hunk.Insert {
			boundary++
		}
		if err := h.seek(c, boundary); err != nil {
			return err
		}
		for _, line := range data.Lines() {
			var err error
			switch line.(type) {
			case hunk.EditScriptRange:
				if data.Kind() == hunk.Insert {
					continue
				}
				for i := 0; i < data.Range().Count() && err == nil; i++ {
					err = h.skip(c)
				}
			case hunk.EditScriptInsert, hunk.EditScriptChange:
				err = h.insert(c, line)
			case hunk.NoNewline:
				c.mark(nil)
			default:
				panic(invalidLine(format.EditScript, line))
			}
			if err != nil {
				return err
			}
		}
	}
	return h.finish(c, patchfile.Original)
}
