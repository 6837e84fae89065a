package apply

import "bytes"

// writer emits lines separated by '\n' and holds back the terminator of the
// last line until finish decides on it.
type writer struct {
	buffer  *bytes.Buffer
	pending bool
}

func newWriter(buffer *bytes.Buffer) *writer {
	return &writer{buffer: buffer}
}

func (w *writer) writeLine(line string) {
	if w.pending {
		w.buffer.WriteByte('\n')
	}
	w.buffer.WriteString(line)
	w.pending = true
}

func (w *writer) finish(newline bool) {
	if w.pending && newline {
		w.buffer.WriteByte('\n')
	}
	w.pending = false
}
