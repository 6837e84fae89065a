package apply

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/viant/afs"
	"github.com/viant/textpatch/model/format"
	"github.com/viant/textpatch/model/hunk"
	"github.com/viant/textpatch/service/patchfile"
)

// Stats counts what an Apply did to the source file lines.
type Stats struct {
	Copied   int `json:"copied"`
	Inserted int `json:"inserted"`
	Removed  int `json:"removed"`
}

// Hunks is the ordered collection of same-format hunks plus the state needed
// to apply them.
type Hunks struct {
	format      format.Format
	data        []hunk.Hunk
	fs          afs.Service
	options     *Options
	file1Header string
	file2Header string
	file1       *Header
	file2       *Header
	file        *patchfile.File
	buffer      bytes.Buffer
	output      *writer
	outputURL   string
	backupURL   string
	stats       Stats
}

// New creates an empty Hunks of format f. It panics when f is not a concrete dialect.
func New(f format.Format, fs afs.Service, options *Options) *Hunks {
	if !f.IsValid() {
		panic("apply: Hunks format can not be format.None")
	}
	if fs == nil {
		fs = afs.New()
	}
	if options == nil {
		options = &Options{}
	}
	return &Hunks{format: f, fs: fs, options: options}
}

func (h *Hunks) Format() format.Format { return h.format }

func (h *Hunks) Options() *Options { return h.options }

// SetFile1Header sets the original side file header line (unified/context).
func (h *Hunks) SetFile1Header(line string) { h.file1Header = line }

// SetFile2Header sets the modified side file header line (unified/context).
func (h *Hunks) SetFile2Header(line string) { h.file2Header = line }

// IsEmpty reports whether no hunk was added.
func (h *Hunks) IsEmpty() bool { return len(h.data) == 0 }

// Len returns the number of hunks.
func (h *Hunks) Len() int { return len(h.data) }

// Hunks returns the hunks in insertion order.
func (h *Hunks) Hunks() []hunk.Hunk { return h.data }

// AddHunk appends a hunk; it panics when the hunk format differs.
func (h *Hunks) AddHunk(item hunk.Hunk) {
	if item.Format() != h.format {
		panic(fmt.Sprintf("apply: only %v hunks are allowed, got %v", h.format, item.Format()))
	}
	h.data = append(h.data, item)
}

// AddLine appends line to the last hunk; it panics when the line format
// differs or there is no hunk yet.
func (h *Hunks) AddLine(line hunk.Line) {
	if line.Format() != h.format {
		panic(fmt.Sprintf("apply: adding %v line to %v hunks is not allowed", line.Format(), h.format))
	}
	if h.IsEmpty() {
		panic("apply: can not add a line to empty Hunks")
	}
	h.data[len(h.data)-1].Append(line)
}

// File1 returns the parsed original side header, available after Apply.
func (h *Hunks) File1() *Header { return h.file1 }

// File2 returns the parsed modified side header, available after Apply.
func (h *Hunks) File2() *Header { return h.file2 }

// Source returns the file the hunks were applied to, available after Apply.
func (h *Hunks) Source() *patchfile.File { return h.file }

// Destination returns the URL the result was written to.
func (h *Hunks) Destination() string { return h.outputURL }

// BackupURL returns the backup location, empty when no backup was taken.
func (h *Hunks) BackupURL() string { return h.backupURL }

// Output returns the written content.
func (h *Hunks) Output() []byte { return h.buffer.Bytes() }

func (h *Hunks) Stats() Stats { return h.stats }

// Apply prepares the source and destination, applies every hunk in the
// configured direction and writes the result. It is not idempotent.
func (h *Hunks) Apply(ctx context.Context) error {
	if h.format == format.EditScript && h.options.Reverse {
		return fmt.Errorf("%w: ed format + reverse option is not possible", ErrUnsupported)
	}
	if err := h.prepare(ctx); err != nil {
		return err
	}
	var err error
	switch h.format {
	case format.Normal:
		if h.options.Reverse {
			err = h.applyNormalReverse()
		} else {
			err = h.applyNormal()
		}
	case format.Unified:
		if h.options.Reverse {
			err = h.applyUnifiedReverse()
		} else {
			err = h.applyUnified()
		}
	case format.Context:
		if h.options.Reverse {
			err = h.applyContextReverse()
		} else {
			err = h.applyContext()
		}
	case format.EditScript:
		err = h.applyEditScript()
	default:
		panic("apply: unhandled patch format")
	}
	if err != nil {
		return err
	}
	return h.publish(ctx)
}

// sorted returns a copy of the hunks ordered by key.
func (h *Hunks) sorted(key func(item hunk.Hunk) int) []hunk.Hunk {
	result := make([]hunk.Hunk, len(h.data))
	copy(result, h.data)
	sort.SliceStable(result, func(i, j int) bool { return key(result[i]) < key(result[j]) })
	return result
}

// cursor walks the source file; line is the next 1-based line to read.
type cursor struct {
	line      int
	noNewline int
	// tail is set while the last written line is the verbatim copy of the
	// final source line.
	tail bool
}

func newCursor() *cursor { return &cursor{line: 1} }

// seek copies source lines from the cursor up to, not including, boundary.
func (h *Hunks) seek(c *cursor, boundary int) error {
	if c.line > boundary {
		return fmt.Errorf("%w: hunk at line %d, already at line %d", ErrOverlap, boundary, c.line)
	}
	return h.copyUntil(c, boundary)
}

func (h *Hunks) copyUntil(c *cursor, boundary int) error {
	for c.line < boundary {
		line, ok := h.file.Line(c.line)
		if !ok {
			return h.outOfRange(c.line)
		}
		h.output.writeLine(line)
		h.stats.Copied++
		c.tail = c.line == h.file.Len()
		c.line++
	}
	return nil
}

// drain writes every remaining source line.
func (h *Hunks) drain(c *cursor) error {
	return h.copyUntil(c, h.file.Len()+1)
}

// skip consumes one source line without writing it.
func (h *Hunks) skip(c *cursor) error {
	if c.line > h.file.Len() {
		return h.outOfRange(c.line)
	}
	c.line++
	h.stats.Removed++
	return nil
}

// keep writes an unchanged line carried by the hunk and consumes its source line.
func (h *Hunks) keep(c *cursor, line hunk.Line) error {
	if c.line > h.file.Len() {
		return h.outOfRange(c.line)
	}
	h.output.writeLine(line.Text())
	c.line++
	c.tail = false
	h.stats.Copied++
	return nil
}

// insert writes a line carried by the hunk that is not in the source file.
func (h *Hunks) insert(c *cursor, line hunk.Line) error {
	h.output.writeLine(line.Text())
	c.tail = false
	h.stats.Inserted++
	return nil
}

// mark counts a no-newline marker. A marker after an unchanged line applies to
// both sides of the diff and counts twice.
func (c *cursor) mark(previous hunk.Line) {
	switch previous.(type) {
	case hunk.UnifiedUnchanged, hunk.ContextUnchanged:
		c.noNewline += 2
	default:
		c.noNewline++
	}
}

// finish drains the source and resolves the terminator of the last line. A
// copied final source line keeps its own terminator. Otherwise no marker means
// a newline; a single marker means a newline only when the loaded file plays
// the relevant role and itself lacks one; more markers mean none.
func (h *Hunks) finish(c *cursor, relevant patchfile.Role) error {
	if err := h.drain(c); err != nil {
		return err
	}
	newline := false
	switch {
	case c.tail:
		newline = h.file.EndsWithNewline()
	case c.noNewline == 0:
		newline = true
	case c.noNewline == 1:
		newline = h.file.Role() == relevant && !h.file.EndsWithNewline()
	}
	h.output.finish(newline)
	return nil
}

func (h *Hunks) outOfRange(line int) error {
	return fmt.Errorf("%w: line %d of %s (%d lines)", ErrOutOfRange, line, h.file.URL(), h.file.Len())
}

func invalidLine(f format.Format, line hunk.Line) string {
	return fmt.Sprintf("apply: invalid %v line %q in %v hunk", line.Format(), line.Raw(), f)
}
