package parser

import (
	"strings"

	"github.com/viant/afs"
	"github.com/viant/textpatch/model/format"
	"github.com/viant/textpatch/model/hunk"
	"github.com/viant/textpatch/service/apply"
)

// Detect returns the dialect of the first recognizable line of data, or format.None.
func Detect(data []byte) format.Format {
	lines := splitLines(data)
	for i, line := range lines {
		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}
		switch classify(line) {
		case contextSeparatorCode:
			return format.Context
		case unifiedHunkCode:
			return format.Unified
		case normalCommandCode:
			return format.Normal
		case editScriptCommandCode:
			return format.EditScript
		case contextHeaderCode:
			if classify(next) == originalHeaderCode {
				return format.Context
			}
		case originalHeaderCode:
			if classify(next) == modifiedHeaderCode {
				return format.Unified
			}
		}
	}
	return format.None
}

// Parse detects the dialect of data and reads its hunks.
func Parse(data []byte, fs afs.Service, options *apply.Options) (*apply.Hunks, error) {
	return ParseAs(data, Detect(data), fs, options)
}

// ParseAs reads data as a diff of dialect f. Lines before the first hunk are ignored.
func ParseAs(data []byte, f format.Format, fs afs.Service, options *apply.Options) (*apply.Hunks, error) {
	if !f.IsValid() {
		return nil, ErrUnknownFormat
	}
	p := &parser{lines: splitLines(data), hunks: apply.New(f, fs, options)}
	var err error
	switch f {
	case format.Normal:
		err = p.parseNormal()
	case format.Unified:
		err = p.parseUnified()
	case format.Context:
		err = p.parseContext()
	case format.EditScript:
		err = p.parseEditScript()
	}
	if err != nil {
		return nil, err
	}
	if p.hunks.IsEmpty() {
		return nil, ErrUnknownFormat
	}
	return p.hunks, nil
}

type parser struct {
	lines []string
	hunks *apply.Hunks
}

func splitLines(data []byte) []string {
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

func (p *parser) parseNormal() error {
	for i, line := range p.lines {
		if classify(line) == normalCommandCode {
			header, err := hunk.NewNormalRange(line)
			if err != nil {
				return malformed(i+1, "%v", err)
			}
			p.hunks.AddHunk(hunk.NewNormalData(header))
			continue
		}
		if p.hunks.IsEmpty() {
			continue
		}
		switch {
		case line == "---":
			p.hunks.AddLine(hunk.NewNormalSeparator(line))
		case strings.HasPrefix(line, "<"):
			p.hunks.AddLine(hunk.NewNormalDelete(line))
		case strings.HasPrefix(line, ">"):
			p.hunks.AddLine(hunk.NewNormalInsert(line))
		case strings.HasPrefix(line, `\`):
			p.hunks.AddLine(hunk.NewNoNewline(line, format.Normal))
		default:
			return malformed(i+1, "unexpected normal diff line %q", line)
		}
	}
	return nil
}

func (p *parser) parseUnified() error {
	var original, modified int
	for i, line := range p.lines {
		if original > 0 || modified > 0 {
			switch {
			case line == "", strings.HasPrefix(line, " "):
				p.hunks.AddLine(hunk.NewUnifiedUnchanged(line))
				original--
				modified--
			case strings.HasPrefix(line, "-"):
				p.hunks.AddLine(hunk.NewUnifiedDeleted(line))
				original--
			case strings.HasPrefix(line, "+"):
				p.hunks.AddLine(hunk.NewUnifiedInserted(line))
				modified--
			case strings.HasPrefix(line, `\`):
				p.hunks.AddLine(hunk.NewNoNewline(line, format.Unified))
			default:
				return malformed(i+1, "unexpected unified diff line %q", line)
			}
			if original < 0 || modified < 0 {
				return malformed(i+1, "hunk is longer than its header")
			}
			continue
		}
		switch classify(line) {
		case unifiedHunkCode:
			header, err := hunk.NewUnifiedHeader(line)
			if err != nil {
				return malformed(i+1, "%v", err)
			}
			p.hunks.AddHunk(hunk.NewUnifiedData(header))
			original, modified = header.F1.Count(), header.F2.Count()
		case noNewlineCode:
			if p.hunks.IsEmpty() {
				return malformed(i+1, "no newline marker outside of a hunk")
			}
			p.hunks.AddLine(hunk.NewNoNewline(line, format.Unified))
		case originalHeaderCode:
			if !p.hunks.IsEmpty() {
				return malformed(i+1, "patches touching more than one file are not supported")
			}
			p.hunks.SetFile1Header(line)
		case modifiedHeaderCode:
			if !p.hunks.IsEmpty() {
				return malformed(i+1, "patches touching more than one file are not supported")
			}
			p.hunks.SetFile2Header(line)
		}
	}
	if original > 0 || modified > 0 {
		return malformed(len(p.lines), "unexpected end of patch")
	}
	return nil
}

const (
	outsideHunk = iota
	originalSide
	modifiedSide
)

func (p *parser) parseContext() error {
	side := outsideHunk
	inHunks := false
	for i, line := range p.lines {
		code := classify(line)
		if code == contextSeparatorCode {
			p.hunks.AddHunk(hunk.NewContextData())
			p.hunks.AddLine(hunk.NewContextSeparator(line))
			side, inHunks = outsideHunk, true
			continue
		}
		if !inHunks {
			switch code {
			case contextHeaderCode:
				p.hunks.SetFile1Header(line)
			case originalHeaderCode:
				p.hunks.SetFile2Header(line)
			}
			continue
		}
		if code == noNewlineCode && side != outsideHunk {
			p.hunks.AddLine(hunk.NewNoNewline(line, format.Context))
			continue
		}
		if code == contextHeaderCode || code == originalHeaderCode {
			if r, err := hunk.NewContextRange(line); err == nil {
				switch {
				case side == outsideHunk && !r.Modified:
					side = originalSide
				case side == originalSide && r.Modified:
					side = modifiedSide
				default:
					return malformed(i+1, "unexpected context range line %q", line)
				}
				p.hunks.AddLine(r)
				continue
			}
		}
		switch {
		case side == outsideHunk:
			return malformed(i+1, "missing context range line before %q", line)
		case strings.HasPrefix(line, "  "):
			p.hunks.AddLine(hunk.NewContextUnchanged(line))
		case strings.HasPrefix(line, "! "):
			if side == modifiedSide {
				p.hunks.AddLine(hunk.NewContextInserted(line, true))
			} else {
				p.hunks.AddLine(hunk.NewContextDeleted(line, true))
			}
		case strings.HasPrefix(line, "- "):
			if side != originalSide {
				return malformed(i+1, "deleted line on the modified side")
			}
			p.hunks.AddLine(hunk.NewContextDeleted(line, false))
		case strings.HasPrefix(line, "+ "):
			if side != modifiedSide {
				return malformed(i+1, "inserted line on the original side")
			}
			p.hunks.AddLine(hunk.NewContextInserted(line, false))
		case side == modifiedSide && code == contextHeaderCode:
			return malformed(i+1, "patches touching more than one file are not supported")
		case side == modifiedSide:
			return nil
		default:
			return malformed(i+1, "unexpected context diff line %q", line)
		}
	}
	if side == originalSide {
		return malformed(len(p.lines), "unexpected end of patch")
	}
	return nil
}

// dotSubstitution follows a ".." text line to turn it back into a lone dot.
const dotSubstitution = "s/.//"

func (p *parser) parseEditScript() error {
	var kind hunk.Kind
	text := false
	for i := 0; i < len(p.lines); i++ {
		line := p.lines[i]
		if text {
			switch {
			case line == ".." && p.escapedDot(i):
				p.addEditScriptText(kind, ".")
				i += 2
				// "a" continues the same text block after the dot line.
				if text = i+1 < len(p.lines) && p.lines[i+1] == "a"; text {
					i++
				}
			case line == ".":
				text = false
			default:
				p.addEditScriptText(kind, line)
			}
			continue
		}
		if classify(line) == editScriptCommandCode {
			header, err := hunk.NewEditScriptRange(line)
			if err != nil {
				return malformed(i+1, "%v", err)
			}
			p.hunks.AddHunk(hunk.NewEditScriptData(header))
			kind = header.Kind
			text = kind != hunk.Delete
			continue
		}
		switch line {
		case "", "w", "q", "wq":
			continue
		}
		if !p.hunks.IsEmpty() {
			return malformed(i+1, "unexpected ed command %q", line)
		}
	}
	if text {
		return malformed(len(p.lines), "missing '.' after ed text")
	}
	return nil
}

// escapedDot reports whether the ".." line at i is followed by "." and the
// substitution removing its extra dot.
func (p *parser) escapedDot(i int) bool {
	return i+2 < len(p.lines) && p.lines[i+1] == "." && p.lines[i+2] == dotSubstitution
}

func (p *parser) addEditScriptText(kind hunk.Kind, line string) {
	if kind == hunk.Change {
		p.hunks.AddLine(hunk.NewEditScriptChange(line))
		return
	}
	p.hunks.AddLine(hunk.NewEditScriptInsert(line))
}
