package patchfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
)

// Role tells which side of a diff a loaded file plays.
type Role int

const (
	Original Role = iota
	Modified
)

func (r Role) String() string {
	if r == Modified {
		return "modified"
	}
	return "original"
}

// File is an immutable, fully loaded text file.
type File struct {
	url             string
	lines           []string
	endsWithNewline bool
	role            Role
}

// New creates a File from already split lines.
func New(lines []string, endsWithNewline bool, role Role) *File {
	return &File{lines: lines, endsWithNewline: endsWithNewline, role: role}
}

// Parse splits data into lines. An empty input has no lines and counts as
// newline terminated.
func Parse(data []byte, role Role) *File {
	content := string(data)
	if content == "" {
		return New(nil, true, role)
	}
	endsWithNewline := strings.HasSuffix(content, "\n")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	return New(lines, endsWithNewline, role)
}

// Load downloads URL with fs and parses it.
func Load(ctx context.Context, fs afs.Service, URL string, role Role) (*File, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load %v file %s: %w", role, URL, err)
	}
	file := Parse(data, role)
	file.url = URL
	return file, nil
}

// URL returns the location the file was loaded from, empty for in-memory files.
func (f *File) URL() string { return f.url }

func (f *File) Lines() []string { return f.lines }

// Len returns the number of lines.
func (f *File) Len() int { return len(f.lines) }

// Line returns the 1-based line n.
func (f *File) Line(n int) (string, bool) {
	if n < 1 || n > len(f.lines) {
		return "", false
	}
	return f.lines[n-1], true
}

func (f *File) EndsWithNewline() bool { return f.endsWithNewline }

func (f *File) Role() Role { return f.role }

// Bytes reassembles the file content.
func (f *File) Bytes() []byte {
	if len(f.lines) == 0 {
		return nil
	}
	content := strings.Join(f.lines, "\n")
	if f.endsWithNewline {
		content += "\n"
	}
	return []byte(content)
}
