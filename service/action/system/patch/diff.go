package patch

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/viant/textpatch/model/format"
	"github.com/viant/textpatch/service/apply"
)

// DefaultContextLines is the number of context lines used when none is requested.
const DefaultContextLines = 3

const (
	noNewlineMarker  = `\ No newline at end of file`
	headerTimeLayout = "2006-01-02 15:04:05.000000000 -0700"
)

// ErrNoChange reports identical old and new content.
var ErrNoChange = errors.New("no change between old and new")

// DiffResult is a generated patch with its statistics.
type DiffResult struct {
	Patch string    `json:"patch"`
	Stats DiffStats `json:"stats"`
}

// GenerateDiff produces a unified or context diff between old and new file
// contents. Both file headers carry path and the at timestamp so that the
// patch can be applied back with the header selected destination.
func GenerateDiff(old, new []byte, path string, contextLines int, f format.Format, at time.Time) (DiffResult, error) {
	if bytes.Equal(old, new) {
		return DiffResult{}, ErrNoChange
	}
	if path == "" {
		path = "file"
	}
	if contextLines <= 0 {
		contextLines = DefaultContextLines
	}
	date := at.Format(headerTimeLayout)
	var patch string
	var err error
	switch f {
	case format.Unified, format.None:
		f = format.Unified
		patch, err = difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        splitLines(old),
			B:        splitLines(new),
			FromFile: path,
			FromDate: date,
			ToFile:   path,
			ToDate:   date,
			Context:  contextLines,
		})
	case format.Context:
		patch, err = difflib.GetContextDiffString(difflib.ContextDiff{
			A:        splitLines(old),
			B:        splitLines(new),
			FromFile: path,
			FromDate: date,
			ToFile:   path,
			ToDate:   date,
			Context:  contextLines,
		})
	default:
		return DiffResult{}, fmt.Errorf("%w: generating %v diffs", apply.ErrUnsupported, f)
	}
	if err != nil {
		return DiffResult{}, fmt.Errorf("diff generation: %w", err)
	}
	stats, err := Stat([]byte(patch))
	if err != nil {
		return DiffResult{}, err
	}
	result := DiffResult{Patch: patch}
	if len(stats) > 0 {
		result.Stats = stats[0].DiffStats
	}
	return result, nil
}

// splitLines returns newline terminated lines. A last line without newline
// carries the no-newline marker, so it only matches an equally unterminated line.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(data), "\n")
	last := len(lines) - 1
	if lines[last] == "" {
		return lines[:last]
	}
	lines[last] += "\n" + noNewlineMarker + "\n"
	return lines
}
