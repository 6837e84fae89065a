package parser_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/textpatch/model/format"
	"github.com/viant/textpatch/service/apply"
	"github.com/viant/textpatch/service/parser"
)

// TestParse_MatchesGitApply applies the same unified diff with both the hunks
// engine and go-gitdiff and expects identical results.
func TestParse_MatchesGitApply(t *testing.T) {
	testCases := []struct {
		name string
		old  string
		new  string
	}{
		{name: "lao tzu", old: lao, new: tzu},
		{name: "append without newline", old: "a\nb\nc\n", new: "a\nB\nc\nd"},
		{name: "restore newline", old: "1\n2\n3", new: "1\n2\n3\n"},
		{name: "far apart", old: strings.Repeat("x\n", 20) + "y\n", new: "w\n" + strings.Repeat("x\n", 20)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			patch, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        markedLines(tc.old),
				B:        markedLines(tc.new),
				FromFile: "old.txt",
				FromDate: "2024-05-01 10:00:00",
				ToFile:   "new.txt",
				ToDate:   "2024-05-01 10:00:00",
				Context:  3,
			})
			require.NoError(t, err)

			files, _, err := gitdiff.Parse(strings.NewReader(patch))
			require.NoError(t, err)
			require.Len(t, files, 1)
			expect := &bytes.Buffer{}
			require.NoError(t, gitdiff.Apply(expect, strings.NewReader(tc.old), files[0]))
			assert.Equal(t, tc.new, expect.String())

			ctx := context.Background()
			fs := afs.New()
			URL := "mem://localhost/parser/gitdiff/" + strings.ReplaceAll(tc.name, " ", "_") + ".txt"
			require.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(tc.old)))
			hunks, err := parser.ParseAs([]byte(patch), format.Unified, fs, &apply.Options{File: URL})
			require.NoError(t, err)
			require.NoError(t, hunks.Apply(ctx))
			assert.Equal(t, expect.String(), string(hunks.Output()))
		})
	}
}

func markedLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	last := len(lines) - 1
	if lines[last] == "" {
		return lines[:last]
	}
	lines[last] += "\n\\ No newline at end of file\n"
	return lines
}
