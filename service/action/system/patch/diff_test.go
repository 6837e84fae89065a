package patch

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/textpatch/model/format"
	"github.com/viant/textpatch/service/apply"
	"github.com/viant/textpatch/service/parser"
)

func TestGenerateDiff(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		name        string
		old         string
		new         string
		format      format.Format
		expectStats DiffStats
	}{
		{
			name:        "unified change and append",
			old:         "line1\nline2\nline3\n",
			new:         "line1\nline2 changed\nline3\nadded\n",
			format:      format.Unified,
			expectStats: DiffStats{Hunks: 1, Added: 1, Changed: 1},
		},
		{
			name:        "context change and append",
			old:         "line1\nline2\nline3\n",
			new:         "line1\nline2 changed\nline3\nadded\n",
			format:      format.Context,
			expectStats: DiffStats{Hunks: 1, Added: 1, Changed: 1},
		},
		{
			name:        "unified newline dropped",
			old:         "a\nb\n",
			new:         "a\nb",
			format:      format.Unified,
			expectStats: DiffStats{Hunks: 1, Changed: 1},
		},
		{
			name:        "context newline added",
			old:         "a\nb",
			new:         "a\nb\nc\n",
			format:      format.Context,
			expectStats: DiffStats{Hunks: 1, Added: 1, Changed: 1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fs := afs.New()
			URL := "mem://localhost/patch/diff/" + tc.format.String() + ".txt"
			result, err := GenerateDiff([]byte(tc.old), []byte(tc.new), URL, 3, tc.format, at)
			require.NoError(t, err)
			assert.Equal(t, tc.format, parser.Detect([]byte(result.Patch)))
			assert.Equal(t, tc.expectStats, result.Stats)
			assert.Contains(t, result.Patch, "2024-05-01 10:00:00.000000000 +0000")

			require.NoError(t, fs.Upload(context.Background(), URL, file.DefaultFileOsMode, strings.NewReader(tc.old)))
			hunks, err := parser.Parse([]byte(result.Patch), fs, nil)
			require.NoError(t, err)
			require.NoError(t, hunks.Apply(context.Background()))
			actual, err := fs.DownloadWithURL(context.Background(), URL)
			require.NoError(t, err)
			assert.Equal(t, tc.new, string(actual))

			hunks, err = parser.Parse([]byte(result.Patch), fs, &apply.Options{Reverse: true})
			require.NoError(t, err)
			require.NoError(t, hunks.Apply(context.Background()))
			actual, err = fs.DownloadWithURL(context.Background(), URL)
			require.NoError(t, err)
			assert.Equal(t, tc.old, string(actual))
		})
	}
}

func TestGenerateDiff_Errors(t *testing.T) {
	_, err := GenerateDiff([]byte("a\n"), []byte("a\n"), "", 0, format.Unified, time.Now())
	assert.ErrorIs(t, err, ErrNoChange)
	_, err = GenerateDiff([]byte("a\n"), []byte("b\n"), "", 0, format.EditScript, time.Now())
	assert.ErrorIs(t, err, apply.ErrUnsupported)
}

func TestStat(t *testing.T) {
	testCases := []struct {
		name   string
		patch  string
		expect []FileStat
	}{
		{
			name:   "unified",
			patch:  "--- a.txt\t2024-05-01 10:00:00.000000000 +0000\n+++ a.txt\t2024-05-01 10:00:00.000000000 +0000\n@@ -1,2 +1,3 @@\n-a\n+A\n b\n+c\n",
			expect: []FileStat{{Path: "a.txt", DiffStats: DiffStats{Hunks: 1, Added: 1, Changed: 1}}},
		},
		{
			name:   "normal",
			patch:  "1,2d0\n< a\n< b\n4c2\n< d\n---\n> D\n",
			expect: []FileStat{{DiffStats: DiffStats{Hunks: 2, Deleted: 2, Changed: 1}}},
		},
		{
			name:   "ed",
			patch:  "5a\nx\ny\n.\n2,3c\nB\n.\n",
			expect: []FileStat{{DiffStats: DiffStats{Hunks: 2, Added: 2, Changed: 1, Deleted: 1}}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := Stat([]byte(tc.patch))
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
	_, err := Stat([]byte("garbage"))
	assert.ErrorIs(t, err, parser.ErrUnknownFormat)
}
