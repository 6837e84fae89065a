package hunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/textpatch/model/format"
)

func mustContextRange(t *testing.T, raw string) ContextRange {
	line, err := NewContextRange(raw)
	require.NoError(t, err)
	return line
}

func texts(lines []Line) []string {
	var result []string
	for _, line := range lines {
		result = append(result, line.Raw())
	}
	return result
}

func TestHunk_AppendMismatchPanics(t *testing.T) {
	header, err := NewUnifiedHeader("@@ -1,2 +1,2 @@")
	require.NoError(t, err)
	data := NewUnifiedData(header)
	assert.Panics(t, func() { data.Append(NewNormalInsert("> x")) })
	assert.NotPanics(t, func() { data.Append(NewUnifiedInserted("+x")) })
	assert.NotPanics(t, func() { data.Append(NewNoNewline(`\ No newline at end of file`, format.Unified)) })
	assert.Panics(t, func() { data.Append(NewNoNewline(`\ No newline at end of file`, format.Context)) })
	assert.Len(t, data.Lines(), 3)
	assert.Equal(t, "x", data.Lines()[1].Text())
}

func TestContextData_Effective(t *testing.T) {
	testCases := []struct {
		name            string
		lines           []Line
		wantOmitted     bool
		wantEffective   []string
		wantFirstChange string
	}{
		{
			name: "insert only omits original",
			lines: []Line{
				NewContextSeparator("***************"),
				mustContextRange(t, "*** 1,2 ****"),
				mustContextRange(t, "--- 1,3 ----"),
				NewContextUnchanged("  a"),
				NewContextInserted("+ x", false),
				NewContextUnchanged("  b"),
			},
			wantOmitted:   true,
			wantEffective: []string{"  a", "+ x", "  b"},
		},
		{
			name: "delete only keeps original",
			lines: []Line{
				NewContextSeparator("***************"),
				mustContextRange(t, "*** 1,3 ****"),
				NewContextUnchanged("  a"),
				NewContextDeleted("- b", false),
				NewContextUnchanged("  c"),
				mustContextRange(t, "--- 1,2 ----"),
			},
			wantEffective: []string{"  a", "- b", "  c"},
		},
		{
			name: "change merges blocks",
			lines: []Line{
				NewContextSeparator("***************"),
				mustContextRange(t, "*** 1,4 ****"),
				NewContextUnchanged("  a"),
				NewContextDeleted("! b", true),
				NewContextDeleted("- c", false),
				NewContextUnchanged("  d"),
				mustContextRange(t, "--- 1,4 ----"),
				NewContextUnchanged("  a"),
				NewContextInserted("! B1", true),
				NewContextInserted("! B2", true),
				NewContextUnchanged("  d"),
			},
			wantEffective:   []string{"  a", "! b", "! B1", "! B2", "- c", "  d"},
			wantFirstChange: "B1",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := NewContextData()
			for _, line := range tc.lines {
				data.Append(line)
			}
			assert.Equal(t, tc.wantOmitted, data.OriginalOmitted())
			assert.Equal(t, tc.wantEffective, texts(data.Effective()))
			f1, ok := data.F1Range()
			assert.True(t, ok)
			assert.Equal(t, 1, f1.Start())
			if tc.wantFirstChange != "" {
				require.NotNil(t, data.ChangeAt(0))
				assert.Equal(t, tc.wantFirstChange, data.ChangeAt(0).Text())
				assert.Nil(t, data.ChangeAt(2))
			}
		})
	}
}

func TestLine_Text(t *testing.T) {
	testCases := []struct {
		name string
		line Line
		want string
	}{
		{name: "normal insert", line: NewNormalInsert("> hello"), want: "hello"},
		{name: "normal delete", line: NewNormalDelete("< bye"), want: "bye"},
		{name: "unified blank", line: NewUnifiedUnchanged(""), want: ""},
		{name: "context short blank", line: NewContextUnchanged(" "), want: ""},
		{name: "ed verbatim", line: NewEditScriptInsert("  spaced"), want: "  spaced"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.line.Text())
		})
	}
}
