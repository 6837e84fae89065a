package hunk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/textpatch/model/format"
)

func TestNewRange(t *testing.T) {
	for _, f := range []format.Format{format.Normal, format.Context, format.EditScript} {
		assert.Panics(t, func() { NewRange(5, 3, f) }, f.String())
		assert.NotPanics(t, func() { NewRange(3, 3, f) }, f.String())
	}
	assert.NotPanics(t, func() { NewRange(5, 3, format.Unified) })
	assert.NotPanics(t, func() { NewRange(3, 5, format.Unified) })
}

func TestRange_End(t *testing.T) {
	testCases := []struct {
		name string
		rng  Range
		want int
	}{
		{name: "unified adds count", rng: NewRange(5, 3, format.Unified), want: 8},
		{name: "normal absolute", rng: NewRange(2, 4, format.Normal), want: 4},
		{name: "context absolute", rng: NewRange(3, 5, format.Context), want: 5},
		{name: "ed absolute", rng: NewRange(7, 7, format.EditScript), want: 7},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rng.End())
		})
	}
	assert.Panics(t, func() { Range{}.End() })
}

func TestParseContextRange(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{name: "pair", input: "3,5", wantStart: 3, wantEnd: 5},
		{name: "single", input: "7", wantStart: 7, wantEnd: 7},
		{name: "original line", input: "*** 1,4 ****", wantStart: 1, wantEnd: 4},
		{name: "modified line", input: "--- 9 ----", wantStart: 9, wantEnd: 9},
		{name: "non numeric", input: "*** a,4 ****", wantErr: true},
		{name: "token count", input: "*** 1,4", wantErr: true},
		{name: "three numbers", input: "1,2,3", wantErr: true},
		{name: "reversed", input: "5,3", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseContextRange(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRange))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStart, got.Start())
			assert.Equal(t, tc.wantEnd, got.End())
			assert.Equal(t, format.Context, got.Format())
		})
	}
}

func TestParseUnifiedRange(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantStart int
		wantCount int
		wantErr   bool
	}{
		{name: "old side", input: "-1,3", wantStart: 1, wantCount: 3},
		{name: "new side", input: "+4,0", wantStart: 4, wantCount: 0},
		{name: "single", input: "-3", wantStart: 3, wantCount: 1},
		{name: "garbage", input: "-x,1", wantErr: true},
		{name: "empty", input: "+", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseUnifiedRange(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStart, got.Start())
			assert.Equal(t, tc.wantCount, got.Count())
			assert.Equal(t, tc.wantStart+tc.wantCount, got.End())
		})
	}
}

func TestParseEditScript(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantStart int
		wantEnd   int
		wantKind  Kind
		wantErr   bool
	}{
		{name: "delete", input: "4,6d", wantStart: 4, wantEnd: 6, wantKind: Delete},
		{name: "insert", input: "10a", wantStart: 10, wantEnd: 10, wantKind: Insert},
		{name: "change", input: "2c\n", wantStart: 2, wantEnd: 2, wantKind: Change},
		{name: "bad number", input: "4,zd", wantErr: true},
		{name: "bad command", input: "4,6x", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, err := NewEditScriptRange(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStart, line.Range.Start())
			assert.Equal(t, tc.wantEnd, line.Range.End())
			assert.Equal(t, tc.wantKind, line.Kind)
		})
	}
}

func TestParseNormalHeader(t *testing.T) {
	left, right, kind, err := ParseNormalHeader("2,3c5")
	require.NoError(t, err)
	assert.Equal(t, 2, left.Start())
	assert.Equal(t, 3, left.End())
	assert.Equal(t, 5, right.Start())
	assert.Equal(t, 5, right.End())
	assert.Equal(t, Change, kind)

	_, _, _, err = ParseNormalHeader("2,3q5")
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, _, _, err = ParseNormalHeader("d5")
	assert.ErrorIs(t, err, ErrInvalidRange)

	var rangeErr *RangeError
	_, _, _, err = ParseNormalHeader("2,xa3")
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, "2,x", rangeErr.Text)
}
