package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "normal", input: "normal", want: Normal},
		{name: "unified letter", input: "u", want: Unified},
		{name: "context upper", input: " Context ", want: Context},
		{name: "ed", input: "ed", want: EditScript},
		{name: "unknown", input: "rcs", want: None, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	assert.False(t, None.IsValid())
	assert.True(t, EditScript.IsValid())
	assert.Equal(t, "ed", EditScript.String())
	assert.Equal(t, "none", Format(42).String())
}
