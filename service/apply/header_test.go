package apply

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		wantPath string
		wantDate time.Time
		wantErr  bool
	}{
		{
			name:     "gnu unified",
			line:     "--- lao\t2002-02-21 23:30:39.942229878 -0800",
			wantPath: "lao",
			wantDate: time.Date(2002, 2, 22, 7, 30, 39, 942229878, time.UTC),
		},
		{
			name:     "context with ctime date",
			line:     "*** dir/tzu\tThu Feb 21 23:30:50 2002",
			wantPath: "dir/tzu",
			wantDate: time.Date(2002, 2, 21, 23, 30, 50, 0, time.UTC),
		},
		{
			name:     "space separated",
			line:     "+++ b.txt 2024-01-02 10:00:00",
			wantPath: "b.txt",
			wantDate: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "unknown date layout",
			line:     "--- a.txt\tyesterday",
			wantPath: "a.txt",
		},
		{
			name:    "missing date",
			line:    "--- a.txt",
			wantErr: true,
		},
		{
			name:    "not a header",
			line:    "@@ -1 +1 @@",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			header, err := ParseHeader(tc.line)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrHeader))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPath, header.Path)
			assert.True(t, tc.wantDate.Equal(header.Date), header.Date.String())
		})
	}
}
