package apply

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Header is the path and timestamp recovered from a unified ("---"/"+++") or
// context ("***"/"---") file header line.
type Header struct {
	Path    string
	RawDate string
	// Date is zero when RawDate is not in a known layout.
	Date time.Time
}

var headerExpressions = []*regexp.Regexp{
	regexp.MustCompile(`^(?:\*\*\*|---|\+\+\+) (?P<path>[^\t]+)\t(?P<date>\S.*?)\s*$`),
	regexp.MustCompile(`^(?:\*\*\*|---|\+\+\+) (?P<path>\S+)\s+(?P<date>\S.*?)\s*$`),
}

var dateLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"Mon Jan _2 15:04:05 2006",
	"Mon Jan _2 15:04:05 -0700 2006",
	time.RFC3339Nano,
}

// ParseHeader extracts path and date from a file header line. Both captures are
// required.
func ParseHeader(line string) (*Header, error) {
	line = strings.TrimRight(line, "\r\n")
	for _, expr := range headerExpressions {
		matched := expr.FindStringSubmatch(line)
		if matched == nil {
			continue
		}
		path := strings.TrimSpace(matched[expr.SubexpIndex("path")])
		date := matched[expr.SubexpIndex("date")]
		if path == "" || date == "" {
			continue
		}
		return &Header{Path: path, RawDate: date, Date: parseDate(date)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrHeader, line)
}

func parseDate(text string) time.Time {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}
