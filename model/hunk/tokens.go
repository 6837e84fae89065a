package hunk

import (
	"strconv"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes start at 1 to avoid clash with parsly.EOF.
const (
	digitsCode = iota + 1
	commaCode
)

var (
	digitsToken = parsly.NewToken(digitsCode, "Digits", &digitsMatcher{})
	commaToken  = parsly.NewToken(commaCode, ",", matcher.NewByte(','))
)

// digitsMatcher matches a run of ASCII decimal digits.
type digitsMatcher struct{}

func (m *digitsMatcher) Match(cursor *parsly.Cursor) int {
	matched := 0
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		if c := cursor.Input[i]; c < '0' || c > '9' {
			break
		}
		matched++
	}
	return matched
}

// parseNumbers decodes a comma separated list of line numbers, e.g. "3,5".
func parseNumbers(text string) ([]int, error) {
	cursor := parsly.NewCursor("", []byte(text), 0)
	var numbers []int
	for {
		matched := cursor.MatchOne(digitsToken)
		if matched.Code != digitsCode {
			return nil, &RangeError{Text: text, Err: cursor.NewError(digitsToken)}
		}
		number, err := strconv.Atoi(matched.Text(cursor))
		if err != nil {
			return nil, &RangeError{Text: text, Err: err}
		}
		numbers = append(numbers, number)
		if !cursor.HasMore() {
			return numbers, nil
		}
		matched = cursor.MatchOne(commaToken)
		if matched.Code != commaCode {
			return nil, &RangeError{Text: text, Err: cursor.NewError(commaToken)}
		}
	}
}
