package hunk

import (
	"fmt"
	"strings"

	"github.com/viant/textpatch/model/format"
)

// Range is a line interval of one file. For format.Unified the stored end is a
// line count (End returns start+count); every other format stores the absolute
// last line.
type Range struct {
	start  int
	end    int
	format format.Format
}

// NewRange creates a range. It panics when start > end for any format but
// format.Unified, where end is a count and ordering is meaningless.
func NewRange(start, end int, f format.Format) Range {
	if start < 0 || end < 0 {
		panic(fmt.Sprintf("hunk: negative %v range %d,%d", f, start, end))
	}
	if f != format.Unified && start > end {
		panic(fmt.Sprintf("hunk: invalid %v range: start %d > end %d", f, start, end))
	}
	return Range{start: start, end: end, format: f}
}

// Start returns the first line number.
func (r Range) Start() int { return r.start }

// End returns the absolute end line; for unified ranges that is start+count.
// It panics for a Range without a concrete format.
func (r Range) End() int {
	switch r.format {
	case format.Normal, format.Context, format.EditScript:
		return r.end
	case format.Unified:
		return r.start + r.end
	}
	panic("hunk: range should belong to one of the four formats")
}

// Count returns the number of lines covered by the range.
func (r Range) Count() int {
	if r.format == format.Unified {
		return r.end
	}
	return r.end - r.start + 1
}

// Format returns the dialect the range was decoded from.
func (r Range) Format() format.Format { return r.format }

func (r Range) String() string {
	if r.format == format.Unified {
		return fmt.Sprintf("%d,%d", r.start, r.end)
	}
	if r.start == r.end {
		return fmt.Sprintf("%d", r.start)
	}
	return fmt.Sprintf("%d,%d", r.start, r.end)
}

// ParseUnifiedRange decodes "N,M", "+N,M" or "-N,M" where M is a count. A single
// number is a one line range.
func ParseUnifiedRange(text string) (Range, error) {
	numbers, err := parseNumbers(strings.TrimLeft(text, "+-"))
	if err != nil {
		return Range{}, err
	}
	switch len(numbers) {
	case 1:
		return NewRange(numbers[0], 1, format.Unified), nil
	case 2:
		return NewRange(numbers[0], numbers[1], format.Unified), nil
	}
	return Range{}, &RangeError{Text: text}
}

// ParseContextRange decodes a context range either bare ("3,5", "7") or embedded
// in a range line with exactly three space separated tokens ("*** 3,5 ****").
func ParseContextRange(line string) (Range, error) {
	tokens := strings.Split(line, " ")
	text := line
	switch len(tokens) {
	case 1:
	case 3:
		text = tokens[1]
	default:
		return Range{}, &RangeError{Text: line}
	}
	numbers, err := parseNumbers(text)
	if err != nil {
		return Range{}, err
	}
	switch len(numbers) {
	case 1:
		return NewRange(numbers[0], numbers[0], format.Context), nil
	case 2:
		if numbers[0] > numbers[1] {
			return Range{}, &RangeError{Text: line}
		}
		return NewRange(numbers[0], numbers[1], format.Context), nil
	}
	return Range{}, &RangeError{Text: line}
}

// ParseEditScriptRange decodes an ed command line such as "4,6d" or "10a"; the
// trailing command letter is ignored here, see ParseEditScriptKind.
func ParseEditScriptRange(line string) (Range, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Range{}, &RangeError{Text: line}
	}
	numbers, err := parseNumbers(trimmed[:len(trimmed)-1])
	if err != nil {
		return Range{}, err
	}
	switch len(numbers) {
	case 1:
		return NewRange(numbers[0], numbers[0], format.EditScript), nil
	case 2:
		if numbers[0] > numbers[1] {
			return Range{}, &RangeError{Text: line}
		}
		return NewRange(numbers[0], numbers[1], format.EditScript), nil
	}
	return Range{}, &RangeError{Text: line}
}

// ParseEditScriptKind reads the command letter ending an ed command line.
func ParseEditScriptKind(line string) (Kind, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, &RangeError{Text: line}
	}
	kind, ok := kindOf(trimmed[len(trimmed)-1])
	if !ok {
		return 0, &RangeError{Text: line, Err: fmt.Errorf("unknown ed command %q", trimmed[len(trimmed)-1])}
	}
	return kind, nil
}

// ParseNormalHeader decodes a normal diff command line "L1[,L2]{a|c|d}R1[,R2]".
func ParseNormalHeader(line string) (left, right Range, kind Kind, err error) {
	trimmed := strings.TrimSpace(line)
	index := strings.IndexAny(trimmed, "acd")
	if index <= 0 || index == len(trimmed)-1 {
		return Range{}, Range{}, 0, &RangeError{Text: line}
	}
	kind, _ = kindOf(trimmed[index])
	if left, err = parseNormalRange(trimmed[:index]); err != nil {
		return Range{}, Range{}, 0, err
	}
	if right, err = parseNormalRange(trimmed[index+1:]); err != nil {
		return Range{}, Range{}, 0, err
	}
	return left, right, kind, nil
}

func parseNormalRange(text string) (Range, error) {
	numbers, err := parseNumbers(text)
	if err != nil {
		return Range{}, err
	}
	switch len(numbers) {
	case 1:
		return NewRange(numbers[0], numbers[0], format.Normal), nil
	case 2:
		if numbers[0] > numbers[1] {
			return Range{}, &RangeError{Text: text}
		}
		return NewRange(numbers[0], numbers[1], format.Normal), nil
	}
	return Range{}, &RangeError{Text: text}
}
