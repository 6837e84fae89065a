package parser

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes start at 1 to avoid clash with parsly.EOF.
const (
	contextSeparatorCode = iota + 1
	unifiedHunkCode
	noNewlineCode
	originalHeaderCode
	contextHeaderCode
	modifiedHeaderCode
	normalDeleteCode
	normalInsertCode
	normalCommandCode
	editScriptCommandCode
)

var (
	contextSeparatorToken  = parsly.NewToken(contextSeparatorCode, "***************", matcher.NewFragment("***************"))
	unifiedHunkToken       = parsly.NewToken(unifiedHunkCode, "@@", matcher.NewFragment("@@ -"))
	noNewlineToken         = parsly.NewToken(noNewlineCode, "NoNewline", matcher.NewByte('\\'))
	originalHeaderToken    = parsly.NewToken(originalHeaderCode, "---", matcher.NewFragment("--- "))
	contextHeaderToken     = parsly.NewToken(contextHeaderCode, "***", matcher.NewFragment("*** "))
	modifiedHeaderToken    = parsly.NewToken(modifiedHeaderCode, "+++", matcher.NewFragment("+++ "))
	normalDeleteToken      = parsly.NewToken(normalDeleteCode, "<", matcher.NewByte('<'))
	normalInsertToken      = parsly.NewToken(normalInsertCode, ">", matcher.NewByte('>'))
	normalCommandToken     = parsly.NewToken(normalCommandCode, "NormalCommand", &commandMatcher{withRight: true})
	editScriptCommandToken = parsly.NewToken(editScriptCommandCode, "EdCommand", &commandMatcher{})
)

// commandMatcher matches a whole "L1[,L2]{a|c|d}" line, followed by
// "R1[,R2]" when withRight is set.
type commandMatcher struct {
	withRight bool
}

func (m *commandMatcher) Match(cursor *parsly.Cursor) int {
	input, size := cursor.Input, cursor.InputSize
	pos := cursor.Pos
	left := lineRange(input, pos, size)
	if left == 0 || pos+left >= size {
		return 0
	}
	pos += left
	switch input[pos] {
	case 'a', 'c', 'd':
	default:
		return 0
	}
	pos++
	if m.withRight {
		right := lineRange(input, pos, size)
		if right == 0 {
			return 0
		}
		pos += right
	}
	if pos != size {
		return 0
	}
	return pos - cursor.Pos
}

// lineRange returns the length of "N" or "N,M" starting at pos.
func lineRange(input []byte, pos, size int) int {
	digits := func(from int) int {
		i := from
		for i < size && input[i] >= '0' && input[i] <= '9' {
			i++
		}
		return i - from
	}
	matched := digits(pos)
	if matched == 0 {
		return 0
	}
	if next := pos + matched; next < size && input[next] == ',' {
		if more := digits(next + 1); more > 0 {
			matched += 1 + more
		}
	}
	return matched
}

var lineTokens = []*parsly.Token{
	contextSeparatorToken,
	unifiedHunkToken,
	noNewlineToken,
	originalHeaderToken,
	contextHeaderToken,
	modifiedHeaderToken,
	normalDeleteToken,
	normalInsertToken,
	normalCommandToken,
	editScriptCommandToken,
}

// classify returns the token code the line starts with, or 0.
func classify(line string) int {
	if line == "" {
		return 0
	}
	cursor := parsly.NewCursor("", []byte(line), 0)
	matched := cursor.MatchAny(lineTokens...)
	if matched.Code < contextSeparatorCode || matched.Code > editScriptCommandCode {
		return 0
	}
	return matched.Code
}
