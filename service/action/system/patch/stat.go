package patch

import (
	"strings"

	sgdiff "github.com/sourcegraph/go-diff/diff"
	"github.com/viant/textpatch/model/format"
	"github.com/viant/textpatch/model/hunk"
	"github.com/viant/textpatch/service/apply"
	"github.com/viant/textpatch/service/parser"
)

// DiffStats summarises the lines a patch touches. A deleted line directly
// followed by an inserted one counts as a single changed line.
type DiffStats struct {
	Hunks   int `json:"hunks"`
	Added   int `json:"added"`
	Changed int `json:"changed"`
	Deleted int `json:"deleted"`
}

// FileStat holds the statistics of one file of a patch.
type FileStat struct {
	Path string `json:"path,omitempty"`
	DiffStats
}

// Stat computes per file statistics of a patch in any of the four dialects.
func Stat(patch []byte) ([]FileStat, error) {
	f := parser.Detect(patch)
	if f == format.None {
		return nil, parser.ErrUnknownFormat
	}
	if f == format.Unified {
		if stats, err := unifiedStat(patch); err == nil {
			return stats, nil
		}
	}
	hunks, err := parser.ParseAs(patch, f, nil, nil)
	if err != nil {
		return nil, err
	}
	return []FileStat{hunksStat(hunks)}, nil
}

func unifiedStat(patch []byte) ([]FileStat, error) {
	fileDiffs, err := sgdiff.ParseMultiFileDiff(patch)
	if err != nil {
		return nil, err
	}
	var result []FileStat
	for _, fileDiff := range fileDiffs {
		stat := fileDiff.Stat()
		result = append(result, FileStat{
			Path: fileDiff.NewName,
			DiffStats: DiffStats{
				Hunks:   len(fileDiff.Hunks),
				Added:   int(stat.Added),
				Changed: int(stat.Changed),
				Deleted: int(stat.Deleted),
			},
		})
	}
	return result, nil
}

func hunksStat(hunks *apply.Hunks) FileStat {
	result := FileStat{DiffStats: DiffStats{Hunks: hunks.Len()}}
	for _, item := range hunks.Hunks() {
		result.tally(signs(item))
	}
	return result
}

// tally counts '+' and '-' signs; an adjacent opposite pair is one change.
func (s *DiffStats) tally(signs []byte) {
	var last byte
	for _, sign := range signs {
		switch {
		case sign == '-' && last == '+':
			s.Added--
			s.Changed++
			last = 0
		case sign == '+' && last == '-':
			s.Deleted--
			s.Changed++
			last = 0
		case sign == '-':
			s.Deleted++
			last = sign
		case sign == '+':
			s.Added++
			last = sign
		default:
			last = 0
		}
	}
}

// signs returns '+', '-' or ' ' for every content line of a hunk in file order.
func signs(item hunk.Hunk) []byte {
	var lines []hunk.Line
	switch actual := item.(type) {
	case *hunk.ContextData:
		lines = actual.Effective()
	case *hunk.EditScriptData:
		var result []byte
		if actual.Kind() != hunk.Insert {
			result = append(result, []byte(strings.Repeat("-", actual.Range().Count()))...)
		}
		for range actual.Lines()[1:] {
			result = append(result, '+')
		}
		return result
	default:
		lines = item.Lines()
	}
	var result []byte
	for _, line := range lines {
		switch line.(type) {
		case hunk.NormalDelete, hunk.UnifiedDeleted, hunk.ContextDeleted:
			result = append(result, '-')
		case hunk.NormalInsert, hunk.UnifiedInserted, hunk.ContextInserted:
			result = append(result, '+')
		case hunk.UnifiedUnchanged, hunk.ContextUnchanged:
			result = append(result, ' ')
		}
	}
	return result
}
