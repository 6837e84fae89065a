package patch

import (
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/textpatch/model/types"
	"github.com/viant/textpatch/service/apply"
)

// Name of the system/patch action service.
const Name = "system/patch"

// Service exposes patch application and diff generation as an action service.
// It is stateless; every apply call parses and applies its own hunks.
type Service struct {
	fs     afs.Service
	logger *log.Logger
}

// Option customises Service.
type Option func(s *Service)

// WithFs sets the file system used to read and write patched files.
func WithFs(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// WithLogger sets the logger reporting every apply.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New creates the patch service instance.
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.logger == nil {
		ret.logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return ret
}

// Name returns service identifier.
func (s *Service) Name() string { return Name }

// Methods returns service method catalogue.
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "apply",
			Description: "Applies a normal, unified, context or ed diff to a single file, forward or in reverse.",
			Input:       reflect.TypeOf(&ApplyInput{}),
			Output:      reflect.TypeOf(&ApplyOutput{}),
		},
		{
			Name:        "diff",
			Description: "Generates a unified or context diff (and statistics) from two text blobs.",
			Input:       reflect.TypeOf(&DiffInput{}),
			Output:      reflect.TypeOf(&DiffOutput{}),
		},
		{
			Name:        "stat",
			Description: "Counts hunks and added, changed and deleted lines of a diff.",
			Input:       reflect.TypeOf(&StatInput{}),
			Output:      reflect.TypeOf(&StatOutput{}),
		},
	}
}

// Method maps method names to executable handlers.
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "apply":
		return s.apply, nil
	case "diff":
		return s.diff, nil
	case "stat":
		return s.stat, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

// -------------------------------------------------------------------------
// I/O contracts
// -------------------------------------------------------------------------

// ApplyInput is the payload for Service.apply
type ApplyInput struct {
	// Patch is the diff text. Its dialect is detected unless Format is set.
	//
	// Normal and ed diffs carry no file names and need File. Unified and
	// context diffs name the file in their headers:
	//
	//     --- lao	2002-02-21 23:30:39.942229878 -0800
	//     +++ tzu	2002-02-21 23:30:50.442260588 -0800
	//
	// the first header is patched, or the second one in reverse. File
	// overrides them.
	Patch        string `json:"patch" description:"normal, unified, context or ed diff to apply"`
	Format       string `json:"format,omitempty" description:"diff dialect: normal, unified, context or ed; detected when empty"`
	File         string `json:"file,omitempty" description:"file to patch"`
	Output       string `json:"output,omitempty" description:"file receiving the result instead of the patched file"`
	BaseURL      string `json:"baseURL,omitempty" description:"location resolving relative header paths"`
	Reverse      bool   `json:"reverse,omitempty" description:"undo the diff"`
	Force        bool   `json:"force,omitempty" description:"never ask, overwrite existing output"`
	Backup       bool   `json:"backup,omitempty" description:"keep a copy of the patched file"`
	BackupSuffix string `json:"backupSuffix,omitempty" description:"backup file suffix, .orig by default"`
}

func (i *ApplyInput) options() *apply.Options {
	return &apply.Options{
		Reverse:      i.Reverse,
		Force:        i.Force,
		Backup:       i.Backup,
		BackupSuffix: i.BackupSuffix,
		File:         i.File,
		OutputFile:   i.Output,
		BaseURL:      i.BaseURL,
	}
}

// ApplyOutput summarises the changes applied.
type ApplyOutput struct {
	RunID       string      `json:"runId"`
	Format      string      `json:"format"`
	Hunks       int         `json:"hunks"`
	Source      string      `json:"source"`
	Destination string      `json:"destination"`
	Backup      string      `json:"backup,omitempty"`
	Lines       apply.Stats `json:"lines"`
	Stats       DiffStats   `json:"stats,omitempty"`
}

// DiffInput is the payload for Service.diff
type DiffInput struct {
	OldContent   string `json:"old" description:"Original file content"`
	NewContent   string `json:"new" description:"Updated file content"`
	Path         string `json:"path,omitempty" description:"Path written to both diff headers"`
	ContextLines int    `json:"contextLines,omitempty" description:"Number of context lines to include in diff (default 3)"`
	Format       string `json:"format,omitempty" description:"unified (default) or context"`
}

// DiffOutput is identical to DiffResult, re-exported for JSON tags.
type DiffOutput DiffResult

// StatInput is the payload for Service.stat
type StatInput struct {
	Patch string `json:"patch"`
}

// StatOutput lists per file statistics.
type StatOutput struct {
	Files []FileStat `json:"files"`
}
