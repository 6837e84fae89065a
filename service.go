package textpatch

import (
	"context"
	"log"
	"os"

	"github.com/viant/afs"
	"github.com/viant/textpatch/extension"
	"github.com/viant/textpatch/model/types"
	"github.com/viant/textpatch/service/action/system/patch"
	"github.com/viant/textpatch/tracing"
)

// Service is the textpatch façade
type Service struct {
	config            *Config
	fs                afs.Service
	logger            *log.Logger
	actions           *extension.Actions
	extensionServices []types.Service
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.actions = extension.NewActions(patch.New(patch.WithFs(s.fs), patch.WithLogger(s.logger)))
	for _, service := range s.extensionServices {
		s.actions.Register(service)
	}
	if tc := s.config.Tracing; tc.Enabled {
		if err := tracing.Init(tc.ServiceName, tc.ServiceVersion, tc.OutputFile); err != nil {
			s.logger.Printf("failed to init tracing: %v", err)
		}
	}
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.logger == nil {
		s.logger = log.New(os.Stderr, "", log.LstdFlags)
	}
}

// Config returns the service configuration
func (s *Service) Config() *Config {
	return s.config
}

// Actions returns the action service registry
func (s *Service) Actions() *extension.Actions {
	return s.actions
}

// RegisterExtensionServices registers additional action services
func (s *Service) RegisterExtensionServices(services ...types.Service) {
	for i := range services {
		s.actions.Register(services[i])
	}
}

// Apply applies input.Patch. Reverse and Backup are enabled when either the
// input or the config enables them; an empty BackupSuffix takes the config one.
// An invalid config fails every Apply before any file is touched.
func (s *Service) Apply(ctx context.Context, input *patch.ApplyInput) (*patch.ApplyOutput, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	request := *input
	cfg := s.config.Apply
	request.Reverse = request.Reverse || cfg.Reverse
	request.Backup = request.Backup || cfg.Backup
	request.Force = request.Force || cfg.Force
	if request.BackupSuffix == "" {
		request.BackupSuffix = cfg.BackupSuffix
	}
	output := &patch.ApplyOutput{}
	if err := s.actions.Run(ctx, patch.Name, "apply", &request, output); err != nil {
		return output, err
	}
	return output, nil
}

// Diff generates a unified or context diff between two texts
func (s *Service) Diff(ctx context.Context, input *patch.DiffInput) (*patch.DiffOutput, error) {
	output := &patch.DiffOutput{}
	if err := s.actions.Run(ctx, patch.Name, "diff", input, output); err != nil {
		return nil, err
	}
	return output, nil
}

// Stat computes per file statistics of a patch
func (s *Service) Stat(ctx context.Context, patchText string) (*patch.StatOutput, error) {
	output := &patch.StatOutput{}
	if err := s.actions.Run(ctx, patch.Name, "stat", &patch.StatInput{Patch: patchText}, output); err != nil {
		return nil, err
	}
	return output, nil
}

// New creates a textpatch service
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}
