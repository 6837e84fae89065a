package textpatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/textpatch/service/apply"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the patch service configuration.
// It can be populated from JSON or YAML. The zero-value is useful – empty
// fields inherit their package defaults.
type Config struct {
	Apply   ApplyConfig   `json:"apply" yaml:"apply"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

// ApplyConfig holds defaults merged into every apply request.
type ApplyConfig struct {
	Reverse      bool   `json:"reverse" yaml:"reverse"`
	Backup       bool   `json:"backup" yaml:"backup"`
	Force        bool   `json:"force" yaml:"force"`
	BackupSuffix string `json:"backupSuffix" yaml:"backupSuffix"`
}

// TracingConfig enables the stdout span exporter.
type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
	OutputFile     string `json:"outputFile" yaml:"outputFile"`
}

// DefaultConfig returns a Config populated with the package defaults.
// Callers may modify the returned struct before passing it to WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Apply: ApplyConfig{
			BackupSuffix: apply.DefaultBackupSuffix,
		},
		Tracing: TracingConfig{
			ServiceName:    "textpatch",
			ServiceVersion: "dev",
		},
	}
}

// Validate returns error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if suffix := c.Apply.BackupSuffix; suffix != "" && !strings.HasPrefix(suffix, ".") {
		return fmt.Errorf("apply.backupSuffix must start with '.', got %q", suffix)
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing.serviceName must be set when tracing is enabled")
	}
	return nil
}

// LoadConfig reads a YAML (or JSON) config from URL on top of DefaultConfig.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}
