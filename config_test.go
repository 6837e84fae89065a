package textpatch

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		expect    *Config
		expectErr bool
	}{
		{
			name:    "apply overrides",
			content: "apply:\n  reverse: true\n  backup: true\n",
			expect: &Config{
				Apply:   ApplyConfig{Reverse: true, Backup: true, BackupSuffix: ".orig"},
				Tracing: TracingConfig{ServiceName: "textpatch", ServiceVersion: "dev"},
			},
		},
		{
			name:    "tracing",
			content: "tracing:\n  enabled: true\n  outputFile: /tmp/spans.json\n",
			expect: &Config{
				Apply:   ApplyConfig{BackupSuffix: ".orig"},
				Tracing: TracingConfig{Enabled: true, ServiceName: "textpatch", ServiceVersion: "dev", OutputFile: "/tmp/spans.json"},
			},
		},
		{name: "invalid suffix", content: "apply:\n  backupSuffix: orig\n", expectErr: true},
		{name: "malformed", content: "apply: [\n", expectErr: true},
	}
	fs := afs.New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			URL := "mem://localhost/config/" + strings.ReplaceAll(tc.name, " ", "_") + ".yaml"
			require.NoError(t, fs.Upload(context.Background(), URL, file.DefaultFileOsMode, strings.NewReader(tc.content)))
			actual, err := LoadConfig(context.Background(), fs, URL)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}

	_, err := LoadConfig(context.Background(), fs, "mem://localhost/config/missing.yaml")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	var cfg *Config
	assert.NoError(t, cfg.Validate())
	assert.NoError(t, DefaultConfig().Validate())
	cfg = DefaultConfig()
	cfg.Tracing = TracingConfig{Enabled: true}
	assert.Error(t, cfg.Validate())
}
