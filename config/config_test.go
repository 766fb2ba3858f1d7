package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sor-reader/logging"
	"sor-reader/sor"
)

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sor-reader.toml")
	content := `
[output]
format = "yaml"
indent = 4

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(
		t,
		sor.Options{Format: sor.FormatYAML, Indent: 4},
		cfg.SOROptions(),
	)
	// untouched keys keep their defaults
	assert.Equal(t, "text", cfg.Log.Format)

	loggingConfig := cfg.LoggingConfig()
	assert.Equal(t, slog.LevelDebug, loggingConfig.Level)
	assert.Equal(t, logging.FormatText, loggingConfig.Format)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":      "[output\nformat = 1",
		"format":      "[output]\nformat = \"xml\"",
		"indent":      "[output]\nindent = -1",
		"log level":   "[log]\nlevel = \"loud\"",
		"log format":  "[log]\nformat = \"csv\"",
		"unknown key": "[output]\ncolour = true",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			assert.Error(t, Parse(data, &cfg))
		})
	}
}
