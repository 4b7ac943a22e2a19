package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingDefaultFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialsim.yaml")
	content := "log_level: debug\noutput: json\nmetrics_file: out.prom\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "debug", Output: OutputJSON, MetricsFile: "out.prom"}, cfg)
}

func TestDecode_KeepsDefaultsForMissingKeys(t *testing.T) {
	cfg := Default()
	require.NoError(t, Decode([]byte("output: plain\n"), &cfg))
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, OutputPlain, cfg.Output)
}

func TestDecode_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":  "colour: yes\n",
		"bad output":   "output: html\n",
		"invalid yaml": "output: [\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			assert.Error(t, Decode([]byte(content), &cfg))
		})
	}
}
