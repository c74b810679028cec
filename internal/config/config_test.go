package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent/internal/day2"
	"github.com/roach88/advent/internal/input"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "advent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, input.DefaultDir, cfg.Inputs)
	assert.Equal(t, "example", cfg.Mode)
	assert.Equal(t, "adjacent", cfg.Day2.Strategy)
	assert.Empty(t, cfg.Database)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
inputs: /data/aoc
mode: real
database: history.db
day2:
  strategy: all_pairs
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/aoc", cfg.Inputs)
	assert.Equal(t, "history.db", cfg.Database)

	mode, err := cfg.ModeValue()
	require.NoError(t, err)
	assert.Equal(t, input.Real, mode)

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, day2.AllPairs, opts.Strategy)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "mode: real\n"))
	require.NoError(t, err)
	assert.Equal(t, "real", cfg.Mode)
	assert.Equal(t, input.DefaultDir, cfg.Inputs)
	assert.Equal(t, "adjacent", cfg.Day2.Strategy)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingDefaultFileIsFine(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(writeConfig(t, "inputs: ./inputs\nexample: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"bad mode", "mode: sample\n", "mode"},
		{"bad strategy", "day2:\n  strategy: bucketed\n", "strategy"},
		{"empty inputs", "inputs: \"\"\n", "inputs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
