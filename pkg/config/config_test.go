package config

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "ADVENT_INPUT_DIR", "ADVENT_COLOR", "ADVENT_WORKERS", "ADVENT_STRATEGY")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "inputs", cfg.InputDir)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, "breakpoints", cfg.Strategy)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADVENT_INPUT_DIR", "/data/2023")
	t.Setenv("ADVENT_COLOR", "never")
	t.Setenv("ADVENT_WORKERS", "3")
	t.Setenv("ADVENT_STRATEGY", "split")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{InputDir: "/data/2023", Color: "never", Workers: 3, Strategy: "split"}, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("ADVENT_WORKERS", "many")
	_, err := Load()
	assert.Error(t, err)

	unsetenv(t, "ADVENT_WORKERS")
	t.Setenv("ADVENT_COLOR", "sometimes")
	_, err = Load()
	assert.Error(t, err)
}
