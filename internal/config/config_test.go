// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quantlab/internal/config"
	"github.com/katalvlaran/quantlab/ztable"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(config.KeyConfig, "", "")
	fs.String(config.KeyFormat, "text", "")
	fs.Uint64(config.KeySeed, 0, "")

	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, config.Default().Listen, cfg.Listen)
	assert.Equal(t, ztable.DefaultPrecision, cfg.Precision)
	assert.Equal(t, ztable.FormatText, cfg.OutputFormat())
	assert.Equal(t, "info", cfg.Logging().Level)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("QUANTLAB_SEED", "42")
	t.Setenv("QUANTLAB_LOG_LEVEL", "debug")

	cfg, err := config.Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("QUANTLAB_FORMAT", "yaml")
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--format", "json"}))

	cfg, err := config.Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, ztable.FormatJSON, cfg.OutputFormat())
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quantlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: 6\nlisten: \":9090\"\n"), 0o600))

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--config", path}))

	cfg, err := config.Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Precision)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoad_BadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: [1,\n"), 0o600))

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--config", path}))

	_, err := config.Load(fs, "")
	require.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("QUANTLAB_LISTEN=:7070\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("QUANTLAB_LISTEN") })

	cfg, err := config.Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Listen)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := config.Load(nil, filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Format = "xml"
	assert.ErrorIs(t, bad.Validate(), config.ErrInvalid)

	bad = cfg
	bad.Precision = 99
	assert.ErrorIs(t, bad.Validate(), config.ErrInvalid)

	bad = cfg
	bad.LogRotateMaxAge = -1
	assert.ErrorIs(t, bad.Validate(), config.ErrInvalid)
}
