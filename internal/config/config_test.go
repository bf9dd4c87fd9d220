package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clifford/internal/config"
	"github.com/katalvlaran/clifford/internal/logging"
	"github.com/katalvlaran/clifford/signature"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gablade.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultAlgebra, cfg.Algebra.Name)
	assert.Equal(t, logging.Default(), cfg.Log)
	assert.Equal(t, 0, cfg.Table.Workers)

	sig, err := cfg.Signature()
	require.NoError(t, err)
	assert.Equal(t, signature.VGA3, sig)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
algebra:
  p: 3
  r: 1
table:
  workers: 2
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	sig, err := cfg.Signature()
	require.NoError(t, err)
	assert.Equal(t, signature.PGA3, sig)
	assert.Equal(t, 2, cfg.Table.Workers)
	assert.Equal(t, logging.Config{Level: "debug", Format: "json"}, cfg.Log)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "algebra:\n  p: 3\nlog:\n  level: info\n")
	t.Setenv("GABLADE_ALGEBRA_Q", "1")
	t.Setenv("GABLADE_LOG_LEVEL", "error")
	t.Setenv("GABLADE_TABLE_WORKERS", "4")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	sig, err := cfg.Signature()
	require.NoError(t, err)
	assert.Equal(t, signature.Signature{P: 3, Q: 1}, sig)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Table.Workers)
}

func TestLoad_NameWinsOverCounts(t *testing.T) {
	t.Setenv("GABLADE_ALGEBRA_NAME", "sta")
	t.Setenv("GABLADE_ALGEBRA_P", "2")

	cfg, err := config.Load("")
	require.NoError(t, err)
	sig, err := cfg.Signature()
	require.NoError(t, err)
	assert.Equal(t, signature.STA, sig)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"unknown algebra", "algebra:\n  name: octonion\n", signature.ErrUnknownAlgebra},
		{"negative count", "algebra:\n  p: -1\n", signature.ErrNegativeCount},
		{"negative workers", "table:\n  workers: -3\n", config.ErrInvalidWorkers},
		{"bad log format", "log:\n  format: xml\n", logging.ErrInvalidFormat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.body))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "algebra: [unclosed"))
	assert.Error(t, err)
}
