package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/clifford/internal/logging"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logging.Config
		wantErr bool
	}{
		{"default", logging.Default(), false},
		{"json debug", logging.Config{Level: "debug", Format: logging.FormatJSON}, false},
		{"bad level", logging.Config{Level: "loud", Format: logging.FormatJSON}, true},
		{"bad format", logging.Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}

	err := logging.Config{Level: "info", Format: "xml"}.Validate()
	assert.ErrorIs(t, err, logging.ErrInvalidFormat)
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "info", Format: logging.FormatJSON}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("table built", zap.String("op", "exterior"), zap.Int("size", 16))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "table built", entry["msg"])
	assert.Equal(t, "exterior", entry["op"])
	assert.Equal(t, float64(16), entry["size"])
	assert.Contains(t, entry, "ts")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_RejectsInvalid(t *testing.T) {
	log, err := logging.New(logging.Config{Level: "info", Format: "yaml"}, &bytes.Buffer{})
	assert.Nil(t, log)
	assert.ErrorIs(t, err, logging.ErrInvalidFormat)
}
