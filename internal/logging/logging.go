// Package logging builds the zap logger used by the gablade command.
// Library packages never log; only the command line front end does.
package logging

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalidFormat indicates a log format other than console or json.
var ErrInvalidFormat = errors.New("logging: invalid format")

// Config selects the log level and encoding.
type Config struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns warn-level console logging: quiet unless something is off.
func Default() Config {
	return Config{Level: "warn", Format: FormatConsole}
}

// Validate checks that the level parses and the format is known.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("logging: level %q: %w", c.Level, err)
	}
	if c.Format != FormatConsole && c.Format != FormatJSON {
		return fmt.Errorf("%q: %w", c.Format, ErrInvalidFormat)
	}

	return nil
}

// New builds a logger writing to w with the production encoder settings and
// ISO8601 timestamps.
func New(cfg Config, w io.Writer) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := zapcore.ParseLevel(cfg.Level)

	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.AddSync(w), level)

	return zap.New(core), nil
}

func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == FormatConsole {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}

	return zapcore.NewJSONEncoder(encoderCfg)
}
