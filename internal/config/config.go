// Package config loads the gablade configuration.
//
// Precedence (highest to lowest):
//  1. Command-line flags (applied by the command)
//  2. Environment variables (GABLADE_ALGEBRA_P, GABLADE_LOG_LEVEL, ...)
//  3. YAML config file
//  4. Defaults
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/clifford/internal/logging"
	"github.com/katalvlaran/clifford/signature"
)

// DefaultAlgebra is used when neither a name nor generator counts are configured.
const DefaultAlgebra = "vga3"

// ErrInvalidWorkers indicates a negative table worker count.
var ErrInvalidWorkers = errors.New("config: table workers must be >= 0")

// Config is the full gablade configuration.
type Config struct {
	Algebra AlgebraConfig  `koanf:"algebra"`
	Table   TableConfig    `koanf:"table"`
	Log     logging.Config `koanf:"log"`
}

// AlgebraConfig selects the algebra either by name or by generator counts.
// A non-empty Name wins over the counts.
type AlgebraConfig struct {
	Name string `koanf:"name"`
	P    int    `koanf:"p"`
	Q    int    `koanf:"q"`
	R    int    `koanf:"r"`
}

// TableConfig tunes Cayley table construction.
type TableConfig struct {
	// Workers is the number of rows computed concurrently; 0 means GOMAXPROCS.
	Workers int `koanf:"workers"`
}

// Signature resolves the configured algebra.
func (c *Config) Signature() (signature.Signature, error) {
	if c.Algebra.Name != "" {
		return signature.Lookup(c.Algebra.Name)
	}

	return signature.New(c.Algebra.P, c.Algebra.Q, c.Algebra.R)
}

// Validate checks every section.
func (c *Config) Validate() error {
	if _, err := c.Signature(); err != nil {
		return fmt.Errorf("algebra: %w", err)
	}
	if c.Table.Workers < 0 {
		return fmt.Errorf("table: %d: %w", c.Table.Workers, ErrInvalidWorkers)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

// applyDefaults fills unset values.
func applyDefaults(c *Config) {
	a := c.Algebra
	if a.Name == "" && a.P == 0 && a.Q == 0 && a.R == 0 {
		c.Algebra.Name = DefaultAlgebra
	}

	def := logging.Default()
	if c.Log.Level == "" {
		c.Log.Level = def.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Format
	}
}
