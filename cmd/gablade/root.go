package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/clifford/internal/config"
	"github.com/katalvlaran/clifford/internal/logging"
)

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	cfg *config.Config
	log *zap.Logger
	alg algebra
}

// rootFlags are the global flags; they override the config file and environment.
type rootFlags struct {
	configPath string
	name       string
	p, q, r    int
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	a := &app{}

	root := &cobra.Command{
		Use:   "gablade",
		Short: "Basis-blade products of Clifford algebras",
		Long: `gablade evaluates the geometric, exterior, regressive, contraction, inner,
dot and scalar products of basis blades in any algebra Cl(p,q,r) with up to
eight generators.

Blades are written in e-notation: e (scalar unit), e0, e12, -e013, i (unit
pseudoscalar), 0 (vanishing).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, flags)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML config file")
	pf.StringVar(&flags.name, "algebra", "", "named algebra (complex, quaternion, dual, vga2, vga3, pga2, pga3, sta, cga3)")
	pf.IntVar(&flags.p, "p", 0, "generators squaring to +1")
	pf.IntVar(&flags.q, "q", 0, "generators squaring to -1")
	pf.IntVar(&flags.r, "r", 0, "generators squaring to 0")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format (console, json)")

	root.AddCommand(
		newMetricCmd(a),
		newBladesCmd(a),
		newProductCmd(a),
		newTableCmd(a),
	)

	return root
}

// setup loads the config, applies flag overrides, then builds the logger and
// the algebra.
func (a *app) setup(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("p") || pf.Changed("q") || pf.Changed("r") {
		cfg.Algebra = config.AlgebraConfig{P: flags.p, Q: flags.q, R: flags.r}
	}
	if pf.Changed("algebra") {
		cfg.Algebra.Name = flags.name
	}
	if pf.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if pf.Changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	sig, err := cfg.Signature()
	if err != nil {
		return err
	}
	alg, err := newAlgebra(sig)
	if err != nil {
		return fmt.Errorf("%s: %w", sig, err)
	}

	a.cfg, a.log, a.alg = cfg, log, alg
	a.log.Debug("algebra ready",
		zap.Stringer("signature", sig),
		zap.Int("dim", sig.Dim()),
		zap.String("metric", alg.Metric()),
	)

	return nil
}
