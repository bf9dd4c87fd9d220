package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/clifford/blade"
	"github.com/katalvlaran/clifford/cayley"
)

func newMetricCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metric",
		Short: "Show the signature, metric and blade count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sig := a.alg.Signature()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Algebra: %s\n", sig)
			fmt.Fprintf(out, "Dimension: %d\n", sig.Dim())
			fmt.Fprintf(out, "Blade count: %d\n", sig.BladeCount())
			fmt.Fprintf(out, "Metric: %s\n", a.alg.Metric())
			return nil
		},
	}
}

func newBladesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blades",
		Short: "List the basis blades grouped by grade",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for grade, names := range a.alg.Grades() {
				fmt.Fprintf(out, "grade %d (%d): %s\n", grade, len(names), strings.Join(names, " "))
			}
			return nil
		},
	}
}

func newProductCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "product <op> <a> <b>",
		Short: "Evaluate one product of two blades",
		Long: `Evaluate a product of two blades.

Products: geometric (gp), exterior (wedge, ^), regressive (vee), left-contraction (lc, >>),
right-contraction (rc, <<), inner (|), dot (.), scalar (*).

Examples:
  gablade --p 2 product wedge e0 e1
  gablade --algebra complex product geometric i i
  gablade --algebra pga3 product regressive e012 e123`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := blade.ParseOp(args[0])
			if err != nil {
				return err
			}
			line, err := a.alg.Product(op, args[1], args[2])
			if err != nil {
				return err
			}
			a.log.Debug("product evaluated", zap.Stringer("op", op), zap.String("result", line))
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}

func newTableCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "table <op>",
		Short: "Print the Cayley table of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := blade.ParseOp(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Table.Workers
			}
			if workers < 0 {
				return fmt.Errorf("--workers %d: must be >= 0", workers)
			}
			var opts []cayley.Option
			if workers > 0 {
				opts = append(opts, cayley.WithWorkers(workers))
			}

			start := time.Now()
			density, err := a.alg.Table(cmd.Context(), op, cmd.OutOrStdout(), opts...)
			if err != nil {
				return err
			}
			a.log.Info("table built",
				zap.Stringer("op", op),
				zap.Stringer("signature", a.alg.Signature()),
				zap.Float64("density", density),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "rows computed concurrently (0 = config or GOMAXPROCS)")

	return cmd
}
