package main

import (
	"fmt"

	"github.com/katalvlaran/genep/individual"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var at []float64

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Generate a random individual and evaluate it",
		Long:  `Grows a random individual and evaluates every output at the bindings given by --at (one value per input). Non-finite results are printed as +Inf, -Inf or NaN.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("at") {
				at = make([]float64, cfg.InputSize)
			}
			b := newBuilder(cmd, cfg)

			ind, err := individual.Generate(b, cfg.InputSize, cfg.OutputSize, cfg.MaxDepth)
			if err != nil {
				return err
			}
			out, err := ind.Value(at)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for j, v := range out {
				expr, err := ind.Tree(j).Expression()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "f%d = %s\nf%d%v = %v\n", j, expr, j, at, v)
			}

			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&at, "at", nil, "comma-separated input values x0,x1,...")

	return cmd
}
