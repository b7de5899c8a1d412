package main

import (
	"github.com/katalvlaran/genep/individual"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a random individual",
		Long:  `Grows one random tree per output and prints each as an expression and as an indented structural dump.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			b := newBuilder(cmd, cfg)

			ind, err := individual.Generate(b, cfg.InputSize, cfg.OutputSize, cfg.MaxDepth)
			if err != nil {
				return err
			}

			return printIndividual(cmd.OutOrStdout(), ind, cfg.Indent)
		},
	}
}
