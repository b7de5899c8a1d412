package main

import (
	"github.com/spf13/cobra"
)

func newCrossoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crossover",
		Short: "Generate two random trees and cross them",
		Long:  `Grows two random trees, prints them, swaps one subtree between them, and prints both again.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			b := newBuilder(cmd, cfg)

			a, err := b.Generate(cfg.MaxDepth, cfg.InputSize)
			if err != nil {
				return err
			}
			c, err := b.Generate(cfg.MaxDepth, cfg.InputSize)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if err := printTree(w, "a", a, cfg.Indent); err != nil {
				return err
			}
			if err := printTree(w, "b", c, cfg.Indent); err != nil {
				return err
			}
			if err := b.Crossover(a, c); err != nil {
				return err
			}
			if err := printTree(w, "a'", a, cfg.Indent); err != nil {
				return err
			}

			return printTree(w, "b'", c, cfg.Indent)
		},
	}
}
