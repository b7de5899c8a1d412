package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newMutateCmd() *cobra.Command {
	var times int

	cmd := &cobra.Command{
		Use:   "mutate",
		Short: "Generate a random tree and mutate it repeatedly",
		Long:  `Grows one random tree, then applies --times mutations, printing the tree after each step.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if times < 0 {
				return errors.New("--times must be ≥ 0")
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			b := newBuilder(cmd, cfg)

			t, err := b.Generate(cfg.MaxDepth, cfg.InputSize)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := printTree(w, "original", t, cfg.Indent); err != nil {
				return err
			}
			for i := 1; i <= times; i++ {
				if err := b.Mutate(t, cfg.InputSize); err != nil {
					return err
				}
				if err := printTree(w, fmt.Sprintf("mutation %d", i), t, cfg.Indent); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&times, "times", 1, "number of mutations to apply")

	return cmd
}
