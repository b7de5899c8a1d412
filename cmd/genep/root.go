package main

import (
	"log/slog"

	"github.com/katalvlaran/genep/tree"
	"github.com/spf13/cobra"
)

// Flag names shared by every subcommand.
const (
	flagConfig        = "config"
	flagSeed          = "seed"
	flagDepth         = "depth"
	flagInputs        = "inputs"
	flagOutputs       = "outputs"
	flagMutationDepth = "mutation-depth"
	flagIndent        = "indent"
	flagSelection     = "selection"
	flagVerbose       = "verbose"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "genep",
		Short:         "genep grows and edits random expression trees",
		Long:          `genep generates random arithmetic expression trees from a seed, evaluates them, and applies the genetic operators (mutation, crossover).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	def := DefaultConfig()
	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "YAML configuration file")
	pf.Int64(flagSeed, def.Seed, "random seed (0 means the default seed)")
	pf.Int(flagDepth, def.MaxDepth, "max depth of generated trees")
	pf.Int(flagInputs, def.InputSize, "number of input variables")
	pf.Int(flagOutputs, def.OutputSize, "number of trees (outputs) per individual")
	pf.Int(flagMutationDepth, def.MutationDepth, "max depth of subtrees grown by mutation")
	pf.Int(flagIndent, def.Indent, "spaces per level in tree dumps")
	pf.String(flagSelection, def.Selection, "subtree selection law: walk or uniform")
	pf.BoolP(flagVerbose, "v", false, "log debug records to stderr")

	root.AddCommand(
		newGenerateCmd(),
		newEvalCmd(),
		newMutateCmd(),
		newCrossoverCmd(),
	)

	return root
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString(flagConfig)
	cfg, err := LoadConfig(path)
	if err != nil {
		return cfg, err
	}

	if flags.Changed(flagSeed) {
		cfg.Seed, _ = flags.GetInt64(flagSeed)
	}
	if flags.Changed(flagDepth) {
		cfg.MaxDepth, _ = flags.GetInt(flagDepth)
	}
	if flags.Changed(flagInputs) {
		cfg.InputSize, _ = flags.GetInt(flagInputs)
	}
	if flags.Changed(flagOutputs) {
		cfg.OutputSize, _ = flags.GetInt(flagOutputs)
	}
	if flags.Changed(flagMutationDepth) {
		cfg.MutationDepth, _ = flags.GetInt(flagMutationDepth)
	}
	if flags.Changed(flagIndent) {
		cfg.Indent, _ = flags.GetInt(flagIndent)
	}
	if flags.Changed(flagSelection) {
		cfg.Selection, _ = flags.GetString(flagSelection)
	}

	return cfg, cfg.Validate()
}

// newBuilder wires the resolved config and a stderr logger into a Builder.
func newBuilder(cmd *cobra.Command, cfg Config) *tree.Builder[float64] {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	sel, _ := cfg.selection()

	return tree.NewBuilder[float64](nil,
		tree.WithSeed(cfg.Seed),
		tree.WithMutationDepth(cfg.MutationDepth),
		tree.WithSelection(sel),
		tree.WithLogger(logger),
	)
}
