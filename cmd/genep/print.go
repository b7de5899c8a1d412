package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/genep/individual"
	"github.com/katalvlaran/genep/tree"
)

// printTree writes "<label>: <expression>" followed by the indented dump.
func printTree(w io.Writer, label string, t *tree.Tree[float64], indent int) error {
	expr, err := t.Expression()
	if err != nil {
		return err
	}
	dump, err := t.Dump(indent)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s\n%s", label, expr, dump)

	return nil
}

// printIndividual prints every tree of ind, labelled f0, f1, ...
func printIndividual(w io.Writer, ind *individual.Individual[float64], indent int) error {
	for j := 0; j < ind.OutputSize(); j++ {
		if err := printTree(w, fmt.Sprintf("f%d", j), ind.Tree(j), indent); err != nil {
			return err
		}
	}

	return nil
}
