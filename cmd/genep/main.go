// Command genep is a playground for the expression-tree engine: it grows
// random trees, evaluates them, and applies mutation and crossover, all
// from a fixed seed so every run is reproducible.
//
//	genep generate --seed 7 --depth 4 --inputs 2
//	genep eval --at 1.5,2 --config genep.yaml
//	genep mutate --times 3
//	genep crossover
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
