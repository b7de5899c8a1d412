package individual

import "errors"

// Sentinel errors for the individual package.
var (
	// ErrNoTrees indicates an individual with zero outputs.
	ErrNoTrees = errors.New("individual: at least one tree is required")

	// ErrInputSize indicates trees built against different input sizes, or an
	// input vector whose length differs from InputSize().
	ErrInputSize = errors.New("individual: input size mismatch")

	// ErrOutputSize indicates crossover between individuals with different
	// numbers of outputs.
	ErrOutputSize = errors.New("individual: output size mismatch")

	// ErrNilIndividual indicates a nil *Individual argument.
	ErrNilIndividual = errors.New("individual: nil individual")

	// ErrNilBuilder indicates a nil *tree.Builder.
	ErrNilBuilder = errors.New("individual: nil builder")
)
