// Package individual groups one expression tree per output dimension into a
// candidate solution.
//
// An Individual maps an input vector of length InputSize() to an output
// vector of length OutputSize(): output j is the value of tree j. It offers
// rendering of all trees and whole-individual mutation; scoring against
// training data and the generation loop belong to callers.
//
//	b := tree.NewBuilder[float64](nil, tree.WithSeed(1))
//	ind, err := individual.Generate(b, 2, 1, individual.DefaultDepth)
//	out, err := ind.Value([]float64{3, 4})
//	fmt.Println(ind.Expressions())
package individual
