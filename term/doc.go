// Package term produces random terminal (constant) values for expression trees.
//
// A Generator is a capability chosen per tree instantiation; the tree builder
// calls it once for every Constant leaf it creates. All randomness comes from
// the *rand.Rand handed in by the caller, so a fixed seed yields a fixed stream
// of terms.
//
// Built-in schemes:
//
//	Signed[V]()   - ±{1, 10, …, 10^6} × U[1,10)   (signed integers and floats)
//	Unsigned[V]() -  {1, 10, …, 10^6} × U[1,10)   (unsigned integers)
//	Strings()     - printable ASCII, length U[1,1000]
//	Default[V]()  - Unsigned for unsigned V, Signed otherwise
//
// Integer domains truncate the product toward zero. Narrow integer types
// (int8, uint16, …) cannot hold the larger magnitudes; the conversion is then
// platform-defined, so prefer a custom Func for them.
package term
