package term

import (
	"math/rand"

	"github.com/katalvlaran/genep/ops"
)

// Generator draws one terminal value per call.
// Implementations MUST take all randomness from rng.
type Generator[V any] interface {
	Term(rng *rand.Rand) V
}

// Func adapts a plain function to Generator.
type Func[V any] func(rng *rand.Rand) V

// Term implements Generator.
func (f Func[V]) Term(rng *rand.Rand) V { return f(rng) }

// Significand bounds: terms are cardinal × U[sigMin, sigMax).
const (
	sigMin = 1.0
	sigMax = 10.0
)

// String length bounds (inclusive) and printable ASCII range.
const (
	MinStringLen   = 1
	MaxStringLen   = 1000
	firstPrintable = 0x20
	lastPrintable  = 0x7e
)

// signedCardinals is the log-scale magnitude set for signed domains.
var signedCardinals = [...]float64{
	-1e6, -1e5, -1e4, -1e3, -1e2, -1e1, -1,
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6,
}

// unsignedCardinals is the positive half of signedCardinals.
var unsignedCardinals = [...]float64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6,
}

// Signed returns the log-scale generator for signed integer and float domains.
// On narrow integer domains (int8, int16, ...) draws beyond the range
// saturate at its bounds.
func Signed[V ops.Number]() Generator[V] {
	return Func[V](func(rng *rand.Rand) V {
		return scaled[V](rng, signedCardinals[:])
	})
}

// Unsigned returns the positive log-scale generator for unsigned domains.
// Draws beyond the range saturate at its maximum.
func Unsigned[V ops.Number]() Generator[V] {
	return Func[V](func(rng *rand.Rand) V {
		return scaled[V](rng, unsignedCardinals[:])
	})
}

// Default picks Unsigned or Signed according to V.
func Default[V ops.Number]() Generator[V] {
	if ops.IsUnsigned[V]() {
		return Unsigned[V]()
	}

	return Signed[V]()
}

// Strings returns a generator of random printable strings.
func Strings() Generator[string] {
	return Func[string](func(rng *rand.Rand) string {
		n := MinStringLen + rng.Intn(MaxStringLen-MinStringLen+1)
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(firstPrintable + rng.Intn(lastPrintable-firstPrintable+1))
		}

		return string(buf)
	})
}

// Fixed always returns v. Handy for golden tests.
func Fixed[V any](v V) Generator[V] {
	return Func[V](func(*rand.Rand) V { return v })
}

// scaled draws the significand first, then the cardinal, matching the
// documented draw order so seeded streams stay stable. Integer results are
// clamped to V's range before conversion.
func scaled[V ops.Number](rng *rand.Rand, cardinals []float64) V {
	sig := sigMin + rng.Float64()*(sigMax-sigMin)
	idx := rng.Intn(len(cardinals))

	f := sig * cardinals[idx]
	if lo, hi, ok := ops.IntBounds[V](); ok {
		switch {
		case f >= float64(hi):
			return hi
		case f <= float64(lo):
			return lo
		}
	}

	return V(f)
}
