package ops

// Number is the value domain of an expression tree.
//
// Every type in the set converts to and from float64, which is how Sqrt and
// Abs are evaluated on floating domains.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Operator identifies one entry of the catalog.
type Operator uint8

const (
	// Add is binary addition.
	Add Operator = iota
	// Sub is binary subtraction.
	Sub
	// Mul is binary multiplication.
	Mul
	// Div is binary division.
	Div
	// Abs is the unary absolute value.
	Abs
	// Sqrt is the unary square root.
	Sqrt

	numOperators // sentinel; keep last
)

// Count is the number of operators in the catalog.
const Count = int(numOperators)

// Arity constants.
const (
	// Unary operators consume one operand.
	Unary = 1
	// Binary operators consume two operands.
	Binary = 2
)

// entry describes one catalog operator.
type entry struct {
	name   string // Go-style identifier, used by String
	symbol string // display symbol, used by Render and Lookup
	arity  int
}

// catalog is indexed by Operator.
var catalog = [numOperators]entry{
	Add:  {name: "Add", symbol: "+", arity: Binary},
	Sub:  {name: "Sub", symbol: "-", arity: Binary},
	Mul:  {name: "Mul", symbol: "*", arity: Binary},
	Div:  {name: "Div", symbol: "/", arity: Binary},
	Abs:  {name: "Abs", symbol: "abs", arity: Unary},
	Sqrt: {name: "Sqrt", symbol: "sqrt", arity: Unary},
}
