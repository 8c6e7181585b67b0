// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

// Operator describe the (binary) operations available on an Apply.
type Operator int

const (
	OPand    Operator = iota // Boolean conjunction
	OPxor                    // Exclusive or
	OPor                     // Disjunction
	OPnand                   // Negation of and
	OPnor                    // Negation of or
	OPimp                    // Implication
	OPbiimp                  // Equivalence
	OPdiff                   // Difference
	OPless                   // Set difference
	OPinvimp                 // Reverse implication
	opcount
)

var opnames = [opcount]string{
	OPand:    "and",
	OPxor:    "xor",
	OPor:     "or",
	OPnand:   "nand",
	OPnor:    "nor",
	OPimp:    "imp",
	OPbiimp:  "biimp",
	OPdiff:   "diff",
	OPless:   "less",
	OPinvimp: "invimp",
}

func (op Operator) String() string {
	if !op.Valid() {
		return "unknown"
	}
	return opnames[op]
}

// Valid reports whether op is one of the operators defined in this package.
func (op Operator) Valid() bool {
	return op >= 0 && op < opcount
}

// Commutative reports whether op(x, y) == op(y, x) for all x and y. The apply
// engine uses this property to normalize the keys of the task cache.
func (op Operator) Commutative() bool {
	if !op.Valid() {
		return false
	}
	return opres[op][0][1] == opres[op][1][0]
}

// Eval returns the value of op on two Boolean values.
func (op Operator) Eval(x, y bool) bool {
	return opres[op][b2a(x)][b2a(y)] == True
}

func b2a(x bool) Addr {
	if x {
		return True
	}
	return False
}

var opres = [opcount][2][2]Addr{
	//                      00    01               10    11
	OPand:    {0: {0: 0, 1: 0}, 1: {0: 0, 1: 1}}, // 0001
	OPxor:    {0: {0: 0, 1: 1}, 1: {0: 1, 1: 0}}, // 0110
	OPor:     {0: {0: 0, 1: 1}, 1: {0: 1, 1: 1}}, // 0111
	OPnand:   {0: {0: 1, 1: 1}, 1: {0: 1, 1: 0}}, // 1110
	OPnor:    {0: {0: 1, 1: 0}, 1: {0: 0, 1: 0}}, // 1000
	OPimp:    {0: {0: 1, 1: 1}, 1: {0: 0, 1: 1}}, // 1101
	OPbiimp:  {0: {0: 1, 1: 0}, 1: {0: 0, 1: 1}}, // 1001
	OPdiff:   {0: {0: 0, 1: 0}, 1: {0: 1, 1: 0}}, // 0010
	OPless:   {0: {0: 0, 1: 1}, 1: {0: 0, 1: 0}}, // 0100
	OPinvimp: {0: {0: 1, 1: 0}, 1: {0: 1, 1: 1}}, // 1011
}

// A shortcut tells how to resolve a task when one of its operands is a
// constant, or when both operands are equal, without looking at the cache.
type shortcut uint8

const (
	scNone  shortcut = iota // no shortcut, the task must be expanded
	scFalse                 // the result is False
	scTrue                  // the result is True
	scOther                 // the result is the other operand (or the operand, for equal operands)
)

// shortcuts gathers, for one operator, the action to take when the left
// operand is the constant k (left[k]), when the right operand is the constant k
// (right[k]), and when both operands are equal (same).
type shortcuts struct {
	left  [2]shortcut
	right [2]shortcut
	same  shortcut
}

var opshortcuts [opcount]shortcuts

func init() {
	for op := Operator(0); op < opcount; op++ {
		tt := opres[op]
		s := &opshortcuts[op]
		for k := 0; k < 2; k++ {
			s.left[k] = classify(tt[k][0], tt[k][1])
			s.right[k] = classify(tt[0][k], tt[1][k])
		}
		s.same = classify(tt[0][0], tt[1][1])
	}
}

// classify returns the shortcut for the unary function g such that g(False) =
// f0 and g(True) = f1.
func classify(f0, f1 Addr) shortcut {
	switch {
	case f0 == False && f1 == False:
		return scFalse
	case f0 == True && f1 == True:
		return scTrue
	case f0 == False && f1 == True:
		return scOther
	}
	// negation: no shortcut, we need to build the complement
	return scNone
}
