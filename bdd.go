// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"fmt"
)

// BDD is a handle on a diagram: the address of its root together with the
// table that stores its nodes. Diagrams can only be combined when they share
// the same table.
type BDD struct {
	Root  Addr
	Table *Table
}

// IsTrue reports whether b is the constant True.
func (b BDD) IsTrue() bool {
	return b.Root == True
}

// IsFalse reports whether b is the constant False.
func (b BDD) IsFalse() bool {
	return b.Root == False
}

// Size returns the number of decision nodes reachable from the root of b.
func (b BDD) Size() int {
	return b.Table.NodeCount(b.Root)
}

func (b BDD) String() string {
	switch {
	case b.Table == nil:
		return fmt.Sprintf("BDD(%d)", b.Root)
	case b.Root < 2:
		return b.Table.nodes[b.Root].String()
	}
	return fmt.Sprintf("BDD(%d, %d nodes, table %s)", b.Root, b.Size(), b.Table.id)
}

// Apply returns op(a, b) for two diagrams built in the same table. It returns
// an error wrapping ErrPrecondition when the tables differ.
func Apply(op Operator, a, b BDD) (BDD, error) {
	t, err := sametable("apply("+op.String()+")", a, b)
	if err != nil {
		return BDD{}, err
	}
	res, err := t.Apply(op, a.Root, b.Root)
	return BDD{res, t}, err
}

// And returns the conjunction of a and b.
func And(a, b BDD) (BDD, error) {
	return Apply(OPand, a, b)
}

// Or returns the disjunction of a and b.
func Or(a, b BDD) (BDD, error) {
	return Apply(OPor, a, b)
}

// Xor returns the exclusive disjunction of a and b.
func Xor(a, b BDD) (BDD, error) {
	return Apply(OPxor, a, b)
}

// Not returns the negation of a.
func Not(a BDD) (BDD, error) {
	if a.Table == nil {
		return BDD{}, fmt.Errorf("%w: nil table in call to not", ErrPrecondition)
	}
	res, err := a.Table.Not(a.Root)
	return BDD{res, a.Table}, err
}

// sametable returns the table shared by all the diagrams in bdds.
func sametable(op string, bdds ...BDD) (*Table, error) {
	if len(bdds) == 0 {
		return nil, fmt.Errorf("%w: no operand in call to %s", ErrPrecondition, op)
	}
	t := bdds[0].Table
	if t == nil {
		return nil, fmt.Errorf("%w: nil table in call to %s", ErrPrecondition, op)
	}
	for _, b := range bdds[1:] {
		if b.Table != t {
			return nil, t.operror(op, bdds[0].Root, b.Root, fmt.Errorf("%w: operands from different tables", ErrPrecondition))
		}
	}
	return t, nil
}
