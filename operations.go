// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"fmt"
	"math/big"
)

// Eval returns the value of the function denoted by root for the variable
// assignment given by function assignment. The address must be valid.
func (t *Table) Eval(root Addr, assignment func(Var) bool) bool {
	n := root
	for n > 1 {
		v, low, high := t.nodes[n].Unpack()
		if assignment(v) {
			n = high
		} else {
			n = low
		}
	}
	return n == True
}

// EvalSlice is a version of Eval where the value of variable v is given by
// values[v]. We return an error if the diagram depends on a variable outside
// of the slice.
func (t *Table) EvalSlice(root Addr, values []bool) (bool, error) {
	if err := t.checkaddr("eval", root); err != nil {
		return false, err
	}
	n := root
	for n > 1 {
		v, low, high := t.nodes[n].Unpack()
		if int(v) >= len(values) {
			return false, t.operror("eval", root, undefined, fmt.Errorf("%w: no value for variable %d", ErrPrecondition, v))
		}
		if values[v] {
			n = high
		} else {
			n = low
		}
	}
	return n == True, nil
}

// NodeCount returns the number of decision nodes reachable from the nodes in
// roots. Shared nodes are counted once and constants are never counted.
// Addresses outside of the table are ignored.
func (t *Table) NodeCount(roots ...Addr) int {
	valid := make([]Addr, 0, len(roots))
	for _, r := range roots {
		if t.Contains(r) {
			valid = append(valid, r)
		}
	}
	return len(t.postorder(valid...))
}

// Scanset returns the set of variables found when following the high branch
// of node n. This is the dual of function Makeset.
func (t *Table) Scanset(n Addr) ([]Var, error) {
	if err := t.checkaddr("scanset", n); err != nil {
		return nil, err
	}
	res := []Var{}
	for i := n; i > 1; i = t.nodes[i].High() {
		res = append(res, t.nodes[i].Level())
	}
	return res, nil
}

// Satcount computes the number of satisfying variable assignments for the
// function denoted by n, over the varnum variables 0 to varnum-1. We return a
// result using arbitrary-precision arithmetic to avoid possible overflows. We
// return an error if n depends on a variable greater or equal to varnum.
func (t *Table) Satcount(n Addr, varnum int) (*big.Int, error) {
	if err := t.checkaddr("satcount", n); err != nil {
		return big.NewInt(0), err
	}
	if varnum < 0 {
		return big.NewInt(0), t.operror("satcount", n, undefined, fmt.Errorf("%w: negative number of variables", ErrPrecondition))
	}
	level := func(a Addr) int {
		if a < 2 {
			return varnum
		}
		return int(t.nodes[a].Level())
	}
	if n < 2 {
		res := big.NewInt(int64(n))
		return res.Lsh(res, uint(varnum)), nil
	}
	// we compute the count of each node bottom-up, so the count of the
	// children is always known when we reach a node
	satc := make(map[Addr]*big.Int)
	satc[False] = big.NewInt(0)
	satc[True] = big.NewInt(1)
	for _, a := range t.postorder(n) {
		v, low, high := t.nodes[a].Unpack()
		if int(v) >= varnum {
			return big.NewInt(0), t.operror("satcount", n, undefined, fmt.Errorf("%w: variable %d not below %d", ErrPrecondition, v, varnum))
		}
		res := new(big.Int).Lsh(satc[low], uint(level(low)-int(v)-1))
		res.Add(res, new(big.Int).Lsh(satc[high], uint(level(high)-int(v)-1)))
		satc[a] = res
	}
	res := new(big.Int).Lsh(satc[n], uint(level(n)))
	return res, nil
}
