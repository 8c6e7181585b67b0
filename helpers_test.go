// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTable(t testing.TB, opts ...Option) *Table {
	t.Helper()
	tb, err := New(opts...)
	require.NoError(t, err)
	return tb
}

// assignment returns the values of the varnum variables encoded by the bits of
// k, variable 0 being the least significant bit.
func assignment(k, varnum int) []bool {
	values := make([]bool, varnum)
	for v := range values {
		values[v] = k&(1<<v) != 0
	}
	return values
}

// truthtable evaluates f on all the assignments of varnum variables.
func truthtable(t testing.TB, tb *Table, f Addr, varnum int) []bool {
	t.Helper()
	res := make([]bool, 1<<varnum)
	for k := range res {
		v, err := tb.EvalSlice(f, assignment(k, varnum))
		require.NoError(t, err)
		res[k] = v
	}
	return res
}

// randomBDD builds a random function over varnum variables by combining
// literals with random operators.
func randomBDD(t testing.TB, tb *Table, rng *rand.Rand, varnum, size int) Addr {
	t.Helper()
	literal := func() Addr {
		v := Var(rng.IntN(varnum))
		var res Addr
		var err error
		if rng.IntN(2) == 0 {
			res, err = tb.Ithvar(v)
		} else {
			res, err = tb.NIthvar(v)
		}
		require.NoError(t, err)
		return res
	}
	res := literal()
	for k := 0; k < size; k++ {
		op := Operator(rng.IntN(int(opcount)))
		var err error
		res, err = tb.Apply(op, res, literal())
		require.NoError(t, err)
	}
	return res
}

// mustApply is Apply for tests, failing on error.
func mustApply(t testing.TB, tb *Table, op Operator, a, b Addr) Addr {
	t.Helper()
	res, err := tb.Apply(op, a, b)
	require.NoError(t, err)
	return res
}

// vars returns the diagrams of variables 0 to n-1.
func vars(t testing.TB, tb *Table, n int) []Addr {
	t.Helper()
	res := make([]Addr, n)
	for k := range res {
		var err error
		res[k], err = tb.Ithvar(Var(k))
		require.NoError(t, err)
	}
	return res
}
