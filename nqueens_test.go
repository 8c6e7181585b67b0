// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nqueens computes solutions for the N-Queen chess problem and returns
// the number of solutions. It builds a BDD with NxN variables corresponding to
// the squares in the chess board like:
//
//	0 4  8 12
//	1 5  9 13
//	2 6 10 14
//	3 7 11 15
//
// One solution is then that 2,4,11,13 should be true, meaning a queen should be
// placed there:
//
//	. X . .
//	. . . X
//	X . . .
//	. . X .
func nqueens(t testing.TB, N int, opts ...Option) (*big.Int, *Table) {
	tb := newTable(t, append([]Option{Nodesize(N * N * 256)}, opts...)...)
	must := func(n Addr, err error) Addr {
		t.Helper()
		require.NoError(t, err)
		return n
	}
	queen := True
	X := make([][]Addr, N)
	for i := range X {
		X[i] = make([]Addr, N)
		for j := range X[i] {
			X[i][j] = must(tb.Ithvar(Var(i*N + j)))
		}
	}
	// Place a queen in each row
	for i := 0; i < N; i++ {
		e := False
		for j := 0; j < N; j++ {
			e = must(tb.Or(e, X[i][j]))
		}
		queen = must(tb.And(queen, e))
	}

	// Build requirements for each variable(field)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			// No one in the same column
			a := True
			for k := 0; k < N; k++ {
				if k != j {
					a = must(tb.And(a, must(tb.Imp(X[i][j], must(tb.Not(X[i][k]))))))
				}
			}
			// No one in the same row
			b := True
			for k := 0; k < N; k++ {
				if k != i {
					b = must(tb.And(b, must(tb.Imp(X[i][j], must(tb.Not(X[k][j]))))))
				}
			}
			// No one in the same up-right diagonal
			c := True
			for k := 0; k < N; k++ {
				ll := k - i + j
				if ll >= 0 && ll < N {
					if k != i {
						c = must(tb.And(c, must(tb.Imp(X[i][j], must(tb.Not(X[k][ll]))))))
					}
				}
			}
			// No one in the same down-right diagonal
			d := True
			for k := 0; k < N; k++ {
				ll := i + j - k
				if ll >= 0 && ll < N {
					if k != i {
						d = must(tb.And(d, must(tb.Imp(X[i][j], must(tb.Not(X[k][ll]))))))
					}
				}
			}
			queen = must(tb.And(queen, a, b, c, d))
		}
	}
	res, err := tb.Satcount(queen, N*N)
	require.NoError(t, err)
	return res, tb
}

func TestNQueens(t *testing.T) {
	var nqueensTests = []struct {
		N        int
		expected int64
	}{
		{1, 1},
		{2, 0},
		{4, 2},
		{6, 4},
		{8, 92},
	}
	for _, tt := range nqueensTests {
		actual, tb := nqueens(t, tt.N)
		assert.Equal(t, big.NewInt(tt.expected), actual, "NQueens(%d)", tt.N)
		assert.NoError(t, tb.CheckInvariants())
	}
}

func TestNQueensHashers(t *testing.T) {
	for _, h := range []TaskHasher{LocalityHash{}, KnuthHash{}, XXHash{}} {
		actual, _ := nqueens(t, 6, TaskHash(h), Cacheratio(30))
		assert.Equal(t, big.NewInt(4), actual, h.String())
	}
}

func BenchmarkNQueens(b *testing.B) {
	for n := 0; n < b.N; n++ {
		nqueens(b, 8)
	}
}
