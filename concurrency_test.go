// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestIndependentTables runs computations on distinct tables in parallel. Each
// table is owned by a single goroutine.
func TestIndependentTables(t *testing.T) {
	sizes := []int{4, 5, 6, 7, 8, 4, 6, 8}
	results := make([]*big.Int, len(sizes))
	tables := make([]*Table, len(sizes))
	var g errgroup.Group
	for k, n := range sizes {
		g.Go(func() error {
			tb, err := New(Nodesize(n * n * 64))
			if err != nil {
				return err
			}
			x := make([]Addr, n)
			for i := range x {
				if x[i], err = tb.Ithvar(Var(i)); err != nil {
					return err
				}
			}
			// exactly one of the variables is true, built with xor and and
			one := False
			none := True
			for i := range x {
				nx, err := tb.Not(x[i])
				if err != nil {
					return err
				}
				a, err := tb.And(none, x[i])
				if err != nil {
					return err
				}
				b, err := tb.And(one, nx)
				if err != nil {
					return err
				}
				if one, err = tb.Or(a, b); err != nil {
					return err
				}
				if none, err = tb.And(none, nx); err != nil {
					return err
				}
			}
			res, err := tb.Satcount(one, n)
			if err != nil {
				return err
			}
			results[k], tables[k] = res, tb
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for k, n := range sizes {
		assert.Equal(t, big.NewInt(int64(n)), results[k], "exactly one of %d", n)
		assert.NoError(t, tables[k].CheckInvariants())
	}
}
