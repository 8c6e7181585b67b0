// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraverse(t *testing.T) {
	tb := newTable(t)
	// f = x0 ? x2 : (x1 & x2)
	x2, err := tb.MakeNode(2, False, True)
	require.NoError(t, err)
	y, err := tb.MakeNode(1, False, x2)
	require.NoError(t, err)
	f, err := tb.MakeNode(0, y, x2)
	require.NoError(t, err)

	order := slices.Collect(tb.Traverse(f))
	assert.Equal(t, []Addr{f, y, False, x2, True}, order)

	// the sequence can be iterated again
	assert.Equal(t, order, slices.Collect(tb.Traverse(f)))

	// and stopped early
	var first []Addr
	for a := range tb.Traverse(f) {
		first = append(first, a)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []Addr{f, y}, first)

	assert.Equal(t, []Addr{True}, slices.Collect(tb.Traverse(True)))
	assert.Empty(t, slices.Collect(tb.Traverse(1000)))
}

func TestTraverseVisitsOnce(t *testing.T) {
	tb := newTable(t)
	x := vars(t, tb, 6)
	f, err := tb.Xor(x[0], x[1])
	require.NoError(t, err)
	g, err := tb.Xor(x[2], x[3])
	require.NoError(t, err)
	h, err := tb.Equiv(f, g)
	require.NoError(t, err)
	seen := map[Addr]bool{}
	for a := range tb.Traverse(h) {
		assert.False(t, seen[a], "node %d visited twice", a)
		seen[a] = true
	}
	assert.Len(t, seen, tb.NodeCount(h)+2)
}

func TestPostorder(t *testing.T) {
	tb := newTable(t)
	x := vars(t, tb, 5)
	f, err := tb.Or(x[0], x[3])
	require.NoError(t, err)
	g, err := tb.And(f, x[4])
	require.NoError(t, err)
	nodes := tb.postorder(g, f)
	pos := map[Addr]int{}
	for k, a := range nodes {
		pos[a] = k
	}
	assert.Len(t, pos, len(nodes))
	for _, a := range nodes {
		_, low, high := tb.nodes[a].Unpack()
		if low > 1 {
			assert.Less(t, pos[low], pos[a])
		}
		if high > 1 {
			assert.Less(t, pos[high], pos[a])
		}
	}
}
