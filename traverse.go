// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"iter"
)

// bitset is a set of addresses of a table, used to mark visited nodes.
type bitset []uint64

func newbitset(size int) bitset {
	return make(bitset, (size+63)/64)
}

func (s bitset) has(a Addr) bool {
	return s[a>>6]&(1<<(a&63)) != 0
}

func (s bitset) add(a Addr) {
	s[a>>6] |= 1 << (a & 63)
}

// Traverse returns an iterator over the nodes reachable from root, constants
// included, in depth-first pre-order: a node is yielded before its low
// subtree, which comes before its high subtree. Each node is yielded once. The
// iteration is lazy and can be stopped early; each call to the returned
// sequence starts a fresh traversal.
func (t *Table) Traverse(root Addr) iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		if !t.Contains(root) {
			return
		}
		t.preorder(newbitset(len(t.nodes)), []Addr{root}, yield)
	}
}

// preorder calls yield on the nodes reachable from roots that are not in
// visited, in depth-first pre-order, and adds them to visited. It returns
// false if yield stopped the traversal.
func (t *Table) preorder(visited bitset, roots []Addr, yield func(Addr) bool) bool {
	stack := make([]Addr, 0, 64)
	for k := len(roots) - 1; k >= 0; k-- {
		stack = append(stack, roots[k])
	}
	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.has(a) {
			continue
		}
		visited.add(a)
		if !yield(a) {
			return false
		}
		if a < 2 {
			continue
		}
		_, low, high := t.nodes[a].Unpack()
		// high is pushed first so that low is visited first
		if !visited.has(high) {
			stack = append(stack, high)
		}
		if !visited.has(low) {
			stack = append(stack, low)
		}
	}
	return true
}

// postorder returns the decision nodes reachable from roots, each node after
// its low and high descendants. Constants are not included.
func (t *Table) postorder(roots ...Addr) []Addr {
	type frame struct {
		a    Addr
		done bool
	}
	visited := newbitset(len(t.nodes))
	visited.add(False)
	visited.add(True)
	res := []Addr{}
	stack := []frame{}
	for k := len(roots) - 1; k >= 0; k-- {
		stack = append(stack, frame{a: roots[k]})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.done {
			res = append(res, top.a)
			continue
		}
		if visited.has(top.a) {
			continue
		}
		visited.add(top.a)
		_, low, high := t.nodes[top.a].Unpack()
		stack = append(stack, frame{a: top.a, done: true})
		if !visited.has(high) {
			stack = append(stack, frame{a: high})
		}
		if !visited.has(low) {
			stack = append(stack, frame{a: low})
		}
	}
	return res
}
