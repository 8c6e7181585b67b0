// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"fmt"
)

// Order is the layout used by Reorder for the nodes of the new table.
type Order int

const (
	// PreOrder places a node before its low subtree, and its low subtree
	// before its high subtree.
	PreOrder Order = iota
	// PostOrder places a node after its low and high subtrees.
	PostOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	}
	return "unknown"
}

// Reorder returns a new table that contains only the nodes reachable from
// roots, laid out following order, together with the addresses of the roots
// in the new table. The constants stay at address 0 and 1. The new table uses
// the same configuration as t, with a fresh identity, and t is left unchanged.
// Each root denotes the same function in both tables.
func (t *Table) Reorder(roots []Addr, order Order) (*Table, []Addr, error) {
	for _, r := range roots {
		if err := t.checkaddr("reorder", r); err != nil {
			return nil, nil, err
		}
	}
	var nodes []Addr
	switch order {
	case PreOrder:
		visited := newbitset(len(t.nodes))
		visited.add(False)
		visited.add(True)
		t.preorder(visited, roots, func(a Addr) bool {
			nodes = append(nodes, a)
			return true
		})
	case PostOrder:
		nodes = t.postorder(roots...)
	default:
		return nil, nil, t.operror("reorder", undefined, undefined, fmt.Errorf("%w: unknown order %d", ErrPrecondition, int(order)))
	}
	// shuffle maps the addresses of t to the addresses in the new table
	shuffle := make([]Addr, len(t.nodes))
	shuffle[True] = True
	for k, a := range nodes {
		shuffle[a] = Addr(k + 2)
	}
	res := newtable(t.cfg, len(nodes)+2)
	res.nodes = append(res.nodes, nodeZero, nodeOne)
	for _, a := range nodes {
		v, low, high := t.nodes[a].Unpack()
		res.nodes = append(res.nodes, pack(v, shuffle[low], shuffle[high]))
	}
	res.reindex()
	res.stats.Produced = len(nodes)
	newroots := make([]Addr, len(roots))
	for k, r := range roots {
		newroots[k] = shuffle[r]
	}
	t.logger.Debug("reorder", "id", t.id, "order", order, "nodes", len(t.nodes), "into", res.id, "kept", len(res.nodes))
	if _DEBUG {
		if err := res.CheckInvariants(); err != nil {
			return nil, nil, t.operror("reorder", undefined, undefined, err)
		}
	}
	return res, newroots, nil
}

// ReorderBDDs is a version of Reorder for a list of diagrams built in the same
// table. It returns an error wrapping ErrPrecondition if the tables differ.
func ReorderBDDs(order Order, bdds ...BDD) ([]BDD, error) {
	t, err := sametable("reorder", bdds...)
	if err != nil {
		return nil, err
	}
	roots := make([]Addr, len(bdds))
	for k, b := range bdds {
		roots[k] = b.Root
	}
	nt, newroots, err := t.Reorder(roots, order)
	if err != nil {
		return nil, err
	}
	res := make([]BDD, len(newroots))
	for k, r := range newroots {
		res[k] = BDD{r, nt}
	}
	return res, nil
}
