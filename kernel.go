// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"fmt"
)

// MakeNode returns the address of the node (v, low, high), creating it if
// needed. When low and high are equal the node is redundant and we return low
// directly. We return an error wrapping ErrInvariantViolation if v is not a
// decision variable or if v is not strictly smaller than the variables of the
// two children, ErrPrecondition if a child is not in the table, and
// ErrCapacityExceeded if the table is full.
func (t *Table) MakeNode(v Var, low, high Addr) (Addr, error) {
	if !t.Contains(low) || !t.Contains(high) {
		return False, t.operror("makenode", low, high, fmt.Errorf("%w: child not in table", ErrPrecondition))
	}
	if v > MaxVar {
		return False, t.operror("makenode", low, high, fmt.Errorf("%w: variable %d is reserved", ErrInvariantViolation, v))
	}
	if low != high && (t.nodes[low].Level() <= v || t.nodes[high].Level() <= v) {
		return False, t.operror("makenode", low, high, fmt.Errorf("%w: variable %d does not precede its children", ErrInvariantViolation, v))
	}
	res, err := t.makenode(v, low, high)
	if err != nil {
		return False, t.operror("makenode", low, high, err)
	}
	return res, nil
}

// makenode is the unchecked version of MakeNode used by the operations of the
// library, where the ordering of variables holds by construction.
func (t *Table) makenode(v Var, low, high Addr) (Addr, error) {
	// check whether children are equal, in which case we can skip the node
	if low == high {
		return low, nil
	}
	t.stats.UniqueAccess++
	n := pack(v, low, high)
	// otherwise try to find an existing node using the unique index
	a, k, chain := t.probe(n)
	t.stats.UniqueChain += chain
	if a != False {
		t.stats.UniqueHit++
		return a, nil
	}
	t.stats.UniqueMiss++
	// If no existing node, we append one at the end of the arena, unless we
	// reached the maximal number of nodes.
	if len(t.nodes) >= t.maxnodes {
		return False, fmt.Errorf("%w: table limited to %d nodes", ErrCapacityExceeded, t.maxnodes)
	}
	res := Addr(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.index[k] = res
	t.stats.Produced++
	if _DEBUG {
		if err := t.checknode(res); err != nil {
			return False, err
		}
	}
	if float64(len(t.nodes)-2) > t.loadfactor*float64(len(t.index)) {
		t.rehash()
	}
	return res, nil
}

// probe looks for node n in the unique index. It returns the address of the
// node, or False if it is not in the table, together with the slot where the
// search stopped and the number of slots visited before it.
func (t *Table) probe(n Node) (Addr, int, int) {
	size := len(t.index)
	k := nodehash(n, size)
	chain := 0
	for {
		a := t.index[k]
		if a == False || t.nodes[a] == n {
			return a, k, chain
		}
		chain++
		k++
		if k == size {
			k = 0
		}
	}
}

// rehash replaces the unique index with one that is (at least) twice as large.
// Nodes stay at the same address in the arena.
func (t *Table) rehash() {
	oldsize := len(t.index)
	t.index = make([]Addr, primeGte(2*oldsize+1))
	t.reindex()
	t.stats.Rehashes++
	t.logger.Debug("rehash unique index", "id", t.id, "nodes", len(t.nodes), "from", oldsize, "to", len(t.index))
}

// reindex inserts all the decision nodes of the arena in the unique index,
// which must be empty and large enough.
func (t *Table) reindex() {
	size := len(t.index)
	for a := Addr(2); a < Addr(len(t.nodes)); a++ {
		k := nodehash(t.nodes[a], size)
		for t.index[k] != False {
			k++
			if k == size {
				k = 0
			}
		}
		t.index[k] = a
	}
}

// checknode tests the reduction and ordering rules on the node at address a.
func (t *Table) checknode(a Addr) error {
	v, low, high := t.nodes[a].Unpack()
	switch {
	case v > MaxVar:
		return fmt.Errorf("%w: node %d has a reserved variable %d", ErrInvariantViolation, a, v)
	case low == high:
		return fmt.Errorf("%w: node %d is redundant", ErrInvariantViolation, a)
	case !t.Contains(low) || !t.Contains(high):
		return fmt.Errorf("%w: node %d has a child outside of the table", ErrInvariantViolation, a)
	case t.nodes[low].Level() <= v || t.nodes[high].Level() <= v:
		return fmt.Errorf("%w: node %d breaks the variable order", ErrInvariantViolation, a)
	}
	return nil
}

// CheckInvariants verifies the structure of the whole table: constants at
// address 0 and 1, no redundant node, no two nodes with the same triplet, every
// edge going to a larger variable, and every node reachable from the unique
// index. It returns an error wrapping ErrInvariantViolation on the first
// failure.
func (t *Table) CheckInvariants() error {
	if len(t.nodes) < 2 || t.nodes[False] != nodeZero || t.nodes[True] != nodeOne {
		return fmt.Errorf("%w: missing constants", ErrInvariantViolation)
	}
	seen := make(map[Node]Addr, len(t.nodes))
	for a := Addr(2); a < Addr(len(t.nodes)); a++ {
		if err := t.checknode(a); err != nil {
			return err
		}
		if b, ok := seen[t.nodes[a]]; ok {
			return fmt.Errorf("%w: nodes %d and %d are equal", ErrInvariantViolation, b, a)
		}
		seen[t.nodes[a]] = a
		if b, _, _ := t.probe(t.nodes[a]); b != a {
			return fmt.Errorf("%w: node %d is not in the unique index", ErrInvariantViolation, a)
		}
	}
	indexed := 0
	for _, a := range t.index {
		if a == False {
			continue
		}
		if a < 2 || !t.Contains(a) {
			return fmt.Errorf("%w: unique index holds address %d", ErrInvariantViolation, a)
		}
		indexed++
	}
	if indexed != len(t.nodes)-2 {
		return fmt.Errorf("%w: unique index has %d entries for %d nodes", ErrInvariantViolation, indexed, len(t.nodes)-2)
	}
	return nil
}

// allnodes applies function f over all the nodes in the table, in increasing
// order of address. We stop at the first error returned by f.
func (t *Table) allnodes(f func(id Addr, level Var, low, high Addr) error) error {
	for k, n := range t.nodes {
		v, low, high := n.Unpack()
		if err := f(Addr(k), v, low, high); err != nil {
			return err
		}
	}
	return nil
}
