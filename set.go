// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

// And returns the logical 'and' of a sequence of nodes.
func (t *Table) And(n ...Addr) (Addr, error) {
	return t.fold(OPand, True, n)
}

// Or returns the logical 'or' of a sequence of nodes.
func (t *Table) Or(n ...Addr) (Addr, error) {
	return t.fold(OPor, False, n)
}

// Xor returns the exclusive 'or' between two nodes.
func (t *Table) Xor(n1, n2 Addr) (Addr, error) {
	return t.Apply(OPxor, n1, n2)
}

// Imp returns the logical 'implication' between two nodes.
func (t *Table) Imp(n1, n2 Addr) (Addr, error) {
	return t.Apply(OPimp, n1, n2)
}

// Equiv returns the logical 'bi-implication' between two nodes.
func (t *Table) Equiv(n1, n2 Addr) (Addr, error) {
	return t.Apply(OPbiimp, n1, n2)
}

// Not returns the negation of the expression corresponding to node n, computed
// as the exclusive 'or' of n and True.
func (t *Table) Not(n Addr) (Addr, error) {
	return t.Apply(OPxor, n, True)
}

// Equal tests equivalence between nodes. Since nodes are unique, two nodes of
// the same table are equivalent if and only if they have the same address.
func (t *Table) Equal(n1, n2 Addr) bool {
	return n1 == n2
}

// fold combines the nodes in n from right to left. The result is unit when n
// is empty.
func (t *Table) fold(op Operator, unit Addr, n []Addr) (Addr, error) {
	if len(n) == 0 {
		return unit, nil
	}
	res := n[len(n)-1]
	if err := t.checkaddr(op.String(), res); err != nil {
		return False, err
	}
	for k := len(n) - 2; k >= 0; k-- {
		var err error
		if res, err = t.Apply(op, n[k], res); err != nil {
			return False, err
		}
	}
	return res, nil
}
