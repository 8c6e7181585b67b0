// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"fmt"
	"slices"
)

// Ithvar returns the diagram of the function that is true exactly when
// variable v is true. Variables need not be declared in advance; any value
// up to MaxVar can be used.
func (t *Table) Ithvar(v Var) (Addr, error) {
	if v > MaxVar {
		return False, t.operror("ithvar", False, True, fmt.Errorf("%w: variable %d is reserved", ErrPrecondition, v))
	}
	res, err := t.makenode(v, False, True)
	if err != nil {
		return False, t.operror("ithvar", False, True, err)
	}
	return res, nil
}

// NIthvar returns the diagram of the negation of variable v. See Ithvar.
func (t *Table) NIthvar(v Var) (Addr, error) {
	if v > MaxVar {
		return False, t.operror("nithvar", True, False, fmt.Errorf("%w: variable %d is reserved", ErrPrecondition, v))
	}
	res, err := t.makenode(v, True, False)
	if err != nil {
		return False, t.operror("nithvar", True, False, err)
	}
	return res, nil
}

// Makeset returns a node corresponding to the conjunction (the cube) of all the
// variable in varset, in their positive form. It is such that
// Scanset(Makeset(a)) is a, sorted and without duplicates. We build the cube
// directly, from the largest variable to the smallest one.
func (t *Table) Makeset(varset []Var) (Addr, error) {
	vars := slices.Clone(varset)
	slices.Sort(vars)
	vars = slices.Compact(vars)
	res := True
	for k := len(vars) - 1; k >= 0; k-- {
		if vars[k] > MaxVar {
			return False, t.operror("makeset", res, undefined, fmt.Errorf("%w: variable %d is reserved", ErrPrecondition, vars[k]))
		}
		var err error
		if res, err = t.makenode(vars[k], False, res); err != nil {
			return False, t.operror("makeset", res, undefined, err)
		}
	}
	return res, nil
}
