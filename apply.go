// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"fmt"
)

// applytask is a frame of the traversal stack used by apply. A task (a, b)
// is first expanded, which pushes its high and low subtasks, then combined
// once the two subtasks have published their results in the frame.
type applytask struct {
	a, b     Addr
	variable Var     // variable of the result node, set when the task is expanded
	slot     int     // slot of the task in the task cache
	results  [2]Addr // results of the subtasks: high at index 0, low at index 1
	offset   int     // distance to the parent frame, 1 for a high subtask and 2 for a low subtask
	expanded bool
}

// Apply performs all of the basic binary operations on BDD nodes, such as
// logical 'and', 'or' etc. The operator is one of the constants defined in
// type Operator:
//
//	Identifier    Description             Truth table
//
//	OPand         logical and              [0,0,0,1]
//	OPxor         logical xor              [0,1,1,0]
//	OPor          logical or               [0,1,1,1]
//	OPnand        logical not-and          [1,1,1,0]
//	OPnor         logical not-or           [1,0,0,0]
//	OPimp         implication              [1,1,0,1]
//	OPbiimp       equivalence              [1,0,0,1]
//	OPdiff        set difference           [0,0,1,0]
//	OPless        less than                [0,1,0,0]
//	OPinvimp      reverse implication      [1,0,1,1]
//
// The two operands must belong to t. The result is the address of the
// (unique) node of t representing the function op(left, right). On error we
// return False and an *OpError; in this case no result is published, but
// nodes created before the failure stay in the table.
func (t *Table) Apply(op Operator, left, right Addr) (Addr, error) {
	name := "apply(" + op.String() + ")"
	if !op.Valid() {
		return False, t.operror(name, left, right, fmt.Errorf("%w (%d)", ErrUnknownOperator, int(op)))
	}
	if !t.Contains(left) || !t.Contains(right) {
		return False, t.operror(name, left, right, fmt.Errorf("%w: operand not in table", ErrPrecondition))
	}
	st := ApplyStats{Op: op}
	// tasks resolved at the root do not need a cache
	if res := resolve(op, left, right); res != undefined {
		st.Shortcuts++
		t.stats.LastApply = st
		t.stats.Applies++
		return res, nil
	}
	size := len(t.nodes)
	tc := newtaskcache(t.cachesize(), t.cfg.Hasher)
	res, err := t.apply(op, left, right, tc, &st)
	st.CacheHits, st.CacheMiss, st.Collisions = tc.hits, tc.misses, tc.collisions
	st.CacheSize = len(tc.table)
	st.Created = len(t.nodes) - size
	t.stats.OpHit += tc.hits
	t.stats.OpMiss += tc.misses
	t.stats.Collisions += tc.collisions
	t.stats.LastApply = st
	if err != nil {
		return False, t.operror(name, left, right, err)
	}
	t.stats.Applies++
	t.logger.Debug("apply", "id", t.id, "op", op, "tasks", st.Tasks, "hits", st.CacheHits,
		"collisions", st.Collisions, "depth", st.MaxDepth, "created", st.Created, "nodes", len(t.nodes))
	return res, nil
}

// resolve returns the result of task (a, b) when it can be obtained without
// looking at the children of a and b, and undefined otherwise.
func resolve(op Operator, a, b Addr) Addr {
	if a < 2 && b < 2 {
		return opres[op][a][b]
	}
	sc := &opshortcuts[op]
	if a == b {
		return pick(sc.same, a)
	}
	if a < 2 {
		return pick(sc.left[a], b)
	}
	if b < 2 {
		return pick(sc.right[b], a)
	}
	return undefined
}

func pick(s shortcut, other Addr) Addr {
	switch s {
	case scFalse:
		return False
	case scTrue:
		return True
	case scOther:
		return other
	}
	return undefined
}

// apply computes op(left, right) with a depth-first traversal of the pairs of
// nodes reachable from (left, right). The traversal uses an explicit stack, so
// its depth is only bounded by memory. For commutative operators the key of a
// task is normalized so that (a, b) and (b, a) share the same cache entry.
func (t *Table) apply(op Operator, left, right Addr, tc *taskcache, st *ApplyStats) (Addr, error) {
	commutative := op.Commutative()
	stack := make([]applytask, 1, 64)
	stack[0] = applytask{a: left, b: right, results: [2]Addr{undefined, undefined}}
	res := undefined
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		result := undefined
		if !top.expanded {
			top.expanded = true
			a, b := top.a, top.b
			if result = resolve(op, a, b); result != undefined {
				st.Shortcuts++
			} else {
				if commutative && a > b {
					a, b = b, a
					top.a, top.b = a, b
				}
				var slot int
				result, slot = tc.read(a, b)
				if result == undefined {
					top.slot = slot
					st.Tasks++
					lvar, llow, lhigh := t.nodes[a].Unpack()
					rvar, rlow, rhigh := t.nodes[b].Unpack()
					// constants have a variable larger than all the others, so
					// we never expand them
					var high, low applytask
					switch {
					case lvar == rvar:
						top.variable = lvar
						high = applytask{a: lhigh, b: rhigh}
						low = applytask{a: llow, b: rlow}
					case lvar < rvar:
						top.variable = lvar
						high = applytask{a: lhigh, b: b}
						low = applytask{a: llow, b: b}
					default:
						top.variable = rvar
						high = applytask{a: a, b: rhigh}
						low = applytask{a: a, b: rlow}
					}
					high.offset, high.results = 1, [2]Addr{undefined, undefined}
					low.offset, low.results = 2, [2]Addr{undefined, undefined}
					// top is not valid after this point
					stack = append(stack, high, low)
					if len(stack) > st.MaxDepth {
						st.MaxDepth = len(stack)
					}
				}
			}
		} else {
			// both subtasks are done, we build the node for the task
			r, err := t.makenode(top.variable, top.results[1], top.results[0])
			if err != nil {
				return False, err
			}
			tc.write(top.slot, top.a, top.b, r)
			result = r
		}
		if result == undefined {
			continue
		}
		offset := stack[len(stack)-1].offset
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			res = result
			break
		}
		stack[len(stack)-offset].results[offset-1] = result
	}
	return res, nil
}
