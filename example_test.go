// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd_test

import (
	"fmt"
	"log"

	"github.com/dalzilio/lbdd"
)

// This example shows the basic usage of the package: create a table, compute
// some expressions and output the result.
func Example_basic() {
	// Create a new table with an initial capacity of 10 000 nodes and a task
	// cache of 3 000 entries for each apply.
	tb, err := lbdd.New(lbdd.Nodesize(10000), lbdd.Cachesize(3000))
	if err != nil {
		log.Fatal(err)
	}
	// n1 is a set comprising the three variables {x2, x3, x5}. It can also be
	// interpreted as the Boolean expression: x2 & x3 & x5
	n1, _ := tb.Makeset([]lbdd.Var{2, 3, 5})
	// n2 == x1 | !x3 | x4
	x1, _ := tb.Ithvar(1)
	nx3, _ := tb.NIthvar(3)
	x4, _ := tb.Ithvar(4)
	n2, _ := tb.Or(x1, nx3, x4)
	// n3 == n1 & n2
	n3, err := tb.Apply(lbdd.OPand, n1, n2)
	if err != nil {
		log.Fatal(err)
	}
	count, _ := tb.Satcount(n3, 6)
	fmt.Printf("Number of sat. assignments: %s\n", count)
	fmt.Printf("Number of nodes: %d\n", tb.NodeCount(n3))
	// Output:
	// Number of sat. assignments: 6
	// Number of nodes: 7
}

// This example shows how to combine diagrams with their handles and how to
// compact the nodes of a result in a new table.
func Example_reorder() {
	tb, _ := lbdd.New()
	a, _ := tb.Ithvar(0)
	b, _ := tb.Ithvar(1)
	// temporary results stay in the table
	for v := lbdd.Var(2); v < 10; v++ {
		x, _ := tb.Ithvar(v)
		tb.And(a, x)
	}
	f, err := lbdd.Xor(tb.BDD(a), tb.BDD(b))
	if err != nil {
		log.Fatal(err)
	}
	res, _ := lbdd.ReorderBDDs(lbdd.PreOrder, f)
	fmt.Println(tb.Len(), res[0].Table.Len())
	fmt.Println(res[0].Table.Eval(res[0].Root, func(v lbdd.Var) bool { return v == 0 }))
	// Output:
	// 22 5
	// true
}
