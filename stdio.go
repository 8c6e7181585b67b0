// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package lbdd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"unsafe"

	"github.com/goccy/go-graphviz"
)

// Print returns a one-line description of node n.
func (t *Table) Print(n Addr) string {
	if !t.Contains(n) {
		return fmt.Sprintf("Error (%d not a valid index)", n)
	}
	if n < 2 {
		return t.nodes[n].String()
	}
	v, low, high := t.nodes[n].Unpack()
	return fmt.Sprintf("(%d[%d] ? %d : %d)", n, v, high, low)
}

// WriteTable writes a textual representation of the nodes reachable from the
// roots, or of the whole table if roots is empty, one node per line.
func (t *Table) WriteTable(w io.Writer, roots ...Addr) error {
	nodes, err := t.selectnodes("print", roots)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	for _, n := range nodes {
		if n > 1 {
			v, low, high := t.nodes[n].Unpack()
			fmt.Fprintf(tw, "%d\t[%d\t] ? \t%d\t : %d\n", n, v, high, low)
		}
	}
	return tw.Flush()
}

// WriteDot writes a graph-like description of the nodes reachable from the
// roots, or of the whole table if roots is empty, using the DOT format. We do
// not draw arcs that go to the constant false.
func (t *Table) WriteDot(w io.Writer, roots ...Addr) error {
	nodes, err := t.selectnodes("dot", roots)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "1 [shape=box, label=\"1\", style=filled, shape=box, height=0.3, width=0.3];")
	for _, n := range nodes {
		if n > 1 {
			v, low, high := t.nodes[n].Unpack()
			fmt.Fprintf(bw, "%d %s\n", n, dotlabel(n, v))
			if low != False {
				fmt.Fprintf(bw, "%d -> %d [style=dotted];\n", n, low)
			}
			if high != False {
				fmt.Fprintf(bw, "%d -> %d [style=filled];\n", n, high)
			}
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotlabel(a Addr, v Var) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, v, a)
}

// RenderSVG renders the DOT description of the roots (see WriteDot) to SVG
// using Graphviz. This is a debugging aid for small diagrams.
func (t *Table) RenderSVG(ctx context.Context, roots ...Addr) ([]byte, error) {
	var dot bytes.Buffer
	if err := t.WriteDot(&dot, roots...); err != nil {
		return nil, err
	}
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot.Bytes())
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// selectnodes returns the sorted list of addresses reachable from roots,
// constants included, or all the addresses in the table if roots is empty.
func (t *Table) selectnodes(op string, roots []Addr) ([]Addr, error) {
	for _, r := range roots {
		if err := t.checkaddr(op, r); err != nil {
			return nil, err
		}
	}
	if len(roots) == 0 {
		nodes := make([]Addr, 0, len(t.nodes))
		t.allnodes(func(id Addr, _ Var, _, _ Addr) error {
			nodes = append(nodes, id)
			return nil
		})
		return nodes, nil
	}
	nodes := append([]Addr{False, True}, t.postorder(roots...)...)
	slices.Sort(nodes)
	return nodes, nil
}

// String returns a summary of the table and of its statistics.
func (t *Table) String() string {
	res := fmt.Sprintf("Table:          %s\n", t.id)
	res += fmt.Sprintf("Size:           %s\n", humanSize(len(t.nodes), unsafe.Sizeof(Node{})))
	res += fmt.Sprintf("Index:          %s\n", humanSize(len(t.index), unsafe.Sizeof(Addr(0))))
	res += "==============\n"
	res += t.Stats().String()
	return res
}

// humanSize returns a human-readable version of the size of a slice of b
// elements of size s.
func humanSize(b int, s uintptr) string {
	size := float64(b) * float64(s)
	switch {
	case size < 1<<10:
		return fmt.Sprintf("%d elements (%.0f B)", b, size)
	case size < 1<<20:
		return fmt.Sprintf("%d elements (%.1f KB)", b, size/(1<<10))
	case size < 1<<30:
		return fmt.Sprintf("%d elements (%.1f MB)", b, size/(1<<20))
	}
	return fmt.Sprintf("%d elements (%.1f GB)", b, size/(1<<30))
}
