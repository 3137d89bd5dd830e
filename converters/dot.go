// SPDX-License-Identifier: MIT

package converters

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/ncd/core"
)

// dotPalette is cycled to colour communities.
var dotPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// WriteDOT writes g in Graphviz DOT. When node2com is non-nil each vertex is
// filled with the colour of its community and labelled "id (c)"; vertices
// without a community stay white.
func WriteDOT(w io.Writer, g *core.Graph, node2com map[string]int) error {
	bw := bufio.NewWriter(w)
	kind, arrow := "graph", "--"
	if g.Directed() {
		kind, arrow = "digraph", "->"
	}

	fmt.Fprintf(bw, "%s communities {\n", kind)
	fmt.Fprintln(bw, "  node [style=filled, fillcolor=white];")
	for _, id := range g.Vertices() {
		c, ok := node2com[id]
		if !ok {
			fmt.Fprintf(bw, "  %s;\n", strconv.Quote(id))
			continue
		}
		label := fmt.Sprintf("%s (%d)", id, c)
		fmt.Fprintf(bw, "  %s [label=%s, fillcolor=%q];\n",
			strconv.Quote(id), strconv.Quote(label), dotPalette[c%len(dotPalette)])
	}
	weighted := g.Weighted()
	for _, e := range g.Edges() {
		if weighted {
			fmt.Fprintf(bw, "  %s %s %s [weight=%s];\n", strconv.Quote(e.From), arrow, strconv.Quote(e.To),
				strconv.FormatFloat(e.Weight, 'g', -1, 64))
			continue
		}
		fmt.Fprintf(bw, "  %s %s %s;\n", strconv.Quote(e.From), arrow, strconv.Quote(e.To))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
