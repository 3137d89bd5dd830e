// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"github.com/katalvlaran/ncd/core"
)

// GraphDocument is the JSON/YAML shape of a graph.
type GraphDocument struct {
	Directed bool           `json:"directed" yaml:"directed"`
	Weighted bool           `json:"weighted" yaml:"weighted"`
	Nodes    []string       `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Edges    []EdgeDocument `json:"edges" yaml:"edges"`
}

// EdgeDocument is one edge of a GraphDocument. A missing weight reads as 1.
type EdgeDocument struct {
	From   string   `json:"from" yaml:"from"`
	To     string   `json:"to" yaml:"to"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// ToDocument snapshots g. Nodes lists every vertex (sorted) so isolated
// vertices survive; edges follow creation order and carry a weight only on
// weighted graphs.
func ToDocument(g *core.Graph) GraphDocument {
	doc := GraphDocument{
		Directed: g.Directed(),
		Weighted: g.Weighted(),
		Nodes:    g.Vertices(),
	}
	edges := g.Edges()
	doc.Edges = make([]EdgeDocument, len(edges))
	for i, e := range edges {
		doc.Edges[i] = EdgeDocument{From: e.From, To: e.To}
		if doc.Weighted {
			w := e.Weight
			doc.Edges[i].Weight = &w
		}
	}

	return doc
}

// FromDocument builds a graph from doc. The graph is weighted when doc says
// so or when any edge carries a weight; loops and parallel edges are allowed.
func FromDocument(doc GraphDocument) (*core.Graph, error) {
	weighted := doc.Weighted
	for _, e := range doc.Edges {
		if e.Weight != nil {
			weighted = true
			break
		}
	}

	opts := []core.GraphOption{core.WithDirected(doc.Directed), core.WithLoops(), core.WithMultiEdges()}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for _, id := range doc.Nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("FromDocument: node %q: %w", id, err)
		}
	}
	for i, e := range doc.Edges {
		w := 0.0
		if weighted {
			w = 1
			if e.Weight != nil {
				w = *e.Weight
			}
		}
		if _, err := g.AddEdge(e.From, e.To, w); err != nil {
			return nil, fmt.Errorf("FromDocument: edge %d (%s→%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}
