// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: dense, index-based weighted snapshot of a core.Graph used by the
//       detectors' inner loops.
// Policy:
//   - Vertex i is the i-th ID of g.Vertices() (sorted).
//   - Parallel edges collapse into one summed weight.
//   - Self-loops are kept in Loops, never in Out/In.

package community

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ncd/core"
)

// Adjacency is an immutable weighted view of a graph over indices 0..n-1.
type Adjacency struct {
	// Directed mirrors the source graph mode.
	Directed bool

	// IDs maps index -> vertex ID; Index is its inverse.
	IDs   []string
	Index map[string]int

	// Members lists the original vertices represented by each index. For a
	// graph built by NewAdjacency it is {IDs[i]}; Quotient unions it.
	Members [][]string

	// Out holds successor weights (all neighbours when undirected).
	Out []map[int]float64
	// In holds predecessor weights; nil when undirected.
	In []map[int]float64
	// Loops holds the self-loop weight of each index.
	Loops []float64

	// OutDegree and InDegree are weighted degrees including loops. When
	// undirected both equal the degree with loops counted twice.
	OutDegree []float64
	InDegree  []float64

	// TotalWeight is m: the sum of all edge weights, loops counted once.
	TotalWeight float64
}

// NewAdjacency snapshots g. Returns ErrNilGraph or ErrNegativeWeight.
// Complexity: O(V log V + E).
func NewAdjacency(g *core.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.Vertices()
	a := newAdjacency(g.Directed(), ids)
	for i, id := range ids {
		a.Members[i] = []string{id}
	}

	var (
		w    float64
		u, v int
	)
	for _, e := range g.Edges() {
		w = g.EdgeWeight(e)
		if w < 0 {
			return nil, fmt.Errorf("NewAdjacency: edge %s (%s→%s) w=%g: %w", e.ID, e.From, e.To, w, ErrNegativeWeight)
		}
		u, v = a.Index[e.From], a.Index[e.To]
		a.addWeight(u, v, w)
	}

	return a, nil
}

// newAdjacency allocates an empty view over ids.
func newAdjacency(directed bool, ids []string) *Adjacency {
	n := len(ids)
	a := &Adjacency{
		Directed:  directed,
		IDs:       ids,
		Index:     make(map[string]int, n),
		Members:   make([][]string, n),
		Out:       make([]map[int]float64, n),
		Loops:     make([]float64, n),
		OutDegree: make([]float64, n),
		InDegree:  make([]float64, n),
	}
	if directed {
		a.In = make([]map[int]float64, n)
	}
	for i, id := range ids {
		a.Index[id] = i
		a.Out[i] = make(map[int]float64)
		if directed {
			a.In[i] = make(map[int]float64)
		}
	}

	return a
}

// addWeight accumulates one edge u→v of weight w.
func (a *Adjacency) addWeight(u, v int, w float64) {
	a.TotalWeight += w
	if u == v {
		a.Loops[u] += w
		if a.Directed {
			a.OutDegree[u] += w
			a.InDegree[u] += w
		} else {
			a.OutDegree[u] += 2 * w
			a.InDegree[u] += 2 * w
		}
		return
	}
	a.Out[u][v] += w
	a.OutDegree[u] += w
	if a.Directed {
		a.In[v][u] += w
		a.InDegree[v] += w
		return
	}
	a.Out[v][u] += w
	a.OutDegree[v] += w
	a.InDegree[u] += w
	a.InDegree[v] += w
}

// Len returns the number of indices.
func (a *Adjacency) Len() int { return len(a.IDs) }

// Degree returns the undirected weighted degree of i (loops twice), or
// out+in when directed.
func (a *Adjacency) Degree(i int) float64 {
	if a.Directed {
		return a.OutDegree[i] + a.InDegree[i]
	}

	return a.OutDegree[i]
}

// Neighbors returns the neighbour indices of i in ascending order: the union
// of successors and predecessors when directed. i itself is never included.
func (a *Adjacency) Neighbors(i int) []int {
	seen := make(map[int]struct{}, len(a.Out[i]))
	out := make([]int, 0, len(a.Out[i]))
	for j := range a.Out[i] {
		seen[j] = struct{}{}
		out = append(out, j)
	}
	if a.Directed {
		for j := range a.In[i] {
			if _, ok := seen[j]; !ok {
				out = append(out, j)
			}
		}
	}
	sort.Ints(out)

	return out
}

// Graph materializes the view as a weighted core.Graph that allows loops.
// Vertex i gets ID IDs[i] and Metadata[NodesKey] = Members[i].
// Complexity: O(V + E log E).
func (a *Adjacency) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(a.Directed), core.WithWeighted(), core.WithLoops())
	for i, id := range a.IDs {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("Graph: AddVertex(%s): %w", id, err)
		}
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("Graph: Vertex(%s): %w", id, err)
		}
		members := make([]string, len(a.Members[i]))
		copy(members, a.Members[i])
		v.Metadata[NodesKey] = members
	}
	for i := range a.IDs {
		if a.Loops[i] != 0 {
			if _, err := g.AddEdge(a.IDs[i], a.IDs[i], a.Loops[i]); err != nil {
				return nil, fmt.Errorf("Graph: AddEdge(%s loop): %w", a.IDs[i], err)
			}
		}
		for _, j := range sortedKeys(a.Out[i]) {
			if !a.Directed && j < i {
				continue
			}
			if _, err := g.AddEdge(a.IDs[i], a.IDs[j], a.Out[i][j]); err != nil {
				return nil, fmt.Errorf("Graph: AddEdge(%s→%s): %w", a.IDs[i], a.IDs[j], err)
			}
		}
	}

	return g, nil
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[int]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
