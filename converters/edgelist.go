// SPDX-License-Identifier: MIT
//
// File: edgelist.go
// Role: whitespace-separated edge lists.
// Format:
//   - one record per line: "u" (isolated vertex), "u v" or "u v w"
//   - '#' starts a comment; blank lines are skipped
//   - any weighted record makes the whole graph weighted; records without a
//     weight then get weight 1

package converters

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ncd/core"
)

// commentPrefix starts a comment in edge lists.
const commentPrefix = "#"

// edgeRecord is one parsed edge-list line.
type edgeRecord struct {
	from, to string
	weight   float64
	weighted bool
	isolated bool
}

// ReadEdgeList parses an edge list from r. The resulting graph allows loops
// and parallel edges, so the input is kept as written.
// Returns ErrMalformedLine with the line number on bad records.
func ReadEdgeList(r io.Reader, directed bool) (*core.Graph, error) {
	var (
		records  []edgeRecord
		weighted bool
		lineNo   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.Index(line, commentPrefix); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		rec, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("ReadEdgeList: line %d: %w", lineNo, err)
		}
		weighted = weighted || rec.weighted
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadEdgeList: %w", err)
	}

	opts := []core.GraphOption{core.WithDirected(directed), core.WithLoops(), core.WithMultiEdges()}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for _, rec := range records {
		if rec.isolated {
			if err := g.AddVertex(rec.from); err != nil {
				return nil, fmt.Errorf("ReadEdgeList: %w", err)
			}
			continue
		}
		w := 0.0
		if weighted {
			w = 1
			if rec.weighted {
				w = rec.weight
			}
		}
		if _, err := g.AddEdge(rec.from, rec.to, w); err != nil {
			return nil, fmt.Errorf("ReadEdgeList: %s %s: %w", rec.from, rec.to, err)
		}
	}

	return g, nil
}

// parseRecord interprets the fields of a non-empty line.
func parseRecord(fields []string) (edgeRecord, error) {
	switch len(fields) {
	case 1:
		return edgeRecord{from: fields[0], isolated: true}, nil
	case 2:
		return edgeRecord{from: fields[0], to: fields[1]}, nil
	case 3:
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return edgeRecord{}, fmt.Errorf("weight %q: %w", fields[2], ErrMalformedLine)
		}
		return edgeRecord{from: fields[0], to: fields[1], weight: w, weighted: true}, nil
	default:
		return edgeRecord{}, fmt.Errorf("%d fields: %w", len(fields), ErrMalformedLine)
	}
}

// WriteEdgeList writes g as an edge list: edges in creation order, then
// isolated vertices one per line. Weights are written for weighted graphs.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	weighted := g.Weighted()
	for _, e := range g.Edges() {
		if err := checkToken(e.From); err != nil {
			return fmt.Errorf("WriteEdgeList: %w", err)
		}
		if err := checkToken(e.To); err != nil {
			return fmt.Errorf("WriteEdgeList: %w", err)
		}
		if weighted {
			fmt.Fprintf(bw, "%s %s %s\n", e.From, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64))
		} else {
			fmt.Fprintf(bw, "%s %s\n", e.From, e.To)
		}
	}
	for _, id := range g.Vertices() {
		if err := checkToken(id); err != nil {
			return fmt.Errorf("WriteEdgeList: %w", err)
		}
		_, _, deg, err := g.Degree(id)
		if err != nil {
			return fmt.Errorf("WriteEdgeList: %w", err)
		}
		if deg == 0 {
			fmt.Fprintln(bw, id)
		}
	}

	return bw.Flush()
}

// checkToken rejects IDs that would not survive a round trip.
func checkToken(id string) error {
	if id == "" || strings.ContainsAny(id, " \t\r\n"+commentPrefix) {
		return fmt.Errorf("%q: %w", id, ErrBadVertexID)
	}

	return nil
}
