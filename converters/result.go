// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/ncd/community"
)

// ResultDocument is the exported form of a fitted detector.
type ResultDocument struct {
	RunID       string         `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Algorithm   string         `json:"algorithm" yaml:"algorithm"`
	Count       int            `json:"count" yaml:"count"`
	Modularity  float64        `json:"modularity" yaml:"modularity"`
	Assignments map[string]int `json:"assignments" yaml:"assignments"`
	Communities [][]string     `json:"communities" yaml:"communities"`
}

// NewResultDocument copies res into a document labelled with algorithm.
func NewResultDocument(algorithm string, res *community.Result) ResultDocument {
	doc := ResultDocument{
		Algorithm:   algorithm,
		Count:       res.Count,
		Modularity:  res.Modularity,
		Assignments: make(map[string]int, len(res.Node2Com)),
		Communities: make([][]string, len(res.Communities)),
	}
	for id, c := range res.Node2Com {
		doc.Assignments[id] = c
	}
	for c, members := range res.Communities {
		doc.Communities[c] = append([]string(nil), members...)
	}

	return doc
}

// WriteResult encodes doc as JSON, YAML or text.
func WriteResult(w io.Writer, doc ResultDocument, f Format) error {
	if f == FormatText {
		return writeResultText(w, doc)
	}
	if f != FormatJSON && f != FormatYAML {
		return fmt.Errorf("WriteResult: %q: %w", f, ErrUnknownFormat)
	}

	return encode(w, doc, f)
}

// writeResultText prints a short human summary.
func writeResultText(w io.Writer, doc ResultDocument) error {
	var b strings.Builder
	if doc.RunID != "" {
		fmt.Fprintf(&b, "run:         %s\n", doc.RunID)
	}
	fmt.Fprintf(&b, "algorithm:   %s\n", doc.Algorithm)
	fmt.Fprintf(&b, "communities: %d\n", doc.Count)
	fmt.Fprintf(&b, "modularity:  %.6f\n", doc.Modularity)
	for c, members := range doc.Communities {
		fmt.Fprintf(&b, "  [%d] (%d) %s\n", c, len(members), strings.Join(members, " "))
	}
	_, err := io.WriteString(w, b.String())

	return err
}
