// SPDX-License-Identifier: MIT

package converters

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ncd/core"
)

// Format names a serialization.
type Format string

const (
	// FormatEdgeList is the plain edge list (graphs only).
	FormatEdgeList Format = "edgelist"
	// FormatJSON is indented JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
	// FormatText is a human-readable summary (results only).
	FormatText Format = "text"
)

// ParseFormat validates a format name (case-insensitive; "yml" and "txt"
// are accepted aliases).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edgelist", "edges":
		return FormatEdgeList, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath picks a graph format from a file extension: .json, .yaml
// and .yml map to documents; .txt, .edges, .edgelist, .el and no extension
// map to edge lists.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case "", ".txt", ".edges", ".edgelist", ".el":
		return FormatEdgeList, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// ReadGraph decodes a graph in format f. directed applies to edge lists; a
// document sets its own mode and is made directed when directed is true.
func ReadGraph(r io.Reader, f Format, directed bool) (*core.Graph, error) {
	var doc GraphDocument
	switch f {
	case FormatEdgeList:
		return ReadEdgeList(r, directed)
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("ReadGraph: json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("ReadGraph: yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("ReadGraph: %q: %w", f, ErrUnknownFormat)
	}
	doc.Directed = doc.Directed || directed

	return FromDocument(doc)
}

// WriteGraph encodes g in format f.
func WriteGraph(w io.Writer, g *core.Graph, f Format) error {
	switch f {
	case FormatEdgeList:
		return WriteEdgeList(w, g)
	case FormatJSON, FormatYAML:
		return encode(w, ToDocument(g), f)
	default:
		return fmt.Errorf("WriteGraph: %q: %w", f, ErrUnknownFormat)
	}
}

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, v interface{}, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}
