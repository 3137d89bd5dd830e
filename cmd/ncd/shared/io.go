// SPDX-License-Identifier: MIT

package shared

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/ncd/converters"
	"github.com/katalvlaran/ncd/core"
)

// Stdio is the path that selects stdin or stdout.
const Stdio = "-"

// ReadGraphFile loads a graph from path ("-" reads stdin). An empty format
// is inferred from the extension; stdin defaults to an edge list.
func ReadGraphFile(path, format string, stdin io.Reader, directed bool) (*core.Graph, error) {
	f, err := graphFormat(path, format)
	if err != nil {
		return nil, err
	}

	r := stdin
	if path != Stdio {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	g, err := converters.ReadGraph(r, f, directed)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return g, nil
}

// CreateOutput opens path for writing ("-" or "" is stdout). The returned
// close function is always non-nil.
func CreateOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == Stdio {
		return stdout, func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return file, file.Close, nil
}

// graphFormat resolves an explicit format name or infers one from path.
func graphFormat(path, format string) (converters.Format, error) {
	if format != "" {
		return converters.ParseFormat(format)
	}
	if path == Stdio {
		return converters.FormatEdgeList, nil
	}

	return converters.FormatFromPath(path)
}
