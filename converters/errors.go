// SPDX-License-Identifier: MIT

package converters

import "errors"

var (
	// ErrUnknownFormat indicates a format name or file extension that has no
	// reader or writer.
	ErrUnknownFormat = errors.New("converters: unknown format")

	// ErrMalformedLine indicates an edge-list line that is not "u", "u v" or
	// "u v w" with a numeric w.
	ErrMalformedLine = errors.New("converters: malformed edge-list line")

	// ErrBadVertexID indicates a vertex ID that cannot be written in the
	// target format (empty, or containing whitespace for edge lists).
	ErrBadVertexID = errors.New("converters: vertex ID not representable")
)
