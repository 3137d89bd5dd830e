// SPDX-License-Identifier: MIT
// Package: ncd/builder
//
// id_fn.go - vertex naming schemes.
//
// Detectors sort vertex IDs lexicographically, so the scheme decides the
// visiting order of every fixture. PaddedIDFn makes that order numeric.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the vertex at a zero-based index. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn names vertices "0", "1", ..., "10", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PaddedIDFn names vertices with zero-padded decimals of the given width,
// e.g. width 3 gives "000", "001", ... Panics if width < 1.
func PaddedIDFn(width int) IDFn {
	if width < 1 {
		panic(fmt.Sprintf("builder: PaddedIDFn(%d): width must be >= 1", width))
	}
	format := "%0" + strconv.Itoa(width) + "d"

	return func(idx int) string {
		return fmt.Sprintf(format, idx)
	}
}

// SymbolIDFn names vertices "A".."Z" and continues with "AA", "AB", ...
// in spreadsheet-column style, so any non-negative index has a name.
func SymbolIDFn(idx int) string {
	if idx < 0 {
		return strconv.Itoa(idx)
	}
	var buf []byte
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}

	return string(buf)
}
