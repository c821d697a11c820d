// SPDX-License-Identifier: MIT
//
// File: id_fn.go
// Role: Vertex ID schemes (index -> string).

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its ID. It must be injective.
type IDFn func(idx int) string

// DefaultIDFn yields decimal IDs: "0", "1", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolIDFn yields "A".."Z". Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn yields spreadsheet column names: "A".."Z", "AA", "AB", ...
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// PaddedIDFn yields zero-padded decimals of the given width ("007"), so that
// lexicographic ID order equals index order.
func PaddedIDFn(width int) IDFn {
	if width < 1 {
		panic(fmt.Sprintf("PaddedIDFn: width must be ≥ 1, got %d", width))
	}

	return func(idx int) string { return fmt.Sprintf("%0*d", width, idx) }
}

// SymbolNumberIDFn yields prefix + decimal index ("v0", "v1", ...).
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithSymbolIDs selects SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPaddedIDs selects PaddedIDFn(width).
func WithPaddedIDs(width int) BuilderOption { return WithIDScheme(PaddedIDFn(width)) }

// WithSymbNumb selects SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }
