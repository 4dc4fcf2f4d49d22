// Package internalcheck holds policy tests for the ML-KEM surface.
//
// The tests load pkg/mlkem and its internal packages with
// golang.org/x/tools/go/packages and reject source patterns that tend to leak
// secrets: == or != between byte slices or arrays, bytes.Equal on buffers,
// and %x formatting. A statistical timing check for decapsulation is built
// only with the "timing" tag:
//
//	go test -tags timing ./pkg/mlkem/internalcheck
//
// This package is not imported by library code.
package internalcheck
