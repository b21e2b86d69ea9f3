// Package formats provides readers and writers for 3D mesh file formats.
package formats

import (
	"errors"
	"io"
	"strconv"
)

// Errors shared by all formats.
var (
	ErrTruncatedInput = errors.New("truncated input")
	ErrIOFailure      = errors.New("i/o failure")
	ErrUnimplemented  = errors.New("not implemented")
)

// Note: binary STL is implemented in stl.go
// Note: POV-Ray include/scene output is in pov.go
// Note: AMF output is in amf.go

// readErr maps a short read to ErrTruncatedInput and anything else to ErrIOFailure.
func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncatedInput
	}
	return ErrIOFailure
}

// formatFloat prints f in its shortest round-trip decimal form, never in
// exponent notation.
func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
