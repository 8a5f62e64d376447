package otvg_test

import (
	"bytes"
	"testing"

	"github.com/otvg/reader"
)

// FuzzRead is the primary panic-safety target: no input, however
// malformed, may cause Read to panic. Every failure mode must surface as
// an error.
func FuzzRead(f *testing.F) {
	f.Add(minimalDocument())
	f.Add([]byte("OTVGfull"))
	f.Add([]byte{})
	f.Add(bytes.Repeat([]byte{0xFF}, 64))

	f.Fuzz(func(t *testing.T, data []byte) {
		otvg.Read(bytes.NewReader(data)) //nolint:errcheck
	})
}
