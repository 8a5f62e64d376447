package otvg

import (
	"io"

	"github.com/otvg/reader/internal/container"
	"github.com/otvg/reader/internal/prim"
)

// Read decodes an OTVGfull document from r: the 20-byte prologue, then
// the top-level sequence of records (§4.8). The returned slice preserves
// file order exactly, including nested MainData records.
//
// Read is synchronous and single-threaded (§5): it performs blocking
// sequential reads on r and does no concurrent work of its own.
func Read(r io.Reader) ([]FileRecord, error) {
	pr := prim.New(r)
	if err := container.ReadPrologue(pr); err != nil {
		return nil, err
	}
	return container.ParseRecords(pr)
}
