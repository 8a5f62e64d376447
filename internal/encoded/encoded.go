// Package encoded implements the encoded-data reader (§4.3/C3): every
// length-framed buffer in an OTVGfull document (layer bodies, palette
// bodies, and MainData) is wrapped in either a verbatim UNCO frame or a
// ZLIB-compressed one, and this package materializes either into a
// plain byte slice.
package encoded

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/otvg/reader/internal/errs"
	"github.com/otvg/reader/internal/prim"
	"github.com/otvg/reader/internal/tags"
)

// maxDecompressedSize bounds the output of a ZLIB frame so a corrupt or
// hostile decompressed_len header cannot force an unbounded allocation.
// The format carries no data anywhere near this size; it exists purely
// as a sanity ceiling (§4.3 "must not exceed a sane ceiling").
const maxDecompressedSize = 1 << 30 // 1 GiB

// Read consumes one encoded-data frame (a BE tag, a length, and the
// framed payload) and returns the fully materialized, decoded buffer.
func Read(r *prim.Reader) ([]byte, error) {
	tag, err := r.Tag()
	if err != nil {
		return nil, err
	}
	length, err := r.U32()
	if err != nil {
		return nil, err
	}

	switch tag {
	case tags.UNCO:
		return r.Bytes(int(length))
	case tags.ZLIB:
		decompressedLen, err := r.U32()
		if err != nil {
			return nil, err
		}
		if decompressedLen > maxDecompressedSize {
			return nil, errs.Mystery("decompressed_len %d exceeds sanity ceiling", decompressedLen)
		}
		if length < 4 {
			return nil, errs.Mystery("ZLIB frame length %d too short to hold decompressed_len", length)
		}
		compressed, err := r.Bytes(int(length - 4))
		if err != nil {
			return nil, err
		}
		zr, err := zlib.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, errs.Mystery("invalid zlib stream: %v", err)
		}
		defer zr.Close()
		out := make([]byte, decompressedLen)
		if _, err := io.ReadFull(zr, out); err != nil {
			return nil, errs.IO(err)
		}
		return out, nil
	default:
		return nil, errs.UnknownEncoding(tag)
	}
}
