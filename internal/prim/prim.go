// Package prim implements the primitive readers (§4.1/C1): fixed-width
// integers, the big-endian four-character tag convention, length-bounded
// sub-views, and the two string encodings used throughout an OTVGfull
// document. Every other parser package is built on top of this one.
package prim

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/otvg/reader/internal/errs"
)

// Reader wraps an io.Reader with the fixed-width primitive reads the
// format needs. It never buffers beyond a single field and carries no
// state besides the underlying source, so it composes cleanly with a
// length-bounded sub-view constructed via Bounded.
type Reader struct {
	r io.Reader
}

// New wraps r for primitive reads.
func New(r io.Reader) *Reader { return &Reader{r: r} }

// full reads exactly len(buf) bytes, translating io.EOF/io.ErrUnexpectedEOF
// (and any partial read short of a full buffer) into the format's fatal
// unexpected-EOF error. Callers that must tell a clean end of stream
// apart from a truncated field use TagAtEOF instead.
func (r *Reader) full(buf []byte) error {
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return errs.IO(err)
	}
	return nil
}

// U8 reads one byte.
func (r *Reader) U8() (uint8, error) {
	var b [1]byte
	if err := r.full(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadByte implements io.ByteReader so a Reader can back a bit reader
// (internal/bitio) directly.
func (r *Reader) ReadByte() (byte, error) { return r.U8() }

// U16 reads a little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	var b [2]byte
	if err := r.full(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	var b [4]byte
	if err := r.full(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// U64 reads a little-endian uint64.
func (r *Reader) U64() (uint64, error) {
	var b [8]byte
	if err := r.full(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// F32 reads a little-endian IEEE-754 single-precision float.
func (r *Reader) F32() (float32, error) {
	bits, err := r.U32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// Tag reads a big-endian uint32, the wire representation of a
// four-character tag such as CERT or TGVS.
func (r *Reader) Tag() (uint32, error) {
	var b [4]byte
	if err := r.full(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// TagAtEOF is like Tag but reports a clean io.EOF (no bytes read) instead
// of wrapping it, letting a top-level dispatch loop distinguish "no more
// records" from a truncated tag.
func (r *Reader) TagAtEOF() (uint32, error) {
	var b [4]byte
	n, err := io.ReadFull(r.r, b[:])
	if err == nil {
		return binary.BigEndian.Uint32(b[:]), nil
	}
	if err == io.EOF && n == 0 {
		return 0, io.EOF
	}
	return 0, errs.IO(err)
}

// Bytes reads exactly n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := r.full(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Skip discards exactly n bytes.
func (r *Reader) Skip(n int) error {
	_, err := r.Bytes(n)
	return err
}

// CString reads up to and including the first NUL byte and returns the
// bytes before it, decoded as UTF-8 (§4.1 "NUL-terminated string"). A
// missing terminator before the end of the underlying view is a fatal
// error, surfaced by the eventual read failure once the view is
// exhausted.
func (r *Reader) CString() (string, error) {
	var buf bytes.Buffer
	for {
		b, err := r.U8()
		if err != nil {
			return "", errs.CString("reading NUL-terminated string", err)
		}
		if b == 0 {
			break
		}
		buf.WriteByte(b)
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", errs.UTF8("NUL-terminated string", errs.Mystery("invalid UTF-8"))
	}
	return buf.String(), nil
}

// UTF16String reads n UTF-16LE code units (2n bytes) and decodes them
// strictly: an unpaired or invalid surrogate is fatal (§4.1 "UTF-16LE
// string").
func (r *Reader) UTF16String(n int) (string, error) {
	units := make([]uint16, n)
	for i := range units {
		u, err := r.U16()
		if err != nil {
			return "", errs.UTF16("reading UTF-16LE string", err)
		}
		units[i] = u
	}
	return decodeUTF16Strict(units)
}

// decodeUTF16Strict decodes units as UTF-16, rejecting unpaired or
// out-of-order surrogates rather than substituting U+FFFD the way
// utf16.Decode does.
func decodeUTF16Strict(units []uint16) (string, error) {
	var buf bytes.Buffer
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < 0xD800 || u > 0xDFFF:
			buf.WriteRune(rune(u))
		case u <= 0xDBFF:
			if i+1 >= len(units) {
				return "", errs.UTF16("decoding code unit", errs.Mystery("unpaired high surrogate at end of string"))
			}
			lo := units[i+1]
			if lo < 0xDC00 || lo > 0xDFFF {
				return "", errs.UTF16("decoding code unit", errs.Mystery("high surrogate not followed by low surrogate"))
			}
			r := utf16.DecodeRune(rune(u), rune(lo))
			if r == utf8.RuneError {
				return "", errs.UTF16("decoding code unit", errs.Mystery("invalid surrogate pair"))
			}
			buf.WriteRune(r)
			i++
		default: // 0xDC00..0xDFFF: low surrogate with no preceding high
			return "", errs.UTF16("decoding code unit", errs.Mystery("unpaired low surrogate"))
		}
	}
	return buf.String(), nil
}

// Bounded returns a Reader limited to exactly n bytes read from r: a
// length-bounded sub-view (§4.1). Reading past the boundary fails with
// unexpected-EOF; reading fewer than n bytes before the caller moves on
// silently discards the remainder, matching every length-prefixed scope
// in the format (the caller re-synchronizes by length, not by content).
func Bounded(r *Reader, n int) (*Reader, error) {
	buf, err := r.Bytes(n)
	if err != nil {
		return nil, err
	}
	return New(bytes.NewReader(buf)), nil
}
