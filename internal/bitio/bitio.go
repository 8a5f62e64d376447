// Package bitio implements the path-segment opcode decoder (§4.4/C4): a
// minimal LSB-first bit reader and the unary opcode alphabet used to
// interleave Line and Cubic segments ahead of a TGBP tag's point data.
package bitio

import (
	"io"

	"github.com/otvg/reader/internal/errs"
)

// Opcode identifies a decoded path-segment opcode.
type Opcode int

const (
	// OpLine consumes 1 point.
	OpLine Opcode = iota
	// OpCubic consumes 3 points.
	OpCubic
)

// PointCount returns the number of points an opcode consumes from the
// point budget.
func (op Opcode) PointCount() int {
	switch op {
	case OpLine:
		return 1
	case OpCubic:
		return 3
	default:
		return 0
	}
}

// Reader is an LSB-first bit reader over a byte source, advancing one
// byte at a time. Bits within a byte are consumed from bit 0 (LSB) to
// bit 7 (MSB), matching the order the opcode stream is packed in.
type Reader struct {
	r     io.ByteReader
	cur   byte
	nbits uint // bits remaining unread in cur
}

// New wraps r for LSB-first bit reads.
func New(r io.ByteReader) *Reader {
	return &Reader{r: r}
}

// readBit returns the next bit (0 or 1), pulling a fresh byte from the
// source when the current one is exhausted.
func (r *Reader) readBit() (byte, error) {
	if r.nbits == 0 {
		b, err := r.r.ReadByte()
		if err != nil {
			return 0, errs.IO(err)
		}
		r.cur = b
		r.nbits = 8
	}
	bit := r.cur & 1
	r.cur >>= 1
	r.nbits--
	return bit, nil
}

// AlignByte discards any unread bits remaining in the current byte,
// leaving the reader positioned at the next byte boundary (§4.4
// "Trailing bits inside the current byte after termination are
// ignored").
func (r *Reader) AlignByte() {
	r.nbits = 0
	r.cur = 0
}

// ReadOpcode decodes one opcode: a run of zero or more 0 bits terminated
// by a 1 bit. A run of zero 0-bits (i.e. the very next bit is 1) decodes
// as Line; a run of exactly two 0-bits followed by a 1 decodes as Cubic;
// any other run length is fatal (§4.4's "unknown curve segment type").
func (r *Reader) ReadOpcode() (Opcode, error) {
	var zeros int
	for {
		bit, err := r.readBit()
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			break
		}
		zeros++
		if zeros > 2 {
			return 0, errs.Mystery("unknown curve segment type (run of %d zero bits)", zeros)
		}
	}
	switch zeros {
	case 0:
		return OpLine, nil
	case 2:
		return OpCubic, nil
	default:
		return 0, errs.Mystery("unknown curve segment type (run of %d zero bits)", zeros)
	}
}

// DecodeOpcodes decodes opcodes until their cumulative PointCount equals
// want, then aligns to the next byte boundary (§4.4 "decode a minimal
// prefix of bytes such that ... encodes exactly P points"). want == 0
// returns an empty, byte-aligned result without consuming any bits.
func DecodeOpcodes(r *Reader, want int) ([]Opcode, error) {
	if want == 0 {
		return nil, nil
	}
	var ops []Opcode
	var got int
	for got < want {
		op, err := r.ReadOpcode()
		if err != nil {
			return nil, err
		}
		got += op.PointCount()
		ops = append(ops, op)
	}
	if got != want {
		return nil, errs.Mystery("opcode stream overshot point budget: got %d, want %d", got, want)
	}
	r.AlignByte()
	return ops, nil
}
