// Package numeric implements the TbQuant fixed-point coordinate codec
// (§4.2/C2): a 32-bit, non-IEEE representation with quantum 1/64 used for
// every path coordinate in an OTVGfull document.
package numeric

import "math"

// expBias is the exponent bias built into the wire format: a stored
// exponent of 0x7F represents a real exponent of 0.
const expBias = 0x7F

// fracBias is the bit-width reference point used to compute how many bits
// of the 23-bit fractional field are actually populated: k = max(0, e -
// fracBias).
const fracBias = 0x79

// quantum is the smallest representable non-zero increment of the
// fractional field: every decoded value is an integer multiple of 1/64.
const quantum = 64

// TbQuant is a decoded OTVGfull fixed-point value (§4.2). The zero value
// is canonical zero.
type TbQuant struct {
	Neg  bool
	Exp  uint8
	Frac uint32
}

// Decode parses a raw 32-bit wire value into a TbQuant (§4.2 "Decode").
func Decode(raw uint32) TbQuant {
	if raw == 0 {
		return TbQuant{}
	}
	neg := raw>>31&1 == 1
	exp := uint8(raw >> 23 & 0xFF)
	k := fracShift(exp)
	frac := (raw & 0x7FFFFF) >> (23 - k)
	return TbQuant{Neg: neg, Exp: exp, Frac: frac}
}

// Encode reconstructs the raw 32-bit wire value for q (§4.2 "Encode").
// Encode(Decode(raw)) == raw for every raw with no sub-quantum noise
// (§8 property 1).
func Encode(q TbQuant) uint32 {
	if q.Exp == 0 && q.Frac == 0 {
		return 0
	}
	k := fracShift(q.Exp)
	raw := uint32(q.Exp) << 23
	raw |= (q.Frac << (23 - k)) & 0x7FFFFF
	if q.Neg {
		raw |= 1 << 31
	}
	return raw
}

// fracShift computes k = max(0, e - fracBias), the number of bits of the
// 23-bit field that are populated for a given stored exponent.
func fracShift(e uint8) uint32 {
	if e <= fracBias {
		return 0
	}
	return uint32(e) - fracBias
}

// Float64 returns the real value of q: (-1)^Neg * (2^(Exp-0x7F) +
// Frac/64), or exactly 0 for canonical zero.
func (q TbQuant) Float64() float64 {
	if q.Exp == 0 && q.Frac == 0 {
		return 0
	}
	v := math.Ldexp(1, int(q.Exp)-expBias) + float64(q.Frac)/quantum
	if q.Neg {
		return -v
	}
	return v
}

// Raw returns the raw 32-bit wire encoding of q. It is equivalent to
// Encode(q).
func (q TbQuant) Raw() uint32 { return Encode(q) }

// FromFloat64 converts an IEEE double into its TbQuant representation
// (§4.2 "From f64"). Behavior for values that are not exact multiples of
// the 1/64 quantum is unspecified by the format; the conversion truncates
// toward zero, matching the authoring tool's own quantization.
func FromFloat64(x float64) TbQuant {
	if x == 0 {
		return TbQuant{}
	}
	neg := x < 0
	if neg {
		x = -x
	}
	e := int(math.Floor(math.Log2(x))) + expBias
	f := math.Floor((x - math.Ldexp(1, e-expBias)) * quantum)
	return TbQuant{Neg: neg, Exp: uint8(e), Frac: uint32(f)}
}
