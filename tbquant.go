package otvg

import "github.com/otvg/reader/internal/numeric"

// TbQuant is a decoded 32-bit fixed-point coordinate value (§4.2): the
// authoring tool's custom format with quantum 1/64, non-IEEE layout, and
// exponent bias 0x7F (stored bias 0x79 for the fractional field's
// left-justification).
//
// The zero value is canonical zero. Both views named in §9's "numeric
// ambiguity" open question are available: [TbQuant.Float64] for the
// mathematical value and [TbQuant.Raw] for the original 32-bit encoding.
type TbQuant = numeric.TbQuant

// DecodeTbQuant parses a raw 32-bit wire value into a TbQuant.
func DecodeTbQuant(raw uint32) TbQuant { return numeric.Decode(raw) }

// EncodeTbQuant reconstructs the raw 32-bit wire value for q.
func EncodeTbQuant(q TbQuant) uint32 { return numeric.Encode(q) }

// TbQuantFromFloat64 converts an IEEE double into its TbQuant
// representation.
func TbQuantFromFloat64(x float64) TbQuant { return numeric.FromFloat64(x) }
