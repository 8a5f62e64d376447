// Package shape implements the path & shape-component parser (§4.5/C5):
// the TGVS-framed component loop and its four recognized inner tags
// (TGSD component metadata, TGBP Bézier path, tGTB stroke thickness,
// tGTI opaque pencil metadata).
package shape

import (
	"bytes"
	"io"

	"github.com/otvg/reader/internal/bitio"
	"github.com/otvg/reader/internal/errs"
	"github.com/otvg/reader/internal/model"
	"github.com/otvg/reader/internal/numeric"
	"github.com/otvg/reader/internal/prim"
	"github.com/otvg/reader/internal/tags"
)

var tgtbFixedRefHeader = []byte{0xFF, 0xFF, 0xFF, 0xFF}
var tgtbFixedDefHeader = []byte{0xFF, 0xFF, 0xFF, 0xCF, 0x00}
var tgtbZeroTrailer = []byte{0, 0, 0, 0, 0}

// ParseComponent reads one TGVS-opened shape component: the tag, its
// LE length frame, and the inner loop of recognized tags (§4.5).
func ParseComponent(r *prim.Reader) (model.ShapeComponent, error) {
	tag, err := r.Tag()
	if err != nil {
		return model.ShapeComponent{}, err
	}
	if tag != tags.TGVS {
		return model.ShapeComponent{}, errs.UnknownComponentTag(tag)
	}
	length, err := r.U32()
	if err != nil {
		return model.ShapeComponent{}, err
	}
	view, err := prim.Bounded(r, int(length))
	if err != nil {
		return model.ShapeComponent{}, err
	}

	var out model.ShapeComponent
loop:
	for {
		innerTag, err := view.TagAtEOF()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.ShapeComponent{}, err
		}
		switch innerTag {
		case tags.TGSD:
			info, brk, err := parseTGSD(view)
			if err != nil {
				return model.ShapeComponent{}, err
			}
			out.Tags = append(out.Tags, info)
			if brk {
				break loop
			}
		case tags.TGBP:
			path, err := parseTGBP(view)
			if err != nil {
				return model.ShapeComponent{}, err
			}
			out.Tags = append(out.Tags, path)
		case tags.TGTB:
			thickness, err := parseTGTB(view)
			if err != nil {
				return model.ShapeComponent{}, err
			}
			out.Tags = append(out.Tags, thickness)
		case tags.TGTI:
			tgti, err := parseTGTI(view)
			if err != nil {
				return model.ShapeComponent{}, err
			}
			out.Tags = append(out.Tags, tgti)
		default:
			return model.ShapeComponent{}, errs.UnknownComponentTag(innerTag)
		}
	}
	return out, nil
}

// parseTGSD reads a TGSD tag's length-framed metadata body, then the
// continuation byte that lives outside that frame. brk reports whether
// the caller's component loop must stop.
func parseTGSD(r *prim.Reader) (model.InfoData, bool, error) {
	length, err := r.U32()
	if err != nil {
		return model.InfoData{}, false, err
	}
	view, err := prim.Bounded(r, int(length))
	if err != nil {
		return model.InfoData{}, false, err
	}

	rawType, err := view.U8()
	if err != nil {
		return model.InfoData{}, false, err
	}
	info := model.ComponentInfo{Type: model.ComponentType(rawType)}
	switch info.Type {
	case model.ComponentFill:
		flag, err := view.U8()
		if err != nil {
			return model.InfoData{}, false, err
		}
		switch flag {
		case 0x00:
			// no color id
		case 0x01:
			skip := int(length) - 24 - 2
			if skip < 0 {
				return model.InfoData{}, false, errs.Mystery("TGSD Fill body too short for color id (len=%d)", length)
			}
			if err := view.Skip(skip); err != nil {
				return model.InfoData{}, false, err
			}
			colorID, err := view.U64()
			if err != nil {
				return model.InfoData{}, false, err
			}
			info.ColorID = &colorID
		default:
			return model.InfoData{}, false, errs.Mystery("TGSD Fill flag byte %#x is neither 0x00 nor 0x01", flag)
		}
	case model.ComponentUnknown1, model.ComponentStroke:
		// remaining bytes discarded by the bounded view itself.
	case model.ComponentPencil:
		if _, err := view.U32(); err != nil {
			return model.InfoData{}, false, err
		}
		colorID, err := view.U64()
		if err != nil {
			return model.InfoData{}, false, err
		}
		info.ColorID = &colorID
	default:
		return model.InfoData{}, false, errs.UnknownComponentType(rawType)
	}

	cont, err := r.U8()
	if err != nil {
		return model.InfoData{}, false, err
	}
	switch cont {
	case 0x01:
		return model.InfoData{Info: info}, false, nil
	case 0x00:
		if _, err := r.U32(); err != nil {
			return model.InfoData{}, false, err
		}
		return model.InfoData{Info: info}, true, nil
	default:
		return model.InfoData{}, false, errs.Mystery("TGSD continuation byte %#x is neither 0x00 nor 0x01", cont)
	}
}

// parseTGBP reads a TGBP tag's length-framed Bézier path: a point
// budget, an opcode bitstream (§4.4), then that many TbQuant-encoded
// point pairs.
func parseTGBP(r *prim.Reader) (model.PathData, error) {
	length, err := r.U32()
	if err != nil {
		return model.PathData{}, err
	}
	view, err := prim.Bounded(r, int(length))
	if err != nil {
		return model.PathData{}, err
	}
	pointCount, err := view.U32()
	if err != nil {
		return model.PathData{}, err
	}
	ops, err := bitio.DecodeOpcodes(bitio.New(view), int(pointCount))
	if err != nil {
		return model.PathData{}, err
	}

	var segments []model.PathSegment
	for _, op := range ops {
		switch op {
		case bitio.OpLine:
			p, err := readPoint(view)
			if err != nil {
				return model.PathData{}, err
			}
			segments = append(segments, model.LineSegment{P: p})
		case bitio.OpCubic:
			p1, err := readPoint(view)
			if err != nil {
				return model.PathData{}, err
			}
			p2, err := readPoint(view)
			if err != nil {
				return model.PathData{}, err
			}
			p3, err := readPoint(view)
			if err != nil {
				return model.PathData{}, err
			}
			segments = append(segments, model.CubicSegment{P1: p1, P2: p2, P3: p3})
		}
	}
	return model.PathData{Path: model.Path{Segments: segments}}, nil
}

// readPoint reads a TbQuant-encoded coordinate pair: two raw 32-bit
// words reinterpreted through the TbQuant codec, never as IEEE floats
// (§4.5 TGBP note; see DESIGN.md's Open Question decision).
func readPoint(r *prim.Reader) (model.Point, error) {
	x, err := r.U32()
	if err != nil {
		return model.Point{}, err
	}
	y, err := r.U32()
	if err != nil {
		return model.Point{}, err
	}
	return model.Point{X: numeric.Decode(x), Y: numeric.Decode(y)}, nil
}

// parseTGTB reads a tGTB tag's length-framed stroke-thickness body: a
// reference (0x00) or define (0x01) variant, followed by a shared
// domain trailer.
func parseTGTB(r *prim.Reader) (model.ThicknessData, error) {
	length, err := r.U32()
	if err != nil {
		return model.ThicknessData{}, err
	}
	view, err := prim.Bounded(r, int(length))
	if err != nil {
		return model.ThicknessData{}, err
	}

	first, err := view.U8()
	if err != nil {
		return model.ThicknessData{}, err
	}
	var st model.StrokeThickness
	switch first {
	case 0x00:
		st.Defined = false
		hdr, err := view.Bytes(4)
		if err != nil {
			return model.ThicknessData{}, err
		}
		if !bytes.Equal(hdr, tgtbFixedRefHeader) {
			return model.ThicknessData{}, errs.Mystery("tGTB reference header mismatch: %x", hdr)
		}
	case 0x01:
		st.Defined = true
		disc, err := view.U8()
		if err != nil {
			return model.ThicknessData{}, err
		}
		st.Discretionary = disc
		hdr, err := view.Bytes(5)
		if err != nil {
			return model.ThicknessData{}, err
		}
		if !bytes.Equal(hdr, tgtbFixedDefHeader) {
			return model.ThicknessData{}, errs.Mystery("tGTB define header mismatch: %x", hdr)
		}
		pointCount, err := view.U32()
		if err != nil {
			return model.ThicknessData{}, err
		}
		points := make([]model.StrokeThicknessPoint, pointCount)
		for i := range points {
			p, err := readThicknessPoint(view)
			if err != nil {
				return model.ThicknessData{}, err
			}
			points[i] = p
		}
		st.Definition = points
		trailer, err := view.Bytes(5)
		if err != nil {
			return model.ThicknessData{}, err
		}
		if !bytes.Equal(trailer, tgtbZeroTrailer) {
			return model.ThicknessData{}, errs.Mystery("tGTB define trailer not all zero: %x", trailer)
		}
	default:
		return model.ThicknessData{}, errs.Mystery("tGTB first byte %#x is neither 0x00 nor 0x01", first)
	}

	domainStart, err := view.F32()
	if err != nil {
		return model.ThicknessData{}, err
	}
	if gap, err := view.U64(); err != nil {
		return model.ThicknessData{}, err
	} else if gap != 0 {
		return model.ThicknessData{}, errs.Mystery("tGTB domain gap 1 is non-zero: %#x", gap)
	}
	domainEnd, err := view.F32()
	if err != nil {
		return model.ThicknessData{}, err
	}
	if gap, err := view.U64(); err != nil {
		return model.ThicknessData{}, err
	} else if gap != 0 {
		return model.ThicknessData{}, errs.Mystery("tGTB domain gap 2 is non-zero: %#x", gap)
	}
	st.DomainStart = domainStart
	st.DomainEnd = domainEnd
	return model.ThicknessData{Thickness: st}, nil
}

// readThicknessPoint reads the 11 f32 fields of one stroke-thickness
// sample: (loc, off_l, lb_x, lb_y, lf_x, lf_y, off_r, rb_x, rb_y, rf_x,
// rf_y).
func readThicknessPoint(r *prim.Reader) (model.StrokeThicknessPoint, error) {
	var v [11]float32
	for i := range v {
		f, err := r.F32()
		if err != nil {
			return model.StrokeThicknessPoint{}, err
		}
		v[i] = f
	}
	return model.StrokeThicknessPoint{
		Loc: v[0],
		Left: model.Side{
			Offset:   v[1],
			CtrlBack: model.PointF32{X: v[2], Y: v[3]},
			CtrlFwd:  model.PointF32{X: v[4], Y: v[5]},
		},
		Right: model.Side{
			Offset:   v[6],
			CtrlBack: model.PointF32{X: v[7], Y: v[8]},
			CtrlFwd:  model.PointF32{X: v[9], Y: v[10]},
		},
	}, nil
}

// parseTGTI reads a tGTI tag's length-framed payload verbatim, with no
// semantic interpretation (Non-goals: "the tGTI ... opaque sub-payload").
func parseTGTI(r *prim.Reader) (model.TgtiData, error) {
	length, err := r.U32()
	if err != nil {
		return model.TgtiData{}, err
	}
	raw, err := r.Bytes(int(length))
	if err != nil {
		return model.TgtiData{}, err
	}
	return model.TgtiData{Raw: raw}, nil
}
