// Package palette implements the palette parser (§4.7/C7): the TPAL
// record's encoded-data buffer is a flat list of colors, each bracketed
// by a 0x79 sentinel and carrying either an RGBA tag or a color-id/name
// tag.
package palette

import (
	"bytes"
	"io"

	"github.com/otvg/reader/internal/errs"
	"github.com/otvg/reader/internal/model"
	"github.com/otvg/reader/internal/prim"
	"github.com/otvg/reader/internal/tags"
)

// firstEndTag is the LE u32 that must follow color_count: the same four
// bytes as the per-color end sentinel, read in the opposite endianness
// convention (§4.7).
const firstEndTag uint32 = 0x00000079

// Parse decodes a palette's body from its encoded-data buffer.
func Parse(buf []byte) (model.PaletteData, error) {
	r := prim.New(bytes.NewReader(buf))
	colorCount, err := r.U32()
	if err != nil {
		return model.PaletteData{}, err
	}
	endTag, err := r.U32()
	if err != nil {
		return model.PaletteData{}, err
	}
	if endTag != firstEndTag {
		return model.PaletteData{}, errs.Mystery("palette first_end_tag = %#x, want %#x", endTag, firstEndTag)
	}

	colors := make([]model.PaletteColor, colorCount)
	for i := range colors {
		c, err := parseColor(r)
		if err != nil {
			return model.PaletteData{}, err
		}
		colors[i] = c
	}
	return model.PaletteData{Colors: colors}, nil
}

func parseColor(r *prim.Reader) (model.PaletteColor, error) {
	header, err := r.U16()
	if err != nil {
		return model.PaletteColor{}, err
	}
	if header != 0 {
		return model.PaletteColor{}, errs.Mystery("palette color header = %#x, want 0", header)
	}

	var out model.PaletteColor
	for {
		tag, err := r.TagAtEOF()
		if err == io.EOF || tag == tags.PaletteEnd {
			return out, nil
		}
		if err != nil {
			return model.PaletteColor{}, err
		}
		switch tag {
		case tags.TCSC:
			length, err := r.U32()
			if err != nil {
				return model.PaletteColor{}, err
			}
			if length != 4 {
				return model.PaletteColor{}, errs.Mystery("TCSC length = %d, want 4", length)
			}
			rgba, err := r.Bytes(4)
			if err != nil {
				return model.PaletteColor{}, err
			}
			out.Tags = append(out.Tags, model.RGBAColor{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]})
		case tags.TCID:
			length, err := r.U32()
			if err != nil {
				return model.PaletteColor{}, err
			}
			view, err := prim.Bounded(r, int(length))
			if err != nil {
				return model.PaletteColor{}, err
			}
			nameLen, err := view.U32()
			if err != nil {
				return model.PaletteColor{}, err
			}
			name, err := view.UTF16String(int(nameLen))
			if err != nil {
				return model.PaletteColor{}, err
			}
			colorID, err := view.U64()
			if err != nil {
				return model.PaletteColor{}, err
			}
			projLen, err := view.U32()
			if err != nil {
				return model.PaletteColor{}, err
			}
			project, err := view.UTF16String(int(projLen))
			if err != nil {
				return model.PaletteColor{}, err
			}
			out.Tags = append(out.Tags, model.ColorIDColor{ID: colorID, Name: name, Project: project})
		default:
			return model.PaletteColor{}, errs.UnknownPaletteTag(tag)
		}
	}
}
