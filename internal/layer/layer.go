// Package layer implements the layer parser (§4.6/C6): the four named
// vector-art layers (underlay, color, line, overlay) all route through
// this one decoder once their encoded-data buffer has been
// materialized.
package layer

import (
	"bytes"

	"github.com/otvg/reader/internal/errs"
	"github.com/otvg/reader/internal/model"
	"github.com/otvg/reader/internal/prim"
	"github.com/otvg/reader/internal/shape"
	"github.com/otvg/reader/internal/tags"
)

// trailerSentinel is the 13-byte sequence that must follow a vector
// layer's shape list exactly (§4.6).
var trailerSentinel = []byte{0x00, 0x54, 0x47, 0x52, 0x56, 0x08, 0x00, 0x00, 0x00, 0x3D, 0xDF, 0x4F, 0x8D}

const (
	layerKindEmpty  = 0x0000
	layerKindVector = 0x0100
	shapeMagic      = 2
)

// Parse decodes a layer's body from its encoded-data buffer.
func Parse(buf []byte) (model.LayerData, error) {
	r := prim.New(bytes.NewReader(buf))
	kind, err := r.U16()
	if err != nil {
		return model.LayerData{}, err
	}
	switch kind {
	case layerKindEmpty:
		return model.LayerData{Kind: model.LayerKindEmpty}, nil
	case layerKindVector:
		return parseVectorBody(r)
	default:
		return model.LayerData{}, errs.UnknownLayerTag(uint32(kind))
	}
}

func parseVectorBody(r *prim.Reader) (model.LayerData, error) {
	shapeCount, err := r.U32()
	if err != nil {
		return model.LayerData{}, err
	}
	shapes := make([]model.VectorShape, shapeCount)
	for i := range shapes {
		s, err := parseShape(r)
		if err != nil {
			return model.LayerData{}, err
		}
		shapes[i] = s
	}

	trailer, err := r.Bytes(len(trailerSentinel))
	if err != nil {
		return model.LayerData{}, err
	}
	if !bytes.Equal(trailer, trailerSentinel) {
		return model.LayerData{}, errs.Mystery("layer trailer mismatch: got %x, want %x", trailer, trailerSentinel)
	}
	return model.LayerData{Kind: model.LayerKindVector, Shapes: shapes}, nil
}

func parseShape(r *prim.Reader) (model.VectorShape, error) {
	magic, err := r.U32()
	if err != nil {
		return model.VectorShape{}, err
	}
	if magic != shapeMagic {
		return model.VectorShape{}, errs.Mystery("shape_magic = %d, want %d", magic, shapeMagic)
	}
	tag, err := r.Tag()
	if err != nil {
		return model.VectorShape{}, err
	}
	if tag != tags.TGLY {
		return model.VectorShape{}, errs.UnknownLayerTag(tag)
	}
	length, err := r.U32()
	if err != nil {
		return model.VectorShape{}, err
	}
	view, err := prim.Bounded(r, int(length))
	if err != nil {
		return model.VectorShape{}, err
	}

	rawType, err := view.U16()
	if err != nil {
		return model.VectorShape{}, err
	}
	if !validShapeType(rawType) {
		return model.VectorShape{}, errs.UnknownShapeType(rawType)
	}
	componentCount, err := view.U32()
	if err != nil {
		return model.VectorShape{}, err
	}
	components := make([]model.ShapeComponent, componentCount)
	for i := range components {
		c, err := shape.ParseComponent(view)
		if err != nil {
			return model.VectorShape{}, err
		}
		components[i] = c
	}
	return model.VectorShape{Type: model.ShapeType(rawType), Components: components}, nil
}

// validShapeType reports whether raw is one of the named ShapeType
// values (§3): {0, 1, 2, 3, 6, 7}.
func validShapeType(raw uint16) bool {
	switch model.ShapeType(raw) {
	case model.ShapeUnknown0, model.ShapeUnknown1, model.ShapeFill, model.ShapeStroke, model.ShapeLine, model.ShapeUnknown7:
		return true
	default:
		return false
	}
}
