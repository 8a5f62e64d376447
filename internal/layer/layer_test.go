package layer

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/otvg/reader/internal/model"
	"github.com/otvg/reader/internal/tags"
)

func u16le(v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return b[:]
}

func u32le(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func beTag(t uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], t)
	return b[:]
}

func TestParseEmptyLayer(t *testing.T) {
	buf := u16le(layerKindEmpty)
	got, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got.Kind != model.LayerKindEmpty {
		t.Fatalf("Kind = %v, want LayerKindEmpty", got.Kind)
	}
}

func TestParseVectorLayerZeroShapes(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(u16le(layerKindVector))
	buf.Write(u32le(0)) // shape_count
	buf.Write(trailerSentinel)

	got, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got.Kind != model.LayerKindVector || len(got.Shapes) != 0 {
		t.Fatalf("got = %+v, want vector layer with zero shapes", got)
	}
}

func TestParseVectorLayerOneEmptyShape(t *testing.T) {
	var shapeBody bytes.Buffer
	shapeBody.Write(u16le(uint16(model.ShapeFill)))
	shapeBody.Write(u32le(0)) // component_count

	var buf bytes.Buffer
	buf.Write(u16le(layerKindVector))
	buf.Write(u32le(1)) // shape_count
	buf.Write(u32le(shapeMagic))
	buf.Write(beTag(tags.TGLY))
	buf.Write(u32le(uint32(shapeBody.Len())))
	buf.Write(shapeBody.Bytes())
	buf.Write(trailerSentinel)

	got, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(got.Shapes) != 1 || got.Shapes[0].Type != model.ShapeFill {
		t.Fatalf("got = %+v, want one Fill shape", got)
	}
}

func TestParseBadLayerKindFatal(t *testing.T) {
	buf := u16le(0x0042)
	if _, err := Parse(buf); err == nil {
		t.Fatalf("Parse() with bad layer_kind = nil error, want fatal error")
	}
}

func TestParseBadShapeMagicFatal(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(u16le(layerKindVector))
	buf.Write(u32le(1))
	buf.Write(u32le(99)) // bad shape_magic
	if _, err := Parse(buf.Bytes()); err == nil {
		t.Fatalf("Parse() with bad shape_magic = nil error, want fatal error")
	}
}

func TestParseMissingTrailerFatal(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(u16le(layerKindVector))
	buf.Write(u32le(0))
	buf.Write([]byte{0x00, 0x00}) // short, wrong trailer
	if _, err := Parse(buf.Bytes()); err == nil {
		t.Fatalf("Parse() with bad trailer = nil error, want fatal error")
	}
}

func TestParseUnknownShapeTypeFatal(t *testing.T) {
	var shapeBody bytes.Buffer
	shapeBody.Write(u16le(99)) // not a named ShapeType
	shapeBody.Write(u32le(0))

	var buf bytes.Buffer
	buf.Write(u16le(layerKindVector))
	buf.Write(u32le(1))
	buf.Write(u32le(shapeMagic))
	buf.Write(beTag(tags.TGLY))
	buf.Write(u32le(uint32(shapeBody.Len())))
	buf.Write(shapeBody.Bytes())
	buf.Write(trailerSentinel)

	if _, err := Parse(buf.Bytes()); err == nil {
		t.Fatalf("Parse() with unknown shape_type = nil error, want fatal error")
	}
}
