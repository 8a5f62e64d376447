package shape

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/otvg/reader/internal/model"
	"github.com/otvg/reader/internal/numeric"
	"github.com/otvg/reader/internal/prim"
	"github.com/otvg/reader/internal/tags"
)

type builder struct {
	bytes.Buffer
}

func (b *builder) tag(t uint32) *builder {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], t)
	b.Write(buf[:])
	return b
}

func (b *builder) u8(v byte) *builder {
	b.WriteByte(v)
	return b
}

func (b *builder) u32(v uint32) *builder {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	b.Write(buf[:])
	return b
}

func (b *builder) u64(v uint64) *builder {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	b.Write(buf[:])
	return b
}

func (b *builder) f32(v float32) *builder {
	return b.u32(math.Float32bits(v))
}

func (b *builder) raw(bs []byte) *builder {
	b.Write(bs)
	return b
}

// tgsdBody builds a TGSD inner body: component_type + branch-specific
// bytes, padded to length with zeros.
func tgsdBody(compType byte, branch []byte, length int) []byte {
	body := append([]byte{compType}, branch...)
	for len(body) < length {
		body = append(body, 0)
	}
	return body[:length]
}

func TestParseComponentFillNoColorID(t *testing.T) {
	var b builder
	b.tag(tags.TGVS)
	var inner builder
	inner.tag(tags.TGSD)
	body := tgsdBody(0, []byte{0x00}, 4)
	inner.u32(uint32(len(body)))
	inner.raw(body)
	inner.u8(0x00) // continuation: break
	inner.u32(0)   // opaque trailer
	b.u32(uint32(inner.Len()))
	b.raw(inner.Bytes())

	comp, err := ParseComponent(prim.New(bytes.NewReader(b.Bytes())))
	if err != nil {
		t.Fatalf("ParseComponent() error: %v", err)
	}
	if len(comp.Tags) != 1 {
		t.Fatalf("len(comp.Tags) = %d, want 1", len(comp.Tags))
	}
	info, ok := comp.Tags[0].(model.InfoData)
	if !ok {
		t.Fatalf("comp.Tags[0] = %T, want model.InfoData", comp.Tags[0])
	}
	if info.Info.Type != model.ComponentFill || info.Info.ColorID != nil {
		t.Fatalf("info = %+v, want Fill with no ColorID", info.Info)
	}
}

func TestParseComponentPencilWithColorID(t *testing.T) {
	var b builder
	b.tag(tags.TGVS)
	var inner builder
	inner.tag(tags.TGSD)
	var body builder
	body.u8(byte(model.ComponentPencil))
	body.u32(0)   // discarded u32
	body.u64(999) // color id
	inner.u32(uint32(body.Len()))
	inner.raw(body.Bytes())
	inner.u8(0x00)
	inner.u32(0)
	b.u32(uint32(inner.Len()))
	b.raw(inner.Bytes())

	comp, err := ParseComponent(prim.New(bytes.NewReader(b.Bytes())))
	if err != nil {
		t.Fatalf("ParseComponent() error: %v", err)
	}
	info := comp.Tags[0].(model.InfoData)
	if info.Info.ColorID == nil || *info.Info.ColorID != 999 {
		t.Fatalf("ColorID = %v, want 999", info.Info.ColorID)
	}
}

func TestParseComponentPathLineSegment(t *testing.T) {
	var b builder
	b.tag(tags.TGVS)
	var inner builder
	inner.tag(tags.TGBP)
	var body builder
	body.u32(1) // point_count
	body.u8(0x01) // opcode byte: single 1-bit (Line), rest padding
	body.u32(numeric.Encode(numeric.FromFloat64(1)))
	body.u32(numeric.Encode(numeric.FromFloat64(2)))
	inner.u32(uint32(body.Len()))
	inner.raw(body.Bytes())
	b.u32(uint32(inner.Len()))
	b.raw(inner.Bytes())

	comp, err := ParseComponent(prim.New(bytes.NewReader(b.Bytes())))
	if err != nil {
		t.Fatalf("ParseComponent() error: %v", err)
	}
	path := comp.Tags[0].(model.PathData)
	if len(path.Path.Segments) != 1 {
		t.Fatalf("len(segments) = %d, want 1", len(path.Path.Segments))
	}
	line, ok := path.Path.Segments[0].(model.LineSegment)
	if !ok {
		t.Fatalf("segment = %T, want model.LineSegment", path.Path.Segments[0])
	}
	if line.P.X.Float64() != 1 || line.P.Y.Float64() != 2 {
		t.Fatalf("point = (%v, %v), want (1, 2)", line.P.X.Float64(), line.P.Y.Float64())
	}
}

func TestParseComponentUnknownTagFatal(t *testing.T) {
	var b builder
	b.tag(tags.TGVS)
	var inner builder
	inner.tag(0x41424344)
	inner.u32(0)
	b.u32(uint32(inner.Len()))
	b.raw(inner.Bytes())

	if _, err := ParseComponent(prim.New(bytes.NewReader(b.Bytes()))); err == nil {
		t.Fatalf("ParseComponent() with unknown inner tag = nil error, want fatal error")
	}
}

func TestParseComponentThicknessReference(t *testing.T) {
	var b builder
	b.tag(tags.TGVS)
	var inner builder
	inner.tag(tags.TGTB)
	var body builder
	body.u8(0x00)
	body.raw([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	body.f32(0)
	body.u64(0)
	body.f32(1)
	body.u64(0)
	inner.u32(uint32(body.Len()))
	inner.raw(body.Bytes())
	b.u32(uint32(inner.Len()))
	b.raw(inner.Bytes())

	comp, err := ParseComponent(prim.New(bytes.NewReader(b.Bytes())))
	if err != nil {
		t.Fatalf("ParseComponent() error: %v", err)
	}
	thickness := comp.Tags[0].(model.ThicknessData)
	if thickness.Thickness.Defined {
		t.Fatalf("Defined = true, want false for reference variant")
	}
	if thickness.Thickness.DomainEnd != 1 {
		t.Fatalf("DomainEnd = %v, want 1", thickness.Thickness.DomainEnd)
	}
}

func TestParseComponentThicknessNonZeroGapFatal(t *testing.T) {
	var b builder
	b.tag(tags.TGVS)
	var inner builder
	inner.tag(tags.TGTB)
	var body builder
	body.u8(0x00)
	body.raw([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	body.f32(0)
	body.u64(1) // non-zero gap: fatal
	body.f32(1)
	body.u64(0)
	inner.u32(uint32(body.Len()))
	inner.raw(body.Bytes())
	b.u32(uint32(inner.Len()))
	b.raw(inner.Bytes())

	if _, err := ParseComponent(prim.New(bytes.NewReader(b.Bytes()))); err == nil {
		t.Fatalf("ParseComponent() with non-zero domain gap = nil error, want fatal error")
	}
}

func TestParseComponentTgtiVerbatim(t *testing.T) {
	var b builder
	b.tag(tags.TGVS)
	var inner builder
	inner.tag(tags.TGTI)
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	inner.u32(uint32(len(payload)))
	inner.raw(payload)
	b.u32(uint32(inner.Len()))
	b.raw(inner.Bytes())

	comp, err := ParseComponent(prim.New(bytes.NewReader(b.Bytes())))
	if err != nil {
		t.Fatalf("ParseComponent() error: %v", err)
	}
	tgti := comp.Tags[0].(model.TgtiData)
	if !bytes.Equal(tgti.Raw, payload) {
		t.Fatalf("Raw = %x, want %x", tgti.Raw, payload)
	}
}
