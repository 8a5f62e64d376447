// Package model defines the decoded document tree (§3): the FileRecord
// sum type and everything it's built from. It lives in its own internal
// package, independent of every parser package, so that
// internal/container, internal/layer, internal/palette, internal/shape,
// and internal/encoded can all construct and return these types while the
// root otvg package re-exports them as its public API — without an
// import cycle back through the parsers that build them.
package model

import (
	"github.com/otvg/reader/internal/numeric"
	"github.com/otvg/reader/internal/tags"
)

// FileRecord is one top-level record of a decoded OTVGfull document. A
// decoded document is the ordered sequence []FileRecord returned by
// Read; order is preserved exactly as read from the stream.
//
// This is a closed sum type: the concrete types below are the only
// implementations. Each variant named in the spec maps to one Go type,
// except the four named layer variants (LayerUnderlay/Color/Line/Overlay),
// which share one LayerRecord type distinguished by its Slot field — the
// four differ only in which of the four named positions they occupy,
// never in shape.
type FileRecord interface {
	isFileRecord()
}

// CertificateRecord is the decoded CERT record: an opaque UTF-8 string
// blob whose contents carry no semantic meaning to this reader
// (Non-goals: "faithfully decoding the CERT ... opaque sub-payload").
type CertificateRecord struct {
	Value string
}

func (CertificateRecord) isFileRecord() {}

// SignatureRecord is the decoded SIGN record: exactly 74 raw bytes,
// preserved verbatim with no semantic interpretation or validation
// (Non-goals: "validating the signature").
type SignatureRecord struct {
	Value [74]byte
}

func (SignatureRecord) isFileRecord() {}

// CreaRecord is the decoded CREA record.
type CreaRecord struct {
	Value uint32
}

func (CreaRecord) isFileRecord() {}

// EndtRecord is the decoded ENDT record. It carries no payload; more than
// one may appear in a document (its count is unconstrained, unlike every
// other variant).
type EndtRecord struct{}

func (EndtRecord) isFileRecord() {}

// MainRecord is the decoded MainData record: a nested sequence of
// FileRecords produced by recursively re-parsing the (optionally
// compressed) inner buffer as a fresh top-level sequence.
type MainRecord struct {
	Records []FileRecord
}

func (MainRecord) isFileRecord() {}

// TocEntry is one (tag, offset) pair inside a TTOC record.
type TocEntry struct {
	Tag    tags.FileTag
	Offset uint32
}

// MainOffsetsRecord is the decoded TTOC record.
type MainOffsetsRecord struct {
	Offsets []TocEntry
}

func (MainOffsetsRecord) isFileRecord() {}

// IdentityRecord is the decoded TVCI record.
type IdentityRecord struct {
	Device       string
	SoftwareName string
}

func (IdentityRecord) isFileRecord() {}

// LayerSlot names which of the four named vector-art layers a
// LayerRecord occupies.
type LayerSlot int

const (
	LayerUnderlay LayerSlot = iota
	LayerColor
	LayerLine
	LayerOverlay
)

func (s LayerSlot) String() string {
	switch s {
	case LayerUnderlay:
		return "underlay"
	case LayerColor:
		return "color"
	case LayerLine:
		return "line"
	case LayerOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// LayerRecord is the decoded tUAA/tCAA/tLAA/tOAA record for one of the
// four named vector-art layers.
type LayerRecord struct {
	Slot LayerSlot
	Data LayerData
}

func (LayerRecord) isFileRecord() {}

// PaletteRecord is the decoded TPAL record.
type PaletteRecord struct {
	Palette PaletteData
}

func (PaletteRecord) isFileRecord() {}

// LayerKind distinguishes an empty layer body from one that carries
// vector shapes (§4.6: layer_kind 0x0000 vs 0x0100). This is distinct
// from "a vector layer with zero shapes", which is also representable
// (shape_count == 0 under layer_kind 0x0100).
type LayerKind int

const (
	LayerKindEmpty LayerKind = iota
	LayerKindVector
)

// LayerData is the decoded body of a layer record.
type LayerData struct {
	Kind   LayerKind
	Shapes []VectorShape // only meaningful when Kind == LayerKindVector
}

// ShapeType is the closed u16 enum carried by a VectorShape.
type ShapeType uint16

const (
	ShapeUnknown0 ShapeType = 0
	ShapeUnknown1 ShapeType = 1
	ShapeFill     ShapeType = 2
	ShapeStroke   ShapeType = 3
	ShapeLine     ShapeType = 6
	ShapeUnknown7 ShapeType = 7
)

// VectorShape is one shape within a vector layer body.
type VectorShape struct {
	Type       ShapeType
	Components []ShapeComponent
}

// ShapeComponent is one TGVS-framed component of a VectorShape: an
// ordered sequence of tags, the first of which is conventionally an Info
// tag.
type ShapeComponent struct {
	Tags []ShapeComponentData
}

// ShapeComponentData is one inner tag of a ShapeComponent. This is a
// closed sum type implemented by InfoData, PathData, ThicknessData, and
// TgtiData.
type ShapeComponentData interface {
	isShapeComponentData()
}

// ComponentType is the closed u8 enum carried by a ComponentInfo.
type ComponentType uint8

const (
	ComponentFill     ComponentType = 0
	ComponentUnknown1 ComponentType = 1
	ComponentStroke   ComponentType = 2
	ComponentPencil   ComponentType = 4
)

// ComponentInfo is the decoded TGSD payload.
type ComponentInfo struct {
	Type ComponentType
	// ColorID is present for Fill components iff their sub-flag is 1,
	// always present for Pencil components, and absent otherwise.
	ColorID *uint64
}

// InfoData wraps a ComponentInfo as a ShapeComponentData.
type InfoData struct {
	Info ComponentInfo
}

func (InfoData) isShapeComponentData() {}

// PathData wraps a Path as a ShapeComponentData.
type PathData struct {
	Path Path
}

func (PathData) isShapeComponentData() {}

// ThicknessData wraps a StrokeThickness as a ShapeComponentData.
type ThicknessData struct {
	Thickness StrokeThickness
}

func (ThicknessData) isShapeComponentData() {}

// TgtiData wraps the raw, uninterpreted tGTI payload as a
// ShapeComponentData (Non-goals: "faithfully decoding the ... tGTI ...
// opaque sub-payload").
type TgtiData struct {
	Raw []byte
}

func (TgtiData) isShapeComponentData() {}

// Point is a coordinate pair in TbQuant's fixed-point representation.
type Point struct {
	X, Y numeric.TbQuant
}

// PathSegment is one segment of a decoded Path. This is a closed sum type
// implemented by LineSegment and CubicSegment.
type PathSegment interface {
	isPathSegment()
	// PointCount is the number of Points this segment consumes from the
	// TGBP point budget (1 for Line, 3 for Cubic).
	PointCount() int
}

// LineSegment is a straight-line path segment.
type LineSegment struct {
	P Point
}

func (LineSegment) isPathSegment()  {}
func (LineSegment) PointCount() int { return 1 }

// CubicSegment is a cubic Bézier path segment.
type CubicSegment struct {
	P1, P2, P3 Point
}

func (CubicSegment) isPathSegment()  {}
func (CubicSegment) PointCount() int { return 3 }

// Path is an ordered sequence of path segments decoded from a TGBP tag.
type Path struct {
	Segments []PathSegment
}

// PointF32 is an IEEE-754 coordinate pair, used only by StrokeThickness
// control points (Point_f32), which are never TbQuant-encoded.
type PointF32 struct {
	X, Y float32
}

// Side is one side (left or right) of a stroke-thickness definition
// point.
type Side struct {
	Offset   float32
	CtrlBack PointF32
	CtrlFwd  PointF32
}

// StrokeThicknessPoint is one sample of a stroke-thickness definition.
type StrokeThicknessPoint struct {
	Loc   float32 // in [0,1]
	Left  Side
	Right Side
}

// StrokeThickness is the decoded tGTB payload.
type StrokeThickness struct {
	// Defined is true when this tag defines a new thickness (first byte
	// 0x01) and false when it references an existing one (first byte
	// 0x00). Definition is only meaningful when Defined is true.
	Defined    bool
	Definition []StrokeThicknessPoint
	// Discretionary is the one undocumented byte that precedes the fixed
	// header in the "define" variant. It is preserved verbatim with no
	// semantic claim (§9 "opaque islands"); zero when Defined is false.
	Discretionary byte
	DomainStart   float32
	DomainEnd     float32
}

// PaletteData is the decoded TPAL payload.
type PaletteData struct {
	Colors []PaletteColor
}

// PaletteColor is one color entry of a palette, bracketed by 0x79
// sentinels in the wire format (§4.7).
type PaletteColor struct {
	Tags []ColorData
}

// ColorData is one inner tag of a PaletteColor. This is a closed sum type
// implemented by RGBAColor and ColorIDColor.
type ColorData interface {
	isColorData()
}

// RGBAColor is a decoded TCSC tag.
type RGBAColor struct {
	R, G, B, A uint8
}

func (RGBAColor) isColorData() {}

// ColorIDColor is a decoded TCID tag.
type ColorIDColor struct {
	ID      uint64
	Name    string
	Project string
}

func (ColorIDColor) isColorData() {}
