package otvg

import "github.com/otvg/reader/internal/model"

// Data model types (§3), re-exported from internal/model so the
// top-level parser packages can construct them without importing the
// root package (avoiding an import cycle) while callers of [Read] see
// them as ordinary otvg types.
type (
	FileRecord           = model.FileRecord
	CertificateRecord    = model.CertificateRecord
	SignatureRecord      = model.SignatureRecord
	CreaRecord           = model.CreaRecord
	EndtRecord           = model.EndtRecord
	MainRecord           = model.MainRecord
	TocEntry             = model.TocEntry
	MainOffsetsRecord    = model.MainOffsetsRecord
	IdentityRecord       = model.IdentityRecord
	LayerSlot            = model.LayerSlot
	LayerRecord          = model.LayerRecord
	PaletteRecord        = model.PaletteRecord
	LayerKind            = model.LayerKind
	LayerData            = model.LayerData
	ShapeType            = model.ShapeType
	VectorShape          = model.VectorShape
	ShapeComponent       = model.ShapeComponent
	ShapeComponentData   = model.ShapeComponentData
	ComponentType        = model.ComponentType
	ComponentInfo        = model.ComponentInfo
	InfoData             = model.InfoData
	PathData             = model.PathData
	ThicknessData        = model.ThicknessData
	TgtiData             = model.TgtiData
	Point                = model.Point
	PathSegment          = model.PathSegment
	LineSegment          = model.LineSegment
	CubicSegment         = model.CubicSegment
	Path                 = model.Path
	PointF32             = model.PointF32
	Side                 = model.Side
	StrokeThicknessPoint = model.StrokeThicknessPoint
	StrokeThickness      = model.StrokeThickness
	PaletteData          = model.PaletteData
	PaletteColor         = model.PaletteColor
	ColorData            = model.ColorData
	RGBAColor            = model.RGBAColor
	ColorIDColor         = model.ColorIDColor
)

const (
	LayerUnderlay = model.LayerUnderlay
	LayerColor    = model.LayerColor
	LayerLine     = model.LayerLine
	LayerOverlay  = model.LayerOverlay

	LayerKindEmpty  = model.LayerKindEmpty
	LayerKindVector = model.LayerKindVector

	ShapeUnknown0 = model.ShapeUnknown0
	ShapeUnknown1 = model.ShapeUnknown1
	ShapeFill     = model.ShapeFill
	ShapeStroke   = model.ShapeStroke
	ShapeLine     = model.ShapeLine
	ShapeUnknown7 = model.ShapeUnknown7

	ComponentFill     = model.ComponentFill
	ComponentUnknown1 = model.ComponentUnknown1
	ComponentStroke   = model.ComponentStroke
	ComponentPencil   = model.ComponentPencil
)
