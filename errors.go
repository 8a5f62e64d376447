package otvg

import "github.com/otvg/reader/internal/errs"

// Kind classifies the failure mode of an [Error]. It is the single error
// sum required by the format's error model (§4.9/C9): every parsing
// failure in this package surfaces as an [*Error] carrying one of these
// kinds.
type Kind = errs.Kind

// Error is the single error type returned by every failing operation in
// this package. Which fields are meaningful depends on Kind.
type Error = errs.Error

// Error kinds, re-exported from the internal error sum so callers never
// need to import internal/errs directly.
const (
	KindIO                   = errs.KindIO
	KindUnexpectedMagic      = errs.KindUnexpectedMagic
	KindUnexpectedVersion    = errs.KindUnexpectedVersion
	KindUnknownMystery       = errs.KindUnknownMystery
	KindUnknownFileTag       = errs.KindUnknownFileTag
	KindUnknownLayerTag      = errs.KindUnknownLayerTag
	KindUnknownShapeType     = errs.KindUnknownShapeType
	KindUnknownComponentType = errs.KindUnknownComponentType
	KindUnknownComponentTag  = errs.KindUnknownComponentTag
	KindUnknownPaletteTag    = errs.KindUnknownPaletteTag
	KindUnknownEncoding      = errs.KindUnknownEncoding
	KindCStringError         = errs.KindCStringError
	KindUtf8Error            = errs.KindUtf8Error
	KindUtf16Error           = errs.KindUtf16Error
)
