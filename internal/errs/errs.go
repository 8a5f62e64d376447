// Package errs defines the single error sum type shared by every parser
// package that makes up the OTVGfull reader (C9 in the design). It lives
// in its own internal package, rather than the root otvg package, so that
// internal/container, internal/layer, internal/palette, internal/shape,
// internal/encoded, internal/numeric, and internal/bitio can all construct
// and return the same concrete error type without an import cycle back to
// the root package that drives them.
package errs

import "fmt"

// Kind classifies the failure mode of an [Error]. Every parsing failure
// in this module surfaces as an [*Error] carrying one of these kinds —
// there is no other error shape the reader ever returns.
type Kind int

const (
	// KindIO wraps an underlying I/O failure (short read, closed source).
	KindIO Kind = iota
	// KindUnexpectedMagic reports a prologue magic mismatch.
	KindUnexpectedMagic
	// KindUnexpectedVersion reports a prologue version mismatch.
	KindUnexpectedVersion
	// KindUnknownMystery reports well-formed framing carrying a reserved
	// or opaque byte with an unexpected value.
	KindUnknownMystery
	// KindUnknownFileTag reports an unrecognized top-level four-char tag.
	KindUnknownFileTag
	// KindUnknownLayerTag reports an unrecognized tag inside a layer body.
	KindUnknownLayerTag
	// KindUnknownShapeType reports an unrecognized vector-shape type.
	KindUnknownShapeType
	// KindUnknownComponentType reports an unrecognized component type byte.
	KindUnknownComponentType
	// KindUnknownComponentTag reports an unrecognized tag inside a shape
	// component frame.
	KindUnknownComponentTag
	// KindUnknownPaletteTag reports an unrecognized tag inside a palette
	// color entry.
	KindUnknownPaletteTag
	// KindUnknownEncoding reports an unrecognized encoded-data tag
	// (anything other than UNCO/ZLIB).
	KindUnknownEncoding
	// KindCStringError reports a NUL-terminated string that could not be
	// read, such as one whose view ends before the terminator.
	KindCStringError
	// KindUtf8Error reports a UTF-8 decoding failure, including invalid
	// UTF-8 in the bytes of a NUL-terminated string.
	KindUtf8Error
	// KindUtf16Error reports a strict UTF-16LE decoding failure (an
	// unpaired or invalid surrogate).
	KindUtf16Error
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindUnexpectedMagic:
		return "unexpected magic"
	case KindUnexpectedVersion:
		return "unexpected version"
	case KindUnknownMystery:
		return "unknown mystery value"
	case KindUnknownFileTag:
		return "unknown file tag"
	case KindUnknownLayerTag:
		return "unknown layer tag"
	case KindUnknownShapeType:
		return "unknown shape type"
	case KindUnknownComponentType:
		return "unknown component type"
	case KindUnknownComponentTag:
		return "unknown component tag"
	case KindUnknownPaletteTag:
		return "unknown palette tag"
	case KindUnknownEncoding:
		return "unknown encoding"
	case KindCStringError:
		return "c-string error"
	case KindUtf8Error:
		return "utf-8 error"
	case KindUtf16Error:
		return "utf-16 error"
	default:
		return "unknown error"
	}
}

// Error is the single error type returned by every failing operation in
// this module. Which fields are meaningful depends on Kind.
type Error struct {
	Kind Kind

	// Magic holds the offending prologue bytes for KindUnexpectedMagic.
	Magic []byte
	// Version holds the offending value for KindUnexpectedVersion.
	Version uint32
	// Tag holds the offending raw tag/enumerator value for the
	// KindUnknown* kinds that carry a numeric tag (widened to uint64 so
	// one field serves u8/u16/u32 alike).
	Tag uint64
	// Location names the field or context a KindCStringError,
	// KindUtf8Error, or KindUtf16Error occurred in (e.g. "TCID.name").
	Location string
	// Message carries a human-readable description for
	// KindUnknownMystery.
	Message string

	// Err is the wrapped underlying error, when one exists (I/O errors,
	// encoding/string decode errors).
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindIO:
		return fmt.Sprintf("otvg: i/o error: %v", e.Err)
	case KindUnexpectedMagic:
		return fmt.Sprintf("otvg: unexpected magic: % x", e.Magic)
	case KindUnexpectedVersion:
		return fmt.Sprintf("otvg: unexpected version: %d", e.Version)
	case KindUnknownMystery:
		return fmt.Sprintf("otvg: %s", e.Message)
	case KindUnknownFileTag:
		return fmt.Sprintf("otvg: unknown file tag: 0x%08x", e.Tag)
	case KindUnknownLayerTag:
		return fmt.Sprintf("otvg: unknown layer tag: 0x%08x", e.Tag)
	case KindUnknownShapeType:
		return fmt.Sprintf("otvg: unknown shape type: %d", e.Tag)
	case KindUnknownComponentType:
		return fmt.Sprintf("otvg: unknown component type: %d", e.Tag)
	case KindUnknownComponentTag:
		return fmt.Sprintf("otvg: unknown component tag: 0x%08x", e.Tag)
	case KindUnknownPaletteTag:
		return fmt.Sprintf("otvg: unknown palette tag: 0x%08x", e.Tag)
	case KindUnknownEncoding:
		return fmt.Sprintf("otvg: unknown encoding tag: 0x%08x", e.Tag)
	case KindCStringError:
		return fmt.Sprintf("otvg: c-string decode error at %s: %v", e.Location, e.Err)
	case KindUtf8Error:
		return fmt.Sprintf("otvg: utf-8 decode error at %s: %v", e.Location, e.Err)
	case KindUtf16Error:
		return fmt.Sprintf("otvg: utf-16 decode error at %s: %v", e.Location, e.Err)
	default:
		return "otvg: decode error"
	}
}

// Unwrap exposes the wrapped error, when any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// IO wraps an underlying I/O failure.
func IO(err error) error {
	return &Error{Kind: KindIO, Err: err}
}

// UnexpectedMagic reports a prologue magic mismatch.
func UnexpectedMagic(got []byte) error {
	magic := make([]byte, len(got))
	copy(magic, got)
	return &Error{Kind: KindUnexpectedMagic, Magic: magic}
}

// UnexpectedVersion reports a prologue version mismatch.
func UnexpectedVersion(got uint32) error {
	return &Error{Kind: KindUnexpectedVersion, Version: got}
}

// Mystery reports well-formed framing carrying an unexpected reserved
// value, with a message describing what was expected.
func Mystery(format string, args ...any) error {
	return &Error{Kind: KindUnknownMystery, Message: fmt.Sprintf(format, args...)}
}

// UnknownFileTag reports an unrecognized top-level four-char tag.
func UnknownFileTag(tag uint32) error {
	return &Error{Kind: KindUnknownFileTag, Tag: uint64(tag)}
}

// UnknownLayerTag reports an unrecognized tag inside a layer body.
func UnknownLayerTag(tag uint32) error {
	return &Error{Kind: KindUnknownLayerTag, Tag: uint64(tag)}
}

// UnknownShapeType reports an unrecognized vector-shape type.
func UnknownShapeType(t uint16) error {
	return &Error{Kind: KindUnknownShapeType, Tag: uint64(t)}
}

// UnknownComponentType reports an unrecognized component type byte.
func UnknownComponentType(t uint8) error {
	return &Error{Kind: KindUnknownComponentType, Tag: uint64(t)}
}

// UnknownComponentTag reports an unrecognized tag inside a shape
// component frame.
func UnknownComponentTag(tag uint32) error {
	return &Error{Kind: KindUnknownComponentTag, Tag: uint64(tag)}
}

// UnknownPaletteTag reports an unrecognized tag inside a palette color
// entry.
func UnknownPaletteTag(tag uint32) error {
	return &Error{Kind: KindUnknownPaletteTag, Tag: uint64(tag)}
}

// UnknownEncoding reports an unrecognized encoded-data tag.
func UnknownEncoding(tag uint32) error {
	return &Error{Kind: KindUnknownEncoding, Tag: uint64(tag)}
}

// CString reports a NUL-terminated string that could not be read.
func CString(location string, err error) error {
	return &Error{Kind: KindCStringError, Location: location, Err: err}
}

// UTF8 reports a UTF-8 decoding failure.
func UTF8(location string, err error) error {
	return &Error{Kind: KindUtf8Error, Location: location, Err: err}
}

// UTF16 reports a strict UTF-16LE decoding failure.
func UTF16(location string, err error) error {
	return &Error{Kind: KindUtf16Error, Location: location, Err: err}
}
