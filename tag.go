package otvg

import "github.com/otvg/reader/internal/tags"

// FileTag identifies a recognized top-level record kind, as carried by a
// [TocEntry] of a [MainOffsetsRecord].
type FileTag = tags.FileTag

// Recognized top-level record kinds.
const (
	FileTagCert     = tags.FileTagCert
	FileTagMain     = tags.FileTagMain
	FileTagEndt     = tags.FileTagEndt
	FileTagTvci     = tags.FileTagTvci
	FileTagCrea     = tags.FileTagCrea
	FileTagUnderlay = tags.FileTagUnderlay
	FileTagColor    = tags.FileTagColor
	FileTagLine     = tags.FileTagLine
	FileTagOverlay  = tags.FileTagOverlay
	FileTagPalette  = tags.FileTagPalette
	FileTagToc      = tags.FileTagToc
	FileTagSign     = tags.FileTagSign
)
