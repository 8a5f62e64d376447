// Package otvg reads the OTVGfull binary container used to persist a
// single vector drawing: up to four named vector art layers (underlay,
// color, line, overlay), a color palette, identity and integrity
// metadata, and an embedded table-of-contents.
//
// The package decodes only. It does not render the vector data, does not
// validate the embedded signature, and does not write the format back.
//
// Basic usage:
//
//	records, err := otvg.Read(r)
package otvg
