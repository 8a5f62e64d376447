// Package container implements the top-level container parser (§4.8/C8):
// the document prologue and the BE-tag dispatch loop that produces the
// ordered []FileRecord sequence, including MainData's recursive re-parse
// of a nested record stream.
package container

import (
	"bytes"
	"io"

	"github.com/otvg/reader/internal/encoded"
	"github.com/otvg/reader/internal/errs"
	"github.com/otvg/reader/internal/layer"
	"github.com/otvg/reader/internal/model"
	"github.com/otvg/reader/internal/palette"
	"github.com/otvg/reader/internal/prim"
	"github.com/otvg/reader/internal/tags"
)

var magic = []byte("OTVGfull")

const (
	version         = 1009
	tvciSkipBytes   = 13
	signatureLen    = 74
	expectedCreaVal = 2
	prologueConst1  = 2
	prologueConst2  = 1
)

// ReadPrologue validates the 20-byte document prologue (§4.8): 8 magic
// bytes, an LE u32 version, and two further LE u32 constants.
func ReadPrologue(r *prim.Reader) error {
	got, err := r.Bytes(len(magic))
	if err != nil {
		return err
	}
	if !bytes.Equal(got, magic) {
		return errs.UnexpectedMagic(got)
	}
	v, err := r.U32()
	if err != nil {
		return err
	}
	if v != version {
		return errs.UnexpectedVersion(v)
	}
	a, err := r.U32()
	if err != nil {
		return err
	}
	if a != prologueConst1 {
		return errs.Mystery("prologue constant = %d, want %d", a, prologueConst1)
	}
	b, err := r.U32()
	if err != nil {
		return err
	}
	if b != prologueConst2 {
		return errs.Mystery("prologue constant = %d, want %d", b, prologueConst2)
	}
	return nil
}

// ParseRecords reads BE tags from r until a clean io.EOF, dispatching
// each to its record parser (§4.8's table), and returns the ordered
// []model.FileRecord sequence.
func ParseRecords(r *prim.Reader) ([]model.FileRecord, error) {
	var records []model.FileRecord
	for {
		tag, err := r.TagAtEOF()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		rec, err := dispatch(r, tag)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

func dispatch(r *prim.Reader, tag uint32) (model.FileRecord, error) {
	switch tag {
	case tags.CERT:
		return parseCert(r)
	case tags.MainData:
		return parseMainData(r)
	case tags.ENDT:
		return model.EndtRecord{}, nil
	case tags.TVCI:
		return parseTvci(r)
	case tags.CREA:
		return parseCrea(r)
	case tags.TUAA:
		return parseLayer(r, model.LayerUnderlay)
	case tags.TCAA:
		return parseLayer(r, model.LayerColor)
	case tags.TLAA:
		return parseLayer(r, model.LayerLine)
	case tags.TOAA:
		return parseLayer(r, model.LayerOverlay)
	case tags.TPAL:
		return parsePalette(r)
	case tags.TTOC:
		return parseToc(r)
	case tags.SIGN:
		return parseSign(r)
	default:
		return nil, errs.UnknownFileTag(tag)
	}
}

func parseCert(r *prim.Reader) (model.FileRecord, error) {
	length, err := r.U32()
	if err != nil {
		return nil, err
	}
	view, err := prim.Bounded(r, int(length))
	if err != nil {
		return nil, err
	}
	one, err := view.U32()
	if err != nil {
		return nil, err
	}
	if one != 1 {
		return nil, errs.Mystery("CERT constant = %d, want 1", one)
	}
	certLen, err := view.U32()
	if err != nil {
		return nil, err
	}
	certBytes, err := view.Bytes(int(certLen))
	if err != nil {
		return nil, err
	}
	return model.CertificateRecord{Value: string(certBytes)}, nil
}

func parseMainData(r *prim.Reader) (model.FileRecord, error) {
	buf, err := encoded.Read(r)
	if err != nil {
		return nil, err
	}
	inner := prim.New(bytes.NewReader(buf))
	records, err := ParseRecords(inner)
	if err != nil {
		return nil, err
	}
	return model.MainRecord{Records: records}, nil
}

func parseTvci(r *prim.Reader) (model.FileRecord, error) {
	buf, err := encoded.Read(r)
	if err != nil {
		return nil, err
	}
	inner := prim.New(bytes.NewReader(buf))
	if err := inner.Skip(tvciSkipBytes); err != nil {
		return nil, err
	}
	device, err := inner.CString()
	if err != nil {
		return nil, err
	}
	software, err := inner.CString()
	if err != nil {
		return nil, err
	}
	return model.IdentityRecord{Device: device, SoftwareName: software}, nil
}

func parseCrea(r *prim.Reader) (model.FileRecord, error) {
	buf, err := encoded.Read(r)
	if err != nil {
		return nil, err
	}
	inner := prim.New(bytes.NewReader(buf))
	v, err := inner.U32()
	if err != nil {
		return nil, err
	}
	if v != expectedCreaVal {
		return nil, errs.Mystery("CREA constant = %d, want %d", v, expectedCreaVal)
	}
	return model.CreaRecord{Value: v}, nil
}

func parseLayer(r *prim.Reader, slot model.LayerSlot) (model.FileRecord, error) {
	buf, err := encoded.Read(r)
	if err != nil {
		return nil, err
	}
	data, err := layer.Parse(buf)
	if err != nil {
		return nil, err
	}
	return model.LayerRecord{Slot: slot, Data: data}, nil
}

func parsePalette(r *prim.Reader) (model.FileRecord, error) {
	buf, err := encoded.Read(r)
	if err != nil {
		return nil, err
	}
	data, err := palette.Parse(buf)
	if err != nil {
		return nil, err
	}
	return model.PaletteRecord{Palette: data}, nil
}

func parseToc(r *prim.Reader) (model.FileRecord, error) {
	count, err := r.U32()
	if err != nil {
		return nil, err
	}
	entries := make([]model.TocEntry, count)
	for i := range entries {
		rawTag, err := r.Tag()
		if err != nil {
			return nil, err
		}
		fileTag, ok := tags.FromRaw(rawTag)
		if !ok {
			return nil, errs.UnknownFileTag(rawTag)
		}
		offset, err := r.U32()
		if err != nil {
			return nil, err
		}
		entries[i] = model.TocEntry{Tag: fileTag, Offset: offset}
	}
	if err := r.Skip(8); err != nil {
		return nil, err
	}
	return model.MainOffsetsRecord{Offsets: entries}, nil
}

func parseSign(r *prim.Reader) (model.FileRecord, error) {
	raw, err := r.Bytes(signatureLen)
	if err != nil {
		return nil, err
	}
	var sig model.SignatureRecord
	copy(sig.Value[:], raw)
	return sig, nil
}
