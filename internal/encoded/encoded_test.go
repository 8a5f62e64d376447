package encoded

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"

	"github.com/otvg/reader/internal/prim"
	"github.com/otvg/reader/internal/tags"
)

func tagBytes(tag uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], tag)
	return b[:]
}

func le32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func TestReadUnco(t *testing.T) {
	payload := []byte("hello world")
	var buf bytes.Buffer
	buf.Write(tagBytes(tags.UNCO))
	buf.Write(le32(uint32(len(payload))))
	buf.Write(payload)

	got, err := Read(prim.New(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("Read() = %q, want %q", got, payload)
	}
}

func TestReadZlib(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog, repeated: the quick brown fox jumps over the lazy dog")
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(payload); err != nil {
		t.Fatalf("zlib.Write() error: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib.Close() error: %v", err)
	}

	var buf bytes.Buffer
	buf.Write(tagBytes(tags.ZLIB))
	buf.Write(le32(uint32(compressed.Len() + 4)))
	buf.Write(le32(uint32(len(payload))))
	buf.Write(compressed.Bytes())

	got, err := Read(prim.New(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("Read() = %q, want %q", got, payload)
	}
}

func TestReadUnknownEncodingTag(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(tagBytes(0x41424344))
	buf.Write(le32(0))

	if _, err := Read(prim.New(bytes.NewReader(buf.Bytes()))); err == nil {
		t.Fatalf("Read() with unknown encoding tag = nil error, want fatal error")
	}
}

func TestReadZlibOversizedDecompressedLenRejected(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(tagBytes(tags.ZLIB))
	buf.Write(le32(4))
	buf.Write(le32(0xFFFFFFFF))

	if _, err := Read(prim.New(bytes.NewReader(buf.Bytes()))); err == nil {
		t.Fatalf("Read() with oversized decompressed_len = nil error, want fatal error")
	}
}

func TestReadTruncatedFatal(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(tagBytes(tags.UNCO))
	buf.Write(le32(10))
	buf.WriteString("short")

	if _, err := Read(prim.New(bytes.NewReader(buf.Bytes()))); err == nil {
		t.Fatalf("Read() on truncated UNCO payload = nil error, want fatal error")
	}
}
