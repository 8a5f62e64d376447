package otvg_test

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/otvg/reader"
)

func beTag(a, b, c, d byte) []byte {
	return []byte{a, b, c, d}
}

func u32le(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

// minimalDocument builds the smallest valid OTVGfull stream: a prologue
// followed by a single ENDT record.
func minimalDocument() []byte {
	var buf bytes.Buffer
	buf.WriteString("OTVGfull")
	buf.Write(u32le(1009))
	buf.Write(u32le(2))
	buf.Write(u32le(1))
	buf.Write(beTag('E', 'N', 'D', 'T'))
	return buf.Bytes()
}

func ExampleRead() {
	records, err := otvg.Read(bytes.NewReader(minimalDocument()))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d records\n", len(records))
	// Output:
	// 1 records
}
