package stream

import (
	"bytes"
	"testing"
)

func TestWriterLittleEndian(t *testing.T) {
	w := NewWriter().
		Byte(0x01).
		WriteU16LE(0x0302).
		WriteU32LE(0x07060504).
		WriteI32LE(-1).
		WriteUTF16("A\U0001F600").
		WriteBytes([]byte{0xEE})

	want := []byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0xFF, 0xFF, 0xFF, 0xFF,
		0x41, 0x00, 0x3D, 0xD8, 0x00, 0xDE,
		0xEE,
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("got % x\nwant % x", w.Bytes(), want)
	}
	if w.Len() != len(want) {
		t.Errorf("Len() = %d", w.Len())
	}
}

func TestWriterRecord(t *testing.T) {
	w := NewWriter().Record(0xF, 0x001, 0x0FF0, func(w *Writer) {
		w.Record(0, 0, 0x03F3, func(w *Writer) {
			w.WriteU32LE(1).WriteU32LE(2)
		})
	})

	r := NewBytesReader(w.Bytes())
	verInst, _ := r.ReadU16LE()
	typ, _ := r.ReadU16LE()
	n, _ := r.ReadU32LE()
	if verInst != 0x001F || typ != 0x0FF0 || n != 16 {
		t.Errorf("outer header = %#x %#x %d", verInst, typ, n)
	}
	verInst, _ = r.ReadU16LE()
	typ, _ = r.ReadU16LE()
	n, _ = r.ReadU32LE()
	if verInst != 0 || typ != 0x03F3 || n != 8 {
		t.Errorf("inner header = %#x %#x %d", verInst, typ, n)
	}
	if w.Len() != 24 {
		t.Errorf("Len() = %d, want 24", w.Len())
	}
}
