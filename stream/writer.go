package stream

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
)

// Writer assembles little-endian record data, mainly for building test
// inputs and fixtures.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) *Writer {
	w.buf.WriteByte(b)
	return w
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) *Writer {
	w.buf.Write(data)
	return w
}

// WriteU16LE writes a little-endian uint16 (fixed 2 bytes).
func (w *Writer) WriteU16LE(v uint16) *Writer {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
	return w
}

// WriteU32LE writes a little-endian uint32 (fixed 4 bytes).
func (w *Writer) WriteU32LE(v uint32) *Writer {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
	return w
}

// WriteI32LE writes a little-endian int32 (fixed 4 bytes).
func (w *Writer) WriteI32LE(v int32) *Writer {
	return w.WriteU32LE(uint32(v))
}

// WriteUTF16 writes s as UTF-16LE code units without a terminator.
func (w *Writer) WriteUTF16(s string) *Writer {
	for _, u := range utf16.Encode([]rune(s)) {
		w.WriteU16LE(u)
	}
	return w
}

// Record writes a record header and the body produced by fn. The length
// field is filled in once fn returns.
func (w *Writer) Record(ver uint8, instance, recType uint16, fn func(w *Writer)) *Writer {
	w.WriteU16LE(uint16(ver&0x0F) | instance<<4)
	w.WriteU16LE(recType)
	lenAt := w.buf.Len()
	w.WriteU32LE(0)
	start := w.buf.Len()
	if fn != nil {
		fn(w)
	}
	binary.LittleEndian.PutUint32(w.buf.Bytes()[lenAt:], uint32(w.buf.Len()-start))
	return w
}
