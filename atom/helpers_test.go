package atom_test

import (
	"encoding/binary"
	"errors"
	"testing"

	ferrors "github.com/wippyai/pptfields/errors"
	"github.com/wippyai/pptfields/stream"
)

type buf []byte

func (b buf) u8(v uint8) buf   { return append(b, v) }
func (b buf) u16(v uint16) buf { return binary.LittleEndian.AppendUint16(b, v) }
func (b buf) u32(v uint32) buf { return binary.LittleEndian.AppendUint32(b, v) }
func (b buf) i32(v int32) buf  { return b.u32(uint32(v)) }
func (b buf) raw(p ...byte) buf {
	return append(b, p...)
}

func (b buf) utf16(s string) buf {
	for _, r := range s {
		b = b.u16(uint16(r))
	}
	return b
}

// record prefixes body with a header.
func record(ver uint8, inst, typ uint16, body buf) buf {
	return buf{}.u16(uint16(ver) | inst<<4).u16(typ).u32(uint32(len(body))).raw(body...)
}

func reader(b buf) *stream.Reader {
	return stream.NewBytesReader(b)
}

func wantPath(t *testing.T, err error, path string) *ferrors.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error at %s, got nil", path)
	}
	if !errors.Is(err, ferrors.ErrCorruptedData) {
		t.Fatalf("expected corrupted data, got %v", err)
	}
	var fe *ferrors.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	got := ""
	for i, p := range fe.Path {
		if i > 0 {
			got += "."
		}
		got += p
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	return fe
}
