package field_test

import (
	"encoding/binary"
	"errors"
	"testing"

	ferrors "github.com/wippyai/pptfields/errors"
	"github.com/wippyai/pptfields/stream"
)

func le16(v uint16) []byte {
	return binary.LittleEndian.AppendUint16(nil, v)
}

func le32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

func utf16le(units ...uint16) []byte {
	var b []byte
	for _, u := range units {
		b = binary.LittleEndian.AppendUint16(b, u)
	}
	return b
}

func newReader(data ...[]byte) *stream.Reader {
	var all []byte
	for _, d := range data {
		all = append(all, d...)
	}
	return stream.NewBytesReader(all)
}

func wantCorrupted(t *testing.T, err error) *ferrors.Error {
	t.Helper()
	if err == nil {
		t.Fatal("expected corrupted-data error, got nil")
	}
	if !errors.Is(err, ferrors.ErrCorruptedData) {
		t.Fatalf("expected corrupted-data error, got %v", err)
	}
	var fe *ferrors.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	return fe
}
