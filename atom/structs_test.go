package atom_test

import (
	"testing"

	"github.com/wippyai/pptfields/atom"
	"github.com/wippyai/pptfields/field"
	"github.com/wippyai/pptfields/stream"
)

func TestRecordHeader(t *testing.T) {
	r := reader(buf{}.u16(0x0F | 0x123<<4).u16(atom.RTDocument).u32(0x28))
	h, err := atom.ReadRecordHeader(r)
	if err != nil {
		t.Fatalf("ReadRecordHeader: %v", err)
	}
	want := atom.RecordHeader{Version: 0xF, Instance: 0x123, Type: atom.RTDocument, Length: 0x28}
	if h != want {
		t.Errorf("got %+v, want %+v", h, want)
	}
	if !h.IsContainer() {
		t.Error("recVer 0xF should be a container")
	}
	if r.Position() != atom.HeaderSize {
		t.Errorf("position %d, want %d", r.Position(), atom.HeaderSize)
	}
	if got := h.String(); got != "Document(ver=0xf inst=0x123 len=40)" {
		t.Errorf("String() = %q", got)
	}
}

func TestRecordHeaderTruncated(t *testing.T) {
	_, err := atom.ReadRecordHeader(reader(buf{}.u16(0).u16(atom.RTSlideAtom).u16(0)))
	wantPath(t, err, "recLen")
}

func TestGeometry(t *testing.T) {
	r := reader(buf{}.
		i32(-1).i32(2).
		i32(10).i32(20).i32(30).i32(40).
		u16(0xFFFF).u16(1).u16(2).u16(3).
		i32(1).i32(2).i32(3).i32(4).
		u8(0x10).u8(0x20).u8(0x30).u8(5).
		u16(576).u16(uint16(field.TabStopDecimal)))

	pt, err := atom.ReadPointStruct(r)
	if err != nil || pt != (atom.PointStruct{X: -1, Y: 2}) {
		t.Errorf("PointStruct = %+v, %v", pt, err)
	}
	rect, err := atom.ReadRectStruct(r)
	if err != nil || rect != (atom.RectStruct{Top: 10, Left: 20, Right: 30, Bottom: 40}) {
		t.Errorf("RectStruct = %+v, %v", rect, err)
	}
	small, err := atom.ReadSmallRectStruct(r)
	if err != nil || small != (atom.SmallRectStruct{Top: -1, Left: 1, Right: 2, Bottom: 3}) {
		t.Errorf("SmallRectStruct = %+v, %v", small, err)
	}
	sc, err := atom.ReadScalingStruct(r)
	want := atom.ScalingStruct{X: atom.RatioStruct{Numer: 1, Denom: 2}, Y: atom.RatioStruct{Numer: 3, Denom: 4}}
	if err != nil || sc != want {
		t.Errorf("ScalingStruct = %+v, %v", sc, err)
	}
	col, err := atom.ReadColorStruct(r)
	if err != nil || col != (atom.ColorStruct{Red: 0x10, Green: 0x20, Blue: 0x30, Index: 5}) {
		t.Errorf("ColorStruct = %+v, %v", col, err)
	}
	tab, err := atom.ReadTabStop(r)
	if err != nil || tab != (atom.TabStop{Position: 576, Type: field.TabStopDecimal}) {
		t.Errorf("TabStop = %+v, %v", tab, err)
	}
	if r.Position() != 8+16+8+16+4+4 {
		t.Errorf("position %d", r.Position())
	}
}

func TestCompositeFailurePath(t *testing.T) {
	tests := []struct {
		name    string
		data    buf
		read    func(r *stream.Reader) error
		path    string
		wantPos int
	}{
		{
			name: "rect truncated in right",
			data: buf{}.i32(1).i32(2).u16(0),
			read: func(r *stream.Reader) error { _, err := atom.ReadRectStruct(r); return err },
			path: "right",
			// stream.Reader consumes what a short read delivered
			wantPos: 10,
		},
		{
			name:    "ratio zero denominator",
			data:    buf{}.i32(1).i32(0),
			read:    func(r *stream.Reader) error { _, err := atom.ReadRatioStruct(r); return err },
			path:    "denom",
			wantPos: 8,
		},
		{
			name:    "scaling y denominator",
			data:    buf{}.i32(1).i32(1).i32(1).i32(-3),
			read:    func(r *stream.Reader) error { _, err := atom.ReadScalingStruct(r); return err },
			path:    "y.denom",
			wantPos: 16,
		},
		{
			name:    "tab stop type",
			data:    buf{}.u16(10).u16(9),
			read:    func(r *stream.Reader) error { _, err := atom.ReadTabStop(r); return err },
			path:    "type",
			wantPos: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reader(tt.data)
			wantPath(t, tt.read(r), tt.path)
			if r.Position() != tt.wantPos {
				t.Errorf("position %d, want %d", r.Position(), tt.wantPos)
			}
		})
	}
}
