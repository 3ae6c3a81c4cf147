package field_test

import (
	"testing"

	"github.com/wippyai/pptfields/field"
	"github.com/wippyai/pptfields/stream"
)

func TestEnumTables(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		valid   map[uint32]string
		invalid []uint32
		read    func(r *stream.Reader) (string, error)
	}{
		{
			name:  "PlaceholderType",
			width: 1,
			valid: map[uint32]string{
				0x00: "None", 0x01: "MasterTitle", 0x02: "MasterBody", 0x03: "MasterCenterTitle",
				0x04: "MasterSubtitle", 0x05: "MasterNotesSlideImage", 0x06: "MasterNotesBody",
				0x07: "MasterDate", 0x08: "MasterSlideNumber", 0x09: "MasterFooter", 0x0A: "MasterHeader",
				0x0B: "NotesSlideImage", 0x0C: "NotesBody", 0x0D: "Title", 0x0E: "Body",
				0x0F: "CenterTitle", 0x10: "Subtitle", 0x11: "VerticalTitle", 0x12: "VerticalBody",
				0x13: "Object", 0x14: "Graph", 0x15: "Table", 0x16: "ClipArt", 0x17: "OrgChart",
				0x18: "Media", 0x19: "VerticalObject", 0x1A: "Picture",
			},
			invalid: []uint32{0x1B, 0x7F, 0xFF},
			read: func(r *stream.Reader) (string, error) {
				v, err := field.ReadPlaceholderType(r)
				return v.String(), err
			},
		},
		{
			name:    "PlaceholderSize",
			width:   1,
			valid:   map[uint32]string{0: "Full", 1: "Half", 2: "Quarter"},
			invalid: []uint32{3, 0xFF},
			read: func(r *stream.Reader) (string, error) {
				v, err := field.ReadPlaceholderSize(r)
				return v.String(), err
			},
		},
		{
			name:  "SlideSize",
			width: 2,
			valid: map[uint32]string{
				0: "OnScreen", 1: "LetterPaper", 2: "A4Paper", 3: "35mm", 4: "Overhead", 5: "Banner", 6: "Custom",
			},
			invalid: []uint32{7, 0x100, 0xFFFF},
			read: func(r *stream.Reader) (string, error) {
				v, err := field.ReadSlideSize(r)
				return v.String(), err
			},
		},
		{
			name:  "TextAlignment",
			width: 2,
			valid: map[uint32]string{
				0: "Left", 1: "Center", 2: "Right", 3: "Justify", 4: "Distributed", 5: "ThaiDistributed", 6: "JustifyLow",
			},
			invalid: []uint32{7, 0xFFFF},
			read: func(r *stream.Reader) (string, error) {
				v, err := field.ReadTextAlignment(r)
				return v.String(), err
			},
		},
		{
			name:    "TabStopType",
			width:   2,
			valid:   map[uint32]string{0: "Left", 1: "Center", 2: "Right", 3: "Decimal"},
			invalid: []uint32{4, 0x8000},
			read: func(r *stream.Reader) (string, error) {
				v, err := field.ReadTabStopType(r)
				return v.String(), err
			},
		},
		{
			name:  "TextType",
			width: 4,
			valid: map[uint32]string{
				0: "Title", 1: "Body", 2: "Notes", 4: "Other", 5: "CenterBody",
				6: "CenterTitle", 7: "HalfBody", 8: "QuarterBody",
			},
			invalid: []uint32{3, 9, 0xFFFFFFFF},
			read: func(r *stream.Reader) (string, error) {
				v, err := field.ReadTextType(r)
				return v.String(), err
			},
		},
		{
			name:  "SlideLayoutType",
			width: 4,
			valid: map[uint32]string{
				0: "TitleSlide", 1: "TitleBody", 2: "MasterTitle", 7: "TitleOnly", 8: "TwoColumns",
				9: "TwoRows", 10: "ColumnTwoRows", 11: "TwoRowsColumn", 13: "TwoColumnsRow",
				14: "FourObjects", 15: "BigObject", 16: "Blank", 17: "VerticalTitleBody", 18: "VerticalTwoRows",
			},
			invalid: []uint32{3, 4, 5, 6, 12, 19, 0x80000000},
			read: func(r *stream.Reader) (string, error) {
				v, err := field.ReadSlideLayoutType(r)
				return v.String(), err
			},
		},
		{
			name:    "ExOleObjType",
			width:   4,
			valid:   map[uint32]string{0: "Embedded", 1: "Link", 2: "Control"},
			invalid: []uint32{3, 0x10000},
			read: func(r *stream.Reader) (string, error) {
				v, err := field.ReadExOleObjType(r)
				return v.String(), err
			},
		},
		{
			name:    "DrawAspect",
			width:   4,
			valid:   map[uint32]string{1: "Content", 4: "Icon"},
			invalid: []uint32{0, 2, 3, 5},
			read: func(r *stream.Reader) (string, error) {
				v, err := field.ReadDrawAspect(r)
				return v.String(), err
			},
		},
	}

	encode := func(width int, v uint32) []byte {
		switch width {
		case 1:
			return []byte{byte(v)}
		case 2:
			return le16(uint16(v))
		default:
			return le32(v)
		}
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for raw, want := range tt.valid {
				r := newReader(encode(tt.width, raw))
				got, err := tt.read(r)
				if err != nil {
					t.Errorf("code %#x: %v", raw, err)
					continue
				}
				if got != want {
					t.Errorf("code %#x: got %q, want %q", raw, got, want)
				}
				if r.Position() != tt.width {
					t.Errorf("code %#x: position %d, want %d", raw, r.Position(), tt.width)
				}
			}
			for _, raw := range tt.invalid {
				r := newReader(encode(tt.width, raw))
				_, err := tt.read(r)
				fe := wantCorrupted(t, err)
				if fe.Type != tt.name {
					t.Errorf("code %#x: error type %q, want %q", raw, fe.Type, tt.name)
				}
				if r.Position() != tt.width {
					t.Errorf("code %#x: failed decode position %d, want %d", raw, r.Position(), tt.width)
				}
			}
		})
	}
}

func TestEnumUnknownString(t *testing.T) {
	if got := field.TextType(3).String(); got != "TextType(0x3)" {
		t.Errorf("TextType(3).String() = %q", got)
	}
	if got := field.PlaceholderType(0xFF).String(); got != "PlaceholderType(0xff)" {
		t.Errorf("PlaceholderType(0xFF).String() = %q", got)
	}
}

func TestEnumErrorValue(t *testing.T) {
	r := newReader(le32(3))
	_, err := field.ReadTextType(r)
	fe := wantCorrupted(t, err)
	if fe.Value != uint32(3) {
		t.Errorf("Value = %#v, want uint32(3)", fe.Value)
	}

	r = newReader([]byte{0x1B})
	_, err = field.ReadPlaceholderType(r)
	fe = wantCorrupted(t, err)
	if fe.Value != uint8(0x1B) {
		t.Errorf("Value = %#v, want uint8(0x1B)", fe.Value)
	}
}
