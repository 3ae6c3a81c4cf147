package field

import (
	"fmt"

	"github.com/wippyai/pptfields"
	"github.com/wippyai/pptfields/errors"
)

// lookup maps a raw code onto its enumeration. The table is the closed set
// of variants; any other code is corrupted data.
func lookup[E ~uint8 | ~uint16 | ~uint32, R uint8 | uint16 | uint32](typ string, off int, names map[E]string, raw R) (E, error) {
	v := E(raw)
	if _, ok := names[v]; !ok {
		return 0, errors.InvalidEnum(typ, off, raw)
	}
	return v, nil
}

func enumString[E ~uint8 | ~uint16 | ~uint32](typ string, names map[E]string, v E) string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("%s(%#x)", typ, uint32(v))
}

// PlaceholderType identifies the kind of placeholder a shape stands in for.
// 8-bit.
type PlaceholderType uint8

const (
	PlaceholderNone                  PlaceholderType = 0x00
	PlaceholderMasterTitle           PlaceholderType = 0x01
	PlaceholderMasterBody            PlaceholderType = 0x02
	PlaceholderMasterCenterTitle     PlaceholderType = 0x03
	PlaceholderMasterSubtitle        PlaceholderType = 0x04
	PlaceholderMasterNotesSlideImage PlaceholderType = 0x05
	PlaceholderMasterNotesBody       PlaceholderType = 0x06
	PlaceholderMasterDate            PlaceholderType = 0x07
	PlaceholderMasterSlideNumber     PlaceholderType = 0x08
	PlaceholderMasterFooter          PlaceholderType = 0x09
	PlaceholderMasterHeader          PlaceholderType = 0x0A
	PlaceholderNotesSlideImage       PlaceholderType = 0x0B
	PlaceholderNotesBody             PlaceholderType = 0x0C
	PlaceholderTitle                 PlaceholderType = 0x0D
	PlaceholderBody                  PlaceholderType = 0x0E
	PlaceholderCenterTitle           PlaceholderType = 0x0F
	PlaceholderSubtitle              PlaceholderType = 0x10
	PlaceholderVerticalTitle         PlaceholderType = 0x11
	PlaceholderVerticalBody          PlaceholderType = 0x12
	PlaceholderObject                PlaceholderType = 0x13
	PlaceholderGraph                 PlaceholderType = 0x14
	PlaceholderTable                 PlaceholderType = 0x15
	PlaceholderClipArt               PlaceholderType = 0x16
	PlaceholderOrgChart              PlaceholderType = 0x17
	PlaceholderMedia                 PlaceholderType = 0x18
	PlaceholderVerticalObject        PlaceholderType = 0x19
	PlaceholderPicture               PlaceholderType = 0x1A
)

var placeholderTypeNames = map[PlaceholderType]string{
	PlaceholderNone:                  "None",
	PlaceholderMasterTitle:           "MasterTitle",
	PlaceholderMasterBody:            "MasterBody",
	PlaceholderMasterCenterTitle:     "MasterCenterTitle",
	PlaceholderMasterSubtitle:        "MasterSubtitle",
	PlaceholderMasterNotesSlideImage: "MasterNotesSlideImage",
	PlaceholderMasterNotesBody:       "MasterNotesBody",
	PlaceholderMasterDate:            "MasterDate",
	PlaceholderMasterSlideNumber:     "MasterSlideNumber",
	PlaceholderMasterFooter:          "MasterFooter",
	PlaceholderMasterHeader:          "MasterHeader",
	PlaceholderNotesSlideImage:       "NotesSlideImage",
	PlaceholderNotesBody:             "NotesBody",
	PlaceholderTitle:                 "Title",
	PlaceholderBody:                  "Body",
	PlaceholderCenterTitle:           "CenterTitle",
	PlaceholderSubtitle:              "Subtitle",
	PlaceholderVerticalTitle:         "VerticalTitle",
	PlaceholderVerticalBody:          "VerticalBody",
	PlaceholderObject:                "Object",
	PlaceholderGraph:                 "Graph",
	PlaceholderTable:                 "Table",
	PlaceholderClipArt:               "ClipArt",
	PlaceholderOrgChart:              "OrgChart",
	PlaceholderMedia:                 "Media",
	PlaceholderVerticalObject:        "VerticalObject",
	PlaceholderPicture:               "Picture",
}

// ReadPlaceholderType reads an 8-bit placeholder type.
func ReadPlaceholderType(c pptfields.Cursor) (PlaceholderType, error) {
	raw, off, err := readU8(c, "PlaceholderType")
	if err != nil {
		return 0, err
	}
	return lookup("PlaceholderType", off, placeholderTypeNames, raw)
}

func (v PlaceholderType) String() string {
	return enumString("PlaceholderType", placeholderTypeNames, v)
}

// PlaceholderSize is the relative size of a placeholder. 8-bit.
type PlaceholderSize uint8

const (
	PlaceholderFull    PlaceholderSize = 0
	PlaceholderHalf    PlaceholderSize = 1
	PlaceholderQuarter PlaceholderSize = 2
)

var placeholderSizeNames = map[PlaceholderSize]string{
	PlaceholderFull:    "Full",
	PlaceholderHalf:    "Half",
	PlaceholderQuarter: "Quarter",
}

// ReadPlaceholderSize reads an 8-bit placeholder size.
func ReadPlaceholderSize(c pptfields.Cursor) (PlaceholderSize, error) {
	raw, off, err := readU8(c, "PlaceholderSize")
	if err != nil {
		return 0, err
	}
	return lookup("PlaceholderSize", off, placeholderSizeNames, raw)
}

func (v PlaceholderSize) String() string {
	return enumString("PlaceholderSize", placeholderSizeNames, v)
}

// SlideSize is the paper or screen format the slides are laid out for.
// 16-bit.
type SlideSize uint16

const (
	SlideSizeOnScreen    SlideSize = 0
	SlideSizeLetterPaper SlideSize = 1
	SlideSizeA4Paper     SlideSize = 2
	SlideSize35mm        SlideSize = 3
	SlideSizeOverhead    SlideSize = 4
	SlideSizeBanner      SlideSize = 5
	SlideSizeCustom      SlideSize = 6
)

var slideSizeNames = map[SlideSize]string{
	SlideSizeOnScreen:    "OnScreen",
	SlideSizeLetterPaper: "LetterPaper",
	SlideSizeA4Paper:     "A4Paper",
	SlideSize35mm:        "35mm",
	SlideSizeOverhead:    "Overhead",
	SlideSizeBanner:      "Banner",
	SlideSizeCustom:      "Custom",
}

// ReadSlideSize reads a 16-bit slide size.
func ReadSlideSize(c pptfields.Cursor) (SlideSize, error) {
	raw, off, err := readU16(c, "SlideSize")
	if err != nil {
		return 0, err
	}
	return lookup("SlideSize", off, slideSizeNames, raw)
}

func (v SlideSize) String() string {
	return enumString("SlideSize", slideSizeNames, v)
}

// TextAlignment is the horizontal alignment of a paragraph. 16-bit.
type TextAlignment uint16

const (
	AlignLeft            TextAlignment = 0
	AlignCenter          TextAlignment = 1
	AlignRight           TextAlignment = 2
	AlignJustify         TextAlignment = 3
	AlignDistributed     TextAlignment = 4
	AlignThaiDistributed TextAlignment = 5
	AlignJustifyLow      TextAlignment = 6
)

var textAlignmentNames = map[TextAlignment]string{
	AlignLeft:            "Left",
	AlignCenter:          "Center",
	AlignRight:           "Right",
	AlignJustify:         "Justify",
	AlignDistributed:     "Distributed",
	AlignThaiDistributed: "ThaiDistributed",
	AlignJustifyLow:      "JustifyLow",
}

// ReadTextAlignment reads a 16-bit paragraph alignment.
func ReadTextAlignment(c pptfields.Cursor) (TextAlignment, error) {
	raw, off, err := readU16(c, "TextAlignment")
	if err != nil {
		return 0, err
	}
	return lookup("TextAlignment", off, textAlignmentNames, raw)
}

func (v TextAlignment) String() string {
	return enumString("TextAlignment", textAlignmentNames, v)
}

// TabStopType is the alignment of text at a tab stop. 16-bit.
type TabStopType uint16

const (
	TabStopLeft    TabStopType = 0
	TabStopCenter  TabStopType = 1
	TabStopRight   TabStopType = 2
	TabStopDecimal TabStopType = 3
)

var tabStopTypeNames = map[TabStopType]string{
	TabStopLeft:    "Left",
	TabStopCenter:  "Center",
	TabStopRight:   "Right",
	TabStopDecimal: "Decimal",
}

// ReadTabStopType reads a 16-bit tab stop type.
func ReadTabStopType(c pptfields.Cursor) (TabStopType, error) {
	raw, off, err := readU16(c, "TabStopType")
	if err != nil {
		return 0, err
	}
	return lookup("TabStopType", off, tabStopTypeNames, raw)
}

func (v TabStopType) String() string {
	return enumString("TabStopType", tabStopTypeNames, v)
}

// TextType is the role of a block of text. 32-bit. Code 3 is unassigned.
type TextType uint32

const (
	TextTitle       TextType = 0
	TextBody        TextType = 1
	TextNotes       TextType = 2
	TextOther       TextType = 4
	TextCenterBody  TextType = 5
	TextCenterTitle TextType = 6
	TextHalfBody    TextType = 7
	TextQuarterBody TextType = 8
)

var textTypeNames = map[TextType]string{
	TextTitle:       "Title",
	TextBody:        "Body",
	TextNotes:       "Notes",
	TextOther:       "Other",
	TextCenterBody:  "CenterBody",
	TextCenterTitle: "CenterTitle",
	TextHalfBody:    "HalfBody",
	TextQuarterBody: "QuarterBody",
}

// ReadTextType reads a 32-bit text type.
func ReadTextType(c pptfields.Cursor) (TextType, error) {
	raw, off, err := readU32(c, "TextType")
	if err != nil {
		return 0, err
	}
	return lookup("TextType", off, textTypeNames, raw)
}

func (v TextType) String() string {
	return enumString("TextType", textTypeNames, v)
}

// SlideLayoutType is the layout of the placeholders on a slide. 32-bit.
type SlideLayoutType uint32

const (
	LayoutTitleSlide        SlideLayoutType = 0
	LayoutTitleBody         SlideLayoutType = 1
	LayoutMasterTitle       SlideLayoutType = 2
	LayoutTitleOnly         SlideLayoutType = 7
	LayoutTwoColumns        SlideLayoutType = 8
	LayoutTwoRows           SlideLayoutType = 9
	LayoutColumnTwoRows     SlideLayoutType = 10
	LayoutTwoRowsColumn     SlideLayoutType = 11
	LayoutTwoColumnsRow     SlideLayoutType = 13
	LayoutFourObjects       SlideLayoutType = 14
	LayoutBigObject         SlideLayoutType = 15
	LayoutBlank             SlideLayoutType = 16
	LayoutVerticalTitleBody SlideLayoutType = 17
	LayoutVerticalTwoRows   SlideLayoutType = 18
)

var slideLayoutTypeNames = map[SlideLayoutType]string{
	LayoutTitleSlide:        "TitleSlide",
	LayoutTitleBody:         "TitleBody",
	LayoutMasterTitle:       "MasterTitle",
	LayoutTitleOnly:         "TitleOnly",
	LayoutTwoColumns:        "TwoColumns",
	LayoutTwoRows:           "TwoRows",
	LayoutColumnTwoRows:     "ColumnTwoRows",
	LayoutTwoRowsColumn:     "TwoRowsColumn",
	LayoutTwoColumnsRow:     "TwoColumnsRow",
	LayoutFourObjects:       "FourObjects",
	LayoutBigObject:         "BigObject",
	LayoutBlank:             "Blank",
	LayoutVerticalTitleBody: "VerticalTitleBody",
	LayoutVerticalTwoRows:   "VerticalTwoRows",
}

// ReadSlideLayoutType reads a 32-bit slide layout.
func ReadSlideLayoutType(c pptfields.Cursor) (SlideLayoutType, error) {
	raw, off, err := readU32(c, "SlideLayoutType")
	if err != nil {
		return 0, err
	}
	return lookup("SlideLayoutType", off, slideLayoutTypeNames, raw)
}

func (v SlideLayoutType) String() string {
	return enumString("SlideLayoutType", slideLayoutTypeNames, v)
}

// ExOleObjType is how an OLE object is stored. 32-bit.
type ExOleObjType uint32

const (
	OleEmbedded ExOleObjType = 0
	OleLink     ExOleObjType = 1
	OleControl  ExOleObjType = 2
)

var exOleObjTypeNames = map[ExOleObjType]string{
	OleEmbedded: "Embedded",
	OleLink:     "Link",
	OleControl:  "Control",
}

// ReadExOleObjType reads a 32-bit OLE object type.
func ReadExOleObjType(c pptfields.Cursor) (ExOleObjType, error) {
	raw, off, err := readU32(c, "ExOleObjType")
	if err != nil {
		return 0, err
	}
	return lookup("ExOleObjType", off, exOleObjTypeNames, raw)
}

func (v ExOleObjType) String() string {
	return enumString("ExOleObjType", exOleObjTypeNames, v)
}

// DrawAspect is how an OLE object is displayed. 32-bit.
type DrawAspect uint32

const (
	AspectContent DrawAspect = 1
	AspectIcon    DrawAspect = 4
)

var drawAspectNames = map[DrawAspect]string{
	AspectContent: "Content",
	AspectIcon:    "Icon",
}

// ReadDrawAspect reads a 32-bit OLE draw aspect.
func ReadDrawAspect(c pptfields.Cursor) (DrawAspect, error) {
	raw, off, err := readU32(c, "DrawAspect")
	if err != nil {
		return 0, err
	}
	return lookup("DrawAspect", off, drawAspectNames, raw)
}

func (v DrawAspect) String() string {
	return enumString("DrawAspect", drawAspectNames, v)
}
