package atom

import (
	"fmt"

	"github.com/wippyai/pptfields"
	"github.com/wippyai/pptfields/field"
)

// Atom is a decoded atom body.
type Atom interface {
	RecordType() uint16
}

// DocumentAtom holds document-wide layout settings.
type DocumentAtom struct {
	SlideSize                 PointStruct
	NotesSize                 PointStruct
	ServerZoom                RatioStruct
	NotesMasterPersistIDRef   field.PersistIDRef
	HandoutMasterPersistIDRef field.PersistIDRef
	FirstSlideNumber          uint16
	SlideSizeType             field.SlideSize
	SaveWithFonts             bool
	OmitTitlePlace            bool
	RightToLeft               bool
	ShowComments              bool
}

func (*DocumentAtom) RecordType() uint16 { return RTDocumentAtom }

// ReadDocumentAtom reads a 40-byte DocumentAtom body.
func ReadDocumentAtom(c pptfields.Cursor) (*DocumentAtom, error) {
	var a DocumentAtom
	var err error
	if a.SlideSize, err = ReadPointStruct(c); err != nil {
		return nil, wrap("slideSize", err)
	}
	if a.NotesSize, err = ReadPointStruct(c); err != nil {
		return nil, wrap("notesSize", err)
	}
	if a.ServerZoom, err = ReadRatioStruct(c); err != nil {
		return nil, wrap("serverZoom", err)
	}
	if a.NotesMasterPersistIDRef, err = field.ReadPersistIDRef(c); err != nil {
		return nil, wrap("notesMasterPersistIdRef", err)
	}
	if a.HandoutMasterPersistIDRef, err = field.ReadPersistIDRef(c); err != nil {
		return nil, wrap("handoutMasterPersistIdRef", err)
	}
	if a.FirstSlideNumber, err = field.ReadU16(c); err != nil {
		return nil, wrap("firstSlideNumber", err)
	}
	if a.SlideSizeType, err = field.ReadSlideSize(c); err != nil {
		return nil, wrap("slideSizeType", err)
	}
	for _, f := range []struct {
		name string
		dst  *bool
	}{
		{"fSaveWithFonts", &a.SaveWithFonts},
		{"fOmitTitlePlace", &a.OmitTitlePlace},
		{"fRightToLeft", &a.RightToLeft},
		{"fShowComments", &a.ShowComments},
	} {
		if *f.dst, err = field.ReadBool8(c); err != nil {
			return nil, wrap(f.name, err)
		}
	}
	return &a, nil
}

// SlideAtom describes a presentation or main master slide.
type SlideAtom struct {
	Layout       field.SlideLayoutType
	Placeholders [8]field.PlaceholderType
	MasterIDRef  field.MasterIDRef
	NotesIDRef   field.NotesIDRef
	Flags        uint16
}

func (*SlideAtom) RecordType() uint16 { return RTSlideAtom }

// ReadSlideAtom reads a 24-byte SlideAtom body.
func ReadSlideAtom(c pptfields.Cursor) (*SlideAtom, error) {
	var a SlideAtom
	var err error
	if a.Layout, err = field.ReadSlideLayoutType(c); err != nil {
		return nil, wrap("geom", err)
	}
	for i := range a.Placeholders {
		if a.Placeholders[i], err = field.ReadPlaceholderType(c); err != nil {
			return nil, wrap(fmt.Sprintf("rgPlaceholderTypes[%d]", i), err)
		}
	}
	if a.MasterIDRef, err = field.ReadMasterIDRef(c); err != nil {
		return nil, wrap("masterIdRef", err)
	}
	if a.NotesIDRef, err = field.ReadNotesIDRef(c); err != nil {
		return nil, wrap("notesIdRef", err)
	}
	if a.Flags, err = field.ReadU16(c); err != nil {
		return nil, wrap("slideFlags", err)
	}
	if err := skip(c, "unused", 2); err != nil {
		return nil, wrap("unused", err)
	}
	return &a, nil
}

// NotesAtom describes a notes slide.
type NotesAtom struct {
	SlideIDRef field.SlideIDRef
	Flags      uint16
}

func (*NotesAtom) RecordType() uint16 { return RTNotesAtom }

// ReadNotesAtom reads an 8-byte NotesAtom body.
func ReadNotesAtom(c pptfields.Cursor) (*NotesAtom, error) {
	var a NotesAtom
	var err error
	if a.SlideIDRef, err = field.ReadSlideIDRef(c); err != nil {
		return nil, wrap("slideIdRef", err)
	}
	if a.Flags, err = field.ReadU16(c); err != nil {
		return nil, wrap("slideFlags", err)
	}
	if err := skip(c, "unused", 2); err != nil {
		return nil, wrap("unused", err)
	}
	return &a, nil
}

// SlidePersistAtom links a slide, master or notes identifier to its persist
// object. Which namespace SlideID belongs to depends on the instance of the
// enclosing SlideListWithText, so it is kept raw here.
type SlidePersistAtom struct {
	PersistIDRef field.PersistIDRef
	Flags        uint32
	Texts        int32
	SlideID      uint32
}

func (*SlidePersistAtom) RecordType() uint16 { return RTSlidePersistAtom }

// ReadSlidePersistAtom reads a 20-byte SlidePersistAtom body.
func ReadSlidePersistAtom(c pptfields.Cursor) (*SlidePersistAtom, error) {
	var a SlidePersistAtom
	var err error
	if a.PersistIDRef, err = field.ReadPersistIDRef(c); err != nil {
		return nil, wrap("persistIdRef", err)
	}
	if a.Flags, err = field.ReadU32(c); err != nil {
		return nil, wrap("flags", err)
	}
	if a.Texts, err = field.ReadI32(c); err != nil {
		return nil, wrap("cTexts", err)
	}
	if a.SlideID, err = field.ReadU32(c); err != nil {
		return nil, wrap("slideId", err)
	}
	if err := skip(c, "unused", 4); err != nil {
		return nil, wrap("unused", err)
	}
	return &a, nil
}

// PlaceholderAtom marks a shape as a placeholder.
type PlaceholderAtom struct {
	Position int32
	Type     field.PlaceholderType
	Size     field.PlaceholderSize
}

func (*PlaceholderAtom) RecordType() uint16 { return RTPlaceholderAtom }

// ReadPlaceholderAtom reads an 8-byte PlaceholderAtom body.
func ReadPlaceholderAtom(c pptfields.Cursor) (*PlaceholderAtom, error) {
	var a PlaceholderAtom
	var err error
	if a.Position, err = field.ReadI32(c); err != nil {
		return nil, wrap("position", err)
	}
	if a.Type, err = field.ReadPlaceholderType(c); err != nil {
		return nil, wrap("placementId", err)
	}
	if a.Size, err = field.ReadPlaceholderSize(c); err != nil {
		return nil, wrap("size", err)
	}
	if err := skip(c, "unused", 2); err != nil {
		return nil, wrap("unused", err)
	}
	return &a, nil
}

// TextHeaderAtom gives the type of the text that follows it.
type TextHeaderAtom struct {
	TextType field.TextType
}

func (*TextHeaderAtom) RecordType() uint16 { return RTTextHeaderAtom }

// ReadTextHeaderAtom reads a 4-byte TextHeaderAtom body.
func ReadTextHeaderAtom(c pptfields.Cursor) (*TextHeaderAtom, error) {
	t, err := field.ReadTextType(c)
	if err != nil {
		return nil, wrap("textType", err)
	}
	return &TextHeaderAtom{TextType: t}, nil
}

// ExHyperlinkAtom defines a hyperlink identifier.
type ExHyperlinkAtom struct {
	ID field.ExHyperlinkID
}

func (*ExHyperlinkAtom) RecordType() uint16 { return RTExHyperlinkAtom }

// ReadExHyperlinkAtom reads a 4-byte ExHyperlinkAtom body.
func ReadExHyperlinkAtom(c pptfields.Cursor) (*ExHyperlinkAtom, error) {
	id, err := field.ReadExHyperlinkID(c)
	if err != nil {
		return nil, wrap("exHyperlinkId", err)
	}
	return &ExHyperlinkAtom{ID: id}, nil
}

// ExObjRefAtom refers to an external object from a shape.
type ExObjRefAtom struct {
	ExObjIDRef field.ExObjIDRef
}

func (*ExObjRefAtom) RecordType() uint16 { return RTExObjRefAtom }

// ReadExObjRefAtom reads a 4-byte ExObjRefAtom body.
func ReadExObjRefAtom(c pptfields.Cursor) (*ExObjRefAtom, error) {
	ref, err := field.ReadExObjIDRef(c)
	if err != nil {
		return nil, wrap("exObjIdRef", err)
	}
	return &ExObjRefAtom{ExObjIDRef: ref}, nil
}

// ExOleObjAtom describes an embedded or linked OLE object.
type ExOleObjAtom struct {
	DrawAspect   field.DrawAspect
	Type         field.ExOleObjType
	ID           field.ExObjID
	SubType      uint32
	PersistIDRef field.PersistIDRef
}

func (*ExOleObjAtom) RecordType() uint16 { return RTExOleObjAtom }

// ReadExOleObjAtom reads a 24-byte ExOleObjAtom body.
func ReadExOleObjAtom(c pptfields.Cursor) (*ExOleObjAtom, error) {
	var a ExOleObjAtom
	var err error
	if a.DrawAspect, err = field.ReadDrawAspect(c); err != nil {
		return nil, wrap("drawAspect", err)
	}
	if a.Type, err = field.ReadExOleObjType(c); err != nil {
		return nil, wrap("type", err)
	}
	if a.ID, err = field.ReadExObjID(c); err != nil {
		return nil, wrap("exObjId", err)
	}
	if a.SubType, err = field.ReadU32(c); err != nil {
		return nil, wrap("subType", err)
	}
	if a.PersistIDRef, err = field.ReadPersistIDRef(c); err != nil {
		return nil, wrap("persistIdRef", err)
	}
	if err := skip(c, "unused", 4); err != nil {
		return nil, wrap("unused", err)
	}
	return &a, nil
}
