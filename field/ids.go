package field

import (
	"fmt"

	"github.com/wippyai/pptfields"
	"github.com/wippyai/pptfields/errors"
)

// Identifier bounds. Inclusive on both ends.
const (
	MinMasterID    uint32 = 0x80000000
	MinSlideID     uint32 = 0x00000100
	MaxSlideID     uint32 = 0x7FFFFFFF
	MinNotesID            = MinSlideID
	MaxNotesID            = MaxSlideID
	MaxIndentLevel uint16 = 4
)

func checkNonZero(typ string, off int, v uint32) error {
	if v == 0 {
		return errors.ZeroValue(typ, off)
	}
	return nil
}

func checkRange32(typ string, off int, v, lo, hi uint32) error {
	if v < lo || v > hi {
		return errors.OutOfRange(typ, off, v, fmt.Sprintf("%#010x..%#010x", lo, hi))
	}
	return nil
}

func checkMax16(typ string, off int, v, hi uint16) error {
	if v > hi {
		return errors.OutOfRange(typ, off, v, fmt.Sprintf("0..%d", hi))
	}
	return nil
}

// ExObjID identifies an external object. It must be non-zero and must not
// collide with any ExHyperlinkID in the same document; the collision rule
// is checked by docindex.
type ExObjID struct{ v uint32 }

// NewExObjID validates v as an external object identifier.
func NewExObjID(v uint32) (ExObjID, error) {
	if err := checkNonZero("ExObjID", -1, v); err != nil {
		return ExObjID{}, err
	}
	return ExObjID{v}, nil
}

// ReadExObjID reads a non-zero 32-bit external object identifier.
func ReadExObjID(c pptfields.Cursor) (ExObjID, error) {
	v, off, err := readU32(c, "ExObjID")
	if err != nil {
		return ExObjID{}, err
	}
	if err := checkNonZero("ExObjID", off, v); err != nil {
		return ExObjID{}, err
	}
	return ExObjID{v}, nil
}

// Value returns the raw identifier.
func (id ExObjID) Value() uint32 { return id.v }

func (id ExObjID) String() string { return fmt.Sprintf("ExObjID(%d)", id.v) }

// ExHyperlinkID identifies a hyperlink. It shares the collision domain of
// ExObjID.
type ExHyperlinkID struct{ v uint32 }

// NewExHyperlinkID validates v as a hyperlink identifier.
func NewExHyperlinkID(v uint32) (ExHyperlinkID, error) {
	if err := checkNonZero("ExHyperlinkID", -1, v); err != nil {
		return ExHyperlinkID{}, err
	}
	return ExHyperlinkID{v}, nil
}

// ReadExHyperlinkID reads a non-zero 32-bit hyperlink identifier.
func ReadExHyperlinkID(c pptfields.Cursor) (ExHyperlinkID, error) {
	v, off, err := readU32(c, "ExHyperlinkID")
	if err != nil {
		return ExHyperlinkID{}, err
	}
	if err := checkNonZero("ExHyperlinkID", off, v); err != nil {
		return ExHyperlinkID{}, err
	}
	return ExHyperlinkID{v}, nil
}

// Value returns the raw identifier.
func (id ExHyperlinkID) Value() uint32 { return id.v }

func (id ExHyperlinkID) String() string { return fmt.Sprintf("ExHyperlinkID(%d)", id.v) }

// MasterID identifies a main master or title master slide. The high bit is
// always set.
type MasterID struct{ v uint32 }

// NewMasterID validates v as a master slide identifier.
func NewMasterID(v uint32) (MasterID, error) {
	if err := checkRange32("MasterID", -1, v, MinMasterID, 0xFFFFFFFF); err != nil {
		return MasterID{}, err
	}
	return MasterID{v}, nil
}

// ReadMasterID reads a 32-bit master identifier, which must be at least
// 0x80000000.
func ReadMasterID(c pptfields.Cursor) (MasterID, error) {
	v, off, err := readU32(c, "MasterID")
	if err != nil {
		return MasterID{}, err
	}
	if err := checkRange32("MasterID", off, v, MinMasterID, 0xFFFFFFFF); err != nil {
		return MasterID{}, err
	}
	return MasterID{v}, nil
}

// Value returns the raw identifier.
func (id MasterID) Value() uint32 { return id.v }

func (id MasterID) String() string { return fmt.Sprintf("MasterID(%#x)", id.v) }

// SlideID identifies a presentation slide.
type SlideID struct{ v uint32 }

// NewSlideID validates v as a slide identifier.
func NewSlideID(v uint32) (SlideID, error) {
	if err := checkRange32("SlideID", -1, v, MinSlideID, MaxSlideID); err != nil {
		return SlideID{}, err
	}
	return SlideID{v}, nil
}

// ReadSlideID reads a 32-bit slide identifier in 0x100..0x7FFFFFFF.
func ReadSlideID(c pptfields.Cursor) (SlideID, error) {
	v, off, err := readU32(c, "SlideID")
	if err != nil {
		return SlideID{}, err
	}
	if err := checkRange32("SlideID", off, v, MinSlideID, MaxSlideID); err != nil {
		return SlideID{}, err
	}
	return SlideID{v}, nil
}

// Value returns the raw identifier.
func (id SlideID) Value() uint32 { return id.v }

func (id SlideID) String() string { return fmt.Sprintf("SlideID(%d)", id.v) }

// NotesID identifies a notes slide. Same band as SlideID, separate
// namespace.
type NotesID struct{ v uint32 }

// NewNotesID validates v as a notes slide identifier.
func NewNotesID(v uint32) (NotesID, error) {
	if err := checkRange32("NotesID", -1, v, MinNotesID, MaxNotesID); err != nil {
		return NotesID{}, err
	}
	return NotesID{v}, nil
}

// ReadNotesID reads a 32-bit notes identifier in 0x100..0x7FFFFFFF.
func ReadNotesID(c pptfields.Cursor) (NotesID, error) {
	v, off, err := readU32(c, "NotesID")
	if err != nil {
		return NotesID{}, err
	}
	if err := checkRange32("NotesID", off, v, MinNotesID, MaxNotesID); err != nil {
		return NotesID{}, err
	}
	return NotesID{v}, nil
}

// Value returns the raw identifier.
func (id NotesID) Value() uint32 { return id.v }

func (id NotesID) String() string { return fmt.Sprintf("NotesID(%d)", id.v) }

// IndentLevel is a paragraph indentation level, 0 through 4.
type IndentLevel struct{ v uint16 }

// NewIndentLevel validates v as an indent level.
func NewIndentLevel(v uint16) (IndentLevel, error) {
	if err := checkMax16("IndentLevel", -1, v, MaxIndentLevel); err != nil {
		return IndentLevel{}, err
	}
	return IndentLevel{v}, nil
}

// ReadIndentLevel reads a 16-bit indent level no greater than 4.
func ReadIndentLevel(c pptfields.Cursor) (IndentLevel, error) {
	v, off, err := readU16(c, "IndentLevel")
	if err != nil {
		return IndentLevel{}, err
	}
	if err := checkMax16("IndentLevel", off, v, MaxIndentLevel); err != nil {
		return IndentLevel{}, err
	}
	return IndentLevel{v}, nil
}

// Value returns the raw level.
func (l IndentLevel) Value() uint16 { return l.v }

func (l IndentLevel) String() string { return fmt.Sprintf("IndentLevel(%d)", l.v) }
