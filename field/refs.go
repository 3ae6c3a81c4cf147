package field

import (
	"fmt"

	"github.com/wippyai/pptfields"
)

// Sentinels meaning "no reference". They are ordinary decodable values.
const (
	NullRef32              uint32 = 0x00000000
	NullPictureBulletIndex uint16 = 0xFFFF
)

// Reference is the boundary form of a reference field: either Null or a
// concrete raw value that names an identifier defined elsewhere.
type Reference[T ~uint16 | ~uint32] struct {
	value T
	set   bool
}

// Null returns the null reference.
func Null[T ~uint16 | ~uint32]() Reference[T] {
	return Reference[T]{}
}

// Concrete returns a reference to v.
func Concrete[T ~uint16 | ~uint32](v T) Reference[T] {
	return Reference[T]{value: v, set: true}
}

// IsNull reports whether the reference points nowhere.
func (r Reference[T]) IsNull() bool { return !r.set }

// Get returns the referenced value and true, or the zero value and false for
// a null reference.
func (r Reference[T]) Get() (T, bool) { return r.value, r.set }

func (r Reference[T]) String() string {
	if !r.set {
		return "null"
	}
	return fmt.Sprintf("%#x", uint32(r.value))
}

func ref32[T ~uint32](v T) Reference[T] {
	if uint32(v) == NullRef32 {
		return Null[T]()
	}
	return Concrete(v)
}

// PersistIDRef points at an entry of the persist object directory.
type PersistIDRef uint32

// SlideIDRef points at a SlideID.
type SlideIDRef uint32

// MasterIDRef points at a MasterID.
type MasterIDRef uint32

// NotesIDRef points at a NotesID.
type NotesIDRef uint32

// ExObjIDRef points at an ExObjID.
type ExObjIDRef uint32

// ExHyperlinkIDRef points at an ExHyperlinkID.
type ExHyperlinkIDRef uint32

// PictureBulletIndex selects a picture bullet; 0xFFFF means none.
type PictureBulletIndex uint16

func (r PersistIDRef) IsNull() bool     { return uint32(r) == NullRef32 }
func (r SlideIDRef) IsNull() bool       { return uint32(r) == NullRef32 }
func (r MasterIDRef) IsNull() bool      { return uint32(r) == NullRef32 }
func (r NotesIDRef) IsNull() bool       { return uint32(r) == NullRef32 }
func (r ExObjIDRef) IsNull() bool       { return uint32(r) == NullRef32 }
func (r ExHyperlinkIDRef) IsNull() bool { return uint32(r) == NullRef32 }

func (r PictureBulletIndex) IsNull() bool { return uint16(r) == NullPictureBulletIndex }

func (r PersistIDRef) Ref() Reference[PersistIDRef]         { return ref32(r) }
func (r SlideIDRef) Ref() Reference[SlideIDRef]             { return ref32(r) }
func (r MasterIDRef) Ref() Reference[MasterIDRef]           { return ref32(r) }
func (r NotesIDRef) Ref() Reference[NotesIDRef]             { return ref32(r) }
func (r ExObjIDRef) Ref() Reference[ExObjIDRef]             { return ref32(r) }
func (r ExHyperlinkIDRef) Ref() Reference[ExHyperlinkIDRef] { return ref32(r) }

func (r PictureBulletIndex) Ref() Reference[PictureBulletIndex] {
	if r.IsNull() {
		return Null[PictureBulletIndex]()
	}
	return Concrete(r)
}

// ReadPersistIDRef reads a 32-bit persist reference. Zero is null.
func ReadPersistIDRef(c pptfields.Cursor) (PersistIDRef, error) {
	v, _, err := readU32(c, "PersistIDRef")
	return PersistIDRef(v), err
}

// ReadSlideIDRef reads a 32-bit slide reference. Zero is null.
func ReadSlideIDRef(c pptfields.Cursor) (SlideIDRef, error) {
	v, _, err := readU32(c, "SlideIDRef")
	return SlideIDRef(v), err
}

// ReadMasterIDRef reads a 32-bit master reference. Zero is null.
func ReadMasterIDRef(c pptfields.Cursor) (MasterIDRef, error) {
	v, _, err := readU32(c, "MasterIDRef")
	return MasterIDRef(v), err
}

// ReadNotesIDRef reads a 32-bit notes reference. Zero is null.
func ReadNotesIDRef(c pptfields.Cursor) (NotesIDRef, error) {
	v, _, err := readU32(c, "NotesIDRef")
	return NotesIDRef(v), err
}

// ReadExObjIDRef reads a 32-bit external object reference. Zero is null.
func ReadExObjIDRef(c pptfields.Cursor) (ExObjIDRef, error) {
	v, _, err := readU32(c, "ExObjIDRef")
	return ExObjIDRef(v), err
}

// ReadExHyperlinkIDRef reads a 32-bit hyperlink reference. Zero is null.
func ReadExHyperlinkIDRef(c pptfields.Cursor) (ExHyperlinkIDRef, error) {
	v, _, err := readU32(c, "ExHyperlinkIDRef")
	return ExHyperlinkIDRef(v), err
}

// ReadPictureBulletIndex reads a 16-bit picture bullet index. 0xFFFF is null.
func ReadPictureBulletIndex(c pptfields.Cursor) (PictureBulletIndex, error) {
	v, _, err := readU16(c, "PictureBulletIndex")
	return PictureBulletIndex(v), err
}
