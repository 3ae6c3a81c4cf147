package field

import "github.com/wippyai/pptfields"

// MasterUnit is a length in the document's native unit. It is opaque to
// this layer beyond being a signed 16-bit quantity.
type MasterUnit int16

// ColorIndex selects an entry of a color scheme.
type ColorIndex uint8

// ReadU8 reads an unconstrained byte.
func ReadU8(c pptfields.Cursor) (uint8, error) {
	v, _, err := readU8(c, "uint8")
	return v, err
}

// ReadU16 reads an unconstrained little-endian uint16.
func ReadU16(c pptfields.Cursor) (uint16, error) {
	v, _, err := readU16(c, "uint16")
	return v, err
}

// ReadU32 reads an unconstrained little-endian uint32.
func ReadU32(c pptfields.Cursor) (uint32, error) {
	v, _, err := readU32(c, "uint32")
	return v, err
}

// ReadI16 reads an unconstrained little-endian int16.
func ReadI16(c pptfields.Cursor) (int16, error) {
	v, _, err := readU16(c, "int16")
	return int16(v), err
}

// ReadI32 reads an unconstrained little-endian int32.
func ReadI32(c pptfields.Cursor) (int32, error) {
	v, _, err := readU32(c, "int32")
	return int32(v), err
}

// ReadBool8 reads a one-byte flag; any non-zero byte is true.
func ReadBool8(c pptfields.Cursor) (bool, error) {
	v, _, err := readU8(c, "bool8")
	return v != 0, err
}

// ReadMasterUnit reads a signed 16-bit master-unit length.
func ReadMasterUnit(c pptfields.Cursor) (MasterUnit, error) {
	v, _, err := readU16(c, "MasterUnit")
	return MasterUnit(int16(v)), err
}

// ReadColorIndex reads a one-byte color scheme index.
func ReadColorIndex(c pptfields.Cursor) (ColorIndex, error) {
	v, _, err := readU8(c, "ColorIndex")
	return ColorIndex(v), err
}
