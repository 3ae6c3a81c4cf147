package atom

import (
	"fmt"

	"github.com/wippyai/pptfields"
	"github.com/wippyai/pptfields/field"
)

// RecordHeader precedes every record.
type RecordHeader struct {
	Version  uint8  // recVer, 4 bits
	Instance uint16 // recInstance, 12 bits
	Type     uint16
	Length   uint32
}

// IsContainer reports whether the record holds child records.
func (h RecordHeader) IsContainer() bool {
	return h.Version == ContainerVersion
}

func (h RecordHeader) String() string {
	name := RecordName(h.Type)
	if name == "" {
		name = fmt.Sprintf("%#04x", h.Type)
	}
	return fmt.Sprintf("%s(ver=%#x inst=%#x len=%d)", name, h.Version, h.Instance, h.Length)
}

// ReadRecordHeader reads an 8-byte record header.
func ReadRecordHeader(c pptfields.Cursor) (RecordHeader, error) {
	verInst, err := field.ReadU16(c)
	if err != nil {
		return RecordHeader{}, wrap("recVerInstance", err)
	}
	typ, err := field.ReadU16(c)
	if err != nil {
		return RecordHeader{}, wrap("recType", err)
	}
	n, err := field.ReadU32(c)
	if err != nil {
		return RecordHeader{}, wrap("recLen", err)
	}
	return RecordHeader{
		Version:  uint8(verInst & 0x000F),
		Instance: verInst >> 4,
		Type:     typ,
		Length:   n,
	}, nil
}
