package field

import (
	"github.com/wippyai/pptfields"
	"github.com/wippyai/pptfields/errors"
)

func readU8(c pptfields.Cursor, typ string) (uint8, int, error) {
	off := c.Position()
	v, err := c.ReadU8()
	if err != nil {
		return 0, off, errors.Truncated(typ, off, err)
	}
	return v, off, nil
}

func readU16(c pptfields.Cursor, typ string) (uint16, int, error) {
	off := c.Position()
	v, err := c.ReadU16LE()
	if err != nil {
		return 0, off, errors.Truncated(typ, off, err)
	}
	return v, off, nil
}

func readU32(c pptfields.Cursor, typ string) (uint32, int, error) {
	off := c.Position()
	v, err := c.ReadU32LE()
	if err != nil {
		return 0, off, errors.Truncated(typ, off, err)
	}
	return v, off, nil
}

func readN(c pptfields.Cursor, typ string, n int) ([]byte, int, error) {
	off := c.Position()
	if n < 0 {
		return nil, off, errors.CorruptedData(typ, off, n, "negative byte count %d", n)
	}
	b, err := c.ReadBytes(n)
	if err != nil {
		return nil, off, errors.Truncated(typ, off, err)
	}
	return b, off, nil
}
