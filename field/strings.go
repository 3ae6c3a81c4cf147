package field

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	textunicode "golang.org/x/text/encoding/unicode"

	"github.com/wippyai/pptfields"
	"github.com/wippyai/pptfields/errors"
)

var utf16le = textunicode.UTF16(textunicode.LittleEndian, textunicode.IgnoreBOM)

// ReadASCII reads n bytes of restricted ASCII text. The first NUL byte ends
// the string; the bytes after it are consumed as padding and not inspected.
// Control bytes 0x01-0x1F and 0x7F-0x9F are corrupted data. Printable text
// is normally 7-bit, but bytes 0xA0-0xFF are accepted as an extension and
// decoded as ISO-8859-1; callers that need strict 7-bit text check for them.
func ReadASCII(c pptfields.Cursor, n int) (string, error) {
	b, off, err := readN(c, "ASCIIString", n)
	if err != nil {
		return "", err
	}
	if end := bytes.IndexByte(b, 0); end >= 0 {
		b = b[:end]
	}
	for i, ch := range b {
		if ch < 0x20 || (ch >= 0x7F && ch <= 0x9F) {
			return "", errors.CorruptedData("ASCIIString", off, ch, "control byte %#02x at index %d", ch, i)
		}
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.InvalidEncoding("ASCIIString", off, "ISO-8859-1", b)
	}
	return string(out), nil
}

// ReadUTF16 reads n bytes of UTF-16LE text. The whole span is decoded,
// embedded NUL code units included. An odd n or an unpaired surrogate is
// corrupted data; the bytes are consumed either way.
func ReadUTF16(c pptfields.Cursor, n int) (string, error) {
	b, off, err := readN(c, "UTF16String", n)
	if err != nil {
		return "", err
	}
	if n%2 != 0 {
		return "", errors.CorruptedData("UTF16String", off, n, "odd byte count %d", n)
	}
	return decodeUTF16("UTF16String", off, b)
}

// ReadUTF8 reads n bytes that must be well-formed UTF-8.
func ReadUTF8(c pptfields.Cursor, n int) (string, error) {
	b, off, err := readN(c, "UTF8String", n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.InvalidEncoding("UTF8String", off, "UTF-8", b)
	}
	return string(b), nil
}

// ReadChar2 reads UTF-16LE code units from a region of n bytes until a NUL
// code unit or the end of the region. The NUL is consumed; the rest of the
// region is not. n must be even.
func ReadChar2(c pptfields.Cursor, n int) (string, error) {
	off := c.Position()
	if n < 0 || n%2 != 0 {
		return "", errors.CorruptedData("Char2String", off, n, "invalid region size %d", n)
	}
	var buf []byte
	for consumed := 0; consumed < n; consumed += 2 {
		unit, _, err := readU16(c, "Char2String")
		if err != nil {
			return "", err
		}
		if unit == 0 {
			break
		}
		buf = binary.LittleEndian.AppendUint16(buf, unit)
	}
	return decodeUTF16("Char2String", off, buf)
}

func decodeUTF16(typ string, off int, b []byte) (string, error) {
	if i := unpairedSurrogate(b); i >= 0 {
		return "", errors.New(errors.PhaseDecode, errors.KindCorruptedData).
			Type(typ).
			Offset(off).
			Detail("unpaired surrogate at byte %d", i).
			Build()
	}
	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.InvalidEncoding(typ, off, "UTF-16LE", b)
	}
	return string(out), nil
}

// unpairedSurrogate returns the byte index of the first surrogate code unit
// without a partner, or -1.
func unpairedSurrogate(b []byte) int {
	for i := 0; i+1 < len(b); i += 2 {
		u := binary.LittleEndian.Uint16(b[i:])
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+3 >= len(b) {
				return i
			}
			next := binary.LittleEndian.Uint16(b[i+2:])
			if next < 0xDC00 || next > 0xDFFF {
				return i
			}
			i += 2
		case u >= 0xDC00 && u <= 0xDFFF:
			return i
		}
	}
	return -1
}
