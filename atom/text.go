package atom

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/wippyai/pptfields"
	"github.com/wippyai/pptfields/errors"
	"github.com/wippyai/pptfields/field"
)

// MasterTextPropRun gives the indent level of a run of characters in master
// text.
type MasterTextPropRun struct {
	Count       uint32
	IndentLevel field.IndentLevel
}

// ReadMasterTextPropRun reads a 6-byte run.
func ReadMasterTextPropRun(c pptfields.Cursor) (MasterTextPropRun, error) {
	count, err := field.ReadU32(c)
	if err != nil {
		return MasterTextPropRun{}, wrap("count", err)
	}
	lvl, err := field.ReadIndentLevel(c)
	if err != nil {
		return MasterTextPropRun{}, wrap("indentLevel", err)
	}
	return MasterTextPropRun{Count: count, IndentLevel: lvl}, nil
}

// MasterTextPropAtom is the list of indent runs for a master text body.
type MasterTextPropAtom struct {
	Runs []MasterTextPropRun
}

func (*MasterTextPropAtom) RecordType() uint16 { return RTMasterTextPropAtom }

const masterTextPropRunSize = 6

// ReadMasterTextPropAtom reads n bytes of runs. n must be a multiple of the
// run size.
func ReadMasterTextPropAtom(c pptfields.Cursor, n int) (*MasterTextPropAtom, error) {
	if n < 0 || n%masterTextPropRunSize != 0 {
		return nil, errors.CorruptedData("MasterTextPropAtom", c.Position(), n,
			"length %d is not a multiple of %d", n, masterTextPropRunSize)
	}
	a := &MasterTextPropAtom{}
	for i := 0; i < n/masterTextPropRunSize; i++ {
		run, err := ReadMasterTextPropRun(c)
		if err != nil {
			return nil, wrap("rgMasterTextPropRun", err)
		}
		a.Runs = append(a.Runs, run)
	}
	return a, nil
}

const (
	faceNameSize       = 64
	fontEntityAtomSize = 68
)

// FontEntityAtom describes one font of the document's font collection.
type FontEntityAtom struct {
	FaceName       string
	CharSet        uint8
	Flags          uint8
	Quality        uint8
	PitchAndFamily uint8
}

func (*FontEntityAtom) RecordType() uint16 { return RTFontEntityAtom }

// EmbedSubsetted reports whether the embedded font is a subset.
func (a *FontEntityAtom) EmbedSubsetted() bool { return a.Flags&0x01 != 0 }

// ReadFontEntityAtom reads a 68-byte FontEntityAtom body. The face name is
// NUL-terminated inside a fixed 64-byte slot; the rest of the slot is
// skipped.
func ReadFontEntityAtom(c pptfields.Cursor) (*FontEntityAtom, error) {
	start := c.Position()
	name, err := field.ReadChar2(c, faceNameSize)
	if err != nil {
		return nil, wrap("lfFaceName", err)
	}
	if err := skip(c, "Char2String", faceNameSize-(c.Position()-start)); err != nil {
		return nil, wrap("lfFaceName", err)
	}
	a := &FontEntityAtom{FaceName: name}
	for _, f := range []struct {
		name string
		dst  *uint8
	}{
		{"lfCharSet", &a.CharSet},
		{"flags", &a.Flags},
		{"lfQuality", &a.Quality},
		{"lfPitchAndFamily", &a.PitchAndFamily},
	} {
		if *f.dst, err = field.ReadU8(c); err != nil {
			return nil, wrap(f.name, err)
		}
	}
	return a, nil
}

// CString is a UTF-16 text atom. Its meaning depends on the record
// instance, e.g. a hyperlink's friendly name or target.
type CString struct {
	Instance uint16
	Value    string
}

func (*CString) RecordType() uint16 { return RTCString }

// ReadCString reads n bytes of UTF-16LE text.
func ReadCString(c pptfields.Cursor, n int) (string, error) {
	s, err := field.ReadUTF16(c, n)
	if err != nil {
		return "", wrap("value", err)
	}
	return s, nil
}

// XMLBlob is UTF-8 text that holds one XML document.
type XMLBlob struct {
	Root string // local name of the document element
	Text string
}

// ReadXMLBlob reads n bytes of UTF-8 and checks that they form a single
// well-formed XML document. An empty blob is allowed and has no root.
func ReadXMLBlob(c pptfields.Cursor, n int) (XMLBlob, error) {
	off := c.Position()
	text, err := field.ReadUTF8(c, n)
	if err != nil {
		return XMLBlob{}, wrap("text", err)
	}
	if n == 0 {
		return XMLBlob{}, nil
	}
	root, err := xmlRoot(text)
	if err != nil {
		return XMLBlob{}, errors.New(errors.PhaseDecode, errors.KindCorruptedData).
			Type("XMLBlob").
			Offset(off).
			Detail("malformed XML").
			Cause(err).
			Build()
	}
	return XMLBlob{Root: root, Text: text}, nil
}

// xmlRoot walks the token stream and returns the document element name.
func xmlRoot(text string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(text))

	var root string
	depth := 0
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return "", errUnexpected("element " + t.Name.Local + " after document end")
			}
			if depth == 0 {
				root = t.Name.Local
			}
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 {
				rootClosed = true
			}
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				return "", errUnexpected("character data outside root element")
			}
		}
	}

	if root == "" {
		return "", errUnexpected("no root element")
	}
	if !rootClosed {
		return "", io.ErrUnexpectedEOF
	}
	return root, nil
}

type errUnexpected string

func (e errUnexpected) Error() string { return "unexpected " + string(e) }
