package atom

import (
	stderrors "errors"
	"fmt"

	"github.com/wippyai/pptfields"
	"github.com/wippyai/pptfields/errors"
)

// ErrUnknownRecord is returned by Decode for record types it has no body
// decoder for. Nothing is consumed; callers skip h.Length bytes themselves.
var ErrUnknownRecord = stderrors.New("unknown record type")

// fixedSizes holds the body length of fixed-layout atoms. Longer bodies are
// accepted and their tail skipped.
var fixedSizes = map[uint16]int{
	RTDocumentAtom:     40,
	RTSlideAtom:        24,
	RTNotesAtom:        8,
	RTSlidePersistAtom: 20,
	RTPlaceholderAtom:  8,
	RTTextHeaderAtom:   4,
	RTExHyperlinkAtom:  4,
	RTExObjRefAtom:     4,
	RTExOleObjAtom:     24,
	RTFontEntityAtom:   fontEntityAtomSize,
}

// Known reports whether Decode has a body decoder for recType.
func Known(recType uint16) bool {
	switch recType {
	case RTMasterTextPropAtom, RTCString:
		return true
	}
	_, ok := fixedSizes[recType]
	return ok
}

// Decode reads the body of the record described by h, which must have just
// been read from c. The body is read inside a window of h.Length bytes.
// Bytes a fixed-layout decoder does not use are skipped, so on success the
// cursor sits at the end of the record. On failure the cursor is left where
// the failing field stopped.
func Decode(h RecordHeader, c pptfields.LimitedCursor) (Atom, error) {
	if h.IsContainer() || !Known(h.Type) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRecord, h)
	}
	name := RecordName(h.Type)
	n := int(h.Length)

	if err := c.PushLimit(n); err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindCorruptedData).
			Path(name).
			Offset(c.Position()).
			Value(h.Length).
			Detail("record length %d exceeds enclosing record", h.Length).
			Cause(err).
			Build()
	}

	if size, ok := fixedSizes[h.Type]; ok && n < size {
		_, _ = c.PopLimit()
		return nil, errors.New(errors.PhaseDecode, errors.KindCorruptedData).
			Path(name).
			Offset(c.Position()).
			Value(h.Length).
			Detail("record length %d shorter than %d", h.Length, size).
			Build()
	}

	a, err := decodeBody(h, c, n)
	left, popErr := c.PopLimit()
	if err != nil {
		return nil, wrap(name, err)
	}
	if popErr != nil {
		return nil, wrap(name, popErr)
	}
	if err := skip(c, name, left); err != nil {
		return nil, wrap(name, err)
	}
	return a, nil
}

func decodeBody(h RecordHeader, c pptfields.Cursor, n int) (Atom, error) {
	switch h.Type {
	case RTDocumentAtom:
		return ReadDocumentAtom(c)
	case RTSlideAtom:
		return ReadSlideAtom(c)
	case RTNotesAtom:
		return ReadNotesAtom(c)
	case RTSlidePersistAtom:
		return ReadSlidePersistAtom(c)
	case RTPlaceholderAtom:
		return ReadPlaceholderAtom(c)
	case RTTextHeaderAtom:
		return ReadTextHeaderAtom(c)
	case RTExHyperlinkAtom:
		return ReadExHyperlinkAtom(c)
	case RTExObjRefAtom:
		return ReadExObjRefAtom(c)
	case RTExOleObjAtom:
		return ReadExOleObjAtom(c)
	case RTFontEntityAtom:
		return ReadFontEntityAtom(c)
	case RTMasterTextPropAtom:
		return ReadMasterTextPropAtom(c, n)
	case RTCString:
		s, err := ReadCString(c, n)
		if err != nil {
			return nil, err
		}
		return &CString{Instance: h.Instance, Value: s}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownRecord, h)
	}
}
