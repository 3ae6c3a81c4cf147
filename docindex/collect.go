package docindex

import (
	"github.com/wippyai/pptfields/atom"
	"github.com/wippyai/pptfields/field"
)

// ListNamespace maps the instance of a SlideListWithText container to the
// namespace of the persist entries it holds.
func ListNamespace(instance uint16) (Namespace, bool) {
	switch instance {
	case atom.ListSlides:
		return NSSlide, true
	case atom.ListMasters:
		return NSMaster, true
	case atom.ListNotes:
		return NSNotes, true
	}
	return "", false
}

// Collect feeds the identifiers a decoded atom defines or references into
// ix. Atoms that carry neither are ignored. A slide persist entry outside a
// known slide list is ignored; inside one its identifier is checked against
// the list's namespace and an invalid value is returned as corrupted data.
func Collect(ix *Index, a atom.Atom, loc Location) error {
	if loc.Record == "" {
		loc.Record = atom.RecordName(a.RecordType())
	}

	switch v := a.(type) {
	case *atom.ExOleObjAtom:
		ix.Add(NSExObj, v.ID.Value(), loc)
	case *atom.ExHyperlinkAtom:
		ix.Add(NSHyperlink, v.ID.Value(), loc)
	case *atom.SlidePersistAtom:
		return collectPersist(ix, v, loc)
	case *atom.SlideAtom:
		refer(ix, NSMaster, v.MasterIDRef.Ref(), loc)
		refer(ix, NSNotes, v.NotesIDRef.Ref(), loc)
	case *atom.NotesAtom:
		refer(ix, NSSlide, v.SlideIDRef.Ref(), loc)
	case *atom.ExObjRefAtom:
		refer(ix, NSExObj, v.ExObjIDRef.Ref(), loc)
	}
	return nil
}

func collectPersist(ix *Index, p *atom.SlidePersistAtom, loc Location) error {
	var err error
	switch loc.List {
	case NSSlide:
		_, err = field.NewSlideID(p.SlideID)
	case NSMaster:
		_, err = field.NewMasterID(p.SlideID)
	case NSNotes:
		_, err = field.NewNotesID(p.SlideID)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	ix.Add(loc.List, p.SlideID, loc)
	return nil
}

func refer[T ~uint32](ix *Index, ns Namespace, ref field.Reference[T], loc Location) {
	if v, ok := ref.Get(); ok {
		ix.Refer(ns, uint32(v), loc)
	}
}
