// Package docindex checks identifier uniqueness and reference integrity
// across a whole document.
//
// Field decoders see one record at a time and cannot know whether an
// identifier was already defined elsewhere. The index collects definitions
// while records are decoded and reports problems once decoding is done:
//
//	ix := docindex.New()
//	for each decoded atom:
//		docindex.Collect(ix, a, loc)
//	err := ix.Validate()      // duplicate identifiers
//	err = ix.ResolveAll()     // references to undefined identifiers
//
// External objects and hyperlinks share one collision domain, so an
// ExObjID equal to an ExHyperlinkID is a duplicate. Slide, master and notes
// identifiers each have their own domain.
//
// An Index is not safe for concurrent use.
package docindex
