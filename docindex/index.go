package docindex

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/pptfields/errors"
	"github.com/wippyai/pptfields/field"
)

// Namespace names a kind of identifier.
type Namespace string

const (
	NSExObj     Namespace = "exobj"
	NSHyperlink Namespace = "hyperlink"
	NSSlide     Namespace = "slide"
	NSMaster    Namespace = "master"
	NSNotes     Namespace = "notes"
)

// domain returns the collision domain of ns.
func (ns Namespace) domain() string {
	switch ns {
	case NSExObj, NSHyperlink:
		return "external"
	default:
		return string(ns)
	}
}

// Location identifies where an identifier or reference was decoded.
type Location struct {
	File   string
	Record string
	Offset int
	// List is the namespace of the enclosing slide list, if any. Slide
	// persist entries are classified by it.
	List Namespace
}

func (l Location) String() string {
	s := fmt.Sprintf("%s@%d", l.Record, l.Offset)
	if l.File != "" {
		s = l.File + ":" + s
	}
	return s
}

type key struct {
	domain string
	id     uint32
}

type definition struct {
	ns  Namespace
	loc Location
}

type collision struct {
	ns            Namespace
	id            uint32
	first, second Location
}

type reference struct {
	ns  Namespace
	id  uint32
	loc Location
}

// Index records identifier definitions and references for one document.
type Index struct {
	defs       map[key]definition
	collisions []collision
	refs       []reference
}

// New returns an empty Index.
func New() *Index {
	return &Index{defs: make(map[key]definition)}
}

// Add records a definition of id in ns. The first definition wins; later
// ones are remembered as collisions and reported by Validate.
func (ix *Index) Add(ns Namespace, id uint32, loc Location) {
	k := key{domain: ns.domain(), id: id}
	if prev, ok := ix.defs[k]; ok {
		Logger().Debug("duplicate identifier",
			zap.String("namespace", string(ns)),
			zap.Uint32("id", id),
			zap.Stringer("first", prev.loc),
			zap.Stringer("second", loc))
		ix.collisions = append(ix.collisions, collision{ns: ns, id: id, first: prev.loc, second: loc})
		return
	}
	ix.defs[k] = definition{ns: ns, loc: loc}
}

// Lookup returns where id was first defined in ns. A definition in another
// namespace of the same domain does not match.
func (ix *Index) Lookup(ns Namespace, id uint32) (Location, bool) {
	d, ok := ix.defs[key{domain: ns.domain(), id: id}]
	if !ok || d.ns != ns {
		return Location{}, false
	}
	return d.loc, true
}

// Len returns the number of distinct definitions.
func (ix *Index) Len() int {
	return len(ix.defs)
}

// Refer records a reference to be checked by ResolveAll.
func (ix *Index) Refer(ns Namespace, id uint32, loc Location) {
	ix.refs = append(ix.refs, reference{ns: ns, id: id, loc: loc})
}

// Validate returns every duplicate identifier combined into one error, or
// nil.
func (ix *Index) Validate() error {
	var err error
	for _, c := range ix.collisions {
		err = multierr.Append(err, errors.DuplicateID(string(c.ns), c.id, c.first.String(), c.second.String()))
	}
	return err
}

// ResolveAll checks every reference recorded with Refer and returns the
// dangling ones combined into one error, or nil.
func (ix *Index) ResolveAll() error {
	var err error
	for _, r := range ix.refs {
		if _, rerr := resolve(ix, r.ns, r.id, r.loc); rerr != nil {
			err = multierr.Append(err, rerr)
		}
	}
	return err
}

// Resolve looks up a reference. A null reference resolves to nothing
// without error and is never looked up.
func Resolve[T ~uint16 | ~uint32](ix *Index, ns Namespace, ref field.Reference[T]) (Location, bool, error) {
	v, ok := ref.Get()
	if !ok {
		return Location{}, false, nil
	}
	loc, err := resolve(ix, ns, uint32(v), Location{})
	if err != nil {
		return Location{}, false, err
	}
	return loc, true, nil
}

func resolve(ix *Index, ns Namespace, id uint32, from Location) (Location, error) {
	loc, ok := ix.Lookup(ns, id)
	if !ok {
		Logger().Debug("dangling reference",
			zap.String("namespace", string(ns)),
			zap.Uint32("id", id),
			zap.Stringer("from", from))
		err := errors.DanglingReference(string(ns), id)
		if from.Record != "" {
			err.Detail += " (referenced from " + from.String() + ")"
		}
		return Location{}, err
	}
	return loc, nil
}
