package main

import (
	"fmt"
	"sort"

	"github.com/wippyai/pptfields/atom"
	"github.com/wippyai/pptfields/field"
	"github.com/wippyai/pptfields/stream"
)

// decoderKind is one decoder selectable with -kind.
type decoderKind struct {
	name   string
	desc   string
	sized  bool // takes a byte count from -n
	decode func(r *stream.Reader, n int) (any, error)
}

func fixed[T any](fn func(*stream.Reader) (T, error)) func(*stream.Reader, int) (any, error) {
	return func(r *stream.Reader, _ int) (any, error) {
		v, err := fn(r)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func sized[T any](fn func(*stream.Reader, int) (T, error)) func(*stream.Reader, int) (any, error) {
	return func(r *stream.Reader, n int) (any, error) {
		v, err := fn(r, n)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

var kinds = map[string]decoderKind{}

func register(name, desc string, decode func(*stream.Reader, int) (any, error)) {
	kinds[name] = decoderKind{name: name, desc: desc, decode: decode}
}

func registerSized(name, desc string, decode func(*stream.Reader, int) (any, error)) {
	kinds[name] = decoderKind{name: name, desc: desc, sized: true, decode: decode}
}

func init() {
	register("u8", "unsigned 8-bit", fixed(func(r *stream.Reader) (uint8, error) { return field.ReadU8(r) }))
	register("u16", "unsigned 16-bit LE", fixed(func(r *stream.Reader) (uint16, error) { return field.ReadU16(r) }))
	register("u32", "unsigned 32-bit LE", fixed(func(r *stream.Reader) (uint32, error) { return field.ReadU32(r) }))
	register("i16", "signed 16-bit LE", fixed(func(r *stream.Reader) (int16, error) { return field.ReadI16(r) }))
	register("i32", "signed 32-bit LE", fixed(func(r *stream.Reader) (int32, error) { return field.ReadI32(r) }))
	register("bool8", "one-byte flag", fixed(func(r *stream.Reader) (bool, error) { return field.ReadBool8(r) }))
	register("masterunit", "signed 16-bit length", fixed(func(r *stream.Reader) (field.MasterUnit, error) { return field.ReadMasterUnit(r) }))
	register("colorindex", "color scheme index", fixed(func(r *stream.Reader) (field.ColorIndex, error) { return field.ReadColorIndex(r) }))

	register("exobjid", "non-zero u32", fixed(func(r *stream.Reader) (field.ExObjID, error) { return field.ReadExObjID(r) }))
	register("exhyperlinkid", "non-zero u32", fixed(func(r *stream.Reader) (field.ExHyperlinkID, error) { return field.ReadExHyperlinkID(r) }))
	register("masterid", "u32 >= 0x80000000", fixed(func(r *stream.Reader) (field.MasterID, error) { return field.ReadMasterID(r) }))
	register("slideid", "u32 in 0x100..0x7FFFFFFF", fixed(func(r *stream.Reader) (field.SlideID, error) { return field.ReadSlideID(r) }))
	register("notesid", "u32 in 0x100..0x7FFFFFFF", fixed(func(r *stream.Reader) (field.NotesID, error) { return field.ReadNotesID(r) }))
	register("indentlevel", "u16 in 0..4", fixed(func(r *stream.Reader) (field.IndentLevel, error) { return field.ReadIndentLevel(r) }))

	register("placeholdertype", "8-bit enum", fixed(func(r *stream.Reader) (field.PlaceholderType, error) { return field.ReadPlaceholderType(r) }))
	register("placeholdersize", "8-bit enum", fixed(func(r *stream.Reader) (field.PlaceholderSize, error) { return field.ReadPlaceholderSize(r) }))
	register("slidesize", "16-bit enum", fixed(func(r *stream.Reader) (field.SlideSize, error) { return field.ReadSlideSize(r) }))
	register("textalignment", "16-bit enum", fixed(func(r *stream.Reader) (field.TextAlignment, error) { return field.ReadTextAlignment(r) }))
	register("tabstoptype", "16-bit enum", fixed(func(r *stream.Reader) (field.TabStopType, error) { return field.ReadTabStopType(r) }))
	register("texttype", "32-bit enum", fixed(func(r *stream.Reader) (field.TextType, error) { return field.ReadTextType(r) }))
	register("slidelayouttype", "32-bit enum", fixed(func(r *stream.Reader) (field.SlideLayoutType, error) { return field.ReadSlideLayoutType(r) }))
	register("exoleobjtype", "32-bit enum", fixed(func(r *stream.Reader) (field.ExOleObjType, error) { return field.ReadExOleObjType(r) }))
	register("drawaspect", "32-bit enum", fixed(func(r *stream.Reader) (field.DrawAspect, error) { return field.ReadDrawAspect(r) }))

	register("persistidref", "u32, 0 is null", fixed(func(r *stream.Reader) (field.Reference[field.PersistIDRef], error) {
		v, err := field.ReadPersistIDRef(r)
		return v.Ref(), err
	}))
	register("slideidref", "u32, 0 is null", fixed(func(r *stream.Reader) (field.Reference[field.SlideIDRef], error) {
		v, err := field.ReadSlideIDRef(r)
		return v.Ref(), err
	}))
	register("masteridref", "u32, 0 is null", fixed(func(r *stream.Reader) (field.Reference[field.MasterIDRef], error) {
		v, err := field.ReadMasterIDRef(r)
		return v.Ref(), err
	}))
	register("notesidref", "u32, 0 is null", fixed(func(r *stream.Reader) (field.Reference[field.NotesIDRef], error) {
		v, err := field.ReadNotesIDRef(r)
		return v.Ref(), err
	}))
	register("exobjidref", "u32, 0 is null", fixed(func(r *stream.Reader) (field.Reference[field.ExObjIDRef], error) {
		v, err := field.ReadExObjIDRef(r)
		return v.Ref(), err
	}))
	register("exhyperlinkidref", "u32, 0 is null", fixed(func(r *stream.Reader) (field.Reference[field.ExHyperlinkIDRef], error) {
		v, err := field.ReadExHyperlinkIDRef(r)
		return v.Ref(), err
	}))
	register("picturebulletindex", "u16, 0xFFFF is null", fixed(func(r *stream.Reader) (field.Reference[field.PictureBulletIndex], error) {
		v, err := field.ReadPictureBulletIndex(r)
		return v.Ref(), err
	}))

	registerSized("ascii", "restricted ASCII, NUL-terminated", sized(func(r *stream.Reader, n int) (string, error) { return field.ReadASCII(r, n) }))
	registerSized("utf16", "UTF-16LE", sized(func(r *stream.Reader, n int) (string, error) { return field.ReadUTF16(r, n) }))
	registerSized("utf8", "UTF-8", sized(func(r *stream.Reader, n int) (string, error) { return field.ReadUTF8(r, n) }))
	registerSized("char2", "UTF-16LE up to NUL", sized(func(r *stream.Reader, n int) (string, error) { return field.ReadChar2(r, n) }))
	registerSized("xml", "UTF-8 XML document", sized(func(r *stream.Reader, n int) (atom.XMLBlob, error) { return atom.ReadXMLBlob(r, n) }))

	register("point", "PointStruct", fixed(func(r *stream.Reader) (atom.PointStruct, error) { return atom.ReadPointStruct(r) }))
	register("rect", "RectStruct", fixed(func(r *stream.Reader) (atom.RectStruct, error) { return atom.ReadRectStruct(r) }))
	register("smallrect", "SmallRectStruct", fixed(func(r *stream.Reader) (atom.SmallRectStruct, error) { return atom.ReadSmallRectStruct(r) }))
	register("ratio", "RatioStruct", fixed(func(r *stream.Reader) (atom.RatioStruct, error) { return atom.ReadRatioStruct(r) }))
	register("scaling", "ScalingStruct", fixed(func(r *stream.Reader) (atom.ScalingStruct, error) { return atom.ReadScalingStruct(r) }))
	register("color", "ColorStruct", fixed(func(r *stream.Reader) (atom.ColorStruct, error) { return atom.ReadColorStruct(r) }))
	register("tabstop", "TabStop", fixed(func(r *stream.Reader) (atom.TabStop, error) { return atom.ReadTabStop(r) }))
	register("header", "RecordHeader", fixed(func(r *stream.Reader) (atom.RecordHeader, error) { return atom.ReadRecordHeader(r) }))
	register("record", "header followed by a known atom body", fixed(func(r *stream.Reader) (atom.Atom, error) {
		h, err := atom.ReadRecordHeader(r)
		if err != nil {
			return nil, err
		}
		return atom.Decode(h, r)
	}))
}

func lookupKind(name string) (decoderKind, error) {
	k, ok := kinds[name]
	if !ok {
		return decoderKind{}, fmt.Errorf("unknown kind %q (use -list)", name)
	}
	return k, nil
}

func sortedKinds() []decoderKind {
	out := make([]decoderKind, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
