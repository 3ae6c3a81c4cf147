package atom

import (
	"github.com/wippyai/pptfields"
	"github.com/wippyai/pptfields/errors"
	"github.com/wippyai/pptfields/field"
)

// PointStruct is a point in 32-bit coordinates.
type PointStruct struct {
	X, Y int32
}

// ReadPointStruct reads x then y.
func ReadPointStruct(c pptfields.Cursor) (PointStruct, error) {
	x, err := field.ReadI32(c)
	if err != nil {
		return PointStruct{}, wrap("x", err)
	}
	y, err := field.ReadI32(c)
	if err != nil {
		return PointStruct{}, wrap("y", err)
	}
	return PointStruct{X: x, Y: y}, nil
}

// RectStruct is a rectangle in 32-bit coordinates.
type RectStruct struct {
	Top, Left, Right, Bottom int32
}

// ReadRectStruct reads top, left, right, bottom.
func ReadRectStruct(c pptfields.Cursor) (RectStruct, error) {
	var r RectStruct
	for _, f := range []struct {
		name string
		dst  *int32
	}{
		{"top", &r.Top},
		{"left", &r.Left},
		{"right", &r.Right},
		{"bottom", &r.Bottom},
	} {
		v, err := field.ReadI32(c)
		if err != nil {
			return RectStruct{}, wrap(f.name, err)
		}
		*f.dst = v
	}
	return r, nil
}

// SmallRectStruct is a rectangle in master units.
type SmallRectStruct struct {
	Top, Left, Right, Bottom field.MasterUnit
}

// ReadSmallRectStruct reads top, left, right, bottom.
func ReadSmallRectStruct(c pptfields.Cursor) (SmallRectStruct, error) {
	var r SmallRectStruct
	for _, f := range []struct {
		name string
		dst  *field.MasterUnit
	}{
		{"top", &r.Top},
		{"left", &r.Left},
		{"right", &r.Right},
		{"bottom", &r.Bottom},
	} {
		v, err := field.ReadMasterUnit(c)
		if err != nil {
			return SmallRectStruct{}, wrap(f.name, err)
		}
		*f.dst = v
	}
	return r, nil
}

// RatioStruct is a fraction with a positive denominator.
type RatioStruct struct {
	Numer, Denom int32
}

// ReadRatioStruct reads numer then denom. A denominator of zero or less is
// corrupted data.
func ReadRatioStruct(c pptfields.Cursor) (RatioStruct, error) {
	numer, err := field.ReadI32(c)
	if err != nil {
		return RatioStruct{}, wrap("numer", err)
	}
	off := c.Position()
	denom, err := field.ReadI32(c)
	if err != nil {
		return RatioStruct{}, wrap("denom", err)
	}
	if denom <= 0 {
		return RatioStruct{}, errors.OutOfRange("int32", off, denom, "1..0x7fffffff").WithParent("denom")
	}
	return RatioStruct{Numer: numer, Denom: denom}, nil
}

// ScalingStruct is a pair of independent x and y scale factors.
type ScalingStruct struct {
	X, Y RatioStruct
}

// ReadScalingStruct reads x then y.
func ReadScalingStruct(c pptfields.Cursor) (ScalingStruct, error) {
	x, err := ReadRatioStruct(c)
	if err != nil {
		return ScalingStruct{}, wrap("x", err)
	}
	y, err := ReadRatioStruct(c)
	if err != nil {
		return ScalingStruct{}, wrap("y", err)
	}
	return ScalingStruct{X: x, Y: y}, nil
}

// ColorStruct is an RGB color with a scheme index byte.
type ColorStruct struct {
	Red, Green, Blue uint8
	Index            field.ColorIndex
}

// ReadColorStruct reads red, green, blue, index.
func ReadColorStruct(c pptfields.Cursor) (ColorStruct, error) {
	var rgb [3]uint8
	for i, name := range []string{"red", "green", "blue"} {
		v, err := field.ReadU8(c)
		if err != nil {
			return ColorStruct{}, wrap(name, err)
		}
		rgb[i] = v
	}
	idx, err := field.ReadColorIndex(c)
	if err != nil {
		return ColorStruct{}, wrap("index", err)
	}
	return ColorStruct{Red: rgb[0], Green: rgb[1], Blue: rgb[2], Index: idx}, nil
}

// TabStop is one tab position in a paragraph's tab list.
type TabStop struct {
	Position field.MasterUnit
	Type     field.TabStopType
}

// ReadTabStop reads position then type.
func ReadTabStop(c pptfields.Cursor) (TabStop, error) {
	pos, err := field.ReadMasterUnit(c)
	if err != nil {
		return TabStop{}, wrap("position", err)
	}
	typ, err := field.ReadTabStopType(c)
	if err != nil {
		return TabStop{}, wrap("type", err)
	}
	return TabStop{Position: pos, Type: typ}, nil
}
