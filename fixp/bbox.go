package fixp

import "strconv"

// An axis-aligned bounding box with float64 coordinates. Depending on
// the engine call that produced it, coordinates may represent font
// units, fractional pixels or whole pixels; the caller picks the raw
// interpretation accordingly.
type BBox struct {
	XMin, YMin float64
	XMax, YMax float64
}

// The engine's wire form of a [BBox].
type RawBBox struct {
	XMin, YMin int64
	XMax, YMax int64
}

func (self BBox) String() string {
	format := func(value float64) string {
		return strconv.FormatFloat(value, 'f', 3, 64)
	}
	return "BBox(" + format(self.XMin) + ", " + format(self.YMin) + ", " +
		format(self.XMax) + ", " + format(self.YMax) + ")"
}

// The box width. Can be negative for invalid boxes.
func (self BBox) Width() float64 { return self.XMax - self.XMin }

// The box height. Can be negative for invalid boxes.
func (self BBox) Height() float64 { return self.YMax - self.YMin }

// Converts the box to raw engine form with the given number of
// fractional bits per coordinate.
func (self BBox) ToRaw(shift uint) RawBBox {
	return RawBBox{
		XMin: ToFixed(self.XMin, shift), YMin: ToFixed(self.YMin, shift),
		XMax: ToFixed(self.XMax, shift), YMax: ToFixed(self.YMax, shift),
	}
}

// Creates a box from raw engine form, interpreting each coordinate as
// fixed point with the given number of fractional bits.
func BBoxFromRaw(raw RawBBox, shift uint) BBox {
	return BBox{
		XMin: FromFixed(raw.XMin, shift), YMin: FromFixed(raw.YMin, shift),
		XMax: FromFixed(raw.XMax, shift), YMax: FromFixed(raw.YMax, shift),
	}
}
