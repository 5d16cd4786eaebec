package ft

import "unsafe"

// Integer types matching the engine's 64-bit Unix ABI. Pos values may
// hold plain integers, 16.16 or 26.6 fixed point depending on the call;
// interpretation happens in the wrapper layer, never here.
type (
	Long  = int64
	ULong = uint64
	Pos   = int64
	Fixed = int64
)

// Engine booleans cross the boundary as plain integers.
type Bool int32

// Opaque handle to an initialized engine instance. The engine owns the
// memory behind it; the wrapper layer only threads the handle through.
type Library uintptr

// Opaque handle to an engine stroker.
type Stroker uintptr

// Four-character tag codes (encodings, glyph formats).
type Encoding uint32
type GlyphFormat uint32

// Converts a four-byte string into the engine's big-endian tag form.
func MakeTag(tag string) uint32 {
	_ = tag[3]
	return uint32(tag[0])<<24 | uint32(tag[1])<<16 | uint32(tag[2])<<8 | uint32(tag[3])
}

// Converts a tag code back to its four-character form.
func TagString(tag uint32) string {
	return string([]byte{
		byte(tag >> 24), byte(tag >> 16), byte(tag >> 8), byte(tag),
	})
}

// Client-data slot present in several engine records. Never written by
// the wrapper layer.
type Generic struct {
	Data      uintptr
	Finalizer uintptr
}

type Vector struct {
	X Pos
	Y Pos
}

type Matrix struct {
	XX, XY Fixed
	YX, YY Fixed
}

type BBox struct {
	XMin, YMin Pos
	XMax, YMax Pos
}

type BitmapSize struct {
	Height int16
	Width  int16
	Size   Pos
	XPpem  Pos
	YPpem  Pos
}

type SizeMetrics struct {
	XPpem      uint16 // horizontal pixels per EM
	YPpem      uint16 // vertical pixels per EM
	XScale     Fixed  // font units to 26.6 pixels, 16.16
	YScale     Fixed
	Ascender   Pos // 26.6 pixels
	Descender  Pos
	Height     Pos
	MaxAdvance Pos
}

type GlyphMetrics struct {
	Width  Pos
	Height Pos

	HoriBearingX Pos
	HoriBearingY Pos
	HoriAdvance  Pos

	VertBearingX Pos
	VertBearingY Pos
	VertAdvance  Pos
}

type CharMapRec struct {
	Face       *FaceRec
	Encoding   Encoding
	PlatformID uint16
	EncodingID uint16
}

type SizeRec struct {
	Face     *FaceRec
	Generic  Generic
	Metrics  SizeMetrics
	Internal uintptr
}

type OutlineRec struct {
	NContours int16
	NPoints   int16

	Points   *Vector
	Tags     *byte
	Contours *int16 // end point index of each contour, inclusive

	Flags uint32
}

type BitmapRec struct {
	Rows        int32
	Width       int32
	Pitch       int32
	Buffer      *byte
	NumGrays    int16
	PixelMode   uint8
	PaletteMode uint8
	Palette     uintptr
}

type GlyphSlotRec struct {
	Library  Library
	Face     *FaceRec
	Next     *GlyphSlotRec
	Reserved uint32
	Generic  Generic

	Metrics           GlyphMetrics
	LinearHoriAdvance Fixed
	LinearVertAdvance Fixed
	Advance           Vector

	Format GlyphFormat

	Bitmap     BitmapRec
	BitmapLeft int32
	BitmapTop  int32

	Outline OutlineRec

	NumSubglyphs uint32
	Subglyphs    uintptr

	ControlData uintptr
	ControlLen  Long

	LsbDelta Pos
	RsbDelta Pos

	Other    uintptr
	Internal uintptr
}

// Public lead-in of the engine's face record. Private fields follow in
// engine memory; the wrapper must never assume the record's full size.
type FaceRec struct {
	NumFaces  Long
	FaceIndex Long

	FaceFlags  Long
	StyleFlags Long

	NumGlyphs Long

	FamilyName *byte
	StyleName  *byte

	NumFixedSizes  int32
	AvailableSizes *BitmapSize

	NumCharmaps int32
	Charmaps    **CharMapRec

	Generic Generic

	BBox BBox

	UnitsPerEM uint16
	Ascender   int16
	Descender  int16
	Height     int16

	MaxAdvanceWidth  int16
	MaxAdvanceHeight int16

	UnderlinePosition  int16
	UnderlineThickness int16

	Glyph   *GlyphSlotRec
	Size    *SizeRec
	Charmap *CharMapRec
}

type GlyphRec struct {
	Library Library
	Clazz   uintptr
	Format  GlyphFormat
	Advance Vector // 16.16
}

type BitmapGlyphRec struct {
	Root   GlyphRec
	Left   int32
	Top    int32
	Bitmap BitmapRec
}

type OutlineGlyphRec struct {
	Root    GlyphRec
	Outline OutlineRec
}

// ---- pointer+count array views ----

// Views the outline's point array as a Go slice. The slice aliases
// engine memory and is only valid while the outline storage is.
func (self *OutlineRec) PointsSlice() []Vector {
	if self.Points == nil || self.NPoints <= 0 { return nil }
	return unsafe.Slice(self.Points, int(self.NPoints))
}

// Views the outline's tag array as a Go slice.
func (self *OutlineRec) TagsSlice() []byte {
	if self.Tags == nil || self.NPoints <= 0 { return nil }
	return unsafe.Slice(self.Tags, int(self.NPoints))
}

// Views the outline's contour end-index array as a Go slice.
func (self *OutlineRec) ContoursSlice() []int16 {
	if self.Contours == nil || self.NContours <= 0 { return nil }
	return unsafe.Slice(self.Contours, int(self.NContours))
}

// Views the bitmap's pixel buffer as a Go slice. Only valid for
// non-negative pitches.
func (self *BitmapRec) BufferSlice() []byte {
	if self.Buffer == nil || self.Rows <= 0 || self.Pitch <= 0 { return nil }
	return unsafe.Slice(self.Buffer, int(self.Rows)*int(self.Pitch))
}

// Decodes an engine C string. Returns "" for nil.
func CString(ptr *byte) string {
	if ptr == nil { return "" }
	length := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(ptr), length)) != 0 { length++ }
	return string(unsafe.Slice(ptr, length))
}

// Views the face's fixed bitmap strikes as a Go slice.
func (self *FaceRec) AvailableSizesSlice() []BitmapSize {
	if self.AvailableSizes == nil || self.NumFixedSizes <= 0 { return nil }
	return unsafe.Slice(self.AvailableSizes, int(self.NumFixedSizes))
}

// Views the face's charmap pointer list as a Go slice.
func (self *FaceRec) CharmapsSlice() []*CharMapRec {
	if self.Charmaps == nil || self.NumCharmaps <= 0 { return nil }
	return unsafe.Slice(self.Charmaps, int(self.NumCharmaps))
}
