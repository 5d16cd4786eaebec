package ftkit

import "github.com/ftkit/ftkit/internal/ft"

// Character map encoding tag.
type Encoding uint32

const (
	EncodingNone       = Encoding(0)
	EncodingUnicode    = Encoding(0x756E6963) // 'unic'
	EncodingMSSymbol   = Encoding(0x73796D62) // 'symb'
	EncodingSJIS       = Encoding(0x736A6973) // 'sjis'
	EncodingGB2312     = Encoding(0x67622020) // 'gb  '
	EncodingBig5       = Encoding(0x62696735) // 'big5'
	EncodingWansung    = Encoding(0x77616E73) // 'wans'
	EncodingJohab      = Encoding(0x6A6F6861) // 'joha'
	EncodingAdobeStd   = Encoding(0x41444F42) // 'ADOB'
	EncodingAppleRoman = Encoding(0x61726D6E) // 'armn'
)

// Four-character form of the tag, like "unic".
func (self Encoding) String() string { return ft.TagString(uint32(self)) }

// Glyph image format tag.
type GlyphFormat uint32

const (
	FormatNone      = GlyphFormat(0)
	FormatComposite = GlyphFormat(0x636F6D70) // 'comp'
	FormatBitmap    = GlyphFormat(0x62697473) // 'bits'
	FormatOutline   = GlyphFormat(0x6F75746C) // 'outl'
	FormatPlotter   = GlyphFormat(0x706C6F74) // 'plot'
)

func (self GlyphFormat) String() string {
	if self == FormatNone { return "none" }
	return ft.TagString(uint32(self))
}

// Glyph load flags, combined with bitwise or.
type LoadFlag int32

const (
	LoadDefault         LoadFlag = 0
	LoadNoScale         LoadFlag = 1 << 0
	LoadNoHinting       LoadFlag = 1 << 1
	LoadRender          LoadFlag = 1 << 2
	LoadNoBitmap        LoadFlag = 1 << 3
	LoadVerticalLayout  LoadFlag = 1 << 4
	LoadForceAutohint   LoadFlag = 1 << 5
	LoadPedantic        LoadFlag = 1 << 7
	LoadIgnoreTransform LoadFlag = 1 << 11
	LoadMonochrome      LoadFlag = 1 << 12
	LoadLinearDesign    LoadFlag = 1 << 13
	LoadNoAutohint      LoadFlag = 1 << 15
	LoadColor           LoadFlag = 1 << 20
)

// Rasterization mode for [GlyphSlot.Render] and [Glyph.ToBitmap].
type RenderMode uint32

const (
	RenderNormal RenderMode = 0
	RenderLight  RenderMode = 1
	RenderMono   RenderMode = 2
	RenderLCD    RenderMode = 3
	RenderLCDV   RenderMode = 4
)

// Pixel storage format of a [Bitmap].
type PixelMode uint8

const (
	PixelNone  PixelMode = 0
	PixelMono  PixelMode = 1
	PixelGray  PixelMode = 2
	PixelGray2 PixelMode = 3
	PixelGray4 PixelMode = 4
	PixelLCD   PixelMode = 5
	PixelLCDV  PixelMode = 6
)

// Kerning interpretation mode.
type KernMode uint32

const (
	KernDefault  KernMode = 0 // scaled pixels, grid-fitted
	KernUnfitted KernMode = 1 // scaled pixels, fractional
	KernUnscaled KernMode = 2 // raw font units
)

// Interpretation mode for [Glyph.CBox].
type BBoxMode uint32

const (
	BBoxUnscaled  BBoxMode = 0 // fractional pixels, or font units for unscaled glyphs
	BBoxSubpixels BBoxMode = 0
	BBoxGridfit   BBoxMode = 1 // fractional pixels, grid-fitted outward
	BBoxTruncate  BBoxMode = 2 // whole pixels
	BBoxPixels    BBoxMode = 3 // whole pixels, grid-fitted outward
)

// Fill orientation of an outline.
type Orientation uint32

const (
	OrientTrueType   Orientation = 0 // clockwise contours filled
	OrientPostscript Orientation = 1 // counter-clockwise contours filled
	OrientNone       Orientation = 2 // undetermined
)

// Stroke line cap style.
type LineCap uint32

const (
	CapButt   LineCap = 0
	CapRound  LineCap = 1
	CapSquare LineCap = 2
)

// Stroke line join style.
type LineJoin uint32

const (
	JoinRound      LineJoin = 0
	JoinBevel      LineJoin = 1
	JoinMiter      LineJoin = 2
	JoinMiterFixed LineJoin = 3
)

// One of the two borders produced by stroking an outline.
type Border uint32

const (
	BorderLeft  Border = 0
	BorderRight Border = 1
)

// Face property flags.
type FaceFlag int64

const (
	FaceScalable   FaceFlag = 1 << 0
	FaceFixedSizes FaceFlag = 1 << 1
	FaceFixedWidth FaceFlag = 1 << 2
	FaceSFNT       FaceFlag = 1 << 3
	FaceHorizontal FaceFlag = 1 << 4
	FaceVertical   FaceFlag = 1 << 5
	FaceKerning    FaceFlag = 1 << 6
	FaceGlyphNames FaceFlag = 1 << 9
	FaceHinter     FaceFlag = 1 << 11
	FaceCIDKeyed   FaceFlag = 1 << 12
	FaceTricky     FaceFlag = 1 << 13
	FaceColor      FaceFlag = 1 << 14
)

// Face style flags.
type StyleFlag int64

const (
	StyleItalic StyleFlag = 1 << 0
	StyleBold   StyleFlag = 1 << 1
)

// Classification of an outline control point.
type PointTag uint8

const (
	TagOnCurve      PointTag = 1 // point lies on the curve
	TagQuadControl  PointTag = 0 // off-curve quadratic control point
	TagCubicControl PointTag = 2 // off-curve cubic control point
)

func (self PointTag) String() string {
	switch self {
	case TagOnCurve: return "on"
	case TagQuadControl: return "conic"
	case TagCubicControl: return "cubic"
	default: return "invalid"
	}
}
