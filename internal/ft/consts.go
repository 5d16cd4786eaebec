package ft

// Character map encodings.
var (
	EncodingNone          = Encoding(0)
	EncodingMSSymbol      = Encoding(MakeTag("symb"))
	EncodingUnicode       = Encoding(MakeTag("unic"))
	EncodingSJIS          = Encoding(MakeTag("sjis"))
	EncodingGB2312        = Encoding(MakeTag("gb  "))
	EncodingBig5          = Encoding(MakeTag("big5"))
	EncodingWansung       = Encoding(MakeTag("wans"))
	EncodingJohab         = Encoding(MakeTag("joha"))
	EncodingAdobeStandard = Encoding(MakeTag("ADOB"))
	EncodingAdobeExpert   = Encoding(MakeTag("ADBE"))
	EncodingAdobeCustom   = Encoding(MakeTag("ADBC"))
	EncodingAdobeLatin1   = Encoding(MakeTag("lat1"))
	EncodingOldLatin2     = Encoding(MakeTag("lat2"))
	EncodingAppleRoman    = Encoding(MakeTag("armn"))
)

// Glyph image formats.
var (
	GlyphFormatNone      = GlyphFormat(0)
	GlyphFormatComposite = GlyphFormat(MakeTag("comp"))
	GlyphFormatBitmap    = GlyphFormat(MakeTag("bits"))
	GlyphFormatOutline   = GlyphFormat(MakeTag("outl"))
	GlyphFormatPlotter   = GlyphFormat(MakeTag("plot"))
)

// Face flags.
const (
	FaceFlagScalable        = 1 << 0
	FaceFlagFixedSizes      = 1 << 1
	FaceFlagFixedWidth      = 1 << 2
	FaceFlagSFNT            = 1 << 3
	FaceFlagHorizontal      = 1 << 4
	FaceFlagVertical        = 1 << 5
	FaceFlagKerning         = 1 << 6
	FaceFlagFastGlyphs      = 1 << 7
	FaceFlagMultipleMasters = 1 << 8
	FaceFlagGlyphNames      = 1 << 9
	FaceFlagExternalStream  = 1 << 10
	FaceFlagHinter          = 1 << 11
	FaceFlagCIDKeyed        = 1 << 12
	FaceFlagTricky          = 1 << 13
	FaceFlagColor           = 1 << 14
)

// Style flags.
const (
	StyleFlagItalic = 1 << 0
	StyleFlagBold   = 1 << 1
)

// Kerning modes.
const (
	KerningDefault  = 0 // scaled and grid-fitted
	KerningUnfitted = 1 // scaled but not grid-fitted
	KerningUnscaled = 2 // raw font units
)

// Glyph load flags.
const (
	LoadDefault                  = 0x0
	LoadNoScale                  = 1 << 0
	LoadNoHinting                = 1 << 1
	LoadRender                   = 1 << 2
	LoadNoBitmap                 = 1 << 3
	LoadVerticalLayout           = 1 << 4
	LoadForceAutohint            = 1 << 5
	LoadCropBitmap               = 1 << 6
	LoadPedantic                 = 1 << 7
	LoadIgnoreGlobalAdvanceWidth = 1 << 9
	LoadNoRecurse                = 1 << 10
	LoadIgnoreTransform          = 1 << 11
	LoadMonochrome               = 1 << 12
	LoadLinearDesign             = 1 << 13
	LoadNoAutohint               = 1 << 15
	LoadColor                    = 1 << 20

	// extra flag accepted by the advance retrieval calls
	AdvanceFlagFastOnly = 0x20000000
)

// Render modes.
const (
	RenderModeNormal = 0
	RenderModeLight  = 1
	RenderModeMono   = 2
	RenderModeLCD    = 3
	RenderModeLCDV   = 4
)

// Pixel modes.
const (
	PixelModeNone  = 0
	PixelModeMono  = 1
	PixelModeGray  = 2
	PixelModeGray2 = 3
	PixelModeGray4 = 4
	PixelModeLCD   = 5
	PixelModeLCDV  = 6
)

// Outline flags.
const (
	OutlineNone           = 0x0
	OutlineOwner          = 0x1
	OutlineEvenOddFill    = 0x2
	OutlineReverseFill    = 0x4
	OutlineIgnoreDropouts = 0x8
	OutlineSmartDropouts  = 0x10
	OutlineIncludeStubs   = 0x20
	OutlineHighPrecision  = 0x100
	OutlineSinglePass     = 0x200
)

// Point tags. The low two bits of each outline tag classify the
// control point.
const (
	CurvePointTagMask = 0x3
	CurveTagConic     = 0 // off-curve, quadratic segment
	CurveTagOn        = 1 // on-curve
	CurveTagCubic     = 2 // off-curve, cubic segment
)

// Glyph bounding box modes.
const (
	GlyphBBoxUnscaled  = 0 // 26.6 or font units, no grid fitting
	GlyphBBoxSubpixels = 0
	GlyphBBoxGridfit   = 1
	GlyphBBoxTruncate  = 2 // coordinates in whole pixels
	GlyphBBoxPixels    = 3
)

// Outline orientations.
const (
	OrientationTrueType   = 0
	OrientationPostscript = 1
	OrientationFillRight  = OrientationTrueType
	OrientationFillLeft   = OrientationPostscript
	OrientationNone       = 2
)

// Stroker line joins.
const (
	StrokerLineJoinRound         = 0
	StrokerLineJoinBevel         = 1
	StrokerLineJoinMiterVariable = 2
	StrokerLineJoinMiter         = StrokerLineJoinMiterVariable
	StrokerLineJoinMiterFixed    = 3
)

// Stroker line caps.
const (
	StrokerLineCapButt   = 0
	StrokerLineCapRound  = 1
	StrokerLineCapSquare = 2
)

// Stroker borders.
const (
	StrokerBorderLeft  = 0
	StrokerBorderRight = 1
)
