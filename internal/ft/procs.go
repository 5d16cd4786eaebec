package ft

// The engine call table. Every entry mirrors one engine entry point;
// the wrapper layer only ever talks to the engine through one of these
// funcs. In production the table is resolved from the system FreeType
// shared library (see [Load]); tests install a pure Go simulator
// instead.
//
// Numeric in/out parameters keep the engine's own encodings (26.6,
// 16.16 or plain integers); unit conversion is the wrapper layer's job.
type Procs struct {
	// library lifecycle
	InitFreeType   func(lib *Library) Error
	DoneFreeType   func(lib Library) Error
	LibraryVersion func(lib Library, major, minor, patch *int32)

	// faces
	NewFace         func(lib Library, path string, index Long, face **FaceRec) Error
	DoneFace        func(face *FaceRec) Error
	SelectCharmap   func(face *FaceRec, encoding Encoding) Error
	SetCharmap      func(face *FaceRec, charmap *CharMapRec) Error
	GetCharmapIndex func(charmap *CharMapRec) int32
	SetCharSize     func(face *FaceRec, width, height Pos, hres, vres uint32) Error
	SetTransform    func(face *FaceRec, matrix *Matrix, delta *Vector)
	GetFirstChar    func(face *FaceRec, gindex *uint32) ULong
	GetNextChar     func(face *FaceRec, code ULong, gindex *uint32) ULong
	GetCharIndex    func(face *FaceRec, code ULong) uint32
	LoadGlyph       func(face *FaceRec, gindex uint32, flags int32) Error
	LoadChar        func(face *FaceRec, code ULong, flags int32) Error
	GetKerning      func(face *FaceRec, left, right uint32, mode uint32, out *Vector) Error
	GetTrackKerning func(face *FaceRec, pointSize Fixed, degree int32, out *Fixed) Error
	GetAdvance      func(face *FaceRec, gindex uint32, flags int32, out *Fixed) Error
	GetAdvances     func(face *FaceRec, start, count uint32, flags int32, out *Fixed) Error
	GetFontFormat   func(face *FaceRec) string

	// glyph slots
	RenderGlyph        func(slot *GlyphSlotRec, mode uint32) Error
	GetGlyph           func(slot *GlyphSlotRec, out **GlyphRec) Error
	GlyphSlotOwnBitmap func(slot *GlyphSlotRec) Error

	// outlines
	OutlineNew              func(lib Library, numPoints uint32, numContours int32, out *OutlineRec) Error
	OutlineDone             func(lib Library, outline *OutlineRec) Error
	OutlineCopy             func(src, dst *OutlineRec) Error
	OutlineTranslate        func(outline *OutlineRec, dx, dy Pos)
	OutlineTransform        func(outline *OutlineRec, matrix *Matrix)
	OutlineEmbolden         func(outline *OutlineRec, strength Pos) Error
	OutlineEmboldenXY       func(outline *OutlineRec, xStrength, yStrength Pos) Error
	OutlineReverse          func(outline *OutlineRec)
	OutlineCheck            func(outline *OutlineRec) Error
	OutlineGetCBox          func(outline *OutlineRec, out *BBox)
	OutlineGetBBox          func(outline *OutlineRec, out *BBox) Error
	OutlineGetOrientation   func(outline *OutlineRec) uint32
	OutlineGetInsideBorder  func(outline *OutlineRec) uint32
	OutlineGetOutsideBorder func(outline *OutlineRec) uint32
	OutlineGetBitmap        func(lib Library, outline *OutlineRec, bitmap *BitmapRec) Error

	// standalone glyphs
	GlyphCopy         func(src *GlyphRec, out **GlyphRec) Error
	GlyphGetCBox      func(glyph *GlyphRec, mode uint32, out *BBox)
	GlyphToBitmap     func(glyph **GlyphRec, mode uint32, origin *Vector, destroy Bool) Error
	DoneGlyph         func(glyph *GlyphRec)
	GlyphStroke       func(glyph **GlyphRec, stroker Stroker, destroy Bool) Error
	GlyphStrokeBorder func(glyph **GlyphRec, stroker Stroker, inside, destroy Bool) Error

	// bitmaps
	BitmapNew      func(bitmap *BitmapRec)
	BitmapDone     func(lib Library, bitmap *BitmapRec) Error
	BitmapCopy     func(lib Library, src, dst *BitmapRec) Error
	BitmapEmbolden func(lib Library, bitmap *BitmapRec, xStrength, yStrength Pos) Error
	BitmapConvert  func(lib Library, src, dst *BitmapRec, alignment int32) Error

	// strokers
	StrokerNew             func(lib Library, out *Stroker) Error
	StrokerDone            func(stroker Stroker)
	StrokerSet             func(stroker Stroker, radius Fixed, lineCap, lineJoin uint32, miterLimit Fixed)
	StrokerRewind          func(stroker Stroker)
	StrokerParseOutline    func(stroker Stroker, outline *OutlineRec, opened Bool) Error
	StrokerGetBorderCounts func(stroker Stroker, border uint32, points, contours *uint32) Error
	StrokerExportBorder    func(stroker Stroker, border uint32, outline *OutlineRec)
	StrokerGetCounts       func(stroker Stroker, points, contours *uint32) Error
	StrokerExport          func(stroker Stroker, outline *OutlineRec)
}
