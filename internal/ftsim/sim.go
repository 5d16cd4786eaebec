package ftsim

import "github.com/ftkit/ftkit/internal/ft"

// Engine status codes used by the simulator.
const (
	errOk                ft.Error = 0x00
	errCannotOpen        ft.Error = 0x01
	errUnknownFormat     ft.Error = 0x02
	errInvalidArgument   ft.Error = 0x06
	errInvalidGlyphIndex ft.Error = 0x10
	errInvalidOutline    ft.Error = 0x14
	errInvalidHandle     ft.Error = 0x20
	errInvalidFaceHandle ft.Error = 0x23
)

// The version triple reported by the simulated engine.
const (
	versionMajor = 2
	versionMinor = 13
	versionPatch = 2
)

// An in-memory engine instance. All engine-allocated storage lives in
// the simulator's registries, which double as GC keepalives for the
// slices behind the raw record pointers.
type Simulator struct {
	fonts      map[string]*Font
	nextHandle uintptr

	libs     map[ft.Library]*simLibrary
	outlines map[*ft.Vector]*outlineStorage
	glyphs   map[*ft.GlyphRec]*simGlyph
	bitmaps  map[*byte][]byte
	strokers map[ft.Stroker]*simStroker
}

type simLibrary struct {
	handle ft.Library
	faces  map[*ft.FaceRec]*simFace
}

// Engine-allocated outline storage, keyed by its point array pointer.
// Capacity is tracked separately from the record's counts because
// border export writes into preallocated space.
type outlineStorage struct {
	points   []ft.Vector
	tags     []byte
	contours []int16
	capPts   int
	capConts int
}

// Creates a fresh simulator with the default synthetic fonts
// registered, and a call table bound to it.
func New() (*ft.Procs, *Simulator) {
	sim := &Simulator{
		fonts:      make(map[string]*Font),
		nextHandle: 1,
		libs:       make(map[ft.Library]*simLibrary),
		outlines:   make(map[*ft.Vector]*outlineStorage),
		glyphs:     make(map[*ft.GlyphRec]*simGlyph),
		bitmaps:    make(map[*byte][]byte),
		strokers:   make(map[ft.Stroker]*simStroker),
	}
	sim.fonts[DefaultFontPath] = defaultFont()
	sim.fonts[BrokenFontPath] = &Font{ Err: errUnknownFormat }
	return sim.procs(), sim
}

// Registers an additional synthetic font under the given path.
func (self *Simulator) Register(path string, font *Font) {
	self.fonts[path] = font
}

// Number of live engine-allocated outlines. Used by tests to verify
// that scratch storage gets released.
func (self *Simulator) LiveOutlines() int { return len(self.outlines) }

// Number of live standalone glyph objects.
func (self *Simulator) LiveGlyphs() int { return len(self.glyphs) }

func (self *Simulator) takeHandle() uintptr {
	handle := self.nextHandle
	self.nextHandle++
	return handle
}

func (self *Simulator) initFreeType(lib *ft.Library) ft.Error {
	handle := ft.Library(self.takeHandle())
	self.libs[handle] = &simLibrary{
		handle: handle,
		faces:  make(map[*ft.FaceRec]*simFace),
	}
	*lib = handle
	return errOk
}

func (self *Simulator) doneFreeType(lib ft.Library) ft.Error {
	simLib, found := self.libs[lib]
	if !found { return errInvalidHandle }
	clear(simLib.faces)
	delete(self.libs, lib)
	return errOk
}

func (self *Simulator) libraryVersion(lib ft.Library, major, minor, patch *int32) {
	*major, *minor, *patch = versionMajor, versionMinor, versionPatch
}

func (self *Simulator) procs() *ft.Procs {
	return &ft.Procs{
		InitFreeType:   self.initFreeType,
		DoneFreeType:   self.doneFreeType,
		LibraryVersion: self.libraryVersion,

		NewFace:         self.newFace,
		DoneFace:        self.doneFace,
		SelectCharmap:   self.selectCharmap,
		SetCharmap:      self.setCharmap,
		GetCharmapIndex: self.getCharmapIndex,
		SetCharSize:     self.setCharSize,
		SetTransform:    self.setTransform,
		GetFirstChar:    self.getFirstChar,
		GetNextChar:     self.getNextChar,
		GetCharIndex:    self.getCharIndex,
		LoadGlyph:       self.loadGlyph,
		LoadChar:        self.loadChar,
		GetKerning:      self.getKerning,
		GetTrackKerning: self.getTrackKerning,
		GetAdvance:      self.getAdvance,
		GetAdvances:     self.getAdvances,
		GetFontFormat:   self.getFontFormat,

		RenderGlyph:        self.renderGlyph,
		GetGlyph:           self.getGlyph,
		GlyphSlotOwnBitmap: self.glyphSlotOwnBitmap,

		OutlineNew:              self.outlineNew,
		OutlineDone:             self.outlineDone,
		OutlineCopy:             self.outlineCopy,
		OutlineTranslate:        self.outlineTranslate,
		OutlineTransform:        self.outlineTransform,
		OutlineEmbolden:         self.outlineEmbolden,
		OutlineEmboldenXY:       self.outlineEmboldenXY,
		OutlineReverse:          self.outlineReverse,
		OutlineCheck:            self.outlineCheck,
		OutlineGetCBox:          self.outlineGetCBox,
		OutlineGetBBox:          self.outlineGetBBox,
		OutlineGetOrientation:   self.outlineGetOrientation,
		OutlineGetInsideBorder:  self.outlineGetInsideBorder,
		OutlineGetOutsideBorder: self.outlineGetOutsideBorder,
		OutlineGetBitmap:        self.outlineGetBitmap,

		GlyphCopy:         self.glyphCopy,
		GlyphGetCBox:      self.glyphGetCBox,
		GlyphToBitmap:     self.glyphToBitmap,
		DoneGlyph:         self.doneGlyph,
		GlyphStroke:       self.glyphStroke,
		GlyphStrokeBorder: self.glyphStrokeBorder,

		BitmapNew:      self.bitmapNew,
		BitmapDone:     self.bitmapDone,
		BitmapCopy:     self.bitmapCopy,
		BitmapEmbolden: self.bitmapEmbolden,
		BitmapConvert:  self.bitmapConvert,

		StrokerNew:             self.strokerNew,
		StrokerDone:            self.strokerDone,
		StrokerSet:             self.strokerSet,
		StrokerRewind:          self.strokerRewind,
		StrokerParseOutline:    self.strokerParseOutline,
		StrokerGetBorderCounts: self.strokerGetBorderCounts,
		StrokerExportBorder:    self.strokerExportBorder,
		StrokerGetCounts:       self.strokerGetCounts,
		StrokerExport:          self.strokerExport,
	}
}

// ---- fixed-point helpers shared across the simulator ----

// 16.16 multiply, rounding to nearest like the engine does.
func mulFix(a, b int64) int64 {
	sign := int64(1)
	if a < 0 { a, sign = -a, -sign }
	if b < 0 { b, sign = -b, -sign }
	return sign * ((a*b + 0x8000) >> 16)
}

func floor26_6(value int64) int64 { return value >> 6 }
func ceil26_6(value int64) int64 { return (value + 63) >> 6 }
