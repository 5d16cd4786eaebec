package ftkit

import "iter"
import "sync"

import "github.com/ftkit/ftkit/fixp"
import "github.com/ftkit/ftkit/internal/ft"

// One character map of a [Face].
type Charmap struct {
	rec        *ft.CharMapRec
	Encoding   Encoding
	PlatformID uint16
	EncodingID uint16
}

// One fixed bitmap strike of a [Face]. Nominal dimensions are in
// pixels, Size and the ppem values in fractional points and pixels.
type FixedSize struct {
	Height int
	Width  int
	Size   float64
	XPpem  float64
	YPpem  float64
}

// Metrics of a face's currently active size, in fractional pixels
// except for the scale factors, which map font units to pixels.
type SizeMetrics struct {
	XPpem      int
	YPpem      int
	XScale     float64
	YScale     float64
	Ascender   float64
	Descender  float64
	Height     float64
	MaxAdvance float64
}

// A loaded font file/index pair. Faces are created through
// [Library.NewFace] or [Library.FindFace] and own their glyph slot,
// active size and charmap list; the library that created them is only
// weakly referenced, so a face closed after its library is a no-op.
//
// The glyph slot is shared mutable storage overwritten by every load,
// so glyph loading is serialized internally; everything else follows
// the engine's single-threaded contract.
type Face struct {
	lib   *Library
	rec   *ft.FaceRec
	alive bool
	mu    sync.Mutex

	// immutable attributes captured at load time
	numFaces   int
	index      int
	flags      FaceFlag
	styleFlags StyleFlag
	numGlyphs  int
	familyName string
	styleName  string
	fixedSizes []FixedSize
	charmaps   []Charmap
}

func newFace(lib *Library, rec *ft.FaceRec) *Face {
	face := &Face{
		lib:        lib,
		rec:        rec,
		alive:      true,
		numFaces:   int(rec.NumFaces),
		index:      int(rec.FaceIndex),
		flags:      FaceFlag(rec.FaceFlags),
		styleFlags: StyleFlag(rec.StyleFlags),
		numGlyphs:  int(rec.NumGlyphs),
		familyName: ft.CString(rec.FamilyName),
		styleName:  ft.CString(rec.StyleName),
	}
	for _, size := range rec.AvailableSizesSlice() {
		face.fixedSizes = append(face.fixedSizes, FixedSize{
			Height: int(size.Height),
			Width:  int(size.Width),
			Size:   fixp.FromFixed(size.Size, fixp.Shift26_6),
			XPpem:  fixp.FromFixed(size.XPpem, fixp.Shift26_6),
			YPpem:  fixp.FromFixed(size.YPpem, fixp.Shift26_6),
		})
	}
	for _, cm := range rec.CharmapsSlice() {
		face.charmaps = append(face.charmaps, Charmap{
			rec:        cm,
			Encoding:   Encoding(cm.Encoding),
			PlatformID: cm.PlatformID,
			EncodingID: cm.EncodingID,
		})
	}
	return face
}

// Releases the face. If the owning library has already been closed the
// engine storage is gone with it and Close is a silent no-op.
func (self *Face) Close() error {
	if !self.alive { return nil }
	self.alive = false
	if !self.lib.alive { return nil }
	return engineErr(self.lib.procs.DoneFace(self.rec))
}

func (self *Face) guard(op string) error {
	if !self.alive { return stateErr(op, errReleased) }
	if !self.lib.alive { return stateErr(op, errOwnerGone) }
	return nil
}

// ---- captured attributes ----

func (self *Face) NumFaces() int         { return self.numFaces }
func (self *Face) Index() int            { return self.index }
func (self *Face) Flags() FaceFlag       { return self.flags }
func (self *Face) StyleFlags() StyleFlag { return self.styleFlags }
func (self *Face) NumGlyphs() int        { return self.numGlyphs }
func (self *Face) FamilyName() string    { return self.familyName }
func (self *Face) StyleName() string     { return self.styleName }

// The face's fixed bitmap strikes, empty for purely scalable fonts.
func (self *Face) FixedSizes() []FixedSize { return self.fixedSizes }

// All character maps of the face.
func (self *Face) Charmaps() []Charmap { return self.charmaps }

// Whether the face has scalable outlines.
func (self *Face) Scalable() bool { return self.flags&FaceScalable != 0 }

// ---- live attributes ----

// Metrics of the currently active size. Only meaningful after a
// successful [Face.SetCharSize].
func (self *Face) SizeMetrics() (SizeMetrics, error) {
	if err := self.guard("Face.SizeMetrics"); err != nil { return SizeMetrics{}, err }
	raw := &self.rec.Size.Metrics
	return SizeMetrics{
		XPpem:      int(raw.XPpem),
		YPpem:      int(raw.YPpem),
		XScale:     fixp.FromFixed(raw.XScale, fixp.Shift16_16),
		YScale:     fixp.FromFixed(raw.YScale, fixp.Shift16_16),
		Ascender:   fixp.FromFixed(raw.Ascender, fixp.Shift26_6),
		Descender:  fixp.FromFixed(raw.Descender, fixp.Shift26_6),
		Height:     fixp.FromFixed(raw.Height, fixp.Shift26_6),
		MaxAdvance: fixp.FromFixed(raw.MaxAdvance, fixp.Shift26_6),
	}, nil
}

// The currently active charmap. The second result is false when the
// face has none selected.
func (self *Face) ActiveCharmap() (Charmap, bool) {
	if self.guard("Face.ActiveCharmap") != nil { return Charmap{}, false }
	for _, cm := range self.charmaps {
		if cm.rec == self.rec.Charmap { return cm, true }
	}
	return Charmap{}, false
}

// ---- charmap selection ----

// Activates the first charmap with the given encoding.
func (self *Face) SelectCharmap(encoding Encoding) error {
	if err := self.guard("Face.SelectCharmap"); err != nil { return err }
	return engineErr(self.lib.procs.SelectCharmap(self.rec, ft.Encoding(encoding)))
}

// Activates an explicit charmap entry, which must be one of this
// face's [Face.Charmaps].
func (self *Face) SetCharmap(charmap Charmap) error {
	if err := self.guard("Face.SetCharmap"); err != nil { return err }
	if charmap.rec == nil { return argErr("Face.SetCharmap", "charmap not attached to a face") }
	return engineErr(self.lib.procs.SetCharmap(self.rec, charmap.rec))
}

// Position of the given charmap in the face's charmap list, -1 for a
// charmap that doesn't belong to this face.
func (self *Face) CharmapIndex(charmap Charmap) int {
	if self.guard("Face.CharmapIndex") != nil { return -1 }
	if charmap.rec == nil { return -1 }
	return int(self.lib.procs.GetCharmapIndex(charmap.rec))
}

// ---- sizing and transforms ----

// Sets the active character size. Width and height are fractional
// points, the resolutions dots per inch. A zero width or height
// defaults to the other one, and likewise for the resolutions; leaving
// both members of either pair unset is an error.
func (self *Face) SetCharSize(width, height float64, hres, vres uint32) error {
	if err := self.guard("Face.SetCharSize"); err != nil { return err }
	if width == 0 && height == 0 {
		return argErr("Face.SetCharSize", "at least one of width and height must be set")
	}
	if hres == 0 && vres == 0 {
		return argErr("Face.SetCharSize", "at least one of the resolutions must be set")
	}
	if width == 0 { width = height }
	if height == 0 { height = width }
	if hres == 0 { hres = vres }
	if vres == 0 { vres = hres }
	status := self.lib.procs.SetCharSize(
		self.rec,
		fixp.ToFixed(width, fixp.Shift26_6), fixp.ToFixed(height, fixp.Shift26_6),
		hres, vres,
	)
	return engineErr(status)
}

// Sets the active size in whole pixels per EM.
func (self *Face) SetPixelSizes(width, height int) error {
	// N points at 72 dpi is exactly N pixels
	return self.SetCharSize(float64(width), float64(height), 72, 72)
}

// Installs a linear transform plus translation applied to every glyph
// loaded afterwards. A nil matrix means identity, a nil delta no
// translation; SetTransform(nil, nil) removes the transform.
func (self *Face) SetTransform(matrix *fixp.Matrix, delta *fixp.Vector) error {
	if err := self.guard("Face.SetTransform"); err != nil { return err }
	var rawMatrix *ft.Matrix
	var rawDelta *ft.Vector
	if matrix != nil {
		raw := matrix.ToRaw()
		rawMatrix = &ft.Matrix{ XX: raw.XX, XY: raw.XY, YX: raw.YX, YY: raw.YY }
	}
	if delta != nil {
		raw := delta.ToRaw(fixp.Shift26_6)
		rawDelta = &ft.Vector{ X: raw.X, Y: raw.Y }
	}
	self.lib.procs.SetTransform(self.rec, rawMatrix, rawDelta)
	return nil
}

// ---- character mapping ----

// Glyph index for a character code under the active charmap, zero for
// unmapped characters.
func (self *Face) CharIndex(char rune) uint32 {
	if self.guard("Face.CharIndex") != nil { return 0 }
	return self.lib.procs.GetCharIndex(self.rec, ft.ULong(char))
}

// Iterates the (character, glyph index) pairs of the active charmap in
// increasing character order. The sequence is restartable and stops
// when the engine reports glyph index zero.
func (self *Face) Chars() iter.Seq2[rune, uint32] {
	return func(yield func(rune, uint32) bool) {
		if self.guard("Face.Chars") != nil { return }
		var gindex uint32
		code := self.lib.procs.GetFirstChar(self.rec, &gindex)
		for gindex != 0 {
			if !yield(rune(code), gindex) { return }
			code = self.lib.procs.GetNextChar(self.rec, code, &gindex)
		}
	}
}

// ---- glyph loading ----

// Loads the glyph at the given index into the face's glyph slot,
// replacing whatever the slot held before.
func (self *Face) LoadGlyph(gindex uint32, flags LoadFlag) error {
	if err := self.guard("Face.LoadGlyph"); err != nil { return err }
	self.mu.Lock()
	defer self.mu.Unlock()
	return engineErr(self.lib.procs.LoadGlyph(self.rec, gindex, int32(flags)))
}

// Loads the glyph mapped to the given character under the active
// charmap. Unmapped characters load the missing glyph.
func (self *Face) LoadChar(char rune, flags LoadFlag) error {
	if err := self.guard("Face.LoadChar"); err != nil { return err }
	self.mu.Lock()
	defer self.mu.Unlock()
	return engineErr(self.lib.procs.LoadChar(self.rec, ft.ULong(char), int32(flags)))
}

// The face's glyph slot, holding the most recently loaded glyph. Nil
// once the face or its library has been released.
func (self *Face) Slot() *GlyphSlot {
	if self.guard("Face.Slot") != nil { return nil }
	return &GlyphSlot{ face: self, rec: self.rec.Glyph }
}

// Iterates the face's chain of glyph slots, first to last. Most faces
// have a single slot.
func (self *Face) Slots() iter.Seq[*GlyphSlot] {
	return func(yield func(*GlyphSlot) bool) {
		for slot := self.Slot(); slot != nil; slot = slot.Next() {
			if !yield(slot) { return }
		}
	}
}

// ---- kerning and advances ----

// Kerning between two glyphs. Scaled modes return fractional pixels;
// [KernUnscaled], or any mode on an unscalable face, returns raw font
// units as whole numbers.
func (self *Face) Kerning(left, right uint32, mode KernMode) (fixp.Vector, error) {
	if err := self.guard("Face.Kerning"); err != nil { return fixp.Vector{}, err }
	var raw ft.Vector
	err := engineErr(self.lib.procs.GetKerning(self.rec, left, right, uint32(mode), &raw))
	if err != nil { return fixp.Vector{}, err }
	if mode == KernUnscaled || !self.Scalable() {
		return fixp.Vector{ X: float64(raw.X), Y: float64(raw.Y) }, nil
	}
	return fixp.VectorFromRaw(fixp.RawVector{ X: raw.X, Y: raw.Y }, fixp.Shift26_6), nil
}

// Track kerning for a point size and track degree, in fractional
// pixels. Most fonts carry no track kerning data and return zero.
func (self *Face) TrackKerning(pointSize float64, degree int) (float64, error) {
	if err := self.guard("Face.TrackKerning"); err != nil { return 0, err }
	var raw ft.Fixed
	status := self.lib.procs.GetTrackKerning(self.rec, fixp.ToFixed(pointSize, fixp.Shift16_16), int32(degree), &raw)
	if err := engineErr(status); err != nil { return 0, err }
	return fixp.FromFixed(raw, fixp.Shift16_16), nil
}

// Advance width of one glyph under the given load flags. With
// [LoadNoScale] the result is raw font units as a whole number,
// otherwise fractional pixels.
func (self *Face) Advance(gindex uint32, flags LoadFlag) (float64, error) {
	if err := self.guard("Face.Advance"); err != nil { return 0, err }
	var raw ft.Fixed
	err := engineErr(self.lib.procs.GetAdvance(self.rec, gindex, int32(flags), &raw))
	if err != nil { return 0, err }
	if flags&LoadNoScale != 0 { return float64(raw), nil }
	return fixp.FromFixed(raw, fixp.Shift16_16), nil
}

// Advance widths of a contiguous glyph index range, with the same unit
// rules as [Face.Advance].
func (self *Face) Advances(start uint32, count int, flags LoadFlag) ([]float64, error) {
	if err := self.guard("Face.Advances"); err != nil { return nil, err }
	if count <= 0 { return nil, argErr("Face.Advances", "count must be positive") }
	raw := make([]ft.Fixed, count)
	status := self.lib.procs.GetAdvances(self.rec, start, uint32(count), int32(flags), &raw[0])
	if err := engineErr(status); err != nil { return nil, err }
	advances := make([]float64, count)
	for i, value := range raw {
		if flags&LoadNoScale != 0 {
			advances[i] = float64(value)
		} else {
			advances[i] = fixp.FromFixed(value, fixp.Shift16_16)
		}
	}
	return advances, nil
}

// The engine's name for the face's font format, like "TrueType".
func (self *Face) FontFormat() (string, error) {
	if err := self.guard("Face.FontFormat"); err != nil { return "", err }
	return self.lib.procs.GetFontFormat(self.rec), nil
}
