package ftkit

import "unsafe"

import "github.com/ftkit/ftkit/fixp"
import "github.com/ftkit/ftkit/internal/ft"

// A standalone, format-tagged glyph object independent of any face.
// Glyphs own their engine storage and must be closed; a glyph whose
// library is already gone closes as a silent no-op.
type Glyph struct {
	lib   *Library
	rec   *ft.GlyphRec
	alive bool
}

func (self *Glyph) guard(op string) error {
	if !self.alive { return stateErr(op, errReleased) }
	if !self.lib.alive { return stateErr(op, errOwnerGone) }
	return nil
}

// Releases the glyph's engine storage. Calling Close twice is a no-op.
func (self *Glyph) Close() error {
	if !self.alive { return nil }
	self.alive = false
	if !self.lib.alive { return nil }
	self.lib.procs.DoneGlyph(self.rec)
	return nil
}

// Image format of the glyph.
func (self *Glyph) Format() GlyphFormat {
	if self.guard("Glyph.Format") != nil { return FormatNone }
	return GlyphFormat(self.rec.Format)
}

// Advance of the glyph in fractional pixels.
func (self *Glyph) Advance() (fixp.Vector, error) {
	if err := self.guard("Glyph.Advance"); err != nil { return fixp.Vector{}, err }
	raw := fixp.RawVector{ X: self.rec.Advance.X, Y: self.rec.Advance.Y }
	return fixp.VectorFromRaw(raw, fixp.Shift16_16), nil
}

// Creates an independent copy of the glyph.
func (self *Glyph) Copy() (*Glyph, error) {
	if err := self.guard("Glyph.Copy"); err != nil { return nil, err }
	var rec *ft.GlyphRec
	err := engineErr(self.lib.procs.GlyphCopy(self.rec, &rec))
	if err != nil { return nil, err }
	return &Glyph{ lib: self.lib, rec: rec, alive: true }, nil
}

// The glyph's control box under the given interpretation mode:
// fractional values for [BBoxUnscaled] and [BBoxGridfit], whole pixels
// for [BBoxTruncate] and [BBoxPixels].
func (self *Glyph) CBox(mode BBoxMode) (fixp.BBox, error) {
	if err := self.guard("Glyph.CBox"); err != nil { return fixp.BBox{}, err }
	var raw ft.BBox
	self.lib.procs.GlyphGetCBox(self.rec, uint32(mode), &raw)
	if mode >= BBoxTruncate { return bboxFromRaw(raw, fixp.ShiftInt), nil }
	return bboxFromRaw(raw, fixp.Shift26_6), nil
}

// Rasterizes the glyph. The origin offset is in fractional pixels.
// With replace set, the glyph's own representation is overwritten in
// place and no new wrapper is returned; otherwise a new independent
// bitmap glyph is returned and this one is left untouched.
func (self *Glyph) ToBitmap(mode RenderMode, origin fixp.Vector, replace bool) (*Glyph, error) {
	if err := self.guard("Glyph.ToBitmap"); err != nil { return nil, err }
	rawOrigin := origin.ToRaw(fixp.Shift26_6)
	ftOrigin := ft.Vector{ X: rawOrigin.X, Y: rawOrigin.Y }
	handle := self.rec
	destroy := ft.Bool(0)
	if replace { destroy = 1 }
	err := engineErr(self.lib.procs.GlyphToBitmap(&handle, uint32(mode), &ftOrigin, destroy))
	if err != nil { return nil, err }
	if replace {
		self.rec = handle
		return nil, nil
	}
	return &Glyph{ lib: self.lib, rec: handle, alive: true }, nil
}

// The glyph's outline. Fails with [FormatError] for bitmap glyphs.
// The outline shares the glyph's storage and is never released on its
// own; it keeps this glyph alive for as long as it is used.
func (self *Glyph) Outline() (*Outline, error) {
	if err := self.guard("Glyph.Outline"); err != nil { return nil, err }
	format := GlyphFormat(self.rec.Format)
	if format != FormatOutline {
		return nil, formatErr("Glyph.Outline", format, FormatOutline)
	}
	container := (*ft.OutlineGlyphRec)(unsafe.Pointer(self.rec))
	return containedOutline(self.lib, &container.Outline, self), nil
}

// The glyph's bitmap. Fails with [FormatError] for outline glyphs.
func (self *Glyph) Bitmap() (*Bitmap, error) {
	if err := self.guard("Glyph.Bitmap"); err != nil { return nil, err }
	format := GlyphFormat(self.rec.Format)
	if format != FormatBitmap {
		return nil, formatErr("Glyph.Bitmap", format, FormatBitmap)
	}
	container := (*ft.BitmapGlyphRec)(unsafe.Pointer(self.rec))
	return containedBitmap(self.lib, &container.Bitmap, self), nil
}

// Horizontal distance from the origin to the leftmost pixel of a
// bitmap glyph, in whole pixels.
func (self *Glyph) Left() (int, error) {
	if err := self.guard("Glyph.Left"); err != nil { return 0, err }
	if GlyphFormat(self.rec.Format) != FormatBitmap {
		return 0, formatErr("Glyph.Left", GlyphFormat(self.rec.Format), FormatBitmap)
	}
	container := (*ft.BitmapGlyphRec)(unsafe.Pointer(self.rec))
	return int(container.Left), nil
}

// Vertical distance from the origin to the topmost pixel of a bitmap
// glyph, in whole pixels.
func (self *Glyph) Top() (int, error) {
	if err := self.guard("Glyph.Top"); err != nil { return 0, err }
	if GlyphFormat(self.rec.Format) != FormatBitmap {
		return 0, formatErr("Glyph.Top", GlyphFormat(self.rec.Format), FormatBitmap)
	}
	container := (*ft.BitmapGlyphRec)(unsafe.Pointer(self.rec))
	return int(container.Top), nil
}

// Replaces or copies the glyph with its stroked version, using the
// stroker's current configuration. Semantics of replace match
// [Glyph.ToBitmap].
func (self *Glyph) Stroke(stroker *Stroker, replace bool) (*Glyph, error) {
	if err := self.guard("Glyph.Stroke"); err != nil { return nil, err }
	if err := stroker.requireConfigured("Glyph.Stroke"); err != nil { return nil, err }
	handle := self.rec
	destroy := ft.Bool(0)
	if replace { destroy = 1 }
	err := engineErr(self.lib.procs.GlyphStroke(&handle, stroker.handle, destroy))
	if err != nil { return nil, err }
	if replace {
		self.rec = handle
		return nil, nil
	}
	return &Glyph{ lib: self.lib, rec: handle, alive: true }, nil
}

// Like [Glyph.Stroke] but keeps only one stroke border: the inside
// border when inside is set, the outside border otherwise.
func (self *Glyph) StrokeBorder(stroker *Stroker, inside, replace bool) (*Glyph, error) {
	if err := self.guard("Glyph.StrokeBorder"); err != nil { return nil, err }
	if err := stroker.requireConfigured("Glyph.StrokeBorder"); err != nil { return nil, err }
	handle := self.rec
	insideFlag := ft.Bool(0)
	if inside { insideFlag = 1 }
	destroy := ft.Bool(0)
	if replace { destroy = 1 }
	err := engineErr(self.lib.procs.GlyphStrokeBorder(&handle, stroker.handle, insideFlag, destroy))
	if err != nil { return nil, err }
	if replace {
		self.rec = handle
		return nil, nil
	}
	return &Glyph{ lib: self.lib, rec: handle, alive: true }, nil
}
