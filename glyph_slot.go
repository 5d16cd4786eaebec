package ftkit

import "github.com/ftkit/ftkit/fixp"
import "github.com/ftkit/ftkit/internal/ft"

// Metrics of a loaded glyph, in fractional pixels (or font units when
// the glyph was loaded with [LoadNoScale]).
type GlyphMetrics struct {
	Width  float64
	Height float64

	HoriBearingX float64
	HoriBearingY float64
	HoriAdvance  float64

	VertBearingX float64
	VertBearingY float64
	VertAdvance  float64
}

// A view into a face's glyph buffer, holding whatever the most recent
// [Face.LoadGlyph] or [Face.LoadChar] produced. The storage belongs to
// the face and is overwritten by each load, so a slot is never closed
// on its own; it just becomes stale.
type GlyphSlot struct {
	face *Face
	rec  *ft.GlyphSlotRec
}

// The next slot in the face's slot chain, nil at the end. Faces have a
// single slot unless extra ones were requested from the engine.
func (self *GlyphSlot) Next() *GlyphSlot {
	if self.rec.Next == nil { return nil }
	return &GlyphSlot{ face: self.face, rec: self.rec.Next }
}

// The face this slot belongs to.
func (self *GlyphSlot) Face() *Face { return self.face }

func (self *GlyphSlot) Metrics() (GlyphMetrics, error) {
	if err := self.face.guard("GlyphSlot.Metrics"); err != nil { return GlyphMetrics{}, err }
	raw := &self.rec.Metrics
	return GlyphMetrics{
		Width:        fixp.FromFixed(raw.Width, fixp.Shift26_6),
		Height:       fixp.FromFixed(raw.Height, fixp.Shift26_6),
		HoriBearingX: fixp.FromFixed(raw.HoriBearingX, fixp.Shift26_6),
		HoriBearingY: fixp.FromFixed(raw.HoriBearingY, fixp.Shift26_6),
		HoriAdvance:  fixp.FromFixed(raw.HoriAdvance, fixp.Shift26_6),
		VertBearingX: fixp.FromFixed(raw.VertBearingX, fixp.Shift26_6),
		VertBearingY: fixp.FromFixed(raw.VertBearingY, fixp.Shift26_6),
		VertAdvance:  fixp.FromFixed(raw.VertAdvance, fixp.Shift26_6),
	}, nil
}

// Linearly scaled horizontal advance of the loaded glyph, unaffected
// by hinting.
func (self *GlyphSlot) LinearHoriAdvance() (float64, error) {
	if err := self.face.guard("GlyphSlot.LinearHoriAdvance"); err != nil { return 0, err }
	return fixp.FromFixed(self.rec.LinearHoriAdvance, fixp.Shift16_16), nil
}

// Linearly scaled vertical advance of the loaded glyph.
func (self *GlyphSlot) LinearVertAdvance() (float64, error) {
	if err := self.face.guard("GlyphSlot.LinearVertAdvance"); err != nil { return 0, err }
	return fixp.FromFixed(self.rec.LinearVertAdvance, fixp.Shift16_16), nil
}

// Advance of the loaded glyph in fractional pixels, after hinting and
// transformation.
func (self *GlyphSlot) Advance() (fixp.Vector, error) {
	if err := self.face.guard("GlyphSlot.Advance"); err != nil { return fixp.Vector{}, err }
	raw := fixp.RawVector{ X: self.rec.Advance.X, Y: self.rec.Advance.Y }
	return fixp.VectorFromRaw(raw, fixp.Shift26_6), nil
}

// Image format of the loaded glyph.
func (self *GlyphSlot) Format() GlyphFormat {
	if self.face.guard("GlyphSlot.Format") != nil { return FormatNone }
	return GlyphFormat(self.rec.Format)
}

// The loaded glyph's outline. Fails with [FormatError] when the slot
// holds a bitmap. The outline shares the slot's storage; it stays
// valid until the next glyph load and is never released on its own.
func (self *GlyphSlot) Outline() (*Outline, error) {
	if err := self.face.guard("GlyphSlot.Outline"); err != nil { return nil, err }
	format := GlyphFormat(self.rec.Format)
	if format != FormatOutline {
		return nil, formatErr("GlyphSlot.Outline", format, FormatOutline)
	}
	return containedOutline(self.face.lib, &self.rec.Outline, self), nil
}

// The loaded glyph's bitmap. Fails with [FormatError] when the slot
// holds an outline; [GlyphSlot.Render] converts in place.
func (self *GlyphSlot) Bitmap() (*Bitmap, error) {
	if err := self.face.guard("GlyphSlot.Bitmap"); err != nil { return nil, err }
	format := GlyphFormat(self.rec.Format)
	if format != FormatBitmap {
		return nil, formatErr("GlyphSlot.Bitmap", format, FormatBitmap)
	}
	return containedBitmap(self.face.lib, &self.rec.Bitmap, self), nil
}

// Horizontal distance from the pen position to the leftmost pixel of
// the slot's bitmap, in whole pixels. Zero once the face has been
// released.
func (self *GlyphSlot) BitmapLeft() int {
	if self.guard("GlyphSlot.BitmapLeft") != nil { return 0 }
	return int(self.rec.BitmapLeft)
}

// Vertical distance from the baseline to the topmost pixel of the
// slot's bitmap, in whole pixels. Zero once the face has been released.
func (self *GlyphSlot) BitmapTop() int {
	if self.guard("GlyphSlot.BitmapTop") != nil { return 0 }
	return int(self.rec.BitmapTop)
}

// Rasterizes the slot's outline in place, turning the slot into bitmap
// format.
func (self *GlyphSlot) Render(mode RenderMode) error {
	if err := self.face.guard("GlyphSlot.Render"); err != nil { return err }
	return engineErr(self.face.lib.procs.RenderGlyph(self.rec, uint32(mode)))
}

// Makes sure the slot's bitmap buffer belongs to the slot rather than
// aliasing engine caches, so it can be safely mutated.
func (self *GlyphSlot) OwnBitmap() error {
	if err := self.face.guard("GlyphSlot.OwnBitmap"); err != nil { return err }
	return engineErr(self.face.lib.procs.GlyphSlotOwnBitmap(self.rec))
}

// Captures the slot's contents as a standalone [Glyph] that survives
// subsequent glyph loads.
func (self *GlyphSlot) Glyph() (*Glyph, error) {
	if err := self.face.guard("GlyphSlot.Glyph"); err != nil { return nil, err }
	var rec *ft.GlyphRec
	err := engineErr(self.face.lib.procs.GetGlyph(self.rec, &rec))
	if err != nil { return nil, err }
	return &Glyph{ lib: self.face.lib, rec: rec, alive: true }, nil
}
