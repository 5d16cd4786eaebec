package ftsim

import "github.com/ftkit/ftkit/internal/ft"

const errInvalidGlyphFormat ft.Error = 0x12

// A standalone glyph object plus the storage behind its record. Exactly
// one of outline and bitmap is set; the registry key is the embedded
// root record, which is the first field of both container layouts.
type simGlyph struct {
	outline *ft.OutlineGlyphRec
	bitmap  *ft.BitmapGlyphRec

	points   []ft.Vector
	tags     []byte
	contours []int16
	buffer   []byte
}

func (self *simGlyph) root() *ft.GlyphRec {
	if self.outline != nil { return &self.outline.Root }
	return &self.bitmap.Root
}

func (self *Simulator) newOutlineGlyph(lib ft.Library, advance ft.Vector, points []ft.Vector, tags []byte, contours []int16) *ft.GlyphRec {
	glyph := &simGlyph{
		outline:  &ft.OutlineGlyphRec{},
		points:   points,
		tags:     tags,
		contours: contours,
	}
	glyph.outline.Root = ft.GlyphRec{
		Library: lib,
		Format:  ft.GlyphFormatOutline,
		Advance: advance,
	}
	glyph.outline.Outline = ft.OutlineRec{
		NContours: int16(len(contours)),
		NPoints:   int16(len(points)),
	}
	if len(points) > 0 {
		glyph.outline.Outline.Points = &glyph.points[0]
		glyph.outline.Outline.Tags = &glyph.tags[0]
	}
	if len(contours) > 0 { glyph.outline.Outline.Contours = &glyph.contours[0] }
	self.glyphs[glyph.root()] = glyph
	return glyph.root()
}

func (self *Simulator) newBitmapGlyph(lib ft.Library, advance ft.Vector, bitmap ft.BitmapRec, buffer []byte, left, top int32) *ft.GlyphRec {
	glyph := &simGlyph{
		bitmap: &ft.BitmapGlyphRec{ Left: left, Top: top, Bitmap: bitmap },
		buffer: buffer,
	}
	glyph.bitmap.Root = ft.GlyphRec{
		Library: lib,
		Format:  ft.GlyphFormatBitmap,
		Advance: advance,
	}
	if len(buffer) > 0 { glyph.bitmap.Bitmap.Buffer = &glyph.buffer[0] }
	self.glyphs[glyph.root()] = glyph
	return glyph.root()
}

func (self *Simulator) getGlyph(slot *ft.GlyphSlotRec, out **ft.GlyphRec) ft.Error {
	if slot == nil { return errInvalidHandle }
	// the slot's 26.6 advance becomes 16.16 on the standalone object
	advance := ft.Vector{ X: slot.Advance.X << 10, Y: slot.Advance.Y << 10 }
	switch slot.Format {
	case ft.GlyphFormatOutline:
		points := append([]ft.Vector(nil), slot.Outline.PointsSlice()...)
		tags := append([]byte(nil), slot.Outline.TagsSlice()...)
		contours := append([]int16(nil), slot.Outline.ContoursSlice()...)
		*out = self.newOutlineGlyph(slot.Library, advance, points, tags, contours)
		return errOk
	case ft.GlyphFormatBitmap:
		buffer := append([]byte(nil), slot.Bitmap.BufferSlice()...)
		*out = self.newBitmapGlyph(slot.Library, advance, slot.Bitmap, buffer, slot.BitmapLeft, slot.BitmapTop)
		return errOk
	default:
		return errInvalidGlyphFormat
	}
}

func (self *Simulator) glyphCopy(src *ft.GlyphRec, out **ft.GlyphRec) ft.Error {
	glyph, found := self.glyphs[src]
	if !found { return errInvalidHandle }
	if glyph.outline != nil {
		points := append([]ft.Vector(nil), glyph.points...)
		tags := append([]byte(nil), glyph.tags...)
		contours := append([]int16(nil), glyph.contours...)
		*out = self.newOutlineGlyph(src.Library, src.Advance, points, tags, contours)
	} else {
		buffer := append([]byte(nil), glyph.buffer...)
		bm := glyph.bitmap
		*out = self.newBitmapGlyph(src.Library, src.Advance, bm.Bitmap, buffer, bm.Left, bm.Top)
	}
	return errOk
}

func (self *Simulator) glyphGetCBox(rec *ft.GlyphRec, mode uint32, out *ft.BBox) {
	glyph, found := self.glyphs[rec]
	if !found { *out = ft.BBox{}; return }

	var box ft.BBox // 26.6
	if glyph.outline != nil {
		box = outlineCBox(&glyph.outline.Outline)
	} else {
		bm := glyph.bitmap
		box = ft.BBox{
			XMin: int64(bm.Left) << 6,
			XMax: int64(bm.Left+bm.Bitmap.Width) << 6,
			YMax: int64(bm.Top) << 6,
			YMin: int64(bm.Top-bm.Bitmap.Rows) << 6,
		}
	}
	switch mode {
	case ft.GlyphBBoxGridfit:
		box.XMin = floor26_6(box.XMin) << 6
		box.YMin = floor26_6(box.YMin) << 6
		box.XMax = ceil26_6(box.XMax) << 6
		box.YMax = ceil26_6(box.YMax) << 6
	case ft.GlyphBBoxTruncate:
		box.XMin = floor26_6(box.XMin)
		box.YMin = floor26_6(box.YMin)
		box.XMax = floor26_6(box.XMax)
		box.YMax = floor26_6(box.YMax)
	case ft.GlyphBBoxPixels:
		box.XMin = floor26_6(box.XMin)
		box.YMin = floor26_6(box.YMin)
		box.XMax = ceil26_6(box.XMax)
		box.YMax = ceil26_6(box.YMax)
	}
	*out = box
}

func (self *Simulator) glyphToBitmap(rec **ft.GlyphRec, mode uint32, origin *ft.Vector, destroy ft.Bool) ft.Error {
	glyph, found := self.glyphs[*rec]
	if !found { return errInvalidHandle }
	if glyph.bitmap != nil { return errOk }

	outline := glyph.outline.Outline
	points := append([]ft.Vector(nil), glyph.points...)
	if origin != nil {
		for i := range points {
			points[i].X += origin.X
			points[i].Y += origin.Y
		}
	}
	if len(points) > 0 { outline.Points = &points[0] }
	bitmap, buffer, left, top := rasterizeOutline(&outline, mode)

	replacement := self.newBitmapGlyph((*rec).Library, (*rec).Advance, bitmap, buffer, left, top)
	if destroy != 0 { delete(self.glyphs, *rec) }
	*rec = replacement
	return errOk
}

func (self *Simulator) doneGlyph(rec *ft.GlyphRec) {
	delete(self.glyphs, rec)
}

func (self *Simulator) glyphStroke(rec **ft.GlyphRec, handle ft.Stroker, destroy ft.Bool) ft.Error {
	glyph, found := self.glyphs[*rec]
	if !found { return errInvalidHandle }
	stroker, found := self.strokers[handle]
	if !found { return errInvalidHandle }
	if glyph.outline == nil { return errInvalidGlyphFormat }

	outer := strokeBorders(&glyph.outline.Outline, stroker.radius)
	inner := strokeBorders(&glyph.outline.Outline, -stroker.radius)
	outer.append(inner)
	replacement := self.newOutlineGlyph((*rec).Library, (*rec).Advance, outer.points, outer.tags, outer.contours)
	if destroy != 0 { delete(self.glyphs, *rec) }
	*rec = replacement
	return errOk
}

func (self *Simulator) glyphStrokeBorder(rec **ft.GlyphRec, handle ft.Stroker, inside, destroy ft.Bool) ft.Error {
	glyph, found := self.glyphs[*rec]
	if !found { return errInvalidHandle }
	stroker, found := self.strokers[handle]
	if !found { return errInvalidHandle }
	if glyph.outline == nil { return errInvalidGlyphFormat }

	radius := stroker.radius
	if inside != 0 { radius = -radius }
	border := strokeBorders(&glyph.outline.Outline, radius)
	replacement := self.newOutlineGlyph((*rec).Library, (*rec).Advance, border.points, border.tags, border.contours)
	if destroy != 0 { delete(self.glyphs, *rec) }
	*rec = replacement
	return errOk
}
