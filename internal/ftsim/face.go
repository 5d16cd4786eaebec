package ftsim

import "sort"
import "unsafe"

import "github.com/ftkit/ftkit/internal/ft"

const (
	errInvalidPixelSize     ft.Error = 0x17
	errInvalidCharmapHandle ft.Error = 0x26
)

// One open synthetic face. The struct keeps every slice that backs a
// raw record pointer alive for as long as the face exists.
type simFace struct {
	lib  *simLibrary
	font *Font
	rec  *ft.FaceRec
	slot *ft.GlyphSlotRec
	size *ft.SizeRec

	familyName []byte
	styleName  []byte
	strikes    []ft.BitmapSize
	cmRecs     []ft.CharMapRec
	cmPtrs     []*ft.CharMapRec

	hasSize   bool
	transform *ft.Matrix
	delta     ft.Vector

	// reusable glyph slot storage, overwritten by each load
	slotPoints   []ft.Vector
	slotTags     []byte
	slotContours []int16
	slotBuffer   []byte

	// per-charmap sorted code points, for first/next iteration
	sortedRunes [][]rune
}

func (self *Simulator) findFace(rec *ft.FaceRec) (*simFace, ft.Error) {
	for _, lib := range self.libs {
		face, found := lib.faces[rec]
		if found { return face, errOk }
	}
	return nil, errInvalidFaceHandle
}

func (self *Simulator) newFace(lib ft.Library, path string, index ft.Long, out **ft.FaceRec) ft.Error {
	simLib, found := self.libs[lib]
	if !found { return errInvalidHandle }
	font, found := self.fonts[path]
	if !found { return errCannotOpen }
	if font.Err != 0 { return font.Err }
	if index != 0 { return errInvalidArgument } // synthetic fonts are single-face

	face := &simFace{
		lib:        simLib,
		font:       font,
		familyName: append([]byte(font.Family), 0),
		styleName:  append([]byte(font.Style), 0),
		strikes:    append([]ft.BitmapSize(nil), font.Strikes...),
	}

	faceFlags := ft.Long(ft.FaceFlagScalable | ft.FaceFlagSFNT | ft.FaceFlagHorizontal)
	if len(font.Kerning) > 0 { faceFlags |= ft.FaceFlagKerning }
	if len(font.Strikes) > 0 { faceFlags |= ft.FaceFlagFixedSizes }

	rec := &ft.FaceRec{
		NumFaces:   1,
		FaceIndex:  index,
		FaceFlags:  faceFlags,
		NumGlyphs:  ft.Long(len(font.Glyphs)),
		FamilyName: &face.familyName[0],
		StyleName:  &face.styleName[0],
		BBox:       font.BBox,
		UnitsPerEM: font.UnitsPerEM,
		Ascender:   font.Ascender,
		Descender:  font.Descender,
		Height:     font.Height,
	}
	if len(face.strikes) > 0 {
		rec.NumFixedSizes = int32(len(face.strikes))
		rec.AvailableSizes = &face.strikes[0]
	}

	face.cmRecs = make([]ft.CharMapRec, len(font.Charmaps))
	face.cmPtrs = make([]*ft.CharMapRec, len(font.Charmaps))
	face.sortedRunes = make([][]rune, len(font.Charmaps))
	for i, cm := range font.Charmaps {
		face.cmRecs[i] = ft.CharMapRec{
			Face:       rec,
			Encoding:   cm.Encoding,
			PlatformID: cm.PlatformID,
			EncodingID: cm.EncodingID,
		}
		face.cmPtrs[i] = &face.cmRecs[i]
		runes := make([]rune, 0, len(cm.Runes))
		for r := range cm.Runes { runes = append(runes, r) }
		sort.Slice(runes, func(a, b int) bool { return runes[a] < runes[b] })
		face.sortedRunes[i] = runes
	}
	if len(face.cmPtrs) > 0 {
		rec.NumCharmaps = int32(len(face.cmPtrs))
		rec.Charmaps = &face.cmPtrs[0]
		rec.Charmap = face.cmPtrs[0]
		for i, cm := range font.Charmaps {
			if cm.Encoding == ft.EncodingUnicode {
				rec.Charmap = face.cmPtrs[i]
				break
			}
		}
	}

	face.slot = &ft.GlyphSlotRec{ Library: lib, Face: rec }
	face.size = &ft.SizeRec{ Face: rec }
	rec.Glyph = face.slot
	rec.Size = face.size

	face.rec = rec
	simLib.faces[rec] = face
	*out = rec
	return errOk
}

func (self *Simulator) doneFace(rec *ft.FaceRec) ft.Error {
	face, sts := self.findFace(rec)
	if sts.IsErr() { return sts }
	delete(face.lib.faces, rec)
	return errOk
}

func (self *Simulator) getFontFormat(rec *ft.FaceRec) string {
	face, sts := self.findFace(rec)
	if sts.IsErr() { return "" }
	return face.font.Format
}

// ---- charmaps ----

func (self *Simulator) charmapIndex(face *simFace, cm *ft.CharMapRec) int {
	for i := range face.cmRecs {
		if &face.cmRecs[i] == cm { return i }
	}
	return -1
}

func (self *Simulator) activeCharmap(face *simFace) int {
	return self.charmapIndex(face, face.rec.Charmap)
}

func (self *Simulator) selectCharmap(rec *ft.FaceRec, encoding ft.Encoding) ft.Error {
	face, sts := self.findFace(rec)
	if sts.IsErr() { return sts }
	for i := range face.cmRecs {
		if face.cmRecs[i].Encoding == encoding {
			rec.Charmap = &face.cmRecs[i]
			return errOk
		}
	}
	return errInvalidArgument
}

func (self *Simulator) setCharmap(rec *ft.FaceRec, cm *ft.CharMapRec) ft.Error {
	face, sts := self.findFace(rec)
	if sts.IsErr() { return sts }
	if self.charmapIndex(face, cm) < 0 { return errInvalidCharmapHandle }
	rec.Charmap = cm
	return errOk
}

func (self *Simulator) getCharmapIndex(cm *ft.CharMapRec) int32 {
	if cm == nil || cm.Face == nil { return -1 }
	face, sts := self.findFace(cm.Face)
	if sts.IsErr() { return -1 }
	return int32(self.charmapIndex(face, cm))
}

func (self *Simulator) getCharIndex(rec *ft.FaceRec, code ft.ULong) uint32 {
	face, sts := self.findFace(rec)
	if sts.IsErr() { return 0 }
	active := self.activeCharmap(face)
	if active < 0 { return 0 }
	return face.font.Charmaps[active].Runes[rune(code)]
}

func (self *Simulator) getFirstChar(rec *ft.FaceRec, gindex *uint32) ft.ULong {
	face, sts := self.findFace(rec)
	if sts.IsErr() { *gindex = 0; return 0 }
	active := self.activeCharmap(face)
	if active < 0 || len(face.sortedRunes[active]) == 0 {
		*gindex = 0
		return 0
	}
	first := face.sortedRunes[active][0]
	*gindex = face.font.Charmaps[active].Runes[first]
	return ft.ULong(first)
}

func (self *Simulator) getNextChar(rec *ft.FaceRec, code ft.ULong, gindex *uint32) ft.ULong {
	face, sts := self.findFace(rec)
	if sts.IsErr() { *gindex = 0; return 0 }
	active := self.activeCharmap(face)
	if active >= 0 {
		for _, r := range face.sortedRunes[active] {
			if ft.ULong(r) > code {
				*gindex = face.font.Charmaps[active].Runes[r]
				return ft.ULong(r)
			}
		}
	}
	*gindex = 0
	return 0
}

// ---- sizing and transforms ----

func (self *Simulator) setCharSize(rec *ft.FaceRec, width, height ft.Pos, hres, vres uint32) ft.Error {
	face, sts := self.findFace(rec)
	if sts.IsErr() { return sts }
	if width <= 0 || height <= 0 || hres == 0 || vres == 0 { return errInvalidPixelSize }

	// 26.6 point sizes to 26.6 pixel sizes at the given resolutions
	scaledW := (width*int64(hres) + 36) / 72
	scaledH := (height*int64(vres) + 36) / 72
	upem := int64(face.font.UnitsPerEM)

	metrics := &face.size.Metrics
	metrics.XPpem = uint16((scaledW + 32) >> 6)
	metrics.YPpem = uint16((scaledH + 32) >> 6)
	metrics.XScale = (scaledW << 16) / upem
	metrics.YScale = (scaledH << 16) / upem
	metrics.Ascender = mulFix(int64(face.font.Ascender), metrics.YScale)
	metrics.Descender = mulFix(int64(face.font.Descender), metrics.YScale)
	metrics.Height = mulFix(int64(face.font.Height), metrics.YScale)
	metrics.MaxAdvance = mulFix(face.rec.BBox.XMax-face.rec.BBox.XMin, metrics.XScale)
	face.hasSize = true
	return errOk
}

func (self *Simulator) setTransform(rec *ft.FaceRec, matrix *ft.Matrix, delta *ft.Vector) {
	face, sts := self.findFace(rec)
	if sts.IsErr() { return }
	if matrix == nil {
		face.transform = nil
	} else {
		m := *matrix
		face.transform = &m
	}
	if delta == nil {
		face.delta = ft.Vector{}
	} else {
		face.delta = *delta
	}
}

// ---- glyph loading ----

func (self *Simulator) loadGlyph(rec *ft.FaceRec, gindex uint32, flags int32) ft.Error {
	face, sts := self.findFace(rec)
	if sts.IsErr() { return sts }
	if int(gindex) >= len(face.font.Glyphs) { return errInvalidGlyphIndex }
	noScale := flags&ft.LoadNoScale != 0
	if !noScale && !face.hasSize { return errInvalidPixelSize }

	glyph := &face.font.Glyphs[gindex]
	face.slotPoints = append(face.slotPoints[:0], glyph.Points...)
	face.slotTags = append(face.slotTags[:0], glyph.Tags...)
	face.slotContours = append(face.slotContours[:0], glyph.Contours...)

	advance := glyph.Advance
	xScale, yScale := int64(1<<16), int64(1<<16)
	if !noScale {
		xScale = face.size.Metrics.XScale
		yScale = face.size.Metrics.YScale
		for i := range face.slotPoints {
			face.slotPoints[i].X = mulFix(face.slotPoints[i].X, xScale)
			face.slotPoints[i].Y = mulFix(face.slotPoints[i].Y, yScale)
		}
		advance = mulFix(advance, xScale)
	}
	if face.transform != nil && flags&ft.LoadIgnoreTransform == 0 {
		m := face.transform
		for i := range face.slotPoints {
			x, y := face.slotPoints[i].X, face.slotPoints[i].Y
			face.slotPoints[i].X = mulFix(x, m.XX) + mulFix(y, m.XY) + face.delta.X
			face.slotPoints[i].Y = mulFix(x, m.YX) + mulFix(y, m.YY) + face.delta.Y
		}
	}

	slot := face.slot
	slot.Format = ft.GlyphFormatOutline
	slot.Outline = ft.OutlineRec{
		NContours: int16(len(face.slotContours)),
		NPoints:   int16(len(face.slotPoints)),
	}
	if len(face.slotPoints) > 0 {
		slot.Outline.Points = &face.slotPoints[0]
		slot.Outline.Tags = &face.slotTags[0]
	}
	if len(face.slotContours) > 0 { slot.Outline.Contours = &face.slotContours[0] }

	box := outlineCBox(&slot.Outline)
	slot.Metrics = ft.GlyphMetrics{
		Width:        box.XMax - box.XMin,
		Height:       box.YMax - box.YMin,
		HoriBearingX: box.XMin,
		HoriBearingY: box.YMax,
		HoriAdvance:  advance,
		VertAdvance:  advance,
	}
	slot.Advance = ft.Vector{ X: advance, Y: 0 }
	if noScale {
		slot.LinearHoriAdvance = glyph.Advance << 16
		slot.LinearVertAdvance = glyph.Advance << 16
	} else {
		slot.LinearHoriAdvance = mulFix(glyph.Advance, xScale) << 10
		slot.LinearVertAdvance = mulFix(glyph.Advance, yScale) << 10
	}
	slot.Bitmap = ft.BitmapRec{}
	slot.BitmapLeft, slot.BitmapTop = 0, 0

	if flags&ft.LoadRender != 0 {
		mode := uint32(ft.RenderModeNormal)
		if flags&ft.LoadMonochrome != 0 { mode = ft.RenderModeMono }
		return self.renderSlot(face, mode)
	}
	return errOk
}

func (self *Simulator) loadChar(rec *ft.FaceRec, code ft.ULong, flags int32) ft.Error {
	gindex := self.getCharIndex(rec, code)
	return self.loadGlyph(rec, gindex, flags)
}

func (self *Simulator) renderGlyph(slot *ft.GlyphSlotRec, mode uint32) ft.Error {
	face, sts := self.findFace(slot.Face)
	if sts.IsErr() { return sts }
	if face.slot != slot { return errInvalidHandle }
	return self.renderSlot(face, mode)
}

// Flat-fill rasterization of the slot outline: the bitmap covers the
// outline's control box and every covered byte is set to full
// coverage. Shape fidelity is not simulated.
func (self *Simulator) renderSlot(face *simFace, mode uint32) ft.Error {
	slot := face.slot
	if slot.Format != ft.GlyphFormatOutline { return errInvalidArgument }
	bitmap, buffer, left, top := rasterizeOutline(&slot.Outline, mode)
	face.slotBuffer = buffer
	slot.Bitmap = bitmap
	slot.BitmapLeft, slot.BitmapTop = left, top
	slot.Format = ft.GlyphFormatBitmap
	return errOk
}

func rasterizeOutline(outline *ft.OutlineRec, mode uint32) (ft.BitmapRec, []byte, int32, int32) {
	if outline.NPoints == 0 {
		return ft.BitmapRec{ PixelMode: ft.PixelModeGray, NumGrays: 256 }, nil, 0, 0
	}
	box := outlineCBox(outline)
	left, right := floor26_6(box.XMin), ceil26_6(box.XMax)
	bottom, top := floor26_6(box.YMin), ceil26_6(box.YMax)
	width, rows := int32(right-left), int32(top-bottom)

	bitmap := ft.BitmapRec{ Rows: rows, Width: width }
	if mode == ft.RenderModeMono {
		bitmap.PixelMode = ft.PixelModeMono
		bitmap.NumGrays = 2
		bitmap.Pitch = (width + 7) / 8
	} else {
		bitmap.PixelMode = ft.PixelModeGray
		bitmap.NumGrays = 256
		bitmap.Pitch = width
	}
	buffer := make([]byte, int(bitmap.Rows)*int(bitmap.Pitch))
	for i := range buffer { buffer[i] = 0xFF }
	if len(buffer) > 0 { bitmap.Buffer = &buffer[0] }
	return bitmap, buffer, int32(left), int32(top)
}

func (self *Simulator) glyphSlotOwnBitmap(slot *ft.GlyphSlotRec) ft.Error {
	// slot bitmaps are always simulator-owned copies already
	return errOk
}

// ---- kerning and advances ----

func (self *Simulator) getKerning(rec *ft.FaceRec, left, right uint32, mode uint32, out *ft.Vector) ft.Error {
	face, sts := self.findFace(rec)
	if sts.IsErr() { return sts }
	if int(left) >= len(face.font.Glyphs) || int(right) >= len(face.font.Glyphs) {
		return errInvalidGlyphIndex
	}
	kern := face.font.Kerning[[2]uint32{left, right}]
	if mode == ft.KerningUnscaled {
		*out = ft.Vector{ X: kern, Y: 0 }
		return errOk
	}
	if !face.hasSize { return errInvalidPixelSize }
	scaled := mulFix(kern, face.size.Metrics.XScale)
	if mode == ft.KerningDefault {
		// grid-fitted: round to whole pixels
		scaled = ((scaled + 32) >> 6) << 6
	}
	*out = ft.Vector{ X: scaled, Y: 0 }
	return errOk
}

func (self *Simulator) getTrackKerning(rec *ft.FaceRec, pointSize ft.Fixed, degree int32, out *ft.Fixed) ft.Error {
	_, sts := self.findFace(rec)
	if sts.IsErr() { return sts }
	*out = 0 // synthetic fonts carry no track kerning data
	return errOk
}

func (self *Simulator) advanceValue(face *simFace, gindex uint32, flags int32) (ft.Fixed, ft.Error) {
	if int(gindex) >= len(face.font.Glyphs) { return 0, errInvalidGlyphIndex }
	advance := face.font.Glyphs[gindex].Advance
	if flags&ft.LoadNoScale != 0 { return advance, errOk }
	if !face.hasSize { return 0, errInvalidPixelSize }
	return mulFix(advance, face.size.Metrics.XScale) << 10, errOk
}

func (self *Simulator) getAdvance(rec *ft.FaceRec, gindex uint32, flags int32, out *ft.Fixed) ft.Error {
	face, sts := self.findFace(rec)
	if sts.IsErr() { return sts }
	value, sts := self.advanceValue(face, gindex, flags)
	if sts.IsErr() { return sts }
	*out = value
	return errOk
}

func (self *Simulator) getAdvances(rec *ft.FaceRec, start, count uint32, flags int32, out *ft.Fixed) ft.Error {
	face, sts := self.findFace(rec)
	if sts.IsErr() { return sts }
	values := unsafe.Slice(out, int(count))
	for i := uint32(0); i < count; i++ {
		value, sts := self.advanceValue(face, start+i, flags)
		if sts.IsErr() { return sts }
		values[i] = value
	}
	return errOk
}
