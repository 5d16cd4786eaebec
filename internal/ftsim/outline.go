package ftsim

import "github.com/ftkit/ftkit/internal/ft"

// Control box over the raw point array.
func outlineCBox(outline *ft.OutlineRec) ft.BBox {
	points := outline.PointsSlice()
	if len(points) == 0 { return ft.BBox{} }
	box := ft.BBox{
		XMin: points[0].X, YMin: points[0].Y,
		XMax: points[0].X, YMax: points[0].Y,
	}
	for _, pt := range points[1:] {
		if pt.X < box.XMin { box.XMin = pt.X }
		if pt.X > box.XMax { box.XMax = pt.X }
		if pt.Y < box.YMin { box.YMin = pt.Y }
		if pt.Y > box.YMax { box.YMax = pt.Y }
	}
	return box
}

// Start and end point index (inclusive) of each contour.
func contourRanges(outline *ft.OutlineRec) [][2]int {
	ends := outline.ContoursSlice()
	ranges := make([][2]int, 0, len(ends))
	start := 0
	for _, end := range ends {
		ranges = append(ranges, [2]int{start, int(end)})
		start = int(end) + 1
	}
	return ranges
}

func (self *Simulator) outlineNew(lib ft.Library, numPoints uint32, numContours int32, out *ft.OutlineRec) ft.Error {
	if _, found := self.libs[lib]; !found { return errInvalidHandle }
	if numContours < 0 || int64(numContours) > int64(numPoints) { return errInvalidArgument }
	if numPoints > 0x7FFF { return errInvalidArgument }

	// at least one slot each so the registry key pointers exist even
	// for empty outlines
	storage := &outlineStorage{
		points:   make([]ft.Vector, max(int(numPoints), 1)),
		tags:     make([]byte, max(int(numPoints), 1)),
		contours: make([]int16, max(int(numContours), 1)),
		capPts:   int(numPoints),
		capConts: int(numContours),
	}
	*out = ft.OutlineRec{
		NContours: int16(numContours),
		NPoints:   int16(numPoints),
		Points:    &storage.points[0],
		Tags:      &storage.tags[0],
		Contours:  &storage.contours[0],
		Flags:     ft.OutlineOwner,
	}
	self.outlines[out.Points] = storage
	return errOk
}

func (self *Simulator) outlineDone(lib ft.Library, outline *ft.OutlineRec) ft.Error {
	if _, found := self.libs[lib]; !found { return errInvalidHandle }
	if outline.Flags&ft.OutlineOwner != 0 {
		if _, found := self.outlines[outline.Points]; !found { return errInvalidOutline }
		delete(self.outlines, outline.Points)
	}
	*outline = ft.OutlineRec{}
	return errOk
}

func (self *Simulator) outlineCopy(src, dst *ft.OutlineRec) ft.Error {
	if src == nil || dst == nil { return errInvalidOutline }
	if src.NPoints != dst.NPoints || src.NContours != dst.NContours {
		return errInvalidArgument
	}
	copy(dst.PointsSlice(), src.PointsSlice())
	copy(dst.TagsSlice(), src.TagsSlice())
	copy(dst.ContoursSlice(), src.ContoursSlice())
	dst.Flags = (dst.Flags & ft.OutlineOwner) | (src.Flags &^ ft.OutlineOwner)
	return errOk
}

func (self *Simulator) outlineTranslate(outline *ft.OutlineRec, dx, dy ft.Pos) {
	points := outline.PointsSlice()
	for i := range points {
		points[i].X += dx
		points[i].Y += dy
	}
}

func (self *Simulator) outlineTransform(outline *ft.OutlineRec, matrix *ft.Matrix) {
	if matrix == nil { return }
	points := outline.PointsSlice()
	for i := range points {
		x, y := points[i].X, points[i].Y
		points[i].X = mulFix(x, matrix.XX) + mulFix(y, matrix.XY)
		points[i].Y = mulFix(x, matrix.YX) + mulFix(y, matrix.YY)
	}
}

// Emboldening pushes each point away from the control box center by
// half the strength per axis, which grows the control box by the full
// strength like the engine's algorithm does for convex shapes.
func (self *Simulator) outlineEmboldenXY(outline *ft.OutlineRec, xStrength, yStrength ft.Pos) ft.Error {
	points := outline.PointsSlice()
	if len(points) == 0 { return errOk }
	box := outlineCBox(outline)
	cx := (box.XMin + box.XMax) / 2
	cy := (box.YMin + box.YMax) / 2
	for i := range points {
		if points[i].X >= cx {
			points[i].X += xStrength / 2
		} else {
			points[i].X -= xStrength / 2
		}
		if points[i].Y >= cy {
			points[i].Y += yStrength / 2
		} else {
			points[i].Y -= yStrength / 2
		}
	}
	return errOk
}

func (self *Simulator) outlineEmbolden(outline *ft.OutlineRec, strength ft.Pos) ft.Error {
	return self.outlineEmboldenXY(outline, strength, strength)
}

func (self *Simulator) outlineReverse(outline *ft.OutlineRec) {
	points := outline.PointsSlice()
	tags := outline.TagsSlice()
	for _, span := range contourRanges(outline) {
		for lo, hi := span[0], span[1]; lo < hi; lo, hi = lo+1, hi-1 {
			points[lo], points[hi] = points[hi], points[lo]
			tags[lo], tags[hi] = tags[hi], tags[lo]
		}
	}
	outline.Flags ^= ft.OutlineReverseFill
}

func (self *Simulator) outlineCheck(outline *ft.OutlineRec) ft.Error {
	if outline == nil { return errInvalidOutline }
	if outline.NContours < 0 || outline.NPoints < 0 { return errInvalidArgument }
	if outline.NPoints > 0 && (outline.Points == nil || outline.Tags == nil) {
		return errInvalidArgument
	}
	last := -1
	for _, end := range outline.ContoursSlice() {
		if int(end) <= last || int(end) >= int(outline.NPoints) {
			return errInvalidArgument
		}
		last = int(end)
	}
	if outline.NContours > 0 && last != int(outline.NPoints)-1 {
		return errInvalidArgument
	}
	return errOk
}

func (self *Simulator) outlineGetCBox(outline *ft.OutlineRec, out *ft.BBox) {
	*out = outlineCBox(outline)
}

func (self *Simulator) outlineGetBBox(outline *ft.OutlineRec, out *ft.BBox) ft.Error {
	// the simulator's curves never overshoot their control points
	*out = outlineCBox(outline)
	return errOk
}

// Shoelace sign over all contours. Negative total area means clockwise
// winding in the y-up glyph space, which is the TrueType convention.
func (self *Simulator) outlineGetOrientation(outline *ft.OutlineRec) uint32 {
	points := outline.PointsSlice()
	if len(points) == 0 { return ft.OrientationNone }
	area := int64(0)
	for _, span := range contourRanges(outline) {
		for i := span[0]; i <= span[1]; i++ {
			next := i + 1
			if next > span[1] { next = span[0] }
			area += points[i].X*points[next].Y - points[next].X*points[i].Y
		}
	}
	switch {
	case area < 0: return ft.OrientationTrueType
	case area > 0: return ft.OrientationPostscript
	default: return ft.OrientationNone
	}
}

func (self *Simulator) outlineGetInsideBorder(outline *ft.OutlineRec) uint32 {
	if self.outlineGetOrientation(outline) == ft.OrientationTrueType {
		return ft.StrokerBorderRight
	}
	return ft.StrokerBorderLeft
}

func (self *Simulator) outlineGetOutsideBorder(outline *ft.OutlineRec) uint32 {
	if self.outlineGetOrientation(outline) == ft.OrientationTrueType {
		return ft.StrokerBorderLeft
	}
	return ft.StrokerBorderRight
}

// Renders into a caller-described bitmap. Like the slot renderer this
// fills flat coverage, but the caller controls dimensions and buffer.
func (self *Simulator) outlineGetBitmap(lib ft.Library, outline *ft.OutlineRec, bitmap *ft.BitmapRec) ft.Error {
	if _, found := self.libs[lib]; !found { return errInvalidHandle }
	if bitmap == nil || bitmap.Buffer == nil { return errInvalidArgument }
	if bitmap.Pitch < 0 { return errInvalidArgument }
	if outline.NPoints == 0 { return errOk }
	buffer := bitmap.BufferSlice()
	for i := range buffer { buffer[i] = 0xFF }
	return errOk
}
