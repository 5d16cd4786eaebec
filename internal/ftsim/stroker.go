package ftsim

import "github.com/ftkit/ftkit/internal/ft"

// Stroker state: parameters from the last Set call plus a private copy
// of the last parsed outline.
type simStroker struct {
	radius     ft.Fixed
	lineCap    uint32
	lineJoin   uint32
	miterLimit ft.Fixed

	points   []ft.Vector
	tags     []byte
	contours []int16
	parsed   bool
}

// A border outline under construction.
type borderOutline struct {
	points   []ft.Vector
	tags     []byte
	contours []int16
}

func (self *borderOutline) append(other borderOutline) {
	base := int16(len(self.points))
	self.points = append(self.points, other.points...)
	self.tags = append(self.tags, other.tags...)
	for _, end := range other.contours {
		self.contours = append(self.contours, end+base)
	}
}

// One stroke border per source contour: the contour's control box
// offset outward by the (possibly negative) radius, as a rectangle of
// four on-curve points. A rectangle that collapses degenerates to its
// center. Shape fidelity is not simulated; counts and growth are.
func strokeBorders(outline *ft.OutlineRec, radius ft.Fixed) borderOutline {
	var border borderOutline
	points := outline.PointsSlice()
	for _, span := range contourRanges(outline) {
		sub := ft.OutlineRec{
			NPoints: int16(span[1] - span[0] + 1),
			Points:  &points[span[0]],
		}
		box := outlineCBox(&sub)
		box.XMin -= radius
		box.YMin -= radius
		box.XMax += radius
		box.YMax += radius
		if box.XMin > box.XMax {
			mid := (box.XMin + box.XMax) / 2
			box.XMin, box.XMax = mid, mid
		}
		if box.YMin > box.YMax {
			mid := (box.YMin + box.YMax) / 2
			box.YMin, box.YMax = mid, mid
		}
		border.points = append(border.points,
			ft.Vector{X: box.XMin, Y: box.YMin},
			ft.Vector{X: box.XMax, Y: box.YMin},
			ft.Vector{X: box.XMax, Y: box.YMax},
			ft.Vector{X: box.XMin, Y: box.YMax},
		)
		border.tags = append(border.tags,
			ft.CurveTagOn, ft.CurveTagOn, ft.CurveTagOn, ft.CurveTagOn)
		border.contours = append(border.contours, int16(len(border.points)-1))
	}
	return border
}

func (self *simStroker) border(borderID uint32) borderOutline {
	source := ft.OutlineRec{
		NContours: int16(len(self.contours)),
		NPoints:   int16(len(self.points)),
	}
	if len(self.points) > 0 {
		source.Points = &self.points[0]
		source.Tags = &self.tags[0]
	}
	if len(self.contours) > 0 { source.Contours = &self.contours[0] }

	radius := self.radius
	if borderID == ft.StrokerBorderRight { radius = -radius }
	return strokeBorders(&source, radius)
}

func (self *Simulator) strokerNew(lib ft.Library, out *ft.Stroker) ft.Error {
	if _, found := self.libs[lib]; !found { return errInvalidHandle }
	handle := ft.Stroker(self.takeHandle())
	self.strokers[handle] = &simStroker{}
	*out = handle
	return errOk
}

func (self *Simulator) strokerDone(handle ft.Stroker) {
	delete(self.strokers, handle)
}

func (self *Simulator) strokerSet(handle ft.Stroker, radius ft.Fixed, lineCap, lineJoin uint32, miterLimit ft.Fixed) {
	stroker, found := self.strokers[handle]
	if !found { return }
	stroker.radius = radius
	stroker.lineCap = lineCap
	stroker.lineJoin = lineJoin
	stroker.miterLimit = miterLimit
}

func (self *Simulator) strokerRewind(handle ft.Stroker) {
	stroker, found := self.strokers[handle]
	if !found { return }
	stroker.points = stroker.points[:0]
	stroker.tags = stroker.tags[:0]
	stroker.contours = stroker.contours[:0]
	stroker.parsed = false
}

func (self *Simulator) strokerParseOutline(handle ft.Stroker, outline *ft.OutlineRec, opened ft.Bool) ft.Error {
	stroker, found := self.strokers[handle]
	if !found { return errInvalidHandle }
	if sts := self.outlineCheck(outline); sts.IsErr() { return sts }
	stroker.points = append(stroker.points[:0], outline.PointsSlice()...)
	stroker.tags = append(stroker.tags[:0], outline.TagsSlice()...)
	stroker.contours = append(stroker.contours[:0], outline.ContoursSlice()...)
	stroker.parsed = true
	return errOk
}

func (self *Simulator) strokerGetBorderCounts(handle ft.Stroker, borderID uint32, points, contours *uint32) ft.Error {
	stroker, found := self.strokers[handle]
	if !found { return errInvalidHandle }
	if !stroker.parsed { return errInvalidArgument }
	border := stroker.border(borderID)
	*points = uint32(len(border.points))
	*contours = uint32(len(border.contours))
	return errOk
}

func (self *Simulator) strokerGetCounts(handle ft.Stroker, points, contours *uint32) ft.Error {
	stroker, found := self.strokers[handle]
	if !found { return errInvalidHandle }
	if !stroker.parsed { return errInvalidArgument }
	left := stroker.border(ft.StrokerBorderLeft)
	right := stroker.border(ft.StrokerBorderRight)
	*points = uint32(len(left.points) + len(right.points))
	*contours = uint32(len(left.contours) + len(right.contours))
	return errOk
}

// Appends the border at the outline's current counts, the way the
// engine writes past NPoints into storage the caller sized up front.
func (self *Simulator) exportInto(border borderOutline, outline *ft.OutlineRec) {
	storage, found := self.outlines[outline.Points]
	if !found { return }
	basePts := int(outline.NPoints)
	baseConts := int(outline.NContours)
	if basePts+len(border.points) > storage.capPts { return }
	if baseConts+len(border.contours) > storage.capConts { return }
	copy(storage.points[basePts:], border.points)
	copy(storage.tags[basePts:], border.tags)
	for i, end := range border.contours {
		storage.contours[baseConts+i] = end + int16(basePts)
	}
	outline.NPoints = int16(basePts + len(border.points))
	outline.NContours = int16(baseConts + len(border.contours))
}

func (self *Simulator) strokerExportBorder(handle ft.Stroker, borderID uint32, outline *ft.OutlineRec) {
	stroker, found := self.strokers[handle]
	if !found || !stroker.parsed { return }
	self.exportInto(stroker.border(borderID), outline)
}

func (self *Simulator) strokerExport(handle ft.Stroker, outline *ft.OutlineRec) {
	stroker, found := self.strokers[handle]
	if !found || !stroker.parsed { return }
	left := stroker.border(ft.StrokerBorderLeft)
	left.append(stroker.border(ft.StrokerBorderRight))
	self.exportInto(left, outline)
}
