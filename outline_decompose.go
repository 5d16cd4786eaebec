package ftkit

import "github.com/ftkit/ftkit/fixp"

// One control point of a contour.
type ContourPoint struct {
	Pos fixp.Vector
	Tag PointTag
}

// A closed sequence of tagged control points.
type Contour []ContourPoint

// The outline's contours with positions in fractional pixels and each
// point tagged on-curve, quadratic control or cubic control.
func (self *Outline) Contours() ([]Contour, error) {
	if err := self.guard("Outline.Contours"); err != nil { return nil, err }
	points := self.rec.PointsSlice()
	tags := self.rec.TagsSlice()
	contours := make([]Contour, 0, self.rec.NContours)
	start := 0
	for _, end := range self.rec.ContoursSlice() {
		contour := make(Contour, 0, int(end)-start+1)
		for i := start; i <= int(end); i++ {
			contour = append(contour, ContourPoint{
				Pos: fixp.Vector{
					X: fixp.FromFixed(points[i].X, fixp.Shift26_6),
					Y: fixp.FromFixed(points[i].Y, fixp.Shift26_6),
				},
				Tag: PointTag(tags[i] & 0x3),
			})
		}
		contours = append(contours, contour)
		start = int(end) + 1
	}
	return contours, nil
}

// Inclusive end point index of each contour.
func (self *Outline) ContourEnds() ([]int, error) {
	if err := self.guard("Outline.ContourEnds"); err != nil { return nil, err }
	ends := make([]int, 0, self.rec.NContours)
	for _, end := range self.rec.ContoursSlice() {
		ends = append(ends, int(end))
	}
	return ends, nil
}

// Walks the outline and feeds its segments to a [PathSink]. Each
// contour starts with one MoveTo and is closed back onto its starting
// point. Quadratic segments are promoted to cubics exactly, with
// control points at P0 + 2/3(C-P0) and P3 + 2/3(C-P3); consecutive
// quadratic control points imply an on-curve midpoint between them.
func (self *Outline) Decompose(sink PathSink) error {
	if err := self.guard("Outline.Decompose"); err != nil { return err }
	contours, err := self.Contours()
	if err != nil { return err }
	for _, contour := range contours {
		if err := decomposeContour(contour, sink); err != nil { return err }
	}
	return nil
}

func midpoint(a, b fixp.Vector) fixp.Vector {
	return fixp.Vector{ X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2 }
}

func decomposeContour(contour Contour, sink PathSink) error {
	if len(contour) == 0 { return nil }

	// determine the starting point; contours may begin with a
	// quadratic control point, in which case the real start is the
	// trailing on-curve point or an implied midpoint
	limit := len(contour)
	start := contour[0].Pos
	cursor := 0
	switch contour[0].Tag {
	case TagCubicControl:
		return argErr("Outline.Decompose", "contour starts with a cubic control point")
	case TagQuadControl:
		last := contour[limit-1]
		if last.Tag == TagOnCurve {
			start = last.Pos
			limit--
		} else {
			start = midpoint(contour[0].Pos, last.Pos)
		}
		cursor = -1 // reprocess the leading control point
	}
	sink.MoveTo(start)
	current := start

	// exact quadratic to cubic promotion
	conicTo := func(ctrl, to fixp.Vector) {
		c1 := current.Add(ctrl.Sub(current).Mul(2.0 / 3.0))
		c2 := to.Add(ctrl.Sub(to).Mul(2.0 / 3.0))
		sink.CurveTo(c1, c2, to)
		current = to
	}

	closed := false
	for cursor++; cursor < limit; cursor++ {
		point := contour[cursor]
		switch point.Tag {
		case TagOnCurve:
			sink.LineTo(point.Pos)
			current = point.Pos
		case TagQuadControl:
			ctrl := point.Pos
			wrapped := false
			for cursor+1 < limit {
				next := contour[cursor+1]
				cursor++
				if next.Tag == TagOnCurve {
					conicTo(ctrl, next.Pos)
					wrapped = true
					break
				}
				if next.Tag != TagQuadControl {
					return argErr("Outline.Decompose", "cubic control inside a quadratic run")
				}
				conicTo(ctrl, midpoint(ctrl, next.Pos))
				ctrl = next.Pos
			}
			if !wrapped {
				// the contour ends on a control point: curve back
				// to the start and the contour is closed
				conicTo(ctrl, start)
				closed = true
			}
		case TagCubicControl:
			if cursor+1 >= limit || contour[cursor+1].Tag != TagCubicControl {
				return argErr("Outline.Decompose", "unpaired cubic control point")
			}
			c1, c2 := point.Pos, contour[cursor+1].Pos
			cursor += 2
			if cursor < limit {
				to := contour[cursor].Pos
				sink.CurveTo(c1, c2, to)
				current = to
			} else {
				sink.CurveTo(c1, c2, start)
				closed = true
			}
		}
	}
	if !closed && current != start { sink.LineTo(start) }
	return nil
}
