package ftkit

import "github.com/ftkit/ftkit/fixp"
import "github.com/ftkit/ftkit/internal/ft"

// Resources that can vouch for the liveness of storage they contain.
type resource interface {
	guard(op string) error
}

func (self *GlyphSlot) guard(op string) error { return self.face.guard(op) }

// A glyph shape as closed contours of tagged control points. Exactly
// one of two ownership modes applies:
//
//   - contained: the points live inside a [GlyphSlot] or [Glyph]; the
//     outline holds a strong reference to that container and never
//     releases anything itself. Slot-contained outlines go stale on
//     the next glyph load.
//   - independent: storage was allocated against a [Library] through
//     [NewOutline]; [Outline.Close] must release it, unless the
//     library is already gone, in which case Close is a silent no-op.
type Outline struct {
	lib   *Library
	rec   *ft.OutlineRec
	owner resource // nil for independently allocated outlines
	alive bool
}

// Allocates an empty outline with room for the given number of points
// and contours. The caller owns it and must call [Outline.Close].
func NewOutline(lib *Library, numPoints, numContours int) (*Outline, error) {
	if !lib.alive { return nil, stateErr("ftkit.NewOutline", errReleased) }
	if numPoints < 0 || numContours < 0 || numContours > numPoints {
		return nil, argErr("ftkit.NewOutline", "invalid point or contour count")
	}
	rec := &ft.OutlineRec{}
	status := lib.procs.OutlineNew(lib.handle, uint32(numPoints), int32(numContours), rec)
	if err := engineErr(status); err != nil { return nil, err }
	return &Outline{ lib: lib, rec: rec, alive: true }, nil
}

func containedOutline(lib *Library, rec *ft.OutlineRec, owner resource) *Outline {
	return &Outline{ lib: lib, rec: rec, owner: owner, alive: true }
}

func (self *Outline) guard(op string) error {
	if self.owner != nil { return self.owner.guard(op) }
	if !self.alive { return stateErr(op, errReleased) }
	if !self.lib.alive { return stateErr(op, errOwnerGone) }
	return nil
}

// Releases the outline's engine storage. Contained outlines release
// nothing, their storage belongs to the container; independent
// outlines whose library is already closed skip the release silently.
func (self *Outline) Close() error {
	if !self.alive { return nil }
	self.alive = false
	if self.owner != nil { return nil }
	if !self.lib.alive { return nil }
	return engineErr(self.lib.procs.OutlineDone(self.lib.handle, self.rec))
}

// Point and contour counts, zero once the outline or its owner has
// been released.
func (self *Outline) NumPoints() int {
	if self.guard("Outline.NumPoints") != nil { return 0 }
	return int(self.rec.NPoints)
}

func (self *Outline) NumContours() int {
	if self.guard("Outline.NumContours") != nil { return 0 }
	return int(self.rec.NContours)
}

// Copies this outline's data into dst, which must have the same point
// and contour counts.
func (self *Outline) CopyTo(dst *Outline) error {
	if err := self.guard("Outline.CopyTo"); err != nil { return err }
	if err := dst.guard("Outline.CopyTo"); err != nil { return err }
	return engineErr(self.lib.procs.OutlineCopy(self.rec, dst.rec))
}

// Moves every point by the given offset in fractional pixels.
func (self *Outline) Translate(dx, dy float64) error {
	if err := self.guard("Outline.Translate"); err != nil { return err }
	self.lib.procs.OutlineTranslate(
		self.rec, fixp.ToFixed(dx, fixp.Shift26_6), fixp.ToFixed(dy, fixp.Shift26_6),
	)
	return nil
}

// Applies a linear transform to every point.
func (self *Outline) Transform(matrix fixp.Matrix) error {
	if err := self.guard("Outline.Transform"); err != nil { return err }
	raw := matrix.ToRaw()
	self.lib.procs.OutlineTransform(self.rec, &ft.Matrix{
		XX: raw.XX, XY: raw.XY, YX: raw.YX, YY: raw.YY,
	})
	return nil
}

// Thickens the outline uniformly. The strength is in fractional
// pixels; negative values thin instead.
func (self *Outline) Embolden(strength float64) error {
	if err := self.guard("Outline.Embolden"); err != nil { return err }
	status := self.lib.procs.OutlineEmbolden(self.rec, fixp.ToFixed(strength, fixp.Shift26_6))
	return engineErr(status)
}

// Thickens the outline with separate horizontal and vertical
// strengths in fractional pixels.
func (self *Outline) EmboldenXY(xStrength, yStrength float64) error {
	if err := self.guard("Outline.EmboldenXY"); err != nil { return err }
	status := self.lib.procs.OutlineEmboldenXY(
		self.rec,
		fixp.ToFixed(xStrength, fixp.Shift26_6), fixp.ToFixed(yStrength, fixp.Shift26_6),
	)
	return engineErr(status)
}

// Reverses the drawing direction of every contour, toggling the fill
// orientation.
func (self *Outline) Reverse() error {
	if err := self.guard("Outline.Reverse"); err != nil { return err }
	self.lib.procs.OutlineReverse(self.rec)
	return nil
}

// Validates the outline's counts, contour indices and tags.
func (self *Outline) Check() error {
	if err := self.guard("Outline.Check"); err != nil { return err }
	return engineErr(self.lib.procs.OutlineCheck(self.rec))
}

// The outline's control box: the extent of all control points, which
// can overestimate the exact bounding box of curved segments.
// Coordinates in fractional pixels.
func (self *Outline) CBox() (fixp.BBox, error) {
	if err := self.guard("Outline.CBox"); err != nil { return fixp.BBox{}, err }
	var raw ft.BBox
	self.lib.procs.OutlineGetCBox(self.rec, &raw)
	return bboxFromRaw(raw, fixp.Shift26_6), nil
}

// The outline's exact bounding box in fractional pixels. Costlier than
// [Outline.CBox] for outlines with curved segments.
func (self *Outline) BBox() (fixp.BBox, error) {
	if err := self.guard("Outline.BBox"); err != nil { return fixp.BBox{}, err }
	var raw ft.BBox
	err := engineErr(self.lib.procs.OutlineGetBBox(self.rec, &raw))
	if err != nil { return fixp.BBox{}, err }
	return bboxFromRaw(raw, fixp.Shift26_6), nil
}

// The outline's fill orientation.
func (self *Outline) Orientation() (Orientation, error) {
	if err := self.guard("Outline.Orientation"); err != nil { return OrientNone, err }
	return Orientation(self.lib.procs.OutlineGetOrientation(self.rec)), nil
}

// The stroke border that ends up inside the filled area when this
// outline is stroked.
func (self *Outline) InsideBorder() (Border, error) {
	if err := self.guard("Outline.InsideBorder"); err != nil { return 0, err }
	return Border(self.lib.procs.OutlineGetInsideBorder(self.rec)), nil
}

// The stroke border that ends up outside the filled area.
func (self *Outline) OutsideBorder() (Border, error) {
	if err := self.guard("Outline.OutsideBorder"); err != nil { return 0, err }
	return Border(self.lib.procs.OutlineGetOutsideBorder(self.rec)), nil
}

// Rasterizes the outline into a caller-prepared bitmap, which defines
// the target dimensions, pitch and pixel format.
func (self *Outline) Rasterize(bitmap *Bitmap) error {
	if err := self.guard("Outline.Rasterize"); err != nil { return err }
	if err := bitmap.guard("Outline.Rasterize"); err != nil { return err }
	return engineErr(self.lib.procs.OutlineGetBitmap(self.lib.handle, self.rec, bitmap.rec))
}

// Concatenates other onto this outline. Fresh engine storage sized to
// the combined counts is allocated, both operands' point, tag and
// contour arrays are copied verbatim with other's contour end indices
// offset by this outline's point count, and this outline's previous
// storage is released. Only independently allocated outlines can be
// appended to; other may be in either ownership mode and is left
// untouched.
func (self *Outline) Append(other *Outline) error {
	if err := self.guard("Outline.Append"); err != nil { return err }
	if err := other.guard("Outline.Append"); err != nil { return err }
	if self.owner != nil {
		return stateErr("Outline.Append", "cannot take over storage contained in another object")
	}

	numPoints := int(self.rec.NPoints) + int(other.rec.NPoints)
	numContours := int(self.rec.NContours) + int(other.rec.NContours)
	var merged ft.OutlineRec
	status := self.lib.procs.OutlineNew(
		self.lib.handle, uint32(numPoints), int32(numContours), &merged,
	)
	if err := engineErr(status); err != nil { return err }

	points := merged.PointsSlice()
	tags := merged.TagsSlice()
	contours := merged.ContoursSlice()
	split := copy(points, self.rec.PointsSlice())
	copy(points[split:], other.rec.PointsSlice())
	copy(tags, self.rec.TagsSlice())
	copy(tags[split:], other.rec.TagsSlice())
	splitConts := copy(contours, self.rec.ContoursSlice())
	for i, end := range other.rec.ContoursSlice() {
		contours[splitConts+i] = end + int16(split)
	}

	err := engineErr(self.lib.procs.OutlineDone(self.lib.handle, self.rec))
	if err != nil {
		self.lib.procs.OutlineDone(self.lib.handle, &merged)
		return err
	}
	*self.rec = merged
	return nil
}

func bboxFromRaw(raw ft.BBox, shift uint) fixp.BBox {
	return fixp.BBoxFromRaw(fixp.RawBBox{
		XMin: raw.XMin, YMin: raw.YMin, XMax: raw.XMax, YMax: raw.YMax,
	}, shift)
}
