package ftkit

import "github.com/ftkit/ftkit/fixp"
import "github.com/ftkit/ftkit/internal/ft"

// Generates stroke borders from outlines. A stroker starts idle and
// becomes configured through [Stroker.Set]; parsing an outline
// requires the configured state, and [Stroker.Rewind] drops back to
// idle. The stroker weakly references its library, so closing it
// after the library is a silent no-op.
type Stroker struct {
	lib        *Library
	handle     ft.Stroker
	alive      bool
	configured bool
}

// Creates an idle stroker. The caller must call [Stroker.Close].
func NewStroker(lib *Library) (*Stroker, error) {
	if !lib.alive { return nil, stateErr("ftkit.NewStroker", errReleased) }
	var handle ft.Stroker
	err := engineErr(lib.procs.StrokerNew(lib.handle, &handle))
	if err != nil { return nil, err }
	return &Stroker{ lib: lib, handle: handle, alive: true }, nil
}

func (self *Stroker) guard(op string) error {
	if !self.alive { return stateErr(op, errReleased) }
	if !self.lib.alive { return stateErr(op, errOwnerGone) }
	return nil
}

func (self *Stroker) requireConfigured(op string) error {
	if err := self.guard(op); err != nil { return err }
	if !self.configured { return stateErr(op, "stroker not configured, call Set first") }
	return nil
}

// Releases the stroker. Calling Close twice is a no-op.
func (self *Stroker) Close() error {
	if !self.alive { return nil }
	self.alive = false
	if !self.lib.alive { return nil }
	self.lib.procs.StrokerDone(self.handle)
	return nil
}

// Configures the stroke style and moves the stroker to the configured
// state. The radius is half the stroke width in fractional pixels.
func (self *Stroker) Set(radius float64, lineCap LineCap, lineJoin LineJoin, miterLimit float64) error {
	if err := self.guard("Stroker.Set"); err != nil { return err }
	if radius < 0 { return argErr("Stroker.Set", "negative radius") }
	self.lib.procs.StrokerSet(
		self.handle,
		fixp.ToFixed(radius, fixp.Shift26_6),
		uint32(lineCap), uint32(lineJoin),
		fixp.ToFixed(miterLimit, fixp.Shift16_16),
	)
	self.configured = true
	return nil
}

// Discards parsed geometry and returns to the idle state. The stroke
// style is retained by the engine but [Stroker.Set] must be called
// again before the next parse.
func (self *Stroker) Rewind() error {
	if err := self.guard("Stroker.Rewind"); err != nil { return err }
	self.lib.procs.StrokerRewind(self.handle)
	self.configured = false
	return nil
}

// Builds border geometry for an outline using the configured stroke
// style. Fails with [StateError] on an unconfigured stroker. Open
// outlines are stroked as unclosed paths with caps.
func (self *Stroker) ParseOutline(outline *Outline, opened bool) error {
	if err := self.requireConfigured("Stroker.ParseOutline"); err != nil { return err }
	if err := outline.guard("Stroker.ParseOutline"); err != nil { return err }
	flag := ft.Bool(0)
	if opened { flag = 1 }
	return engineErr(self.lib.procs.StrokerParseOutline(self.handle, outline.rec, flag))
}

// Point and contour counts of one parsed border, the sizes needed for
// its export.
func (self *Stroker) BorderCounts(border Border) (points, contours int, err error) {
	if err := self.guard("Stroker.BorderCounts"); err != nil { return 0, 0, err }
	var numPoints, numContours uint32
	status := self.lib.procs.StrokerGetBorderCounts(
		self.handle, uint32(border), &numPoints, &numContours,
	)
	if err := engineErr(status); err != nil { return 0, 0, err }
	return int(numPoints), int(numContours), nil
}

// Combined point and contour counts of both parsed borders.
func (self *Stroker) Counts() (points, contours int, err error) {
	if err := self.guard("Stroker.Counts"); err != nil { return 0, 0, err }
	var numPoints, numContours uint32
	status := self.lib.procs.StrokerGetCounts(self.handle, &numPoints, &numContours)
	if err := engineErr(status); err != nil { return 0, 0, err }
	return int(numPoints), int(numContours), nil
}

// Exports one parsed border into dst. The border is first exported
// into fresh scratch storage sized exactly to its counts, then merged
// into dst through [Outline.Append], and the scratch storage is
// released either way.
func (self *Stroker) ExportBorder(border Border, dst *Outline) error {
	points, contours, err := self.BorderCounts(border)
	if err != nil { return err }
	return self.exportInto(dst, points, contours, func(scratch *ft.OutlineRec) {
		self.lib.procs.StrokerExportBorder(self.handle, uint32(border), scratch)
	})
}

// Exports both parsed borders into dst, with the same scratch protocol
// as [Stroker.ExportBorder].
func (self *Stroker) Export(dst *Outline) error {
	points, contours, err := self.Counts()
	if err != nil { return err }
	return self.exportInto(dst, points, contours, func(scratch *ft.OutlineRec) {
		self.lib.procs.StrokerExport(self.handle, scratch)
	})
}

// The engine appends exported geometry at the scratch outline's
// current counts, so they are zeroed after allocation and grow back to
// capacity during the export call.
func (self *Stroker) exportInto(dst *Outline, points, contours int, export func(*ft.OutlineRec)) error {
	if err := dst.guard("Stroker.Export"); err != nil { return err }
	scratch, err := NewOutline(self.lib, points, contours)
	if err != nil { return err }
	scratch.rec.NPoints = 0
	scratch.rec.NContours = 0
	export(scratch.rec)
	mergeErr := dst.Append(scratch)
	closeErr := scratch.Close()
	if mergeErr != nil { return mergeErr }
	return closeErr
}
