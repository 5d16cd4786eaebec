package ftkit

import "golang.org/x/image/math/fixed"
import "github.com/srwiley/rasterx"

import "github.com/ftkit/ftkit/fixp"

// A [PathSink] that feeds decomposed segments into a [rasterx.Adder]
// such as a filler or scanner. Call [AdderSink.Done] after
// decomposition to close the final contour.
type AdderSink struct {
	Adder rasterx.Adder
	open  bool
}

func (self *AdderSink) MoveTo(to fixp.Vector) {
	if self.open { self.Adder.Stop(true) }
	self.Adder.Start(point26_6(to))
	self.open = true
}

func (self *AdderSink) LineTo(to fixp.Vector) {
	self.Adder.Line(point26_6(to))
}

func (self *AdderSink) CurveTo(ctrl1, ctrl2, to fixp.Vector) {
	self.Adder.CubeBezier(point26_6(ctrl1), point26_6(ctrl2), point26_6(to))
}

// Closes the last open contour.
func (self *AdderSink) Done() {
	if !self.open { return }
	self.Adder.Stop(true)
	self.open = false
}

func point26_6(vec fixp.Vector) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(fixp.ToFixed(vec.X, fixp.Shift26_6)),
		Y: fixed.Int26_6(fixp.ToFixed(vec.Y, fixp.Shift26_6)),
	}
}
