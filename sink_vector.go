package ftkit

import "golang.org/x/image/vector"

import "github.com/ftkit/ftkit/fixp"

// A [PathSink] that feeds decomposed segments into an
// [x/image/vector.Rasterizer]. Call [RasterizerSink.Done] after
// decomposition to close the final contour.
//
// The rasterizer's coordinate system has y growing downwards while
// glyph outlines have y growing upwards, so callers typically install
// a flipping transform on the face or outline first.
type RasterizerSink struct {
	Rasterizer *vector.Rasterizer
	open       bool
}

func (self *RasterizerSink) MoveTo(to fixp.Vector) {
	if self.open { self.Rasterizer.ClosePath() }
	self.Rasterizer.MoveTo(float32(to.X), float32(to.Y))
	self.open = true
}

func (self *RasterizerSink) LineTo(to fixp.Vector) {
	self.Rasterizer.LineTo(float32(to.X), float32(to.Y))
}

func (self *RasterizerSink) CurveTo(ctrl1, ctrl2, to fixp.Vector) {
	self.Rasterizer.CubeTo(
		float32(ctrl1.X), float32(ctrl1.Y),
		float32(ctrl2.X), float32(ctrl2.Y),
		float32(to.X), float32(to.Y),
	)
}

// Closes the last open contour.
func (self *RasterizerSink) Done() {
	if !self.open { return }
	self.Rasterizer.ClosePath()
	self.open = false
}
