//go:build !gtxt

package ftkit

import "github.com/hajimehoshi/ebiten/v2/vector"

import "github.com/ftkit/ftkit/fixp"

// A [PathSink] that feeds decomposed segments into an Ebitengine
// [vector.Path]. Call [EbitenPathSink.Done] after decomposition to
// close the final contour.
//
// Only available in default builds; the gtxt build tag compiles the
// package without Ebitengine.
type EbitenPathSink struct {
	Path *vector.Path
	open bool
}

func (self *EbitenPathSink) MoveTo(to fixp.Vector) {
	if self.open { self.Path.Close() }
	self.Path.MoveTo(float32(to.X), float32(to.Y))
	self.open = true
}

func (self *EbitenPathSink) LineTo(to fixp.Vector) {
	self.Path.LineTo(float32(to.X), float32(to.Y))
}

func (self *EbitenPathSink) CurveTo(ctrl1, ctrl2, to fixp.Vector) {
	self.Path.CubicTo(
		float32(ctrl1.X), float32(ctrl1.Y),
		float32(ctrl2.X), float32(ctrl2.Y),
		float32(to.X), float32(to.Y),
	)
}

// Closes the last open contour.
func (self *EbitenPathSink) Done() {
	if !self.open { return }
	self.Path.Close()
	self.open = false
}
