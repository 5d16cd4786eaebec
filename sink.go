package ftkit

import "github.com/ftkit/ftkit/fixp"

// The drawing-surface side of outline decomposition. [Outline.Decompose]
// calls MoveTo once at the start of each contour and then LineTo and
// CurveTo in contour order; quadratic segments arrive pre-promoted to
// cubics. The sink owns whatever path or surface it is building.
//
// [AdderSink], [RasterizerSink] and EbitenPathSink adapt common
// rasterization targets.
type PathSink interface {
	MoveTo(to fixp.Vector)
	LineTo(to fixp.Vector)
	CurveTo(ctrl1, ctrl2, to fixp.Vector)
}
