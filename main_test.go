package ftkit

import "errors"
import "math"
import "testing"

import "github.com/ftkit/ftkit/fixp"
import "github.com/ftkit/ftkit/internal/ft"
import "github.com/ftkit/ftkit/internal/ftsim"

func newTestLibrary(t *testing.T) (*Library, *ftsim.Simulator) {
	t.Helper()
	procs, sim := ftsim.New()
	lib, err := initWith(procs)
	if err != nil { t.Fatalf("library init failed: %v", err) }
	return lib, sim
}

func newTestFace(t *testing.T) (*Library, *Face, *ftsim.Simulator) {
	t.Helper()
	lib, sim := newTestLibrary(t)
	face, err := lib.NewFace(ftsim.DefaultFontPath, 0)
	if err != nil { t.Fatalf("face load failed: %v", err) }
	return lib, face, sim
}

func expectStateError(t *testing.T, err error) {
	t.Helper()
	var stateErr *StateError
	if !errors.As(err, &stateErr) { t.Fatalf("expected StateError, got %v", err) }
}

func expectArgumentError(t *testing.T, err error) {
	t.Helper()
	var argErr *ArgumentError
	if !errors.As(err, &argErr) { t.Fatalf("expected ArgumentError, got %v", err) }
}

func expectUnsupportedError(t *testing.T, err error) {
	t.Helper()
	var unsErr *UnsupportedError
	if !errors.As(err, &unsErr) { t.Fatalf("expected UnsupportedError, got %v", err) }
}

func nearlyEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// engine-side point with both coordinates in 26.6 fixed point
func rawPoint(x, y float64) ft.Vector {
	return ft.Vector{ X: ft.Pos(math.Round(x * 64)), Y: ft.Pos(math.Round(y * 64)) }
}

// path operation kinds recorded by recorderSink
const (
	opMoveTo = iota
	opLineTo
	opCurveTo
)

type pathOp struct {
	kind         int
	ctrl1, ctrl2 fixp.Vector
	to           fixp.Vector
}

// A PathSink that records every primitive it receives.
type recorderSink struct {
	ops []pathOp
}

func (self *recorderSink) MoveTo(to fixp.Vector) {
	self.ops = append(self.ops, pathOp{ kind: opMoveTo, to: to })
}

func (self *recorderSink) LineTo(to fixp.Vector) {
	self.ops = append(self.ops, pathOp{ kind: opLineTo, to: to })
}

func (self *recorderSink) CurveTo(ctrl1, ctrl2, to fixp.Vector) {
	self.ops = append(self.ops, pathOp{ kind: opCurveTo, ctrl1: ctrl1, ctrl2: ctrl2, to: to })
}
