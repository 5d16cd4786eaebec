package ftkit

import "errors"
import "testing"

import "github.com/ftkit/ftkit/fixp"
import "github.com/ftkit/ftkit/internal/ftsim"

// loads 'A' at 12 pixels and captures it as a standalone glyph
func newTestGlyph(t *testing.T) (*Library, *Face, *Glyph, *ftsim.Simulator) {
	t.Helper()
	lib, face, sim := newTestFace(t)
	if err := face.SetPixelSizes(12, 12); err != nil { t.Fatalf("set size failed: %v", err) }
	if err := face.LoadChar('A', LoadDefault); err != nil { t.Fatalf("load failed: %v", err) }
	glyph, err := face.Slot().Glyph()
	if err != nil { t.Fatalf("capture failed: %v", err) }
	return lib, face, glyph, sim
}

func TestGlyphCapture(t *testing.T) {
	lib, face, glyph, sim := newTestGlyph(t)
	defer lib.Close()
	defer face.Close()

	// the captured glyph is independent of later slot loads
	if err := face.LoadChar('B', LoadDefault); err != nil { t.Fatalf("load failed: %v", err) }
	if glyph.Format() != FormatOutline { t.Fatalf("expected outline format, got %s", glyph.Format()) }
	advance, err := glyph.Advance()
	if err != nil { t.Fatalf("advance failed: %v", err) }
	if !nearlyEqual(advance.X, 9.59375) { t.Fatalf("unexpected advance %f", advance.X) }

	clone, err := glyph.Copy()
	if err != nil { t.Fatalf("copy failed: %v", err) }
	if sim.LiveGlyphs() != 2 { t.Fatalf("expected 2 live glyphs, got %d", sim.LiveGlyphs()) }

	// closing the original must not disturb the copy
	if err := glyph.Close(); err != nil { t.Fatalf("close failed: %v", err) }
	if glyph.Close() != nil { t.Fatalf("second close must be a no-op") }
	_, err = glyph.Advance()
	expectStateError(t, err)
	if clone.Format() != FormatOutline { t.Fatalf("copy lost its format") }
	clone.Close()
	if sim.LiveGlyphs() != 0 { t.Fatalf("expected no live glyphs, got %d", sim.LiveGlyphs()) }
}

func TestGlyphCBoxModes(t *testing.T) {
	lib, face, glyph, _ := newTestGlyph(t)
	defer lib.Close()
	defer face.Close()
	defer glyph.Close()

	// fractional pixels, exact
	box, err := glyph.CBox(BBoxUnscaled)
	if err != nil { t.Fatalf("cbox failed: %v", err) }
	if !nearlyEqual(box.XMin, 77.0/64) || !nearlyEqual(box.XMax, 538.0/64) {
		t.Fatalf("unexpected unscaled box %s", box)
	}
	if !nearlyEqual(box.YMin, 0) || !nearlyEqual(box.YMax, 614.0/64) {
		t.Fatalf("unexpected unscaled box %s", box)
	}

	// fractional pixels, rounded outwards to the pixel grid
	box, err = glyph.CBox(BBoxGridfit)
	if err != nil { t.Fatalf("cbox failed: %v", err) }
	if !nearlyEqual(box.XMin, 1) || !nearlyEqual(box.XMax, 9) ||
		!nearlyEqual(box.YMin, 0) || !nearlyEqual(box.YMax, 10) {
		t.Fatalf("unexpected gridfit box %s", box)
	}

	// whole pixels, fractional parts dropped on every coordinate
	box, err = glyph.CBox(BBoxTruncate)
	if err != nil { t.Fatalf("cbox failed: %v", err) }
	if !nearlyEqual(box.XMin, 1) || !nearlyEqual(box.XMax, 8) ||
		!nearlyEqual(box.YMin, 0) || !nearlyEqual(box.YMax, 9) {
		t.Fatalf("unexpected truncated box %s", box)
	}

	// whole pixels, rounded outwards
	box, err = glyph.CBox(BBoxPixels)
	if err != nil { t.Fatalf("cbox failed: %v", err) }
	if !nearlyEqual(box.XMin, 1) || !nearlyEqual(box.XMax, 9) ||
		!nearlyEqual(box.YMin, 0) || !nearlyEqual(box.YMax, 10) {
		t.Fatalf("unexpected pixel box %s", box)
	}
}

func TestGlyphToBitmapCopy(t *testing.T) {
	lib, face, glyph, sim := newTestGlyph(t)
	defer lib.Close()
	defer face.Close()
	defer glyph.Close()

	rendered, err := glyph.ToBitmap(RenderNormal, fixp.Vector{}, false)
	if err != nil { t.Fatalf("to bitmap failed: %v", err) }
	defer rendered.Close()

	// the original keeps its outline, the result is a new glyph
	if glyph.Format() != FormatOutline { t.Fatalf("original glyph was modified") }
	if rendered.Format() != FormatBitmap { t.Fatalf("expected bitmap format, got %s", rendered.Format()) }
	if sim.LiveGlyphs() != 2 { t.Fatalf("expected 2 live glyphs, got %d", sim.LiveGlyphs()) }

	bitmap, err := rendered.Bitmap()
	if err != nil { t.Fatalf("bitmap failed: %v", err) }
	if bitmap.Width() != 8 || bitmap.Rows() != 10 {
		t.Fatalf("expected 8x10 pixels, got %dx%d", bitmap.Width(), bitmap.Rows())
	}
	left, err := rendered.Left()
	if err != nil { t.Fatalf("left failed: %v", err) }
	top, err := rendered.Top()
	if err != nil { t.Fatalf("top failed: %v", err) }
	if left != 1 || top != 10 { t.Fatalf("unexpected placement (%d, %d)", left, top) }

	// format mismatches on either side
	var fmtErr *FormatError
	_, err = rendered.Outline()
	if !errors.As(err, &fmtErr) { t.Fatalf("expected FormatError, got %v", err) }
	_, err = glyph.Bitmap()
	if !errors.As(err, &fmtErr) { t.Fatalf("expected FormatError, got %v", err) }
	_, err = glyph.Left()
	if !errors.As(err, &fmtErr) { t.Fatalf("expected FormatError, got %v", err) }
}

func TestGlyphToBitmapReplace(t *testing.T) {
	lib, face, glyph, sim := newTestGlyph(t)
	defer lib.Close()
	defer face.Close()
	defer glyph.Close()

	rendered, err := glyph.ToBitmap(RenderNormal, fixp.Vector{}, true)
	if err != nil { t.Fatalf("to bitmap failed: %v", err) }
	if rendered != nil { t.Fatalf("replacement must not return a new glyph") }
	if glyph.Format() != FormatBitmap { t.Fatalf("expected bitmap format, got %s", glyph.Format()) }
	if sim.LiveGlyphs() != 1 { t.Fatalf("expected 1 live glyph, got %d", sim.LiveGlyphs()) }
}
