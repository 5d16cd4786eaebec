package ftkit

import "testing"

func TestStrokerStates(t *testing.T) {
	lib, _ := newTestLibrary(t)
	defer lib.Close()

	outline, err := NewOutline(lib, 3, 1)
	if err != nil { t.Fatalf("allocation failed: %v", err) }
	defer outline.Close()
	fillTriangle(outline, 0)

	stroker, err := NewStroker(lib)
	if err != nil { t.Fatalf("allocation failed: %v", err) }
	defer stroker.Close()

	// parsing requires a configured stroke style
	expectStateError(t, stroker.ParseOutline(outline, false))
	expectArgumentError(t, stroker.Set(-1, CapRound, JoinRound, 4))
	if err := stroker.Set(1, CapRound, JoinRound, 4); err != nil { t.Fatalf("set failed: %v", err) }
	if err := stroker.ParseOutline(outline, false); err != nil { t.Fatalf("parse failed: %v", err) }

	// rewinding drops back to idle until the next Set
	if err := stroker.Rewind(); err != nil { t.Fatalf("rewind failed: %v", err) }
	expectStateError(t, stroker.ParseOutline(outline, false))
	if err := stroker.Set(1, CapButt, JoinMiter, 4); err != nil { t.Fatalf("set failed: %v", err) }
	if err := stroker.ParseOutline(outline, false); err != nil { t.Fatalf("parse failed: %v", err) }

	if stroker.Close() != nil { t.Fatalf("close failed") }
	if stroker.Close() != nil { t.Fatalf("second close must be a no-op") }
	expectStateError(t, stroker.ParseOutline(outline, false))
}

func TestStrokerExportBorder(t *testing.T) {
	lib, sim := newTestLibrary(t)
	defer lib.Close()

	source, err := NewOutline(lib, 3, 1)
	if err != nil { t.Fatalf("allocation failed: %v", err) }
	defer source.Close()
	fillTriangle(source, 0)

	stroker, err := NewStroker(lib)
	if err != nil { t.Fatalf("allocation failed: %v", err) }
	defer stroker.Close()
	if err := stroker.Set(0.5, CapRound, JoinRound, 4); err != nil { t.Fatalf("set failed: %v", err) }
	if err := stroker.ParseOutline(source, false); err != nil { t.Fatalf("parse failed: %v", err) }

	points, contours, err := stroker.BorderCounts(BorderLeft)
	if err != nil { t.Fatalf("counts failed: %v", err) }
	if points != 4 || contours != 1 {
		t.Fatalf("expected 4 points and 1 contour, got %d and %d", points, contours)
	}

	dst, err := NewOutline(lib, 0, 0)
	if err != nil { t.Fatalf("allocation failed: %v", err) }
	defer dst.Close()
	if err := stroker.ExportBorder(BorderLeft, dst); err != nil { t.Fatalf("export failed: %v", err) }
	if dst.NumPoints() != 4 || dst.NumContours() != 1 {
		t.Fatalf("expected 4 points and 1 contour, got %d and %d", dst.NumPoints(), dst.NumContours())
	}

	// scratch storage must not outlive the export
	if sim.LiveOutlines() != 2 { t.Fatalf("expected 2 live outlines, got %d", sim.LiveOutlines()) }
}

func TestStrokerExportBoth(t *testing.T) {
	lib, _ := newTestLibrary(t)
	defer lib.Close()

	source, err := NewOutline(lib, 3, 1)
	if err != nil { t.Fatalf("allocation failed: %v", err) }
	defer source.Close()
	fillTriangle(source, 0)

	stroker, err := NewStroker(lib)
	if err != nil { t.Fatalf("allocation failed: %v", err) }
	defer stroker.Close()
	if err := stroker.Set(0.5, CapButt, JoinBevel, 4); err != nil { t.Fatalf("set failed: %v", err) }
	if err := stroker.ParseOutline(source, false); err != nil { t.Fatalf("parse failed: %v", err) }

	points, contours, err := stroker.Counts()
	if err != nil { t.Fatalf("counts failed: %v", err) }
	if points != 8 || contours != 2 {
		t.Fatalf("expected 8 points and 2 contours, got %d and %d", points, contours)
	}

	dst, err := NewOutline(lib, 0, 0)
	if err != nil { t.Fatalf("allocation failed: %v", err) }
	defer dst.Close()
	if err := stroker.Export(dst); err != nil { t.Fatalf("export failed: %v", err) }
	if dst.NumPoints() != 8 || dst.NumContours() != 2 {
		t.Fatalf("expected 8 points and 2 contours, got %d and %d", dst.NumPoints(), dst.NumContours())
	}
}

func TestGlyphStroke(t *testing.T) {
	lib, face, glyph, sim := newTestGlyph(t)
	defer lib.Close()
	defer face.Close()
	defer glyph.Close()

	stroker, err := NewStroker(lib)
	if err != nil { t.Fatalf("allocation failed: %v", err) }
	defer stroker.Close()

	// stroking through an unconfigured stroker is a state error
	_, err = glyph.Stroke(stroker, false)
	expectStateError(t, err)
	if err := stroker.Set(0.5, CapRound, JoinRound, 4); err != nil { t.Fatalf("set failed: %v", err) }

	stroked, err := glyph.Stroke(stroker, false)
	if err != nil { t.Fatalf("stroke failed: %v", err) }
	defer stroked.Close()
	if sim.LiveGlyphs() != 2 { t.Fatalf("expected 2 live glyphs, got %d", sim.LiveGlyphs()) }

	// a stroked one-contour glyph carries both borders
	outline, err := stroked.Outline()
	if err != nil { t.Fatalf("outline failed: %v", err) }
	if outline.NumPoints() != 8 || outline.NumContours() != 2 {
		t.Fatalf("expected 8 points and 2 contours, got %d and %d",
			outline.NumPoints(), outline.NumContours())
	}

	// a single border keeps one contour, replacing in place
	border, err := glyph.StrokeBorder(stroker, false, true)
	if err != nil { t.Fatalf("stroke border failed: %v", err) }
	if border != nil { t.Fatalf("replacement must not return a new glyph") }
	outline, err = glyph.Outline()
	if err != nil { t.Fatalf("outline failed: %v", err) }
	if outline.NumPoints() != 4 || outline.NumContours() != 1 {
		t.Fatalf("expected 4 points and 1 contour, got %d and %d",
			outline.NumPoints(), outline.NumContours())
	}
	if sim.LiveGlyphs() != 2 { t.Fatalf("expected 2 live glyphs, got %d", sim.LiveGlyphs()) }
}
