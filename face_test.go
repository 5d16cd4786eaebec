package ftkit

import "testing"

import "github.com/ftkit/ftkit/fixp"

func TestFaceAttributes(t *testing.T) {
	lib, face, _ := newTestFace(t)
	defer lib.Close()
	defer face.Close()

	if face.FamilyName() != "Sim Sans" { t.Fatalf("unexpected family %q", face.FamilyName()) }
	if face.StyleName() != "Regular" { t.Fatalf("unexpected style %q", face.StyleName()) }
	if face.NumGlyphs() != 5 { t.Fatalf("unexpected glyph count %d", face.NumGlyphs()) }
	if face.NumFaces() != 1 { t.Fatalf("unexpected face count %d", face.NumFaces()) }
	if face.Index() != 0 { t.Fatalf("unexpected index %d", face.Index()) }
	if !face.Scalable() { t.Fatalf("expected a scalable face") }
	if face.Flags()&FaceKerning == 0 { t.Fatalf("expected the kerning flag") }

	sizes := face.FixedSizes()
	if len(sizes) != 1 { t.Fatalf("expected one strike, got %d", len(sizes)) }
	if sizes[0].Height != 16 || sizes[0].Width != 14 {
		t.Fatalf("unexpected strike %dx%d", sizes[0].Width, sizes[0].Height)
	}
	if !nearlyEqual(sizes[0].Size, 16.0) { t.Fatalf("unexpected strike size %f", sizes[0].Size) }

	format, err := face.FontFormat()
	if err != nil { t.Fatalf("font format failed: %v", err) }
	if format != "TrueType" { t.Fatalf("unexpected format %q", format) }
}

func TestCharmapSelection(t *testing.T) {
	lib, face, _ := newTestFace(t)
	defer lib.Close()
	defer face.Close()

	charmaps := face.Charmaps()
	if len(charmaps) != 2 { t.Fatalf("expected two charmaps, got %d", len(charmaps)) }
	active, ok := face.ActiveCharmap()
	if !ok { t.Fatalf("expected an active charmap") }
	if active.Encoding != EncodingUnicode { t.Fatalf("expected unicode active, got %s", active.Encoding) }
	if face.CharIndex('V') != 3 { t.Fatalf("unexpected index for 'V'") }

	// the apple roman charmap doesn't map 'V'
	if err := face.SelectCharmap(EncodingAppleRoman); err != nil { t.Fatalf("select failed: %v", err) }
	if face.CharIndex('V') != 0 { t.Fatalf("'V' must be unmapped under apple roman") }
	if face.CharIndex('A') != 1 { t.Fatalf("'A' must stay mapped under apple roman") }

	// explicit charmap entries and index queries
	if err := face.SetCharmap(charmaps[0]); err != nil { t.Fatalf("set charmap failed: %v", err) }
	active, _ = face.ActiveCharmap()
	if active.Encoding != EncodingUnicode { t.Fatalf("expected unicode after SetCharmap") }
	if face.CharmapIndex(charmaps[1]) != 1 { t.Fatalf("unexpected charmap index") }
	if err := face.SetCharmap(Charmap{}); err == nil { t.Fatalf("detached charmap must be rejected") }

	if err := face.SelectCharmap(EncodingSJIS); err == nil {
		t.Fatalf("expected an error for a missing encoding")
	}
}

func TestSetCharSizeValidation(t *testing.T) {
	lib, face, _ := newTestFace(t)
	defer lib.Close()
	defer face.Close()

	// both members of a pair unset
	expectArgumentError(t, face.SetCharSize(0, 0, 72, 72))
	expectArgumentError(t, face.SetCharSize(12, 0, 0, 0))

	// missing members default to the given ones
	if err := face.SetCharSize(12, 0, 72, 0); err != nil { t.Fatalf("set size failed: %v", err) }
	metrics, err := face.SizeMetrics()
	if err != nil { t.Fatalf("metrics failed: %v", err) }
	if metrics.XPpem != 12 || metrics.YPpem != 12 {
		t.Fatalf("expected 12x12 ppem, got %dx%d", metrics.XPpem, metrics.YPpem)
	}
	// 12pt at 72dpi over a 1000 upem grid
	if !(metrics.XScale > 0.7679 && metrics.XScale < 0.7681) {
		t.Fatalf("unexpected x scale %f", metrics.XScale)
	}
	if metrics.Ascender <= 0 || metrics.Descender >= 0 {
		t.Fatalf("unexpected metrics %f %f", metrics.Ascender, metrics.Descender)
	}

	if err := face.SetPixelSizes(16, 16); err != nil { t.Fatalf("pixel sizes failed: %v", err) }
	metrics, _ = face.SizeMetrics()
	if metrics.XPpem != 16 { t.Fatalf("expected 16 ppem, got %d", metrics.XPpem) }
}

func TestCharsIteration(t *testing.T) {
	lib, face, _ := newTestFace(t)
	defer lib.Close()
	defer face.Close()

	type pair struct {
		char   rune
		gindex uint32
	}
	expected := []pair{ {' ', 4}, {'A', 1}, {'B', 2}, {'V', 3} }

	collect := func() []pair {
		var pairs []pair
		for char, gindex := range face.Chars() {
			pairs = append(pairs, pair{char, gindex})
		}
		return pairs
	}

	// the sequence is restartable, collect twice
	for round := 0; round < 2; round++ {
		pairs := collect()
		if len(pairs) != len(expected) { t.Fatalf("expected %d pairs, got %d", len(expected), len(pairs)) }
		for i, pair := range pairs {
			if pair != expected[i] { t.Fatalf("pair %d: expected %v, got %v", i, expected[i], pair) }
		}
	}

	// early break must not panic or misbehave
	count := 0
	for range face.Chars() {
		count++
		if count == 2 { break }
	}
	if count != 2 { t.Fatalf("expected early break after 2, got %d", count) }
}

func TestKerningModes(t *testing.T) {
	lib, face, _ := newTestFace(t)
	defer lib.Close()
	defer face.Close()

	// unscaled kerning returns raw font units, no size needed
	kern, err := face.Kerning(1, 3, KernUnscaled)
	if err != nil { t.Fatalf("kerning failed: %v", err) }
	if kern.X != -80 || kern.Y != 0 { t.Fatalf("unexpected raw kerning %v", kern) }

	if err := face.SetCharSize(12, 12, 72, 72); err != nil { t.Fatalf("set size failed: %v", err) }

	// unfitted kerning scales to fractional pixels
	kern, err = face.Kerning(1, 3, KernUnfitted)
	if err != nil { t.Fatalf("kerning failed: %v", err) }
	if !(kern.X < -0.9 && kern.X > -1.0) { t.Fatalf("unexpected unfitted kerning %v", kern) }

	// default kerning is grid-fitted to whole pixels
	kern, err = face.Kerning(1, 3, KernDefault)
	if err != nil { t.Fatalf("kerning failed: %v", err) }
	if !nearlyEqual(kern.X, -1.0) { t.Fatalf("unexpected fitted kerning %v", kern) }

	// unkerned pair
	kern, err = face.Kerning(1, 2, KernUnscaled)
	if err != nil { t.Fatalf("kerning failed: %v", err) }
	if kern.X != 0 { t.Fatalf("expected no kerning, got %v", kern) }

	if _, err := face.Kerning(1, 99, KernUnscaled); err == nil {
		t.Fatalf("expected an error for a bad glyph index")
	}

	track, err := face.TrackKerning(12, -1)
	if err != nil { t.Fatalf("track kerning failed: %v", err) }
	if track != 0 { t.Fatalf("expected zero track kerning, got %f", track) }
}

func TestAdvances(t *testing.T) {
	lib, face, _ := newTestFace(t)
	defer lib.Close()
	defer face.Close()

	// no-scale advances are raw font units as whole numbers
	advance, err := face.Advance(1, LoadNoScale)
	if err != nil { t.Fatalf("advance failed: %v", err) }
	if advance != 800.0 { t.Fatalf("expected 800 font units, got %f", advance) }

	if err := face.SetCharSize(12, 12, 72, 72); err != nil { t.Fatalf("set size failed: %v", err) }
	advance, err = face.Advance(1, LoadDefault)
	if err != nil { t.Fatalf("advance failed: %v", err) }
	if !(advance > 9.0 && advance < 10.0) { t.Fatalf("unexpected scaled advance %f", advance) }

	// the batched call must agree with single queries
	advances, err := face.Advances(0, 5, LoadNoScale)
	if err != nil { t.Fatalf("advances failed: %v", err) }
	expected := []float64{ 500, 800, 820, 780, 300 }
	for i, value := range advances {
		if value != expected[i] { t.Fatalf("advance %d: expected %f, got %f", i, expected[i], value) }
	}

	_, err = face.Advances(0, 0, LoadNoScale)
	expectArgumentError(t, err)
	if _, err := face.Advance(99, LoadNoScale); err == nil {
		t.Fatalf("expected an error for a bad glyph index")
	}
}

func TestSetTransform(t *testing.T) {
	lib, face, _ := newTestFace(t)
	defer lib.Close()
	defer face.Close()

	loadCBox := func() (width float64) {
		if err := face.LoadGlyph(1, LoadNoScale); err != nil { t.Fatalf("load failed: %v", err) }
		outline, err := face.Slot().Outline()
		if err != nil { t.Fatalf("outline failed: %v", err) }
		box, err := outline.CBox()
		if err != nil { t.Fatalf("cbox failed: %v", err) }
		return box.Width()
	}

	base := loadCBox()
	matrix := fixp.Scaling(2, 2)
	if err := face.SetTransform(&matrix, nil); err != nil { t.Fatalf("set transform failed: %v", err) }
	doubled := loadCBox()
	if !nearlyEqual(doubled, 2*base) { t.Fatalf("expected width %f, got %f", 2*base, doubled) }

	// removing the transform restores the untransformed shape
	if err := face.SetTransform(nil, nil); err != nil { t.Fatalf("clear transform failed: %v", err) }
	if got := loadCBox(); !nearlyEqual(got, base) { t.Fatalf("expected width %f, got %f", base, got) }
}

func TestSlotsIteration(t *testing.T) {
	lib, face, _ := newTestFace(t)
	defer lib.Close()
	defer face.Close()

	count := 0
	for slot := range face.Slots() {
		if slot.Face() != face { t.Fatalf("slot points at the wrong face") }
		count++
	}
	if count != 1 { t.Fatalf("expected a single slot, got %d", count) }
}
