package ftkit

import "errors"
import "testing"

import "github.com/ftkit/ftkit/internal/ftsim"

func TestLibraryLifecycle(t *testing.T) {
	lib, _ := newTestLibrary(t)
	major, minor, patch := lib.Version()
	if major != 2 || minor != 13 || patch != 2 {
		t.Fatalf("unexpected version %d.%d.%d", major, minor, patch)
	}

	if err := lib.Close(); err != nil { t.Fatalf("close failed: %v", err) }
	if err := lib.Close(); err != nil { t.Fatalf("double close must be a no-op, got %v", err) }

	// operations on a closed library fail fast
	_, err := lib.NewFace(ftsim.DefaultFontPath, 0)
	expectStateError(t, err)
	_, err = NewOutline(lib, 4, 1)
	expectStateError(t, err)
	_, err = NewStroker(lib)
	expectStateError(t, err)
}

func TestNewFaceErrors(t *testing.T) {
	lib, _ := newTestLibrary(t)
	defer lib.Close()

	_, err := lib.NewFace("no/such/file.ttf", 0)
	var engineErr *EngineError
	if !errors.As(err, &engineErr) { t.Fatalf("expected EngineError, got %v", err) }
	if engineErr.Code != 0x01 { t.Fatalf("expected 'cannot open' code, got 0x%02X", engineErr.Code) }
	if engineErr.Message() == "" { t.Fatalf("expected a message for code 0x%02X", engineErr.Code) }

	_, err = lib.NewFace(ftsim.BrokenFontPath, 0)
	if !errors.As(err, &engineErr) { t.Fatalf("expected EngineError, got %v", err) }
	if engineErr.Code != 0x02 { t.Fatalf("expected 'unknown format' code, got 0x%02X", engineErr.Code) }

	_, err = lib.NewFace(ftsim.DefaultFontPath, 7)
	if !errors.As(err, &engineErr) { t.Fatalf("expected EngineError for bad index, got %v", err) }
}

func TestTeardownOrderTolerance(t *testing.T) {
	lib, face, _ := newTestFace(t)

	// closing resources after their library must be a silent no-op,
	// teardown ordering is not guaranteed to follow creation order
	if err := lib.Close(); err != nil { t.Fatalf("close failed: %v", err) }
	if err := face.Close(); err != nil {
		t.Fatalf("face close after library close must be silent, got %v", err)
	}

	// but data access on the orphaned face is an error
	lib2, face2, _ := newTestFace(t)
	if err := lib2.Close(); err != nil { t.Fatalf("close failed: %v", err) }
	_, err := face2.SizeMetrics()
	expectStateError(t, err)
	_, err = face2.FontFormat()
	expectStateError(t, err)
}

func TestFaceCloseReleases(t *testing.T) {
	lib, face, _ := newTestFace(t)
	defer lib.Close()
	if err := face.Close(); err != nil { t.Fatalf("close failed: %v", err) }
	if err := face.Close(); err != nil { t.Fatalf("double close must be a no-op, got %v", err) }
	err := face.LoadGlyph(1, LoadNoScale)
	expectStateError(t, err)
}

func TestReleasedAccessorValues(t *testing.T) {
	lib, face, _ := newTestFace(t)
	defer lib.Close()

	if err := face.SetPixelSizes(12, 12); err != nil { t.Fatalf("set size failed: %v", err) }
	if err := face.LoadChar('A', LoadDefault|LoadRender); err != nil { t.Fatalf("load failed: %v", err) }
	slot := face.Slot()
	if slot == nil { t.Fatalf("expected a live slot") }
	bitmap, err := slot.Bitmap()
	if err != nil { t.Fatalf("bitmap failed: %v", err) }
	if slot.BitmapLeft() != 1 || bitmap.Rows() != 10 { t.Fatalf("unexpected live values") }

	// data accessors on views of a released face stop exposing the
	// engine record instead of reading freed storage
	if err := face.Close(); err != nil { t.Fatalf("close failed: %v", err) }
	if face.Slot() != nil { t.Fatalf("expected no slot after face close") }
	if slot.BitmapLeft() != 0 || slot.BitmapTop() != 0 {
		t.Fatalf("slot placement must zero after face close")
	}
	if bitmap.Rows() != 0 || bitmap.Width() != 0 || bitmap.Pitch() != 0 {
		t.Fatalf("bitmap dimensions must zero after face close")
	}
	if bitmap.PixelMode() != PixelNone || bitmap.NumGrays() != 0 {
		t.Fatalf("bitmap format must zero after face close")
	}
	if bitmap.Buffer() != nil { t.Fatalf("bitmap buffer must be nil after face close") }

	// same for an independent outline once its library goes away
	outline, err := NewOutline(lib, 3, 1)
	if err != nil { t.Fatalf("allocation failed: %v", err) }
	if outline.NumPoints() != 3 || outline.NumContours() != 1 { t.Fatalf("unexpected live counts") }
	if err := lib.Close(); err != nil { t.Fatalf("close failed: %v", err) }
	if outline.NumPoints() != 0 || outline.NumContours() != 0 {
		t.Fatalf("outline counts must zero after library close")
	}
}
