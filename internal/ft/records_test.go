package ft

import "testing"
import "unsafe"

func TestTags(t *testing.T) {
	tests := []struct {
		in  string
		out uint32
	}{
		{"outl", 0x6F75746C},
		{"bits", 0x62697473},
		{"unic", 0x756E6963},
	}

	for i, test := range tests {
		out := MakeTag(test.in)
		if out != test.out {
			t.Fatalf("test #%d: MakeTag(%q) expected 0x%X, got 0x%X", i, test.in, test.out, out)
		}
		if TagString(out) != test.in {
			t.Fatalf("test #%d: TagString(0x%X) expected %q, got %q", i, out, test.in, TagString(out))
		}
	}
}

func TestCString(t *testing.T) {
	if CString(nil) != "" { t.Fatal("CString(nil) must be empty") }
	data := []byte("Vera Sans\x00trailing")
	if CString(&data[0]) != "Vera Sans" {
		t.Fatalf("expected 'Vera Sans', got %q", CString(&data[0]))
	}
}

func TestOutlineSlices(t *testing.T) {
	points := []Vector{{X: 0, Y: 0}, {X: 64, Y: 0}, {X: 64, Y: 64}}
	tags := []byte{CurveTagOn, CurveTagOn, CurveTagOn}
	contours := []int16{2}
	outline := OutlineRec{
		NContours: 1, NPoints: 3,
		Points: unsafe.SliceData(points), Tags: unsafe.SliceData(tags),
		Contours: unsafe.SliceData(contours),
	}

	if len(outline.PointsSlice()) != 3 { t.Fatal("bad points view") }
	if outline.PointsSlice()[2] != (Vector{X: 64, Y: 64}) { t.Fatal("bad point") }
	if len(outline.TagsSlice()) != 3 { t.Fatal("bad tags view") }
	if len(outline.ContoursSlice()) != 1 { t.Fatal("bad contours view") }

	var empty OutlineRec
	if empty.PointsSlice() != nil || empty.TagsSlice() != nil || empty.ContoursSlice() != nil {
		t.Fatal("empty outline views must be nil")
	}
}

func TestErrorMessage(t *testing.T) {
	if Error(0).IsErr() { t.Fatal("zero status must not be an error") }
	if !Error(0x06).IsErr() { t.Fatal("nonzero status must be an error") }
	if Error(0x06).Message() != "invalid argument" {
		t.Fatalf("unexpected message %q", Error(0x06).Message())
	}
	if Error(0x7ABC).Message() != "" {
		t.Fatalf("expected no message for an unknown code, got %q", Error(0x7ABC).Message())
	}
}
