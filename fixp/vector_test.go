package fixp

import "testing"

func TestVectorArithmetic(t *testing.T) {
	a := Vector{ X: 1, Y: 2 }
	b := Vector{ X: 3, Y: -4 }

	if a.Add(b) != (Vector{ X: 4, Y: -2 }) { t.Fatal("bad Add") }
	if a.Sub(b) != (Vector{ X: -2, Y: 6 }) { t.Fatal("bad Sub") }
	if a.Mul(2) != (Vector{ X: 2, Y: 4 }) { t.Fatal("bad Mul") }
	if a.Div(2) != (Vector{ X: 0.5, Y: 1 }) { t.Fatal("bad Div") }
	if a.MulVec(b) != b.MulVec(a) { t.Fatal("MulVec must be commutative") }
	if a.MulVec(b) != (Vector{ X: 3, Y: -8 }) { t.Fatal("bad MulVec") }
	if b.DivVec(a) != (Vector{ X: 3, Y: -2 }) { t.Fatal("bad DivVec") }
}

func TestVectorRaw(t *testing.T) {
	tests := []struct {
		in    Vector
		shift uint
		out   RawVector
	}{
		{Vector{ X: 1, Y: -1 }, ShiftInt, RawVector{ X: 1, Y: -1 }},
		{Vector{ X: 1.5, Y: 0.25 }, Shift26_6, RawVector{ X: 96, Y: 16 }},
		{Vector{ X: 1.5, Y: -0.5 }, Shift16_16, RawVector{ X: 98304, Y: -32768 }},
	}

	for i, test := range tests {
		out := test.in.ToRaw(test.shift)
		if out != test.out {
			str := "test #%d: in %s (shift %d) expected %v, but got %v"
			t.Fatalf(str, i, test.in.String(), test.shift, test.out, out)
		}
		back := VectorFromRaw(out, test.shift)
		if back != test.in {
			str := "test #%d: raw %v (shift %d) expected %s back, but got %s"
			t.Fatalf(str, i, out, test.shift, test.in.String(), back.String())
		}
	}
}

func TestBBoxRaw(t *testing.T) {
	box := BBox{ XMin: -1, YMin: -0.5, XMax: 2, YMax: 1.5 }
	raw := box.ToRaw(Shift26_6)
	expected := RawBBox{ XMin: -64, YMin: -32, XMax: 128, YMax: 96 }
	if raw != expected { t.Fatalf("expected %v, got %v", expected, raw) }
	if BBoxFromRaw(raw, Shift26_6) != box { t.Fatal("bbox round trip failed") }
	if box.Width() != 3 || box.Height() != 2 { t.Fatal("bad Width/Height") }
}
