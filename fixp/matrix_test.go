package fixp

import "math"
import "testing"

const matrixTolerance = 1e-12

func matrixNear(a, b Matrix) bool {
	return math.Abs(a.XX - b.XX) <= matrixTolerance &&
		math.Abs(a.XY - b.XY) <= matrixTolerance &&
		math.Abs(a.YX - b.YX) <= matrixTolerance &&
		math.Abs(a.YY - b.YY) <= matrixTolerance
}

func TestIdentityDet(t *testing.T) {
	if Identity().Det() != 1.0 {
		t.Fatalf("identity determinant expected exactly 1.0, got %f", Identity().Det())
	}
}

func TestInverseProperties(t *testing.T) {
	tests := []Matrix{
		Identity(),
		Scaling(2, 3),
		Rotation(0.7),
		Skewing(0.25, -0.5),
		{ XX: 1, XY: 2, YX: 3, YY: 4 },
		Scaling(2, 1).MulMat(Rotation(-1.2)),
	}

	for i, m := range tests {
		inv, err := m.Inv()
		if err != nil { t.Fatalf("test #%d: unexpected error %v", i, err) }
		if !matrixNear(m.MulMat(inv), Identity()) {
			t.Fatalf("test #%d: M*M.Inv() != identity (got %v)", i, m.MulMat(inv))
		}
		invInv, err := inv.Inv()
		if err != nil { t.Fatalf("test #%d: unexpected error %v", i, err) }
		if !matrixNear(invInv, m) {
			t.Fatalf("test #%d: M.Inv().Inv() != M (got %v, want %v)", i, invInv, m)
		}
	}
}

func TestSingular(t *testing.T) {
	singular := Matrix{ XX: 1, XY: 2, YX: 2, YY: 4 }
	_, err := singular.Inv()
	if err != ErrSingular { t.Fatalf("expected ErrSingular, got %v", err) }
	_, err = Identity().Div(singular)
	if err != ErrSingular { t.Fatalf("expected ErrSingular, got %v", err) }
}

func TestDiv(t *testing.T) {
	a := Matrix{ XX: 1, XY: 2, YX: 3, YY: 4 }
	b := Rotation(0.3)
	quot, err := a.Div(b)
	if err != nil { t.Fatal(err) }
	if !matrixNear(quot.MulMat(b), a) {
		t.Fatalf("(A/B)*B != A (got %v, want %v)", quot.MulMat(b), a)
	}
}

func TestMulVec(t *testing.T) {
	m := Matrix{ XX: 0, XY: -1, YX: 1, YY: 0 } // quarter turn
	v := m.MulVec(Vector{ X: 1, Y: 0 })
	if v.X != 0 || v.Y != 1 {
		t.Fatalf("expected (0, 1), got %s", v.String())
	}
}

func TestRotationDegrees(t *testing.T) {
	if !matrixNear(RotationDegrees(90), Rotation(math.Pi/2)) {
		t.Fatal("RotationDegrees(90) != Rotation(pi/2)")
	}
}

func TestMatrixRaw(t *testing.T) {
	m := Matrix{ XX: 1, XY: 0.5, YX: -0.5, YY: 1 }
	raw := m.ToRaw()
	if raw.XX != 65536 || raw.XY != 32768 || raw.YX != -32768 || raw.YY != 65536 {
		t.Fatalf("unexpected raw matrix %v", raw)
	}
	if MatrixFromRaw(raw) != m { t.Fatal("raw matrix round trip failed") }
}
