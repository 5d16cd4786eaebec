package fixp

import "math"
import "testing"

// The fixed-point rounding rule is round half away from zero. This
// test pins it down so a change to half-to-even can't slip through.
func TestToFixedRounding(t *testing.T) {
	tests := []struct {
		in    float64
		shift uint
		out   int64
	}{
		{0, 6, 0}, {1, 6, 64}, {1.5, 6, 96}, {-1, 6, -64},
		{0.5/64.0, 6, 1},   // tie, away from zero
		{-0.5/64.0, 6, -1}, // tie, away from zero
		{1.5/64.0, 6, 2},
		{-1.5/64.0, 6, -2},
		{0.25/64.0, 6, 0},
		{1, 16, 65536}, {0.5, 16, 32768},
		{0.5/65536.0, 16, 1},
		{-0.5/65536.0, 16, -1},
		{1.25, 16, 81920},
	}

	for i, test := range tests {
		out := ToFixed(test.in, test.shift)
		if out != test.out {
			str := "test #%d: in %f (shift %d) expected out %d, but got %d"
			t.Fatalf(str, i, test.in, test.shift, test.out, out)
		}
	}
}

func TestFromFixedExact(t *testing.T) {
	tests := []struct {
		in    int64
		shift uint
		out   float64
	}{
		{0, 6, 0}, {64, 6, 1}, {96, 6, 1.5}, {-32, 6, -0.5},
		{1, 6, 1.0/64.0}, {65536, 16, 1}, {-32768, 16, -0.5},
		{1, 16, 1.0/65536.0},
	}

	for i, test := range tests {
		out := FromFixed(test.in, test.shift)
		if out != test.out {
			str := "test #%d: in %d (shift %d) expected out %f, but got %f"
			t.Fatalf(str, i, test.in, test.shift, test.out, out)
		}
	}
}

// For any representable value, converting to fixed point and back has
// to stay within half the format's resolution.
func TestRoundTripBound(t *testing.T) {
	for _, shift := range []uint{6, 16} {
		maxErr := 1.0/float64(int64(2) << shift) // 2^-(shift+1)
		value := -4.0
		for value <= 4.0 {
			back := FromFixed(ToFixed(value, shift), shift)
			if math.Abs(back - value) > maxErr {
				str := "shift %d: value %f round-tripped to %f (err > %g)"
				t.Fatalf(str, shift, value, back, maxErr)
			}
			value += 0.001953125 // 1/512, exact in binary
		}
	}
}

func TestNamedConversions(t *testing.T) {
	if To26_6(1.5) != 96 { t.Fatal("To26_6(1.5) != 96") }
	if From26_6(96) != 1.5 { t.Fatal("From26_6(96) != 1.5") }
	if To16_16(1.5) != 98304 { t.Fatal("To16_16(1.5) != 98304") }
	if From16_16(98304) != 1.5 { t.Fatal("From16_16(98304) != 1.5") }
}
