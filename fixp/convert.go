package fixp

import "math"

// Raw engine value in 26.6 fixed-point format: 6 bits for the
// fractional part, the rest for the integer part. A Unit26 of 64
// equals 1.0, a Unit26 of 96 equals 1.5 and so on. The underlying
// width matches the engine's position type on 64-bit platforms.
type Unit26 int64

// Raw engine value in 16.16 fixed-point format, used for scale
// factors and matrix coefficients.
type Unit16 int64

// Shift amounts for the two fixed-point encodings, plus the trivial
// integer interpretation. These parametrize the shared conversion
// helpers instead of having one hand-written converter per format.
const (
	ShiftInt   = 0
	Shift26_6  = 6
	Shift16_16 = 16
)

// Converts a float64 to fixed point with the given number of
// fractional bits, rounding half away from zero. This is the only
// place where float to fixed rounding happens; every To* conversion
// in the package goes through it.
func ToFixed(value float64, shift uint) int64 {
	return int64(math.Round(value * float64(int64(1) << shift)))
}

// Converts a fixed-point value with the given number of fractional
// bits back to a float64. The result is exact: fixed-point values
// with up to 16 fractional bits are always representable.
func FromFixed(value int64, shift uint) float64 {
	return float64(value) / float64(int64(1) << shift)
}

// Converts a float64 to the engine's 26.6 format.
func To26_6(value float64) Unit26 { return Unit26(ToFixed(value, Shift26_6)) }

// Converts a 26.6 value to a float64.
func From26_6(value Unit26) float64 { return FromFixed(int64(value), Shift26_6) }

// Converts a float64 to the engine's 16.16 format.
func To16_16(value float64) Unit16 { return Unit16(ToFixed(value, Shift16_16)) }

// Converts a 16.16 value to a float64.
func From16_16(value Unit16) float64 { return FromFixed(int64(value), Shift16_16) }
