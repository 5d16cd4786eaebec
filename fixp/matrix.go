package fixp

import "math"
import "errors"

// Returned by [Matrix.Inv]() and [Matrix.Div]() when the matrix
// determinant is exactly zero.
var ErrSingular = errors.New("matrix is singular")

// A 2x2 linear transform with float64 coefficients, using the engine's
// row-vector convention: transforming a vector computes
// (XX*x + XY*y, YX*x + YY*y).
type Matrix struct {
	XX, XY float64
	YX, YY float64
}

// The engine's wire form of a [Matrix], with 16.16 coefficients.
type RawMatrix struct {
	XX, XY int64
	YX, YY int64
}

// Returns the identity matrix.
func Identity() Matrix {
	return Matrix{ XX: 1, XY: 0, YX: 0, YY: 1 }
}

// Returns a matrix scaling by the given x and y factors.
func Scaling(sx, sy float64) Matrix {
	return Matrix{ XX: sx, XY: 0, YX: 0, YY: sy }
}

// Returns a matrix rotating by the given angle in radians.
func Rotation(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	return Matrix{ XX: cos, XY: -sin, YX: sin, YY: cos }
}

// Like [Rotation](), but with the angle given in degrees.
func RotationDegrees(degrees float64) Matrix {
	return Rotation(degrees*math.Pi/180)
}

// Returns a matrix skewing in the x and y directions by the
// given amounts.
func Skewing(xSkew, ySkew float64) Matrix {
	return Matrix{ XX: 1, XY: xSkew, YX: ySkew, YY: 1 }
}

// Standard 2x2 matrix composition.
func (self Matrix) MulMat(other Matrix) Matrix {
	return Matrix{
		XX: self.XX*other.XX + self.XY*other.YX,
		XY: self.XX*other.XY + self.XY*other.YY,
		YX: self.YX*other.XX + self.YY*other.YX,
		YY: self.YX*other.XY + self.YY*other.YY,
	}
}

// Applies the matrix to a vector.
func (self Matrix) MulVec(vec Vector) Vector {
	return Vector{
		X: self.XX*vec.X + self.XY*vec.Y,
		Y: self.YX*vec.X + self.YY*vec.Y,
	}
}

// The matrix determinant.
func (self Matrix) Det() float64 {
	return self.XX*self.YY - self.XY*self.YX
}

// The matrix inverse. Returns [ErrSingular] if the determinant
// is exactly zero.
func (self Matrix) Inv() (Matrix, error) {
	det := self.Det()
	if det == 0 { return Matrix{}, ErrSingular }
	return Matrix{
		XX:  self.YY/det,
		XY: -self.XY/det,
		YX: -self.YX/det,
		YY:  self.XX/det,
	}, nil
}

// Division, defined as multiplication by the inverse of other.
// Returns [ErrSingular] if other can't be inverted.
func (self Matrix) Div(other Matrix) (Matrix, error) {
	inv, err := other.Inv()
	if err != nil { return Matrix{}, err }
	return self.MulMat(inv), nil
}

// Converts the matrix to raw engine form. Matrix coefficients always
// cross the engine boundary in 16.16 format.
func (self Matrix) ToRaw() RawMatrix {
	return RawMatrix{
		XX: ToFixed(self.XX, Shift16_16), XY: ToFixed(self.XY, Shift16_16),
		YX: ToFixed(self.YX, Shift16_16), YY: ToFixed(self.YY, Shift16_16),
	}
}

// Creates a matrix from raw engine form, interpreting the
// coefficients as 16.16 fixed point.
func MatrixFromRaw(raw RawMatrix) Matrix {
	return Matrix{
		XX: FromFixed(raw.XX, Shift16_16), XY: FromFixed(raw.XY, Shift16_16),
		YX: FromFixed(raw.YX, Shift16_16), YY: FromFixed(raw.YY, Shift16_16),
	}
}
