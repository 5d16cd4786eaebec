package fixp

import "strconv"

// A pair of float64 coordinates. The wrapper layer uses vectors both
// for positions and for deltas; raw engine vectors only appear as
// [RawVector] at the conversion boundary.
type Vector struct {
	X float64
	Y float64
}

// The engine's wire form of a [Vector]: two fixed-point or integer
// coordinates whose interpretation depends on the call site.
type RawVector struct {
	X int64
	Y int64
}

func (self Vector) String() string {
	return "(" + strconv.FormatFloat(self.X, 'f', 3, 64) + ", " +
		strconv.FormatFloat(self.Y, 'f', 3, 64) + ")"
}

func (self Vector) Add(other Vector) Vector {
	return Vector{ self.X + other.X, self.Y + other.Y }
}

func (self Vector) Sub(other Vector) Vector {
	return Vector{ self.X - other.X, self.Y - other.Y }
}

// Scales the vector by a scalar factor.
func (self Vector) Mul(factor float64) Vector {
	return Vector{ self.X*factor, self.Y*factor }
}

// Component-wise vector scaling. Commutative.
func (self Vector) MulVec(other Vector) Vector {
	return Vector{ self.X*other.X, self.Y*other.Y }
}

func (self Vector) Div(factor float64) Vector {
	return Vector{ self.X/factor, self.Y/factor }
}

// Component-wise vector division.
func (self Vector) DivVec(other Vector) Vector {
	return Vector{ self.X/other.X, self.Y/other.Y }
}

// Converts the vector to raw engine form with the given number of
// fractional bits per coordinate.
func (self Vector) ToRaw(shift uint) RawVector {
	return RawVector{ ToFixed(self.X, shift), ToFixed(self.Y, shift) }
}

// Creates a vector from raw engine form, interpreting each coordinate
// as fixed point with the given number of fractional bits.
func VectorFromRaw(raw RawVector, shift uint) Vector {
	return Vector{ FromFixed(raw.X, shift), FromFixed(raw.Y, shift) }
}
