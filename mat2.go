package pydrawer

import (
	"iter"
	"math"
)

// Mat2 describes a 2×2 linear transformation via coefficients.
//
// If the coefficients are (a, b, c, d), then the resulting transformation
// represents this matrix:
//
//	| a c |
//	| b d |
//
// A point transforms as x' = a·x + c·y, y' = b·x + d·y. The idea is that
// (A * B) * v == A * (B * v).
type Mat2 struct {
	N0, N1, N2, N3 float64
}

// Identity is the identity transform.
var Identity = Mat2{1, 0, 0, 1}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Mat2{1, 0, 0, -1}

// FlipX is a transform that is flipped on the x-axis.
var FlipX = Mat2{-1, 0, 0, 1}

// Scale creates a transform representing non-uniform scaling with different
// scale values for x and y.
func Scale(x, y float64) Mat2 {
	return Mat2{x, 0, 0, y}
}

// Rotate creates a transform representing rotation about the origin.
//
// The convention for rotation is that a positive angle rotates a positive X
// direction into positive Y. Thus, in a Y-down coordinate system (as is
// common for graphics), it is a clockwise rotation, and in Y-up (traditional
// for math), it is anti-clockwise.
//
// The angle th is expressed in radians.
func Rotate(th float64) Mat2 {
	sin, cos := math.Sincos(th)
	return Mat2{cos, sin, -sin, cos}
}

// Skew creates a transformation representing a skew.
//
// The x and y parameters represent skew factors for the horizontal and
// vertical directions, respectively.
func Skew(x, y float64) Mat2 {
	return Mat2{1, y, x, 1}
}

// NewMat2 creates a linear transformation from a row-major 2×2 matrix, that
// is, m[0] is the matrix's first row. Alternatively, you can initialize the
// fields of [Mat2] manually.
func NewMat2(m [2][2]float64) Mat2 {
	return Mat2{m[0][0], m[1][0], m[0][1], m[1][1]}
}

// Rows returns the transform as a row-major 2×2 matrix, the inverse of
// [NewMat2].
func (m Mat2) Rows() [2][2]float64 {
	return [2][2]float64{{m.N0, m.N2}, {m.N1, m.N3}}
}

// Coefficients returns the coefficients of the transform.
func (m Mat2) Coefficients() [4]float64 {
	return [4]float64{m.N0, m.N1, m.N2, m.N3}
}

// Mul returns the matrix product m·o, the transform that applies o first and
// m second.
func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		m.N0*o.N0 + m.N2*o.N1,
		m.N1*o.N0 + m.N3*o.N1,
		m.N0*o.N2 + m.N2*o.N3,
		m.N1*o.N2 + m.N3*o.N3,
	}
}

// Apply transforms the point pt. It is shorthand for [Point.Transform].
func (m Mat2) Apply(pt Point) Point {
	return pt.Transform(m)
}

// Determinant computes the determinant.
func (m Mat2) Determinant() float64 {
	return m.N0*m.N3 - m.N1*m.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (m Mat2) Invert() Mat2 {
	invDet := 1 / m.Determinant()
	return Mat2{
		+invDet * m.N3,
		-invDet * m.N1,
		-invDet * m.N2,
		+invDet * m.N0,
	}
}

func (m Mat2) IsInf() bool {
	return math.IsInf(m.N0, 0) ||
		math.IsInf(m.N1, 0) ||
		math.IsInf(m.N2, 0) ||
		math.IsInf(m.N3, 0)
}

func (m Mat2) IsNaN() bool {
	return math.IsNaN(m.N0) ||
		math.IsNaN(m.N1) ||
		math.IsNaN(m.N2) ||
		math.IsNaN(m.N3)
}

// TransformPoints applies m to each point of seq, preserving order.
func TransformPoints(seq iter.Seq[Point], m Mat2) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for pt := range seq {
			if !yield(pt.Transform(m)) {
				break
			}
		}
	}
}
