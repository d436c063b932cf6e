// pkg/canvas/matrix.go
package canvas

import (
	"math"

	"golang.org/x/image/math/f64"
	"honnef.co/go/curve"
)

// Matrix is a 2D affine transform stored row-major, the layout
// golang.org/x/image/draw expects:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
//
// The arithmetic is done by curve.Affine.
type Matrix f64.Aff3

// Identity leaves points unchanged.
var Identity = Matrix{1, 0, 0, 0, 1, 0}

func TranslateMatrix(tx, ty float64) Matrix {
	return FromAffine(curve.Translate(curve.Vec(tx, ty)))
}

func ScaleMatrix(sx, sy float64) Matrix {
	return FromAffine(curve.Scale(sx, sy))
}

// RotateMatrix rotates by angle radians. With y pointing down a positive
// angle turns clockwise on screen.
func RotateMatrix(angle float64) Matrix {
	return FromAffine(curve.Rotate(angle))
}

// FromAffine converts a column-major curve.Affine.
func FromAffine(a curve.Affine) Matrix {
	return Matrix{a.N0, a.N2, a.N4, a.N1, a.N3, a.N5}
}

// Affine is m in curve's coefficient order.
func (m Matrix) Affine() curve.Affine {
	return curve.Affine{N0: m[0], N1: m[3], N2: m[1], N3: m[4], N4: m[2], N5: m[5]}
}

// Aff3 is m for golang.org/x/image/draw.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3(m)
}

// Mul returns m·n: the result applies n first, then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return FromAffine(m.Affine().Mul(n.Affine()))
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return curve.Pt(x, y).Transform(m.Affine()).Splat()
}

// ApplyPoint is Apply for a Point.
func (m Matrix) ApplyPoint(p Point) Point {
	return p.Transform(m.Affine())
}

// Det is the determinant of the linear part.
func (m Matrix) Det() float64 {
	return m.Affine().Determinant()
}

// Invert returns the inverse transform. ok is false for a singular matrix.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) {
		return Identity, false
	}
	return FromAffine(m.Affine().Invert()), true
}

// LineScale is the factor by which the transform stretches widths: the
// square root of the absolute determinant.
func (m Matrix) LineScale() float64 {
	return math.Sqrt(math.Abs(m.Det()))
}
