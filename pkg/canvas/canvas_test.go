package canvas

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
	"honnef.co/go/curve"
)

func TestMatrixMulOrder(t *testing.T) {
	// translate then scale: scale applies to the point first
	m := TranslateMatrix(10, 20).Mul(ScaleMatrix(2, 3))
	x, y := m.Apply(1, 1)
	assert.InDelta(t, 12.0, x, 1e-12)
	assert.InDelta(t, 23.0, y, 1e-12)
}

func TestMatrixRotateClockwiseOnScreen(t *testing.T) {
	x, y := RotateMatrix(math.Pi/2).Apply(1, 0)
	assert.InDelta(t, 0.0, x, 1e-12)
	assert.InDelta(t, 1.0, y, 1e-12)
}

func TestMatrixInvert(t *testing.T) {
	m := TranslateMatrix(5, -7).Mul(RotateMatrix(0.3)).Mul(ScaleMatrix(1.5, 0.5))
	inv, ok := m.Invert()
	require.True(t, ok)
	x, y := m.Apply(3, 4)
	bx, by := inv.Apply(x, y)
	assert.InDelta(t, 3.0, bx, 1e-9)
	assert.InDelta(t, 4.0, by, 1e-9)

	_, ok = ScaleMatrix(0, 1).Invert()
	assert.False(t, ok)
}

func TestMatrixLineScale(t *testing.T) {
	assert.InDelta(t, 2.0, ScaleMatrix(2, 2).Mul(RotateMatrix(1)).LineScale(), 1e-12)
}

func TestStackSaveRestore(t *testing.T) {
	s := NewStack(ScaleMatrix(2, 2))
	s.Save()
	s.Translate(10, 0)
	x, _ := s.Current().Apply(0, 0)
	assert.Equal(t, 20.0, x)
	s.Restore()
	assert.Equal(t, ScaleMatrix(2, 2), s.Current())

	// unbalanced restore keeps the state
	s.Restore()
	assert.Equal(t, ScaleMatrix(2, 2), s.Current())

	s.Translate(1, 1)
	s.SetTransform(Identity)
	assert.Equal(t, ScaleMatrix(2, 2), s.Current(), "SetTransform is relative to the base")
}

func TestMatrixAffineRoundTrip(t *testing.T) {
	m := TranslateMatrix(3, 4).Mul(RotateMatrix(0.7)).Mul(ScaleMatrix(2, 0.5))
	assert.Equal(t, m, FromAffine(m.Affine()))

	x, y := m.Apply(1, 2)
	p := curve.Pt(1, 2).Transform(m.Affine())
	assert.InDelta(t, x, p.X, 1e-12)
	assert.InDelta(t, y, p.Y, 1e-12)
	assert.Equal(t, f64.Aff3{2, 0, 5, 0, 2, 6}, TranslateMatrix(5, 6).Mul(ScaleMatrix(2, 2)).Aff3())
}

func TestPathEllipseFlattensNearCurve(t *testing.T) {
	var p Path
	p.Ellipse(10, 20, 30, 15)
	els := p.Elements()
	assert.Equal(t, curve.MoveToKind, els[0].Kind)
	assert.Equal(t, curve.ClosePathKind, els[len(els)-1].Kind)

	n := 0
	for el := range els.Flatten(0.1) {
		pt, ok := el.EndPoint()
		if !ok {
			continue
		}
		n++
		dx, dy := (pt.X-10)/30, (pt.Y-20)/15
		assert.InDelta(t, 1.0, math.Hypot(dx, dy), 0.01)
	}
	assert.Greater(t, n, 8)
}

func TestPathEllipseKeepsAxes(t *testing.T) {
	var p Path
	p.Ellipse(0, 0, 2, 5)
	b := p.Elements().BoundingBox()
	assert.InDelta(t, 4.0, b.Width(), 1e-6)
	assert.InDelta(t, 10.0, b.Height(), 1e-6)
	start, _ := p.Elements()[0].EndPoint()
	assert.InDelta(t, 2.0, start.X, 1e-12)
	assert.InDelta(t, 0.0, start.Y, 1e-12)
}

func TestPathQuadEndsAtEndpoint(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.QuadTo(50, 100, 100, 0)
	var last Point
	n := 0
	for el := range p.Elements().Flatten(0.25) {
		assert.NotEqual(t, curve.ClosePathKind, el.Kind)
		last, _ = el.EndPoint()
		n++
	}
	assert.Equal(t, Point{X: 100, Y: 0}, last)
	assert.Greater(t, n, 3)
}

func TestPathTransformDoesNotMutate(t *testing.T) {
	var p Path
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	q := p.Transform(TranslateMatrix(10, 10))
	assert.Equal(t, Point{X: 1, Y: 2}, p.Elements()[0].P0)
	assert.Equal(t, Point{X: 11, Y: 12}, q.Elements()[0].P0)
	end, ok := q.Elements()[1].EndPoint()
	require.True(t, ok)
	assert.Equal(t, Point{X: 13, Y: 14}, end)
}

func TestPathMultipleSubpaths(t *testing.T) {
	var p Path
	p.Rect(0, 0, 10, 10)
	p.MoveTo(20, 20)
	p.LineTo(30, 20)
	var moves, closes int
	for _, el := range p.Elements() {
		switch el.Kind {
		case curve.MoveToKind:
			moves++
		case curve.ClosePathKind:
			closes++
		}
	}
	assert.Equal(t, 2, moves)
	assert.Equal(t, 1, closes)
	assert.Equal(t, curve.Rect{X0: 0, Y0: 0, X1: 30, Y1: 20}, p.Elements().ControlBox())
}

func TestLinearGradient(t *testing.T) {
	g := NewLinearGradient(0, 0, 0, 100)
	g.AddColorStop(1, color.RGBA{255, 255, 255, 255})
	g.AddColorStop(0, color.RGBA{0, 0, 0, 255})
	g.AddColorStop(0.5, color.RGBA{100, 0, 0, 255})

	require.Len(t, g.Stops(), 3)
	assert.Equal(t, 0.0, g.Stops()[0].Offset)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, g.ColorAt(0, -50))
	assert.Equal(t, color.NRGBA{100, 0, 0, 255}, g.ColorAt(7, 50))
	assert.Equal(t, color.NRGBA{50, 0, 0, 255}, g.ColorAt(0, 25))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, g.ColorAt(0, 150))
}

func TestSolidUnpremultiplies(t *testing.T) {
	s := Solid{Color: color.RGBA{50, 50, 50, 128}}
	c := s.ColorAt(0, 0)
	assert.Equal(t, uint8(128), c.A)
	assert.InDelta(t, 99, int(c.R), 1)
}
