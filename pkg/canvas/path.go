// pkg/canvas/path.go
package canvas

import (
	"math"

	"honnef.co/go/curve"
)

// Point is a position in user space.
type Point = curve.Point

// ellipseTolerance bounds how far the cubic approximation of an ellipse may
// stray from the true outline, in path units.
const ellipseTolerance = 0.05

// Path records drawing commands in user space, like Path2D. Geometry work
// (flattening, stroking, bounds) is done on the underlying curve.BezPath.
// The zero value is an empty path ready to use.
type Path struct {
	bp curve.BezPath
}

func (p *Path) MoveTo(x, y float64) {
	p.bp.MoveTo(curve.Pt(x, y))
}

func (p *Path) LineTo(x, y float64) {
	p.bp.LineTo(curve.Pt(x, y))
}

func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.bp.QuadTo(curve.Pt(cx, cy), curve.Pt(x, y))
}

func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.bp.CubicTo(curve.Pt(c1x, c1y), curve.Pt(c2x, c2y), curve.Pt(x, y))
}

func (p *Path) Close() {
	p.bp.ClosePath()
}

// Ellipse adds a closed axis-aligned ellipse as its own subpath.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	// Arc, not Ellipse: Ellipse recovers its radii through an SVD that
	// swaps the axes of an unrotated ellipse taller than it is wide.
	arc := curve.Arc{
		Center:     curve.Pt(cx, cy),
		Radii:      curve.Vec(rx, ry),
		SweepAngle: 2 * math.Pi,
	}
	for el := range arc.PathElements(ellipseTolerance) {
		p.bp.Push(el)
	}
	p.bp.ClosePath()
}

// Rect adds a closed rectangle as its own subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Elements returns the recorded commands. The slice must not be modified.
func (p *Path) Elements() curve.BezPath {
	return p.bp
}

// Empty reports whether nothing has been recorded.
func (p *Path) Empty() bool {
	return len(p.bp) == 0
}

// Transform returns a copy of the path with every point mapped by m.
func (p *Path) Transform(m Matrix) *Path {
	return &Path{bp: p.bp.Transform(m.Affine())}
}
