// internal/bouquet/shapes.go
package bouquet

import (
	"tulip-bouquet/internal/config"
	"tulip-bouquet/pkg/canvas"
)

// StemPath is a quadratic curve from the head to the convergence point.
func (l Layout) StemPath(h Head) *canvas.Path {
	var p canvas.Path
	p.MoveTo(h.X, h.Y)
	p.QuadTo(h.CtrlX, h.CtrlY, l.CenterX, l.StemEndY)
	return &p
}

// VasePath is the closed vase outline: a narrow base, a rounded body and a
// wide flat opening.
func (l Layout) VasePath() *canvas.Path {
	cx, v := l.CenterX, l.Vase
	midY := v.Bottom - v.Height*0.5
	lipY := v.Top - config.VaseLipRise

	var p canvas.Path
	p.MoveTo(cx-config.VaseBaseHalf, v.Bottom)
	p.QuadTo(cx-v.Width*0.5, midY, cx-v.Width*0.52, v.Top)
	p.LineTo(cx-v.Width*0.48, lipY)
	p.LineTo(cx+v.Width*0.48, lipY)
	p.QuadTo(cx+v.Width*0.5, midY, cx+config.VaseBaseHalf, v.Bottom)
	p.Close()
	return &p
}

// ShadowPath is the small ellipse under the vase base.
func (l Layout) ShadowPath() *canvas.Path {
	var p canvas.Path
	p.Ellipse(l.CenterX, l.Vase.Bottom+config.ShadowOffsetY, config.ShadowRadiusX, config.ShadowRadiusY)
	return &p
}

// WaterPath is the horizontal water level line across the vase.
func (l Layout) WaterPath() *canvas.Path {
	half := l.Vase.Width * config.WaterHalfFrac
	var p canvas.Path
	p.MoveTo(l.CenterX-half, l.WaterY)
	p.LineTo(l.CenterX+half, l.WaterY)
	return &p
}

// PetalPaths returns the centre, left and right petals of a head of height
// bh, anchored at the origin and opening upwards.
func PetalPaths(bh float64) [3]*canvas.Path {
	var centre, left, right canvas.Path

	// центральный лепесток, заострённый
	centre.MoveTo(0, 0)
	centre.CubicTo(bh*0.36, -bh*0.12, bh*0.36, -bh*0.9, 0, -bh)
	centre.CubicTo(-bh*0.36, -bh*0.9, -bh*0.36, -bh*0.12, 0, 0)
	centre.Close()

	left.MoveTo(0, 0)
	left.CubicTo(-bh*0.6, -bh*0.04, -bh*0.8, -bh*0.7, -bh*0.24, -bh*0.86)
	left.CubicTo(-bh*0.12, -bh*0.4, -bh*0.06, -bh*0.2, 0, 0)
	left.Close()

	right.MoveTo(0, 0)
	right.CubicTo(bh*0.6, -bh*0.04, bh*0.8, -bh*0.7, bh*0.24, -bh*0.86)
	right.CubicTo(bh*0.12, -bh*0.4, bh*0.06, -bh*0.2, 0, 0)
	right.Close()

	return [3]*canvas.Path{&centre, &left, &right}
}

// HighlightPath is the light ellipse in the middle of a head.
func HighlightPath(bh float64) *canvas.Path {
	var p canvas.Path
	p.Ellipse(0, -bh*0.6, bh*0.12, bh*0.15)
	return &p
}
