// Package ebitenctx implements canvas.Context on top of an Ebitengine image.
// Paths go through ebiten/v2/vector and are drawn as triangles.
package ebitenctx

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"honnef.co/go/curve"

	"tulip-bouquet/pkg/canvas"
	"tulip-bouquet/pkg/render"
)

var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

// whiteSubImage avoids sampling the edge texels of whiteImage.
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

// Context draws onto a screen-sized *ebiten.Image. Reuse one per game and
// call Begin at the start of every frame.
type Context struct {
	canvas.Stack

	dst   *ebiten.Image
	ratio float64
	face  font.Face

	vs []ebiten.Vertex
	is []uint16
}

var _ canvas.Context = (*Context)(nil)

func New() *Context {
	return &Context{face: basicfont.Face7x13}
}

// Begin targets dst for a new frame drawn at the given device ratio. It
// returns render.ErrNoSurface for a nil or empty target; the frame must then
// be skipped.
func (c *Context) Begin(dst *ebiten.Image, ratio float64) error {
	if dst == nil || dst.Bounds().Empty() {
		c.dst = nil
		return render.ErrNoSurface
	}
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		ratio = 1
	}
	c.dst = dst
	c.ratio = ratio
	c.Stack.Reset(canvas.ScaleMatrix(ratio, ratio))
	return nil
}

func (c *Context) Size() (float64, float64) {
	if c.dst == nil {
		return 0, 0
	}
	b := c.dst.Bounds()
	return float64(b.Dx()) / c.ratio, float64(b.Dy()) / c.ratio
}

// ClearRect draws the rectangle with transparent vertices in copy mode.
func (c *Context) ClearRect(x, y, w, h float64) {
	if c.dst == nil {
		return
	}
	var p canvas.Path
	p.Rect(x, y, w, h)
	c.vs, c.is = c.fillVertices(&p, c.vs[:0], c.is[:0])
	for i := range c.vs {
		setColor(&c.vs[i], color.NRGBA{})
	}
	c.dst.DrawTriangles(c.vs, c.is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		Blend:    ebiten.BlendCopy,
		FillRule: ebiten.FillRuleNonZero,
	})
}

func (c *Context) FillRect(x, y, w, h float64, p canvas.Paint) {
	if g, ok := p.(*canvas.LinearGradient); ok && g.X0 == g.X1 && c.axisAligned() {
		c.fillVerticalGradient(x, y, w, h, g)
		return
	}
	var path canvas.Path
	path.Rect(x, y, w, h)
	c.Fill(&path, p)
}

func (c *Context) Fill(p *canvas.Path, paint canvas.Paint) {
	if c.dst == nil || p == nil || p.Empty() || paint == nil {
		return
	}
	c.vs, c.is = c.fillVertices(p, c.vs[:0], c.is[:0])
	c.paintVertices(paint)
	c.dst.DrawTriangles(c.vs, c.is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

func (c *Context) Stroke(p *canvas.Path, s canvas.StrokeStyle) {
	if c.dst == nil || p == nil || p.Empty() || s.Color == nil || s.Width <= 0 {
		return
	}
	m := c.Current()
	path := toVectorPath(p.Transform(m))
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:      float32(s.Width * m.LineScale()),
		LineCap:    lineCap(s.Cap),
		LineJoin:   lineJoin(s.Join),
		MiterLimit: 10,
	})
	c.paintVertices(canvas.Solid{Color: s.Color})
	c.dst.DrawTriangles(c.vs, c.is, whiteSubImage, strokeDrawOptions())
}

// strokeDrawOptions fills stroke triangles once per pixel. Cap and join
// triangles overlap the segment quads, and without the nonzero rule a
// translucent stroke would blend twice where they meet.
func strokeDrawOptions() *ebiten.DrawTrianglesOptions {
	return &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
}

func (c *Context) FillText(s string, x, y float64, col color.Color, align canvas.TextAlign) {
	if c.dst == nil || s == "" || col == nil {
		return
	}
	b := text.BoundString(c.face, s)
	switch align {
	case canvas.AlignCenter:
		x -= float64(b.Dx()) / 2
	case canvas.AlignRight:
		x -= float64(b.Dx())
	}
	m := c.Current()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(toGeoM(m))
	op.ColorScale.ScaleWithColor(col)
	text.DrawWithOptions(c.dst, s, c.face, op)
}

func (c *Context) fillVertices(p *canvas.Path, vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
	path := toVectorPath(p.Transform(c.Current()))
	return path.AppendVerticesAndIndicesForFilling(vs, is)
}

// paintVertices colours each vertex by evaluating paint at the vertex's user
// space position; gradients are interpolated linearly across triangles.
func (c *Context) paintVertices(paint canvas.Paint) {
	inv, ok := c.Current().Invert()
	if !ok {
		inv = canvas.Identity
	}
	for i := range c.vs {
		v := &c.vs[i]
		ux, uy := inv.Apply(float64(v.DstX), float64(v.DstY))
		setColor(v, paint.ColorAt(ux, uy))
	}
}

// fillVerticalGradient draws one quad per pair of adjacent stops so each
// stop lands exactly on a triangle edge.
func (c *Context) fillVerticalGradient(x, y, w, h float64, g *canvas.LinearGradient) {
	if c.dst == nil || h == 0 {
		return
	}
	ys := []float64{y, y + h}
	for _, st := range g.Stops() {
		sy := g.Y0 + st.Offset*(g.Y1-g.Y0)
		if sy > math.Min(y, y+h) && sy < math.Max(y, y+h) {
			ys = append(ys, sy)
		}
	}
	slices.Sort(ys)

	m := c.Current()
	c.vs, c.is = c.vs[:0], c.is[:0]
	for i := 1; i < len(ys); i++ {
		y0, y1 := ys[i-1], ys[i]
		if y1 == y0 {
			continue
		}
		base := uint16(len(c.vs))
		for _, corner := range [4][2]float64{{x, y0}, {x + w, y0}, {x + w, y1}, {x, y1}} {
			dx, dy := m.Apply(corner[0], corner[1])
			v := ebiten.Vertex{DstX: float32(dx), DstY: float32(dy)}
			setColor(&v, g.ColorAt(corner[0], corner[1]))
			c.vs = append(c.vs, v)
		}
		c.is = append(c.is, base, base+1, base+2, base, base+2, base+3)
	}
	c.dst.DrawTriangles(c.vs, c.is, whiteSubImage, nil)
}

func (c *Context) axisAligned() bool {
	m := c.Current()
	return m[1] == 0 && m[3] == 0
}

func setColor(v *ebiten.Vertex, n color.NRGBA) {
	v.SrcX, v.SrcY = 1, 1
	v.ColorR = float32(n.R) / 255
	v.ColorG = float32(n.G) / 255
	v.ColorB = float32(n.B) / 255
	v.ColorA = float32(n.A) / 255
}

func toVectorPath(p *canvas.Path) *vector.Path {
	var vp vector.Path
	for _, el := range p.Elements() {
		switch el.Kind {
		case curve.MoveToKind:
			vp.MoveTo(f32(el.P0.X), f32(el.P0.Y))
		case curve.LineToKind:
			vp.LineTo(f32(el.P0.X), f32(el.P0.Y))
		case curve.QuadToKind:
			vp.QuadTo(f32(el.P0.X), f32(el.P0.Y), f32(el.P1.X), f32(el.P1.Y))
		case curve.CubicToKind:
			vp.CubicTo(f32(el.P0.X), f32(el.P0.Y), f32(el.P1.X), f32(el.P1.Y), f32(el.P2.X), f32(el.P2.Y))
		case curve.ClosePathKind:
			vp.Close()
		}
	}
	return &vp
}

func f32(v float64) float32 { return float32(v) }

func toGeoM(m canvas.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[1])
	g.SetElement(0, 2, m[2])
	g.SetElement(1, 0, m[3])
	g.SetElement(1, 1, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

func lineCap(c canvas.LineCap) vector.LineCap {
	switch c {
	case canvas.CapRound:
		return vector.LineCapRound
	case canvas.CapSquare:
		return vector.LineCapSquare
	}
	return vector.LineCapButt
}

func lineJoin(j canvas.LineJoin) vector.LineJoin {
	switch j {
	case canvas.JoinRound:
		return vector.LineJoinRound
	case canvas.JoinBevel:
		return vector.LineJoinBevel
	}
	return vector.LineJoinMiter
}
