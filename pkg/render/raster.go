// Package render holds colour helpers and a software canvas.Context that
// draws into an *image.RGBA. The software context needs no GPU or window and
// backs the snapshot tool and the rendering tests.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"iter"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"

	"tulip-bouquet/pkg/canvas"
	"tulip-bouquet/pkg/utils"
)

// ErrNoSurface reports a missing or zero-area drawing target.
var ErrNoSurface = errors.New("render: no drawing surface")

// flatness is the curve tolerance in device pixels.
const flatness = 0.25

// miterLimit matches the Ebitengine backend.
const miterLimit = 10

// RasterContext is a canvas.Context backed by an *image.RGBA.
// It is not safe for concurrent use.
type RasterContext struct {
	canvas.Stack

	img   *image.RGBA
	ratio float64
	z     *vector.Rasterizer
	face  font.Face
}

var _ canvas.Context = (*RasterContext)(nil)

// NewRasterContext allocates a pixelW×pixelH buffer drawn at the given device
// ratio: user space is the pixel size divided by ratio.
func NewRasterContext(pixelW, pixelH int, ratio float64) (*RasterContext, error) {
	c := &RasterContext{face: basicfont.Face7x13}
	if err := c.Resize(pixelW, pixelH, ratio); err != nil {
		return nil, err
	}
	return c, nil
}

// Resize replaces the backing buffer and resets the transform to the new
// device ratio. Nothing from the old buffer survives.
func (c *RasterContext) Resize(pixelW, pixelH int, ratio float64) error {
	if pixelW <= 0 || pixelH <= 0 {
		return ErrNoSurface
	}
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		ratio = 1
	}
	c.img = image.NewRGBA(image.Rect(0, 0, pixelW, pixelH))
	c.ratio = ratio
	c.Stack.Reset(canvas.ScaleMatrix(ratio, ratio))
	if c.z == nil {
		c.z = vector.NewRasterizer(pixelW, pixelH)
	}
	return nil
}

// Image is the backing buffer.
func (c *RasterContext) Image() *image.RGBA {
	return c.img
}

func (c *RasterContext) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()) / c.ratio, float64(b.Dy()) / c.ratio
}

func (c *RasterContext) ClearRect(x, y, w, h float64) {
	r := c.deviceBounds(x, y, w, h)
	draw.Draw(c.img, r, image.Transparent, image.Point{}, draw.Src)
}

func (c *RasterContext) FillRect(x, y, w, h float64, p canvas.Paint) {
	var path canvas.Path
	path.Rect(x, y, w, h)
	c.Fill(&path, p)
}

func (c *RasterContext) Fill(p *canvas.Path, paint canvas.Paint) {
	if p == nil || p.Empty() || paint == nil {
		return
	}
	c.rasterize(p.Transform(c.Current()).Elements().Flatten(flatness))
	c.z.Draw(c.img, c.img.Bounds(), c.source(paint), image.Point{})
}

// Stroke expands the outline in user space, so non-uniform scales squash
// the pen the way they squash the path, and fills it on the device.
func (c *RasterContext) Stroke(p *canvas.Path, s canvas.StrokeStyle) {
	if p == nil || p.Empty() || s.Color == nil || s.Width <= 0 {
		return
	}
	m := c.Current()
	scale := m.LineScale()
	if scale == 0 {
		return
	}
	outline := curve.StrokePath(p.Elements().Elements(), curveStroke(s), curve.StrokeOpts{OptLevel: curve.Subdivide}, flatness/scale)
	c.rasterize(curve.Flatten(curve.Transform(outline, m.Affine()), flatness))
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(s.Color), image.Point{})
}

// FillText lays the string out at the face's native size and maps the
// glyph image through the current transform, so text scales with the
// device ratio like everything else.
func (c *RasterContext) FillText(s string, x, y float64, col color.Color, align canvas.TextAlign) {
	if s == "" || col == nil {
		return
	}
	b, adv := font.BoundString(c.face, s)
	switch align {
	case canvas.AlignCenter:
		x -= float64(adv.Round()) / 2
	case canvas.AlignRight:
		x -= float64(adv.Round())
	}
	cell := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	if cell.Empty() {
		return
	}
	glyphs := image.NewRGBA(image.Rect(0, 0, cell.Dx(), cell.Dy()))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(-cell.Min.X, -cell.Min.Y),
	}
	d.DrawString(s)

	s2d := c.Current().Mul(canvas.TranslateMatrix(x+float64(cell.Min.X), y+float64(cell.Min.Y)))
	// целые пиксели, иначе буквы размываются
	s2d[2], s2d[5] = utils.RoundHalfUp(s2d[2]), utils.RoundHalfUp(s2d[5])
	xdraw.BiLinear.Transform(c.img, s2d.Aff3(), glyphs, glyphs.Bounds(), xdraw.Over, nil)
}

func (c *RasterContext) beginRaster() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

// rasterize loads a flattened device-space path into the rasterizer. A
// line after ClosePath starts again from the closed subpath's first point.
func (c *RasterContext) rasterize(seq iter.Seq[curve.PathElement]) {
	c.beginRaster()
	var start curve.Point
	open := false
	for el := range seq {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				c.z.ClosePath()
			}
			start, open = el.P0, true
			c.z.MoveTo(f32(start.X), f32(start.Y))
		case curve.ClosePathKind:
			if open {
				c.z.ClosePath()
				open = false
			}
		default:
			end, ok := el.EndPoint()
			if !ok {
				continue
			}
			if !open {
				c.z.MoveTo(f32(start.X), f32(start.Y))
				open = true
			}
			c.z.LineTo(f32(end.X), f32(end.Y))
		}
	}
	if open {
		c.z.ClosePath()
	}
}

func (c *RasterContext) source(p canvas.Paint) image.Image {
	if s, ok := p.(canvas.Solid); ok {
		return image.NewUniform(s.ColorAt(0, 0))
	}
	inv, ok := c.Current().Invert()
	if !ok {
		return image.Transparent
	}
	return &paintImage{paint: p, inv: inv}
}

// deviceBounds is the pixel rectangle covering the transformed user rectangle.
func (c *RasterContext) deviceBounds(x, y, w, h float64) image.Rectangle {
	m := c.Current()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}} {
		px, py := m.Apply(p[0], p[1])
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	return r.Intersect(c.img.Bounds())
}

// paintImage evaluates a paint at pixel centres mapped back to user space.
type paintImage struct {
	paint canvas.Paint
	inv   canvas.Matrix
}

func (p *paintImage) ColorModel() color.Model { return color.NRGBAModel }

func (p *paintImage) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (p *paintImage) At(x, y int) color.Color {
	ux, uy := p.inv.Apply(float64(x)+0.5, float64(y)+0.5)
	return p.paint.ColorAt(ux, uy)
}

func f32(v float64) float32 { return float32(v) }
