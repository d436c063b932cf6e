// pkg/canvas/paint.go
package canvas

import (
	"image/color"
	"math"
	"sort"

	"tulip-bouquet/pkg/utils"
)

// Paint is what a fill operation covers pixels with: a Solid colour or a
// *LinearGradient.
type Paint interface {
	// ColorAt returns the non-premultiplied colour at user-space (x, y).
	ColorAt(x, y float64) color.NRGBA
}

// Solid paints a single colour.
type Solid struct {
	Color color.Color
}

func (s Solid) ColorAt(_, _ float64) color.NRGBA {
	if s.Color == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(s.Color).(color.NRGBA)
}

// ColorStop is one gradient stop. Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  color.Color
}

// LinearGradient interpolates between stops along the axis from (X0, Y0)
// to (X1, Y1). Points beyond either end take the colour of the end stop.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	stops          []ColorStop
}

func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop inserts a stop, keeping stops ordered by offset. Offsets are
// clamped to [0, 1].
func (g *LinearGradient) AddColorStop(offset float64, c color.Color) {
	offset = utils.Clamp01(offset)
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].Offset > offset })
	g.stops = append(g.stops, ColorStop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = ColorStop{Offset: offset, Color: c}
}

// Stops returns the ordered stops.
func (g *LinearGradient) Stops() []ColorStop {
	return g.stops
}

// Param projects (x, y) onto the gradient axis; 0 is the start, 1 the end.
func (g *LinearGradient) Param(x, y float64) float64 {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	return ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
}

func (g *LinearGradient) ColorAt(x, y float64) color.NRGBA {
	return g.At(g.Param(x, y))
}

// At returns the colour at axis parameter t.
func (g *LinearGradient) At(t float64) color.NRGBA {
	if len(g.stops) == 0 {
		return color.NRGBA{}
	}
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if t <= first.Offset {
		return toNRGBA(first.Color)
	}
	if t >= last.Offset {
		return toNRGBA(last.Color)
	}
	for i := 1; i < len(g.stops); i++ {
		a, b := g.stops[i-1], g.stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return toNRGBA(b.Color)
		}
		return lerpNRGBA(toNRGBA(a.Color), toNRGBA(b.Color), (t-a.Offset)/span)
	}
	return toNRGBA(last.Color)
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(utils.Lerp(float64(x), float64(y), t)))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
