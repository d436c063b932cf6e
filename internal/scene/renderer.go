// Package scene composes one frame of the bouquet on a canvas.Context.
package scene

import (
	"image/color"
	"time"

	"tulip-bouquet/internal/bouquet"
	"tulip-bouquet/internal/config"
	"tulip-bouquet/pkg/canvas"
)

// Renderer draws frames. It keeps its own clock; one Renderer per loop.
type Renderer struct {
	flowers []config.Flower
	clock   Clock

	caption      string
	captionColor color.Color

	// раскладка пересчитывается только при смене размера
	layout       bouquet.Layout
	layoutW      float64
	layoutH      float64
	layoutFitted bool
}

// NewRenderer creates a renderer for flowers. The slice is copied.
func NewRenderer(flowers []config.Flower) *Renderer {
	return &Renderer{
		flowers:      append([]config.Flower(nil), flowers...),
		captionColor: color.RGBA{0x33, 0x33, 0x33, 0xff},
	}
}

// SetCaption sets the text drawn under the bouquet. An empty string hides it.
func (r *Renderer) SetCaption(text string, c color.Color) {
	r.caption = text
	if c != nil {
		r.captionColor = c
	}
}

// Frame draws the complete scene at now, measured from the loop start.
// A context with no area gets nothing.
func (r *Renderer) Frame(ctx canvas.Context, now time.Duration) {
	t, _ := r.clock.Tick(now.Seconds())

	w, h := ctx.Size()
	if !(w > 0) || !(h > 0) {
		return
	}
	ctx.SetTransform(canvas.Identity)

	r.drawBackground(ctx, w, h)
	l := r.Layout(w, h)
	r.drawStems(ctx, l)
	r.drawVase(ctx, l)
	for _, hd := range l.Heads {
		drawHead(ctx, hd, t+hd.Flower.Offset)
	}
	if r.caption != "" {
		ctx.FillText(r.caption, w/2, h-config.CaptionOffsetY, r.captionColor, canvas.AlignCenter)
	}
}

// Layout returns the geometry for a w×h surface, reusing the last one when
// the size has not changed.
func (r *Renderer) Layout(w, h float64) bouquet.Layout {
	if !r.layoutFitted || w != r.layoutW || h != r.layoutH {
		r.layout = bouquet.ComputeLayout(w, h, r.flowers)
		r.layoutW, r.layoutH = w, h
		r.layoutFitted = true
	}
	return r.layout
}

// Time is the scene time of the last frame, in seconds.
func (r *Renderer) Time() float64 { return r.clock.Now() }

// LastDelta is the delta of the last frame in seconds. Nothing in the scene
// integrates over it; motion is a pure function of Time.
func (r *Renderer) LastDelta() float64 { return r.clock.Delta() }

// Background is the vertical gradient painted behind everything.
func Background(h float64) *canvas.LinearGradient {
	g := canvas.NewLinearGradient(0, 0, 0, h)
	for _, s := range config.BackgroundStops {
		g.AddColorStop(s.Offset, s.Color)
	}
	return g
}

func (r *Renderer) drawBackground(ctx canvas.Context, w, h float64) {
	ctx.ClearRect(0, 0, w, h)
	ctx.FillRect(0, 0, w, h, Background(h))
}

func (r *Renderer) drawStems(ctx canvas.Context, l bouquet.Layout) {
	style := canvas.StrokeStyle{
		Color: config.StemColor,
		Width: config.StemWidth,
		Cap:   canvas.CapRound,
	}
	for _, hd := range l.Heads {
		ctx.Stroke(l.StemPath(hd), style)
	}
}

func (r *Renderer) drawVase(ctx canvas.Context, l bouquet.Layout) {
	ctx.Fill(l.ShadowPath(), canvas.Solid{Color: config.ShadowColor})

	vase := l.VasePath()
	ctx.Fill(vase, canvas.Solid{Color: config.VaseFillColor})
	ctx.Stroke(vase, canvas.StrokeStyle{
		Color: config.VaseStrokeColor,
		Width: config.VaseStrokeWidth,
		Cap:   canvas.CapRound,
	})

	ctx.Stroke(l.WaterPath(), canvas.StrokeStyle{
		Color: config.WaterColor,
		Width: config.WaterLineWidth,
		Cap:   canvas.CapRound,
	})
}

// drawHead draws one tulip head at local time t. Petals are drawn around the
// origin, so sway and bloom pivot on the stem tip.
func drawHead(ctx canvas.Context, hd bouquet.Head, t float64) {
	bh := bouquet.BloomHeight(hd.Flower.StemH)
	bloom := bouquet.Bloom(t, hd.X)

	ctx.Save()
	defer ctx.Restore()
	ctx.Translate(hd.X, hd.Y)
	ctx.Rotate(bouquet.Sway(t))
	ctx.Scale(bloom, bloom)

	petal := canvas.Solid{Color: hd.Flower.Color}
	for _, p := range bouquet.PetalPaths(bh) {
		ctx.Fill(p, petal)
	}
	ctx.Fill(bouquet.HighlightPath(bh), canvas.Solid{Color: config.HighlightColor})
}
