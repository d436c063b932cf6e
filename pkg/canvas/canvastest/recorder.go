// Package canvastest provides a canvas.Context that records calls instead of
// drawing them.
package canvastest

import (
	"image/color"

	"tulip-bouquet/pkg/canvas"
)

// Kind names a recorded call.
type Kind string

const (
	KindSave      Kind = "save"
	KindRestore   Kind = "restore"
	KindTransform Kind = "transform"
	KindClearRect Kind = "clearRect"
	KindFillRect  Kind = "fillRect"
	KindFill      Kind = "fill"
	KindStroke    Kind = "stroke"
	KindFillText  Kind = "fillText"
)

// Call is one recorded operation. Matrix is the transform in effect when the
// call was made; Rect is set for ClearRect and FillRect.
type Call struct {
	Kind   Kind
	Matrix canvas.Matrix
	Rect   [4]float64
	Path   *canvas.Path
	Paint  canvas.Paint
	Stroke canvas.StrokeStyle
	Text   string
	Color  color.Color
}

// Recorder implements canvas.Context.
type Recorder struct {
	canvas.Stack
	W, H  float64
	Calls []Call
}

var _ canvas.Context = (*Recorder)(nil)

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Stack: canvas.NewStack(canvas.Identity), W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Save() {
	r.Stack.Save()
	r.add(Call{Kind: KindSave})
}

func (r *Recorder) Restore() {
	r.Stack.Restore()
	r.add(Call{Kind: KindRestore})
}

func (r *Recorder) SetTransform(m canvas.Matrix) {
	r.Stack.SetTransform(m)
	r.add(Call{Kind: KindTransform})
}

func (r *Recorder) Translate(x, y float64) {
	r.Stack.Translate(x, y)
	r.add(Call{Kind: KindTransform})
}

func (r *Recorder) Rotate(angle float64) {
	r.Stack.Rotate(angle)
	r.add(Call{Kind: KindTransform})
}

func (r *Recorder) Scale(sx, sy float64) {
	r.Stack.Scale(sx, sy)
	r.add(Call{Kind: KindTransform})
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.add(Call{Kind: KindClearRect, Rect: [4]float64{x, y, w, h}})
}

func (r *Recorder) FillRect(x, y, w, h float64, p canvas.Paint) {
	r.add(Call{Kind: KindFillRect, Rect: [4]float64{x, y, w, h}, Paint: p})
}

func (r *Recorder) Fill(p *canvas.Path, paint canvas.Paint) {
	r.add(Call{Kind: KindFill, Path: p, Paint: paint})
}

func (r *Recorder) Stroke(p *canvas.Path, s canvas.StrokeStyle) {
	r.add(Call{Kind: KindStroke, Path: p, Stroke: s})
}

func (r *Recorder) FillText(s string, x, y float64, c color.Color, _ canvas.TextAlign) {
	r.add(Call{Kind: KindFillText, Text: s, Rect: [4]float64{x, y, 0, 0}, Color: c})
}

// Kinds lists the kinds of all calls, skipping the ones in ignore.
func (r *Recorder) Kinds(ignore ...Kind) []Kind {
	var out []Kind
next:
	for _, c := range r.Calls {
		for _, k := range ignore {
			if c.Kind == k {
				continue next
			}
		}
		out = append(out, c.Kind)
	}
	return out
}

// Reset forgets every recorded call and the transform state.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.Stack.Reset(canvas.Identity)
}

func (r *Recorder) add(c Call) {
	c.Matrix = r.Current()
	r.Calls = append(r.Calls, c)
}
