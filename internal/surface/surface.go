// Package surface matches the drawing surface to its container: the backing
// store is sized in device pixels and drawing happens in logical units.
package surface

import (
	"math"

	"tulip-bouquet/internal/event"
	"tulip-bouquet/pkg/canvas"
	"tulip-bouquet/pkg/utils"
)

// Surface is one fitted drawing surface.
type Surface struct {
	LogicalW, LogicalH float64
	Ratio              float64
	PixelW, PixelH     int
}

// Fit sizes the backing store for a logicalW×logicalH container at the given
// device pixel ratio. A ratio that is not a positive finite number counts as 1.
func Fit(logicalW, logicalH, ratio float64) Surface {
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		ratio = 1
	}
	return Surface{
		LogicalW: logicalW,
		LogicalH: logicalH,
		Ratio:    ratio,
		PixelW:   pixels(logicalW * ratio),
		PixelH:   pixels(logicalH * ratio),
	}
}

func pixels(v float64) int {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return int(utils.RoundHalfUp(v))
}

// Empty reports a surface with no pixels; frames for it are skipped.
func (s Surface) Empty() bool {
	return s.PixelW <= 0 || s.PixelH <= 0
}

// Transform is the base matrix that maps logical units to pixels.
func (s Surface) Transform() canvas.Matrix {
	return canvas.ScaleMatrix(s.Ratio, s.Ratio)
}

// Logical is the drawable size in logical units, derived back from the
// backing store so rounding shows up the same way the frame sees it.
func (s Surface) Logical() (w, h float64) {
	return float64(s.PixelW) / s.Ratio, float64(s.PixelH) / s.Ratio
}

// Fitter keeps the current surface and announces changes.
type Fitter struct {
	dispatcher *event.Dispatcher
	current    Surface
	fitted     bool
}

// NewFitter creates a fitter. dispatcher may be nil.
func NewFitter(dispatcher *event.Dispatcher) *Fitter {
	return &Fitter{dispatcher: dispatcher}
}

// Fit refits the surface and returns the backing pixel size. It dispatches
// event.SurfaceResized on the first call and whenever the result changes.
func (f *Fitter) Fit(logicalW, logicalH, ratio float64) (pixelW, pixelH int) {
	s := Fit(logicalW, logicalH, ratio)
	if !f.fitted || s != f.current {
		f.current = s
		f.fitted = true
		if f.dispatcher != nil {
			f.dispatcher.Dispatch(event.Event{Type: event.SurfaceResized, Data: s})
		}
	}
	return s.PixelW, s.PixelH
}

// Current is the last fitted surface; the zero Surface before the first Fit.
func (f *Fitter) Current() Surface {
	return f.current
}
