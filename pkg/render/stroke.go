// pkg/render/stroke.go
package render

import (
	"honnef.co/go/curve"

	"tulip-bouquet/pkg/canvas"
)

// curveStroke maps a canvas stroke style onto curve's stroker. Width stays
// in user units; both ends get the same cap.
func curveStroke(s canvas.StrokeStyle) curve.Stroke {
	st := curve.Stroke{Width: s.Width, MiterLimit: miterLimit}
	switch s.Join {
	case canvas.JoinRound:
		st.Join = curve.RoundJoin
	case canvas.JoinBevel:
		st.Join = curve.BevelJoin
	default:
		st.Join = curve.MiterJoin
	}
	switch s.Cap {
	case canvas.CapRound:
		st = st.WithCaps(curve.RoundCap)
	case canvas.CapSquare:
		st = st.WithCaps(curve.SquareCap)
	default:
		st = st.WithCaps(curve.ButtCap)
	}
	return st
}
