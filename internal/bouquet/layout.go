// Package bouquet computes the geometry of the tulip bouquet: where the
// heads, stems and vase go for a given surface size, how the heads move over
// time and the paths of every shape. Nothing here draws.
package bouquet

import (
	"math"

	"tulip-bouquet/internal/config"
	"tulip-bouquet/pkg/canvas"
)

// Vase is the vase rectangle in logical units. Top is the body top; the lip
// rises VaseLipRise above it.
type Vase struct {
	Width, Height float64
	Top, Bottom   float64
}

// Head is a flower head position with the stem control point that bends its
// stem toward the vase.
type Head struct {
	Flower config.Flower
	X, Y   float64
	CtrlX  float64
	CtrlY  float64
}

// Layout is the frame geometry for one surface size.
type Layout struct {
	W, H    float64
	CenterX float64
	// BaseY is the bouquet base line; heads sit StemH above it.
	BaseY float64
	Vase  Vase
	// StemEndY is the height of the convergence point (CenterX, StemEndY).
	StemEndY float64
	WaterY   float64
	Heads    []Head
	MaxStem  float64
}

// ComputeLayout lays out flowers on a w×h surface. It is well-defined for
// any positive size; the vase is pulled up so its bottom stays at least
// VaseBottomMargin above the lower edge.
func ComputeLayout(w, h float64, flowers []config.Flower) Layout {
	l := Layout{
		W:       w,
		H:       h,
		CenterX: Round(w * config.CenterXFrac),
		BaseY:   Round(h * config.BouquetBaseFrac),
	}
	for _, f := range flowers {
		l.MaxStem = math.Max(l.MaxStem, f.StemH)
	}

	v := Vase{
		Width:  math.Min(config.VaseMaxWidth, Round(w*config.VaseWidthFrac)),
		Height: math.Min(config.VaseMaxHeight, Round(h*config.VaseHeightFrac)),
	}
	// стебли уходят в вазу до середины
	v.Top = l.BaseY + l.MaxStem - Round(v.Height*config.VaseSinkFrac)
	v.Bottom = v.Top + v.Height
	if limit := h - config.VaseBottomMargin; v.Bottom > limit {
		v.Bottom = limit
		v.Top = v.Bottom - v.Height
	}
	l.Vase = v
	l.StemEndY = Round(v.Top + v.Height*config.StemEndFrac)
	l.WaterY = Round(v.Top + v.Height*config.WaterLevelFrac)

	l.Heads = make([]Head, len(flowers))
	for i, f := range flowers {
		hd := Head{
			Flower: f,
			X:      Round(w * f.XPct),
			Y:      l.BaseY - f.StemH,
		}
		hd.CtrlX = hd.X + f.CpX
		hd.CtrlY = hd.Y + math.Max(config.StemMinDrop, (l.StemEndY-hd.Y)*config.StemDropFrac)
		l.Heads[i] = hd
	}
	return l
}

// Convergence is the point where every stem ends.
func (l Layout) Convergence() canvas.Point {
	return canvas.Point{X: l.CenterX, Y: l.StemEndY}
}
