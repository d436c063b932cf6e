// Package canvas defines the immediate-mode 2D drawing contract the scene is
// rendered through, together with the path, transform and paint types every
// backend shares.
//
// Coordinates passed to a Context are in user space. The current transform
// maps them to backend pixels; backends start with the surface's base
// transform (usually a device-ratio scale), so user space equals logical
// units.
package canvas

import "image/color"

// LineCap is the shape at the open ends of a stroked subpath.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin is the shape where two stroked segments meet.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// StrokeStyle describes a stroke operation. Width is in user-space units.
type StrokeStyle struct {
	Color color.Color
	Width float64
	Cap   LineCap
	Join  LineJoin
}

// TextAlign positions text horizontally relative to the anchor point.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Context is a 2D immediate-mode drawing context.
type Context interface {
	// Size returns the logical surface size in user units.
	Size() (w, h float64)

	Save()
	Restore()
	// SetTransform replaces the current transform with base·m, where base is
	// the backend's surface transform.
	SetTransform(m Matrix)
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(sx, sy float64)

	// ClearRect makes the rectangle fully transparent.
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, p Paint)
	// Fill fills p with the nonzero winding rule.
	Fill(p *Path, paint Paint)
	Stroke(p *Path, s StrokeStyle)
	// FillText draws a single line of text whose baseline starts at y.
	FillText(s string, x, y float64, c color.Color, align TextAlign)
}
