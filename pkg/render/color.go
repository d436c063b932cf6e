// pkg/render/color.go
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"tulip-bouquet/pkg/utils"
)

// ErrBadColor is returned by ParseHex for malformed input.
var ErrBadColor = errors.New("render: malformed hex color")

// ParseHex parses "#rgb" or "#rrggbb" into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHex is ParseHex for literals known to be valid.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA builds a colour the way CSS rgba() does: straight 8-bit channels and
// an alpha in [0, 1].
func RGBA(r, g, b uint8, a float64) color.RGBA {
	alpha := uint8(math.Round(utils.Clamp01(a) * 255))
	return color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: b, A: alpha}).(color.RGBA)
}

// WithAlpha replaces the alpha of c, keeping its straight colour.
func WithAlpha(c color.Color, a float64) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, a)
}
