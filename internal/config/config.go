// internal/config/config.go
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"time"

	"tulip-bouquet/pkg/render"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Tulips"
	MaxDeltaTime = 0.06

	// Композиция букета, доли от размеров поверхности
	CenterXFrac      = 0.5
	BouquetBaseFrac  = 0.7
	VaseWidthFrac    = 0.24
	VaseHeightFrac   = 0.28
	VaseMaxWidth     = 200
	VaseMaxHeight    = 200
	VaseSinkFrac     = 0.6 // доля высоты вазы, на которую стебли уходят внутрь
	VaseBottomMargin = 12
	VaseBaseHalf     = 8
	VaseLipRise      = 8
	StemEndFrac      = 0.5
	WaterLevelFrac   = 0.55
	WaterHalfFrac    = 0.4

	StemWidth       = 6.0
	StemMinDrop     = 20.0
	StemDropFrac    = 0.45
	VaseStrokeWidth = 2.5
	WaterLineWidth  = 2.0

	ShadowOffsetY = 6.0
	ShadowRadiusX = 20.0
	ShadowRadiusY = 8.0

	BloomHeightFrac = 0.45
	BloomHeightMax  = 60

	// Покачивание: две синусоиды, амплитуды в градусах
	SwayFreqA = 1.5
	SwayAmpA  = 6.0
	SwayFreqB = 2.7
	SwayAmpB  = 2.0
	BloomFreq = 3.0
	BloomAmp  = 0.03

	CaptionOffsetY = 20.0
)

var BackgroundStops = []GradientStop{
	{Offset: 0, Color: render.MustHex("#fff6fb")},
	{Offset: 0.5, Color: render.MustHex("#fff1f7")},
	{Offset: 1, Color: render.MustHex("#fff")},
}

var (
	StemColor        = render.MustHex("#2b8a3e")
	VaseFillColor    = render.MustHex("#5a8dd9")
	VaseStrokeColor  = render.MustHex("#3a5fa0")
	ShadowColor      = render.RGBA(20, 30, 60, 0.15)
	WaterColor       = render.RGBA(100, 160, 220, 0.5)
	HighlightColor   = render.RGBA(255, 255, 255, 0.75)
	DefaultFlowerSet = []Flower{
		{XPct: 0.45, StemH: 120, Color: render.MustHex("#ff7fb3"), Offset: 0, CpX: 18},    // левый, изгиб вправо
		{XPct: 0.5, StemH: 140, Color: render.MustHex("#ffb3e0"), Offset: 0.6, CpX: 0},    // центральный, прямой
		{XPct: 0.55, StemH: 110, Color: render.MustHex("#ff4f9a"), Offset: 1.2, CpX: -18}, // правый, изгиб влево
	}
)

// Flower is one static tulip definition.
type Flower struct {
	XPct   float64 // horizontal position as a fraction of the surface width
	StemH  float64 // head height above the bouquet base
	Color  color.RGBA
	Offset float64 // animation phase, seconds
	CpX    float64 // stem curvature: control point shift from the head
}

// GradientStop is one background gradient stop.
type GradientStop struct {
	Offset float64
	Color  color.RGBA
}

// Flowers returns a copy of the default bouquet so callers can't mutate it.
func Flowers() []Flower {
	return append([]Flower(nil), DefaultFlowerSet...)
}

// Settings holds the runtime knobs that the command line can change.
type Settings struct {
	Width        int
	Height       int
	Title        string
	Caption      string
	CaptionColor string // "#rrggbb"
	FadeIn       time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Width:        ScreenWidth,
		Height:       ScreenHeight,
		Title:        WindowTitle,
		CaptionColor: "#333333",
		FadeIn:       1500 * time.Millisecond,
	}
}

// RegisterFlags binds s to fs; defaults are the current field values.
func (s *Settings) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&s.Width, "width", s.Width, "window width in logical pixels")
	fs.IntVar(&s.Height, "height", s.Height, "window height in logical pixels")
	fs.StringVar(&s.Title, "title", s.Title, "window title")
	fs.StringVar(&s.Caption, "caption", s.Caption, "optional caption drawn under the bouquet")
	fs.StringVar(&s.CaptionColor, "caption-color", s.CaptionColor, "caption colour as #rgb or #rrggbb")
	fs.DurationVar(&s.FadeIn, "fade-in", s.FadeIn, "intro fade-in duration, 0 disables it")
}

var ErrInvalidSettings = errors.New("invalid settings")

func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidSettings, s.Width, s.Height)
	}
	if s.FadeIn < 0 {
		return fmt.Errorf("%w: fade-in %v is negative", ErrInvalidSettings, s.FadeIn)
	}
	if _, err := s.CaptionRGBA(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// CaptionRGBA parses CaptionColor.
func (s Settings) CaptionRGBA() (color.RGBA, error) {
	return render.ParseHex(s.CaptionColor)
}
