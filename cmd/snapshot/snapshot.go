// cmd/snapshot/snapshot.go
package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"tulip-bouquet/internal/config"
	"tulip-bouquet/internal/scene"
	"tulip-bouquet/internal/surface"
	"tulip-bouquet/pkg/render"
)

type options struct {
	Width, Height int
	Ratio         float64
	At            time.Duration
	Caption       string
	CaptionColor  string
	Out           string
}

var errBadOptions = errors.New("invalid snapshot options")

func (o options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: size %s must be positive", errBadOptions, o.size())
	}
	if !(o.Ratio > 0) {
		return fmt.Errorf("%w: ratio %v must be positive", errBadOptions, o.Ratio)
	}
	if o.At < 0 {
		return fmt.Errorf("%w: time %v is negative", errBadOptions, o.At)
	}
	if o.Out == "" {
		return fmt.Errorf("%w: no output file", errBadOptions)
	}
	return nil
}

func (o options) size() string {
	return fmt.Sprintf("%dx%d", o.Width, o.Height)
}

// renderFrame draws the scene at o.At on a fitted software surface.
func renderFrame(o options) (*image.RGBA, error) {
	s := surface.Fit(float64(o.Width), float64(o.Height), o.Ratio)
	ctx, err := render.NewRasterContext(s.PixelW, s.PixelH, s.Ratio)
	if err != nil {
		return nil, fmt.Errorf("surface %s: %w", o.size(), err)
	}
	col, err := render.ParseHex(o.CaptionColor)
	if err != nil {
		return nil, fmt.Errorf("caption colour: %w", err)
	}
	r := scene.NewRenderer(config.Flowers())
	r.SetCaption(o.Caption, col)
	r.Frame(ctx, o.At)
	return ctx.Image(), nil
}

func encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func writeSnapshot(o options) (err error) {
	img, err := renderFrame(o)
	if err != nil {
		return err
	}
	f, err := os.Create(o.Out)
	if err != nil {
		return fmt.Errorf("create %s: %w", o.Out, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", o.Out, cerr)
		}
	}()
	return encode(f, img)
}
