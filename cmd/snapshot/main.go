// cmd/snapshot/main.go
package main

import (
	"flag"
	"log"
	"time"

	"tulip-bouquet/internal/config"
)

func main() {
	opts := defaultOptions()
	opts.registerFlags(flag.CommandLine)
	flag.Parse()

	if err := opts.validate(); err != nil {
		log.Fatal(err)
	}
	if err := writeSnapshot(opts); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%s at %v)", opts.Out, opts.size(), opts.At.Round(time.Millisecond))
}

// registerFlags binds every option to a flag on fs.
func (o *options) registerFlags(fs *flag.FlagSet) {
	fs.IntVar(&o.Width, "width", o.Width, "frame width in logical pixels")
	fs.IntVar(&o.Height, "height", o.Height, "frame height in logical pixels")
	fs.Float64Var(&o.Ratio, "ratio", o.Ratio, "device pixel ratio")
	fs.DurationVar(&o.At, "t", o.At, "scene time of the frame")
	fs.StringVar(&o.Caption, "caption", o.Caption, "optional caption")
	fs.StringVar(&o.CaptionColor, "caption-color", o.CaptionColor, "caption colour as #rgb or #rrggbb")
	fs.StringVar(&o.Out, "o", o.Out, "output PNG file")
}

func defaultOptions() options {
	s := config.DefaultSettings()
	return options{
		Width:        s.Width,
		Height:       s.Height,
		Ratio:        1,
		At:           2 * time.Second,
		CaptionColor: s.CaptionColor,
		Out:          "bouquet.png",
	}
}
