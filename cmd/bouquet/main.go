// cmd/bouquet/main.go
package main

import (
	"flag"
	"log"

	"tulip-bouquet/internal/app"
	"tulip-bouquet/internal/config"
)

func main() {
	settings := config.DefaultSettings()
	settings.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := settings.Validate(); err != nil {
		log.Fatal(err)
	}

	log.Printf("starting %q at %dx%d", settings.Title, settings.Width, settings.Height)
	if err := app.Run(settings); err != nil {
		log.Fatal(err)
	}
}
