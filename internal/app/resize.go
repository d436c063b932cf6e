// internal/app/resize.go
package app

import (
	"log"

	"tulip-bouquet/internal/event"
	"tulip-bouquet/internal/surface"
)

// resizeLogger logs every surface change once.
type resizeLogger struct{}

func (l *resizeLogger) OnEvent(e event.Event) {
	s, ok := e.Data.(surface.Surface)
	if !ok {
		return
	}
	log.Printf("surface %.0fx%.0f at ratio %.2f, backing store %dx%d", s.LogicalW, s.LogicalH, s.Ratio, s.PixelW, s.PixelH)
}
