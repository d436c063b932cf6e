// internal/event/types.go
package event

const (
	// SurfaceResized carries the new surface.Surface as Data.
	SurfaceResized EventType = "SurfaceResized" // Поверхность изменила размер или плотность
)
