// internal/state/bloom_state.go
package state

import (
	"time"

	"tulip-bouquet/internal/scene"
	"tulip-bouquet/pkg/canvas"
)

// BloomState основное состояние, букет качается бесконечно
type BloomState struct {
	renderer *scene.Renderer
}

func NewBloomState(renderer *scene.Renderer) *BloomState {
	return &BloomState{renderer: renderer}
}

func (b *BloomState) Enter() {}

// Update does nothing: the bouquet moves as a function of frame time.
func (b *BloomState) Update(deltaTime float64) {}

func (b *BloomState) Draw(ctx canvas.Context, now time.Duration) {
	b.renderer.Frame(ctx, now)
}

func (b *BloomState) Exit() {}
