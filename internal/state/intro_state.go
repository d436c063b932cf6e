// internal/state/intro_state.go
package state

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"tulip-bouquet/internal/config"
	"tulip-bouquet/internal/scene"
	"tulip-bouquet/pkg/canvas"
	"tulip-bouquet/pkg/render"
)

// IntroState fades the bouquet in from the background colour and then hands
// over to next.
type IntroState struct {
	sm       *StateMachine
	renderer *scene.Renderer
	duration time.Duration
	next     State

	tween *gween.Tween
	veil  float64 // непрозрачность завесы, 1 -> 0
}

func NewIntroState(sm *StateMachine, renderer *scene.Renderer, duration time.Duration, next State) *IntroState {
	return &IntroState{sm: sm, renderer: renderer, duration: duration, next: next}
}

// Initial is the first state of a run: an intro when fadeIn is positive,
// otherwise straight to the bloom state.
func Initial(sm *StateMachine, renderer *scene.Renderer, fadeIn time.Duration) State {
	bloom := NewBloomState(renderer)
	if fadeIn <= 0 {
		return bloom
	}
	return NewIntroState(sm, renderer, fadeIn, bloom)
}

func (s *IntroState) Enter() {
	s.tween = gween.New(0, 1, float32(s.duration.Seconds()), ease.OutCubic)
	s.veil = 1
}

func (s *IntroState) Update(deltaTime float64) {
	if s.tween == nil {
		return
	}
	v, finished := s.tween.Update(float32(deltaTime))
	s.veil = 1 - float64(v)
	if finished {
		s.sm.SetState(s.next)
	}
}

// Veil is the current opacity of the cover drawn over the scene.
func (s *IntroState) Veil() float64 {
	return s.veil
}

func (s *IntroState) Draw(ctx canvas.Context, now time.Duration) {
	s.renderer.Frame(ctx, now)
	if s.veil <= 0 {
		return
	}
	w, h := ctx.Size()
	if !(w > 0) || !(h > 0) {
		return
	}
	veil := render.WithAlpha(config.BackgroundStops[0].Color, s.veil)
	ctx.FillRect(0, 0, w, h, canvas.Solid{Color: veil})
}

func (s *IntroState) Exit() {
	s.tween = nil
}
