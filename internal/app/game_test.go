package app

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tulip-bouquet/internal/config"
	"tulip-bouquet/internal/event"
	"tulip-bouquet/internal/state"
	"tulip-bouquet/internal/surface"
)

type countingListener struct {
	events []event.Event
}

func (l *countingListener) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func newTestGame(t *testing.T, fadeIn time.Duration) *Game {
	t.Helper()
	settings := config.DefaultSettings()
	settings.FadeIn = fadeIn
	g, err := NewGame(settings)
	require.NoError(t, err)
	return g
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"normal frame", 0.016, 0.016},
		{"at limit", config.MaxDeltaTime, config.MaxDeltaTime},
		{"stall", 5, config.MaxDeltaTime},
		{"clock went back", -1, 0},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampDelta(tt.dt, config.MaxDeltaTime))
		})
	}
}

func TestUpdateClampsStall(t *testing.T) {
	g := newTestGame(t, time.Second)
	require.IsType(t, &state.IntroState{}, g.StateMachine.Current())

	// пять секунд без кадров не должны проглотить секундное появление
	g.lastUpdateTime = time.Now().Add(-5 * time.Second)
	require.NoError(t, g.Update())
	intro, ok := g.StateMachine.Current().(*state.IntroState)
	require.True(t, ok)
	assert.Greater(t, intro.Veil(), 0.5)
}

func TestDrawSkipsMissingScreen(t *testing.T) {
	g := newTestGame(t, 0)
	g.start = time.Now().Add(-time.Second)
	assert.NotPanics(t, func() { g.Draw(nil) })
	assert.Zero(t, g.Renderer.Time(), "no frame was drawn")
}

func TestLayoutFitsAtRatio(t *testing.T) {
	g := newTestGame(t, 0)
	l := &countingListener{}
	g.EventDispatcher.Subscribe(event.SurfaceResized, l)

	w, h := g.layout(400, 300, 2)
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)
	assert.Equal(t, 2.0, g.Fitter.Current().Ratio)

	require.Len(t, l.events, 1)
	s, ok := l.events[0].Data.(surface.Surface)
	require.True(t, ok)
	assert.Equal(t, 400.0, s.LogicalW)

	// тот же размер - без повторного события
	g.layout(400, 300, 2)
	assert.Len(t, l.events, 1)
}
