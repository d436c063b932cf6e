// internal/app/game.go
package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"tulip-bouquet/internal/config"
	"tulip-bouquet/internal/event"
	"tulip-bouquet/internal/scene"
	"tulip-bouquet/internal/state"
	"tulip-bouquet/internal/surface"
	"tulip-bouquet/pkg/render/ebitenctx"
)

// Game drives the bouquet from Ebitengine's loop. Update, Draw and LayoutF
// all run on the game goroutine.
type Game struct {
	StateMachine    *state.StateMachine
	EventDispatcher *event.Dispatcher
	Fitter          *surface.Fitter
	Renderer        *scene.Renderer

	ctx            *ebitenctx.Context
	start          time.Time
	lastUpdateTime time.Time
}

var (
	_ ebiten.Game      = (*Game)(nil)
	_ ebiten.LayoutFer = (*Game)(nil)
)

// NewGame wires the scene, states and surface fitter for settings.
func NewGame(settings config.Settings) (*Game, error) {
	captionColor, err := settings.CaptionRGBA()
	if err != nil {
		return nil, fmt.Errorf("caption colour: %w", err)
	}
	renderer := scene.NewRenderer(config.Flowers())
	renderer.SetCaption(settings.Caption, captionColor)

	dispatcher := event.NewDispatcher()
	dispatcher.Subscribe(event.SurfaceResized, &resizeLogger{})

	sm := state.NewStateMachine()
	sm.SetState(state.Initial(sm, renderer, settings.FadeIn))

	now := time.Now()
	return &Game{
		StateMachine:    sm,
		EventDispatcher: dispatcher,
		Fitter:          surface.NewFitter(dispatcher),
		Renderer:        renderer,
		ctx:             ebitenctx.New(),
		start:           now,
		lastUpdateTime:  now,
	}, nil
}

func (g *Game) Update() error {
	now := time.Now()
	deltaTime := clampDelta(now.Sub(g.lastUpdateTime).Seconds(), config.MaxDeltaTime)
	g.lastUpdateTime = now
	g.StateMachine.Update(deltaTime)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// нет поверхности - пропускаем кадр молча
	if err := g.ctx.Begin(screen, g.Fitter.Current().Ratio); err != nil {
		return
	}
	g.StateMachine.Draw(g.ctx, time.Since(g.start))
}

// LayoutF sizes the screen in device pixels so the bouquet stays sharp on
// high-density displays.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.layout(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
}

func (g *Game) layout(logicalW, logicalH, ratio float64) (float64, float64) {
	w, h := g.Fitter.Fit(logicalW, logicalH, ratio)
	return float64(w), float64(h)
}

// clampDelta limits a frame step to [0, limit].
func clampDelta(dt, limit float64) float64 {
	if !(dt > 0) {
		return 0
	}
	return min(dt, limit)
}

// Layout is only called when LayoutF is not used.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}

// Run opens the window and blocks until it is closed.
func Run(settings config.Settings) error {
	g, err := NewGame(settings)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(settings.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
