package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tulip-bouquet/internal/event"
	"tulip-bouquet/pkg/canvas"
)

func TestFit(t *testing.T) {
	s := Fit(800, 600, 2)
	assert.Equal(t, Surface{LogicalW: 800, LogicalH: 600, Ratio: 2, PixelW: 1600, PixelH: 1200}, s)

	s = Fit(333, 101, 1.5)
	assert.Equal(t, 500, s.PixelW, "499.5 rounds up")
	assert.Equal(t, 152, s.PixelH)
	w, h := s.Logical()
	assert.InDelta(t, 500/1.5, w, 1e-9)
	assert.InDelta(t, 152/1.5, h, 1e-9)
}

func TestFitBadRatio(t *testing.T) {
	for _, r := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		s := Fit(640, 480, r)
		assert.Equal(t, 1.0, s.Ratio, "ratio %v", r)
		assert.Equal(t, 640, s.PixelW)
		assert.Equal(t, 480, s.PixelH)
	}
}

func TestFitEmpty(t *testing.T) {
	assert.True(t, Fit(0, 600, 1).Empty())
	assert.True(t, Fit(800, -1, 1).Empty())
	assert.True(t, Fit(0.2, 0.2, 1).Empty())
	assert.False(t, Fit(1, 1, 1).Empty())
}

func TestTransform(t *testing.T) {
	m := Fit(10, 10, 3).Transform()
	assert.Equal(t, canvas.Point{X: 6, Y: 9}, m.ApplyPoint(canvas.Point{X: 2, Y: 3}))
}

type resizes struct{ got []Surface }

func (r *resizes) OnEvent(e event.Event) {
	r.got = append(r.got, e.Data.(Surface))
}

func TestFitterDispatchesOnChange(t *testing.T) {
	d := event.NewDispatcher()
	r := &resizes{}
	d.Subscribe(event.SurfaceResized, r)
	f := NewFitter(d)

	w, h := f.Fit(800, 600, 1)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	f.Fit(800, 600, 1)
	f.Fit(800, 600, 2)
	f.Fit(1024, 768, 2)
	f.Fit(1024, 768, 2)

	require.Len(t, r.got, 3)
	assert.Equal(t, 1.0, r.got[0].Ratio)
	assert.Equal(t, 1600, r.got[1].PixelW)
	assert.Equal(t, Fit(1024, 768, 2), r.got[2])
	assert.Equal(t, r.got[2], f.Current())
}

func TestFitterWithoutDispatcher(t *testing.T) {
	f := NewFitter(nil)
	assert.Equal(t, Surface{}, f.Current())
	w, h := f.Fit(10, 20, 2)
	assert.Equal(t, 20, w)
	assert.Equal(t, 40, h)
}
