package config

import (
	"flag"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.Equal(t, ScreenWidth, s.Width)
	assert.Equal(t, ScreenHeight, s.Height)

	c, err := s.CaptionRGBA()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x33, 0x33, 0x33, 0xff}, c)
}

func TestValidateRejects(t *testing.T) {
	for name, mut := range map[string]func(*Settings){
		"zero width":      func(s *Settings) { s.Width = 0 },
		"negative height": func(s *Settings) { s.Height = -1 },
		"negative fade":   func(s *Settings) { s.FadeIn = -time.Second },
		"bad colour":      func(s *Settings) { s.CaptionColor = "#12" },
	} {
		s := DefaultSettings()
		mut(&s)
		assert.ErrorIs(t, s.Validate(), ErrInvalidSettings, name)
	}
}

func TestRegisterFlags(t *testing.T) {
	s := DefaultSettings()
	fs := flag.NewFlagSet("bouquet", flag.ContinueOnError)
	s.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-width", "1024", "-height=768", "-title", "Flores",
		"-caption", "Script funcionando", "-caption-color", "#aa0000", "-fade-in", "0",
	}))

	assert.Equal(t, Settings{
		Width:        1024,
		Height:       768,
		Title:        "Flores",
		Caption:      "Script funcionando",
		CaptionColor: "#aa0000",
	}, s)
	assert.NoError(t, s.Validate())
}

func TestFlowersIsACopy(t *testing.T) {
	f := Flowers()
	require.Len(t, f, 3)
	f[0].StemH = 999
	assert.Equal(t, 120.0, DefaultFlowerSet[0].StemH)
	assert.Equal(t, 110.0, Flowers()[2].StemH)
}

func TestPalette(t *testing.T) {
	assert.Equal(t, color.RGBA{20 * 38 / 255, 30 * 38 / 255, 60 * 38 / 255, 38}, ShadowColor)
	require.Len(t, BackgroundStops, 3)
	assert.Equal(t, 0.5, BackgroundStops[1].Offset)
}
