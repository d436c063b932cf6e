// internal/bouquet/motion.go
package bouquet

import (
	"math"

	"tulip-bouquet/internal/config"
	"tulip-bouquet/pkg/utils"
)

// SwayDegrees is the wind rotation of a head at local time t (seconds). Two
// sines at unrelated frequencies keep the motion from looking periodic.
func SwayDegrees(t float64) float64 {
	return math.Sin(t*config.SwayFreqA)*config.SwayAmpA + math.Sin(t*config.SwayFreqB)*config.SwayAmpB
}

// Sway is SwayDegrees in radians.
func Sway(t float64) float64 {
	return SwayDegrees(t) * math.Pi / 180
}

// Bloom is the breathing scale of a head. headX desynchronises heads that
// share a phase offset.
func Bloom(t, headX float64) float64 {
	return 1 + config.BloomAmp*math.Sin(t*config.BloomFreq+headX)
}

// BloomHeight is the petal height for a stem, capped at BloomHeightMax.
func BloomHeight(stemH float64) float64 {
	return math.Min(config.BloomHeightMax, Round(stemH*config.BloomHeightFrac))
}

// Round rounds half up, matching how the layout snaps to whole units.
func Round(v float64) float64 {
	return utils.RoundHalfUp(v)
}
