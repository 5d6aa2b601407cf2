package meter

import (
	"math"

	"swr-meter.klederson.com/internal/config"
)

// PowerBarLength maps forward power over [0, fullScale] onto [0, BarWidth] pixels.
func PowerBarLength(forward, fullScale float64) int {
	if fullScale <= 0 {
		return 0
	}
	n := math.Round(clamp(forward, 0, fullScale) / fullScale * config.BarWidth)
	return int(clamp(n, 0, config.BarWidth))
}

// SWRBarLength maps SWR excess over [1, SWRBarMax] onto [0, BarWidth] pixels.
func SWRBarLength(swr float64) int {
	if !(swr > config.MinSWR) {
		return 0
	}
	excess := clamp(swr, config.MinSWR, config.SWRBarMax) - config.MinSWR
	n := math.Round(excess / (config.SWRBarMax - config.MinSWR) * config.BarWidth)
	return int(clamp(n, 0, config.BarWidth))
}

// Detect compares fresh values against what is displayed. The Mode and Peak
// flags are events and are never set here.
func Detect(m Measurement, r Reading, d DisplayState, rs RangeState) DirtyFlags {
	return DirtyFlags{
		Forward:  math.Abs(m.Forward-d.Forward) > config.ForwardEpsilon,
		SWR:      math.Abs(r.SWR-d.SWR) > config.SWREpsilon,
		PowerBar: float64(PowerBarLength(m.Forward, rs.Mode.FullScale())) != d.PowerBar,
		SWRBar:   float64(SWRBarLength(r.SWR)) != d.SWRBar,
	}
}
