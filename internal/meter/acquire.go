package meter

import (
	"math"

	"swr-meter.klederson.com/internal/config"
)

// Calibrate converts raw samples to watts, clamped to the widest scale.
// The range controller works on this value so that a low-scale clamp cannot
// hide an over-range signal.
func Calibrate(in Inputs) Measurement {
	return Measurement{
		Forward:   clamp(float64(in.Forward)*config.ForwardCalibration, 0, config.HighScaleMax),
		Reflected: clamp(float64(in.Reflected)*config.ReflectedCalibration, 0, config.HighScaleMax),
	}
}

// Measure converts raw samples to watts clamped to the active scale.
// Out-of-range samples are clamped, never rejected.
func Measure(in Inputs, mode Mode) Measurement {
	return Calibrate(in).Clamp(mode)
}

// Clamp limits both powers to [0, mode.FullScale()].
func (m Measurement) Clamp(mode Mode) Measurement {
	fs := mode.FullScale()
	return Measurement{
		Forward:   clamp(m.Forward, 0, fs),
		Reflected: clamp(m.Reflected, 0, fs),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
