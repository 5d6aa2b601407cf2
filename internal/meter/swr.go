package meter

import "swr-meter.klederson.com/internal/config"

// Estimate derives SWR from forward and reflected power.
//
// Negligible reflected power reads as a perfect match. Reflected power with no
// forward carrier reads as the worst case rather than dividing by zero.
func Estimate(m Measurement) Reading {
	if m.Reflected < config.MinReflected {
		return Reading{SWR: config.MinSWR}
	}
	if m.Forward < config.MinForward {
		return Reading{SWR: config.MaxSWR}
	}
	gamma := clamp(m.Reflected/m.Forward, config.MinGamma, config.MaxGamma)
	swr := (1 + gamma) / (1 - gamma)
	return Reading{SWR: clamp(swr, config.MinSWR, config.MaxSWR)}
}
