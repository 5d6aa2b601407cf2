package meter

import "swr-meter.klederson.com/internal/config"

// PeakState is a decaying maximum of forward power.
type PeakState struct {
	Power     float64 // 0 means no peak is shown
	Timestamp Millis
}

// Update records a new maximum above the noise floor and expires the peak after
// the hold window or as soon as the live signal drops below the noise floor.
// It reports whether Power changed.
func (p *PeakState) Update(forward float64, now Millis) bool {
	changed := false
	if forward > config.NoiseFloorW && forward > p.Power {
		p.Power = forward
		p.Timestamp = now
		changed = true
	}
	if now.Since(p.Timestamp) > config.PeakHoldMs || forward < config.NoiseFloorW {
		if p.Power != 0 {
			p.Power = 0
			changed = true
		}
	}
	return changed
}
