package meter

import "swr-meter.klederson.com/internal/config"

// RangeState is the auto-range state machine.
type RangeState struct {
	Mode           Mode
	LastTransition Millis
	Switched       bool // False until the first transition; the dwell guard starts then
}

// Update applies hysteresis and the dwell guard. Attempts inside the dwell
// window are dropped, not deferred.
func (r *RangeState) Update(forward float64, now Millis) (Transition, bool) {
	if r.Switched && now.Since(r.LastTransition) < config.ModeDwellMs {
		return Transition{}, false
	}

	next := r.Mode
	switch r.Mode {
	case ModeLow:
		if forward > config.LowScaleMax {
			next = ModeHigh
		}
	case ModeHigh:
		if forward < config.LowScaleMax-config.Hysteresis {
			next = ModeLow
		}
	}
	if next == r.Mode {
		return Transition{}, false
	}

	t := Transition{From: r.Mode, To: next, At: now}
	r.Mode = next
	r.LastTransition = now
	r.Switched = true
	return t, true
}
