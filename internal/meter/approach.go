package meter

import (
	"math"

	"swr-meter.klederson.com/internal/config"
)

// Approach moves a displayed value toward its target by a fixed fraction of the
// remaining gap per cycle, snapping once the gap is under Snap.
type Approach struct {
	Damping float64
	Snap    float64
}

var (
	forwardApproach = Approach{Damping: config.Damping, Snap: config.SnapForward}
	swrApproach     = Approach{Damping: config.Damping, Snap: config.SnapSWR}
	barApproach     = Approach{Damping: config.Damping, Snap: config.SnapBar}
)

// Step returns the next displayed value and whether it has reached target.
func (a Approach) Step(cur, target float64) (float64, bool) {
	gap := target - cur
	if math.Abs(gap) < a.Snap {
		return target, true
	}
	return cur + gap*a.Damping, false
}
