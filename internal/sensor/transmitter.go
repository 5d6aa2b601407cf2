package sensor

import (
	"math"
	"math/rand"
	"time"

	"swr-meter.klederson.com/internal/config"
)

// Transmitter is a demo Sampler: a keyed carrier that walks through both power
// scales with a slowly drifting antenna mismatch and a little detector noise.
type Transmitter struct {
	rng   *rand.Rand
	start time.Time
	now   func() time.Time
	noise float64
}

// profile is one 16 s loop of (duration, watts) steps; ramps interpolate from
// the previous level.
var profile = []struct {
	d     time.Duration
	watts float64
	ramp  bool
}{
	{1 * time.Second, 0, false},
	{4 * time.Second, 42, true},
	{2 * time.Second, 42, false},
	{3 * time.Second, 140, false},
	{2 * time.Second, 48, false},
	{2 * time.Second, 20, false},
	{2 * time.Second, 0, false},
}

// NewTransmitter creates a demo source with a deterministic noise sequence.
func NewTransmitter(seed int64) *Transmitter {
	return newTransmitterWithClock(seed, time.Now)
}

func newTransmitterWithClock(seed int64, now func() time.Time) *Transmitter {
	return &Transmitter{
		rng:   rand.New(rand.NewSource(seed)),
		start: now(),
		now:   now,
		noise: 0.01,
	}
}

// Power returns the noise-free forward and reflected power at elapsed time at.
func (t *Transmitter) Power(at time.Duration) (forward, reflected float64) {
	var period time.Duration
	for _, p := range profile {
		period += p.d
	}
	at %= period
	secs := float64(at) / float64(time.Second)

	prev := 0.0
	for _, p := range profile {
		if at < p.d {
			forward = p.watts
			if p.ramp {
				forward = prev + (p.watts-prev)*float64(at)/float64(p.d)
			}
			break
		}
		at -= p.d
		prev = p.watts
	}

	// Mismatch wanders between SWR 1.3 and 2.2 over nine seconds.
	swr := 1.75 + 0.45*math.Sin(2*math.Pi*secs/9)
	gamma := (swr - 1) / (swr + 1)
	return forward, forward * gamma
}

// ReadChannel returns a raw detector sample for the current instant.
func (t *Transmitter) ReadChannel(ch Channel) int {
	fwd, ref := t.Power(t.now().Sub(t.start))
	if ch == ChannelReflected {
		return t.raw(ref, config.ReflectedCalibration)
	}
	return t.raw(fwd, config.ForwardCalibration)
}

// Sample returns both detector samples for one instant.
func (t *Transmitter) Sample() (forward, reflected int) {
	fwd, ref := t.Power(t.now().Sub(t.start))
	return t.raw(fwd, config.ForwardCalibration), t.raw(ref, config.ReflectedCalibration)
}

func (t *Transmitter) raw(w, cal float64) int {
	w *= 1 + t.noise*t.rng.NormFloat64()
	if w < 0 {
		w = 0
	}
	return int(math.Round(w / cal))
}
