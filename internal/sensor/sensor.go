// Package sensor provides the hardware capabilities the control loop consumes:
// analog sampling, the range-select output and a millisecond clock.
package sensor

import (
	"sync"
	"time"

	"swr-meter.klederson.com/internal/meter"
)

// Channel identifies an analog input.
type Channel int

const (
	ChannelForward Channel = iota
	ChannelReflected
)

func (c Channel) String() string {
	if c == ChannelReflected {
		return "reflected"
	}
	return "forward"
}

// Sampler reads raw integer samples from an analog input.
type Sampler interface {
	ReadChannel(ch Channel) int
}

// PairSampler is a Sampler that can return both channels from the same
// instant.
type PairSampler interface {
	Sampler
	Sample() (forward, reflected int)
}

// Read samples both channels, as one pair when s supports it.
func Read(s Sampler) meter.Inputs {
	if p, ok := s.(PairSampler); ok {
		fwd, ref := p.Sample()
		return meter.Inputs{Forward: fwd, Reflected: ref}
	}
	return meter.Inputs{
		Forward:   s.ReadChannel(ChannelForward),
		Reflected: s.ReadChannel(ChannelReflected),
	}
}

// RangeSelect drives the external range-select line: high for the 200 W scale.
type RangeSelect interface {
	SetRangeSelect(high bool) error
}

// Clock is the loop's time source.
type Clock interface {
	NowMillis() meter.Millis
	Sleep(ms int)
}

// RealClock counts milliseconds from its creation.
type RealClock struct {
	start time.Time
}

// NewRealClock starts a clock at zero.
func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

// NowMillis truncates the elapsed time to 32 bits; it wraps after ~49 days.
func (c *RealClock) NowMillis() meter.Millis {
	return meter.Millis(uint64(time.Since(c.start).Milliseconds()))
}

// Sleep pauses the caller.
func (c *RealClock) Sleep(ms int) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// VirtualPin is a range-select output that only remembers its level.
type VirtualPin struct {
	mu      sync.Mutex
	level   bool
	toggles int
}

// SetRangeSelect records the level.
func (p *VirtualPin) SetRangeSelect(high bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.level != high {
		p.toggles++
	}
	p.level = high
	return nil
}

// Level returns the last written level.
func (p *VirtualPin) Level() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// Toggles counts level changes.
func (p *VirtualPin) Toggles() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.toggles
}
