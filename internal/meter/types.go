// Package meter is the sample-to-display pipeline of the SWR meter: acquisition,
// SWR estimation, peak tracking, auto-ranging, change detection and the damped
// animation of displayed values. It performs no I/O; Step is driven with raw
// samples and a millisecond timestamp.
package meter

import "swr-meter.klederson.com/internal/config"

// Millis is a wrapping millisecond counter.
type Millis uint32

// Since returns the time elapsed from earlier to t, correct across wraparound.
func (t Millis) Since(earlier Millis) Millis {
	return t - earlier
}

// Mode selects the active power scale.
type Mode int

const (
	ModeLow Mode = iota
	ModeHigh
)

func (m Mode) String() string {
	if m == ModeHigh {
		return "HIGH"
	}
	return "LOW"
}

// FullScale returns the clamp and bar-mapping ceiling in watts.
func (m Mode) FullScale() float64 {
	if m == ModeHigh {
		return config.HighScaleMax
	}
	return config.LowScaleMax
}

// Inputs are raw samples for one cycle.
type Inputs struct {
	Forward   int
	Reflected int
}

// Measurement holds calibrated power in watts.
type Measurement struct {
	Forward   float64
	Reflected float64
}

// Reading is derived from a Measurement.
type Reading struct {
	SWR float64
}

// DisplayState is what is currently on screen.
type DisplayState struct {
	Forward  float64
	SWR      float64
	PowerBar float64 // Animated bar lengths in pixels
	SWRBar   float64

	PeakMarker   int // Bar column of the peak marker, -1 when hidden
	LastPowerBar int // Painted bar lengths
	LastSWRBar   int
}

// DirtyFlags mark fields that need animation or repaint this cycle.
type DirtyFlags struct {
	Forward  bool
	SWR      bool
	PowerBar bool
	SWRBar   bool
	Mode     bool
	Peak     bool
}

// Any reports whether any flag is set.
func (d DirtyFlags) Any() bool {
	return d.Forward || d.SWR || d.PowerBar || d.SWRBar || d.Mode || d.Peak
}

// Transition records a range switch.
type Transition struct {
	From, To Mode
	At       Millis
}

// RangeSelect is the level the range-select output must be driven to.
func (t Transition) RangeSelect() bool {
	return t.To == ModeHigh
}

// State is everything the control loop carries between cycles.
type State struct {
	Measurement Measurement
	Reading     Reading
	Peak        PeakState
	Range       RangeState
	Display     DisplayState
}

// NewState returns the power-on state: low range, nothing displayed.
func NewState() State {
	return State{
		Reading: Reading{SWR: config.MinSWR},
		Display: DisplayState{
			SWR:        config.MinSWR,
			PeakMarker: -1,
		},
	}
}

// Frame is the output of one Step.
type Frame struct {
	Now         Millis
	Measurement Measurement
	Reading     Reading
	Peak        PeakState
	Mode        Mode
	Prev, Next  DisplayState
	Dirty       DirtyFlags
	Transition  *Transition
}

// Frame returns a frame describing st with nothing to animate, for a full
// repaint.
func (s State) Frame(now Millis) Frame {
	return Frame{
		Now:         now,
		Measurement: s.Measurement,
		Reading:     s.Reading,
		Peak:        s.Peak,
		Mode:        s.Range.Mode,
		Prev:        s.Display,
		Next:        s.Display,
	}
}
