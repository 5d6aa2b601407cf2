package sensor

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// GPIORangeSelect drives the range-select relay from a host GPIO pin.
type GPIORangeSelect struct {
	pin gpio.PinOut
}

// OpenGPIORangeSelect initializes the host drivers and claims the named pin,
// e.g. "GPIO17". The pin starts low (low range).
func OpenGPIORangeSelect(name string) (*GPIORangeSelect, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GPIO host drivers: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("GPIO pin %q not found", name)
	}
	g := NewGPIORangeSelect(p)
	if err := g.SetRangeSelect(false); err != nil {
		return nil, err
	}
	return g, nil
}

// NewGPIORangeSelect wraps an already-resolved output pin.
func NewGPIORangeSelect(p gpio.PinOut) *GPIORangeSelect {
	return &GPIORangeSelect{pin: p}
}

// SetRangeSelect asserts the pin for the high range.
func (g *GPIORangeSelect) SetRangeSelect(high bool) error {
	level := gpio.Low
	if high {
		level = gpio.High
	}
	if err := g.pin.Out(level); err != nil {
		return fmt.Errorf("range select %s: %w", g.pin, err)
	}
	return nil
}
