package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"swr-meter.klederson.com/internal/config"
	"swr-meter.klederson.com/internal/display"
	"swr-meter.klederson.com/internal/meter"
	"swr-meter.klederson.com/internal/render"
	"swr-meter.klederson.com/internal/sensor"
	"swr-meter.klederson.com/internal/ui"
)

// Controller owns the meter state and runs one sample-to-screen cycle at a
// time. It is not safe for concurrent use; every host runner drives it from a
// single goroutine.
type Controller struct {
	state    meter.State
	last     meter.Frame
	cycles   int
	switches int

	sampler  sensor.Sampler
	rangeOut sensor.RangeSelect
	clock    sensor.Clock
	fb       *display.Framebuffer
	renderer *render.Renderer
	history  *trace
	log      logrus.FieldLogger
}

// NewController wires the pipeline to its hardware capabilities.
func NewController(s sensor.Sampler, out sensor.RangeSelect, clk sensor.Clock, fb *display.Framebuffer, log logrus.FieldLogger) *Controller {
	return &Controller{
		state:    meter.NewState(),
		sampler:  s,
		rangeOut: out,
		clock:    clk,
		fb:       fb,
		renderer: render.New(fb),
		history:  newTrace(config.HistoryLength),
		log:      log,
	}
}

// Start performs power-on: the range select is driven low and the whole
// screen is painted once.
func (c *Controller) Start() error {
	c.setRange(false)
	c.last = c.state.Frame(c.clock.NowMillis())
	c.renderer.Init(c.last)
	c.log.WithFields(logrus.Fields{
		"mode":   c.last.Mode.String(),
		"width":  c.fb.Width(),
		"height": c.fb.Height(),
	}).Info("meter started")
	return c.fb.Present()
}

// Cycle samples, steps the pipeline, drives the range select on a
// transition and repaints what changed.
func (c *Controller) Cycle() meter.Frame {
	in := sensor.Read(c.sampler)
	now := c.clock.NowMillis()

	var f meter.Frame
	c.state, f = meter.Step(c.state, in, now)

	if f.Transition != nil {
		c.switches++
		c.setRange(f.Transition.RangeSelect())
		c.log.WithFields(logrus.Fields{
			"from":    f.Transition.From.String(),
			"to":      f.Transition.To.String(),
			"forward": f.Measurement.Forward,
			"at_ms":   uint32(f.Transition.At),
		}).Info("range switched")
	}

	c.renderer.Draw(f)
	if err := c.fb.Present(); err != nil {
		c.log.WithError(err).Warn("display present failed")
	}

	c.history.add(f)
	c.cycles++
	c.last = f
	return f
}

// Redraw repaints the full screen from the current state.
func (c *Controller) Redraw() {
	c.last = c.state.Frame(c.clock.NowMillis())
	c.renderer.Init(c.last)
	if err := c.fb.Present(); err != nil {
		c.log.WithError(err).Warn("display present failed")
	}
}

// Run cycles with a loop pause until ctx is done or ticks cycles have run.
// ticks <= 0 runs until cancelled.
func (c *Controller) Run(ctx context.Context, ticks int) error {
	for i := 0; ticks <= 0 || i < ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f := c.Cycle()
		c.log.WithFields(logrus.Fields{
			"mode":    f.Mode.String(),
			"forward": f.Measurement.Forward,
			"swr":     f.Reading.SWR,
			"peak":    f.Peak.Power,
		}).Debug("cycle")

		c.clock.Sleep(config.LoopPauseMs)
	}

	c.log.WithFields(logrus.Fields{
		"cycles":   c.cycles,
		"switches": c.switches,
		"mode":     c.last.Mode.String(),
	}).Info("meter stopped")
	return nil
}

// Last returns the frame of the most recent cycle.
func (c *Controller) Last() meter.Frame { return c.last }

// Cycles returns the number of completed cycles.
func (c *Controller) Cycles() int { return c.cycles }

// History returns the recent forward trace oldest first.
func (c *Controller) History() []ui.TracePoint { return c.history.snapshot() }

// Framebuffer returns the screen the controller draws on.
func (c *Controller) Framebuffer() *display.Framebuffer { return c.fb }

func (c *Controller) setRange(high bool) {
	if err := c.rangeOut.SetRangeSelect(high); err != nil {
		c.log.WithError(err).WithField("high", high).Warn("range select write failed")
	}
}
