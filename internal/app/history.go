package app

import (
	"swr-meter.klederson.com/internal/meter"
	"swr-meter.klederson.com/internal/ui"
)

// trace keeps the last few cycles of forward power with the scale each was
// measured on and the cycles where the range switched.
type trace struct {
	limit  int
	points []ui.TracePoint
}

func newTrace(limit int) *trace {
	if limit < 1 {
		limit = 1
	}
	return &trace{limit: limit, points: make([]ui.TracePoint, 0, limit)}
}

// add records a frame, dropping the oldest point once the trace is full.
func (t *trace) add(f meter.Frame) {
	if len(t.points) == t.limit {
		copy(t.points, t.points[1:])
		t.points = t.points[:t.limit-1]
	}
	t.points = append(t.points, ui.TracePoint{
		Forward:   f.Measurement.Forward,
		FullScale: f.Mode.FullScale(),
		Switched:  f.Transition != nil,
	})
}

// snapshot returns a copy, oldest first.
func (t *trace) snapshot() []ui.TracePoint {
	if len(t.points) == 0 {
		return nil
	}
	return append([]ui.TracePoint(nil), t.points...)
}
