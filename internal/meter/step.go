package meter

import "swr-meter.klederson.com/internal/config"

// Step runs one control-loop cycle: acquisition, range control, estimation,
// peak tracking, change detection and animation. It is pure; the returned
// Frame tells the renderer and the range-select output what to do.
func Step(st State, in Inputs, now Millis) (State, Frame) {
	prev := st.Display

	raw := Calibrate(in)
	var transition *Transition
	if t, ok := st.Range.Update(raw.Forward, now); ok {
		transition = &t
	}
	mode := st.Range.Mode

	st.Measurement = raw.Clamp(mode)
	st.Reading = Estimate(st.Measurement)
	peakChanged := st.Peak.Update(st.Measurement.Forward, now)

	dirty := Detect(st.Measurement, st.Reading, st.Display, st.Range)
	dirty.Mode = transition != nil
	dirty.Peak = peakChanged

	d := &st.Display
	if dirty.Forward {
		d.Forward, _ = forwardApproach.Step(d.Forward, st.Measurement.Forward)
	}
	if dirty.SWR {
		d.SWR, _ = swrApproach.Step(d.SWR, st.Reading.SWR)
	}
	if dirty.PowerBar {
		target := float64(PowerBarLength(st.Measurement.Forward, mode.FullScale()))
		d.PowerBar, _ = barApproach.Step(d.PowerBar, target)
	}
	if dirty.SWRBar {
		d.SWRBar, _ = barApproach.Step(d.SWRBar, float64(SWRBarLength(st.Reading.SWR)))
	}
	d.LastPowerBar = barPixels(d.PowerBar)
	d.LastSWRBar = barPixels(d.SWRBar)

	// The marker follows the peak, the displayed value it is compared against
	// and the bar edge it must clear.
	if dirty.Peak || dirty.Mode || dirty.Forward || d.LastPowerBar != prev.LastPowerBar {
		d.PeakMarker = markerColumn(st.Peak.Power, d.Forward, mode)
	}

	return st, Frame{
		Now:         now,
		Measurement: st.Measurement,
		Reading:     st.Reading,
		Peak:        st.Peak,
		Mode:        mode,
		Prev:        prev,
		Next:        st.Display,
		Dirty:       dirty,
		Transition:  transition,
	}
}

func markerColumn(peak, displayedForward float64, mode Mode) int {
	if peak <= displayedForward+config.MarkerMargin {
		return -1
	}
	col := PowerBarLength(peak, mode.FullScale())
	if col >= config.BarWidth {
		col = config.BarWidth - 1
	}
	return col
}

func barPixels(v float64) int {
	n := int(v + 0.5)
	if n < 0 {
		return 0
	}
	if n > config.BarWidth {
		return config.BarWidth
	}
	return n
}
