package meter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name string
		m    Measurement
		want float64
	}{
		{"no reflected power is a perfect match", Measurement{Forward: 100, Reflected: 0}, 1.0},
		{"reflected below threshold", Measurement{Forward: 10, Reflected: 0.09}, 1.0},
		{"both zero", Measurement{}, 1.0},
		{"reflected without carrier", Measurement{Forward: 0.05, Reflected: 0.2}, 99.9},
		{"gamma 0.5", Measurement{Forward: 10, Reflected: 5}, 3.0},
		{"gamma clamped high", Measurement{Forward: 10, Reflected: 40}, 99.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.m).SWR
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEstimateGammaFloor(t *testing.T) {
	// gamma = 0.1/200 = 0.0005 is lifted to 0.001.
	got := Estimate(Measurement{Forward: 200, Reflected: 0.1}).SWR
	assert.InDelta(t, 1.001/0.999, got, 1e-12)
}

func TestEstimateMonotonicInGamma(t *testing.T) {
	last := 0.0
	for r := 0.1; r < 100; r += 0.37 {
		swr := Estimate(Measurement{Forward: 100, Reflected: r}).SWR
		assert.GreaterOrEqual(t, swr, last, "reflected=%.2f", r)
		last = swr
	}
}

func TestEstimateAlwaysBounded(t *testing.T) {
	for _, mode := range []Mode{ModeLow, ModeHigh} {
		for f := 0; f <= 1100; f += 17 {
			for r := 0; r <= 1100; r += 13 {
				m := Measure(Inputs{Forward: f, Reflected: r}, mode)
				swr := Estimate(m).SWR
				if math.IsNaN(swr) || math.IsInf(swr, 0) || swr < 1.0 || swr > 99.9 {
					t.Fatalf("f=%d r=%d mode=%s: swr=%v", f, r, mode, swr)
				}
				if n := SWRBarLength(swr); n < 0 || n > 150 {
					t.Fatalf("swr bar %d out of range", n)
				}
				if n := PowerBarLength(m.Forward, mode.FullScale()); n < 0 || n > 150 {
					t.Fatalf("power bar %d out of range", n)
				}
			}
		}
	}
}

func TestMeasureClampsToScale(t *testing.T) {
	m := Measure(Inputs{Forward: 1023, Reflected: 1023}, ModeLow)
	assert.Equal(t, 50.0, m.Forward)
	assert.Equal(t, 50.0, m.Reflected)

	m = Measure(Inputs{Forward: 1023, Reflected: 1023}, ModeHigh)
	assert.InDelta(t, 200.0, m.Forward, 1e-9)
	assert.InDelta(t, 51.15, m.Reflected, 1e-9)

	m = Measure(Inputs{Forward: -40, Reflected: -1}, ModeHigh)
	assert.Equal(t, Measurement{}, m)
}
