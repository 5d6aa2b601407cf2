package config

import "time"

const (
	// Calibration: watts per raw ADC unit
	ForwardCalibration   = 0.2  // 10-bit forward detector, ~204 W full swing
	ReflectedCalibration = 0.05 // reflected detector is padded down 4x

	// Power scales
	LowScaleMax  = 50.0  // Watts
	HighScaleMax = 200.0 // Watts
	Hysteresis   = 5.0   // High->Low only below LowScaleMax-Hysteresis

	// Timing (milliseconds)
	PeakHoldMs   = 3000
	ModeDwellMs  = 1000
	LoopPauseMs  = 50
	LoopPause    = LoopPauseMs * time.Millisecond
	NoiseFloorW  = 1.0 // Peaks are only tracked above this
	MarkerMargin = 1.0 // Peak marker shown only this far above the live bar

	// SWR estimation
	MinReflected = 0.1
	MinForward   = 0.1
	MinGamma     = 0.001
	MaxGamma     = 0.999
	MinSWR       = 1.0
	MaxSWR       = 99.9
	SWRBarMax    = 3.0 // SWR at full SWR bar

	// Change detection
	ForwardEpsilon = 0.1
	SWREpsilon     = 0.01

	// Animation
	Damping     = 0.3 // Fraction of remaining gap covered per cycle
	SnapForward = 0.5
	SnapSWR     = 0.05
	SnapBar     = 1.0

	// Screen
	ScreenWidth  = 170
	ScreenHeight = 136

	// Bars
	BarX      = 10
	BarWidth  = 150
	BarHeight = 12
	PowerBarY = 38
	SWRBarY   = 94

	// Peak marker extends past the bar by this many pixels on each side
	MarkerOverhang = 2

	// Text
	TitleX, TitleY     = 4, 3
	ModeX, ModeY       = 120, 3
	ForwardX, ForwardY = 4, 14
	PeakX, PeakY       = 104, 20
	SWRX, SWRY         = 4, 70
	ScaleLabelOffset   = 4 // Gap between a bar and its scale labels
	FooterY            = 126
	ValueTextSize      = 2
	LabelTextSize      = 1

	// Terminal simulator
	TargetFPS      = 1000 / LoopPauseMs
	HistoryLength  = 60 // Cycles kept in the forward power trace
	DemoSeed       = 7
	DefaultBaud    = 115200
	DefaultLogFile = ""

	// App
	AppName    = "SWR-METER"
	AppVersion = "1.0"
)
