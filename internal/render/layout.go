package render

import (
	"strconv"

	"swr-meter.klederson.com/internal/config"
	"swr-meter.klederson.com/internal/meter"
	"swr-meter.klederson.com/internal/rgb565"
)

var (
	colorBackground = rgb565.Black
	colorLabel      = rgb565.White
	colorDim        = rgb565.Gray
	colorForward    = rgb565.Cyan
	colorSWR        = rgb565.Yellow
	colorPeakHigh   = rgb565.Red
	colorPeakLow    = rgb565.White
	colorMarker     = rgb565.White
	colorBarFrame   = rgb565.Gray
	colorModeLow    = rgb565.Green
	colorModeHigh   = rgb565.Orange
)

// Widest strings each field can show; clear rects are sized from these.
const (
	maxForwardText = "200.0W"
	maxSWRText     = "SWR 99.90"
	maxPeakText    = "Peak:200"
	maxModeText    = "HIGH"
)

type scaleLabel struct {
	col  int // bar column the label is centred on
	text string
}

func powerScale(mode meter.Mode) []scaleLabel {
	fs := int(mode.FullScale())
	return []scaleLabel{
		{0, "0"},
		{config.BarWidth / 2, strconv.Itoa(fs / 2)},
		{config.BarWidth, strconv.Itoa(fs) + "W"},
	}
}

func swrScale() []scaleLabel {
	return []scaleLabel{
		{0, "1"},
		{config.BarWidth / 2, "2"},
		{config.BarWidth, "3+"},
	}
}

// drawStatic paints everything that only changes with the power mode.
func (r *Renderer) drawStatic(mode meter.Mode) {
	c := r.c
	c.SetTextSize(config.LabelTextSize)
	c.SetTextColor(colorLabel)
	c.SetCursor(config.TitleX, config.TitleY)
	c.Print(config.AppName)

	r.drawBarFrame(config.PowerBarY)
	r.drawBarFrame(config.SWRBarY)
	r.drawScale(config.SWRBarY, swrScale())

	c.SetTextColor(colorDim)
	c.SetCursor(config.TitleX, config.FooterY)
	c.Print("v" + config.AppVersion)

	r.drawMode(mode)
}

// drawMode repaints the mode label and the power scale.
func (r *Renderer) drawMode(mode meter.Mode) {
	c := r.c
	c.SetTextSize(config.LabelTextSize)
	c.FillRect(config.ModeX, config.ModeY, c.TextWidth(maxModeText), c.TextHeight(), colorBackground)
	c.SetCursor(config.ModeX, config.ModeY)
	if mode == meter.ModeHigh {
		c.SetTextColor(colorModeHigh)
	} else {
		c.SetTextColor(colorModeLow)
	}
	c.Print(mode.String())

	r.drawScale(config.PowerBarY, powerScale(mode))
}

func (r *Renderer) drawBarFrame(y int16) {
	c := r.c
	c.HLine(config.BarX-1, y-1, config.BarWidth+2, colorBarFrame)
	c.HLine(config.BarX-1, y+config.BarHeight, config.BarWidth+2, colorBarFrame)
}

func (r *Renderer) drawScale(barY int16, labels []scaleLabel) {
	c := r.c
	c.SetTextSize(config.LabelTextSize)
	y := barY + config.BarHeight + config.ScaleLabelOffset
	h := c.TextHeight()
	c.FillRect(0, y, config.ScreenWidth, h, colorBackground)
	c.SetTextColor(colorDim)
	for _, l := range labels {
		w := c.TextWidth(l.text)
		x := int16(config.BarX+l.col) - w/2
		if x < 0 {
			x = 0
		}
		if x+w > config.ScreenWidth {
			x = config.ScreenWidth - w
		}
		c.SetCursor(x, y)
		c.Print(l.text)
	}
}
