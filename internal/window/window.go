// Package window mirrors the meter screen in a desktop window.
package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"swr-meter.klederson.com/internal/app"
	"swr-meter.klederson.com/internal/config"
	"swr-meter.klederson.com/internal/display"
)

// Run opens a window showing the controller's screen at the given integer
// zoom and cycles the controller at the loop rate. It blocks until the window
// closes or Q is pressed.
func Run(ctrl *app.Controller, zoom int) error {
	if zoom < 1 {
		zoom = 1
	}
	fb := ctrl.Framebuffer()
	mirror := display.NewMirror(fb.Width(), fb.Height())
	fb.SetSink(mirror)
	defer fb.SetSink(nil)

	// Fill the mirror with the current screen.
	ctrl.Redraw()

	g := &game{ctrl: ctrl, mirror: mirror, width: fb.Width(), height: fb.Height()}
	ebiten.SetWindowTitle(config.AppName + " v" + config.AppVersion)
	ebiten.SetWindowSize(fb.Width()*zoom, fb.Height()*zoom)
	ebiten.SetTPS(config.TargetFPS)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	ctrl          *app.Controller
	mirror        *display.Mirror
	img           *ebiten.Image
	width, height int
	paused        bool
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.ctrl.Redraw()
	}
	if !g.paused {
		g.ctrl.Cycle()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.width, g.height)
	}
	g.mirror.CopyIfChanged(g.img.WritePixels)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
