package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"swr-meter.klederson.com/internal/config"
	"swr-meter.klederson.com/internal/meter"
	"swr-meter.klederson.com/internal/rgb565"
	"swr-meter.klederson.com/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	ctrl   *Controller
	pixels []rgb565.Color
}

// AppModel is the root Bubble Tea model: it drives the controller from the
// tick and mirrors its framebuffer in the terminal.
type AppModel struct {
	width  int
	height int

	running bool
	source  string

	shared *shared
}

// New creates the model around a started controller.
func New(ctrl *Controller, source string) AppModel {
	return AppModel{
		running: true,
		source:  source,
		shared:  &shared{ctrl: ctrl},
	}
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.running {
			m.shared.ctrl.Cycle()
		}
		return m, tickCmd()
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "p", "P", " ":
		m.running = !m.running

	case "r", "R":
		m.shared.ctrl.Redraw()
	}

	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing SWR meter..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	screenW := m.width * 2 / 3
	if screenW < 30 {
		screenW = 30
	}
	readingsW := m.width - screenW
	if readingsW < 24 {
		readingsW = 24
		screenW = m.width - readingsW
	}

	ctrl := m.shared.ctrl
	fb := ctrl.Framebuffer()
	f := ctrl.Last()

	menuBar := ui.RenderMenuBar(m.width, m.source, m.running)

	// Border plus one caption row.
	innerW := screenW - 4
	innerH := bodyH - 3
	if innerW < 5 {
		innerW = 5
	}
	if innerH < 3 {
		innerH = 3
	}
	m.shared.pixels = fb.Snapshot(m.shared.pixels)
	screen := ui.RenderScreen(m.shared.pixels, fb.Width(), fb.Height(), innerW, innerH)
	caption := ui.StyleHelp.Render(screenCaption(fb.Width(), fb.Height(), innerW, innerH))
	screenPanel := ui.RenderScreenPanel(screenW, bodyH, screen, caption)

	readings := ui.RenderReadings(f, ctrl.History(), readingsW, bodyH)

	statusBar := ui.RenderStatusBar(m.width, ui.Status{
		Running:   m.running,
		Mode:      f.Mode.String(),
		RangeHigh: f.Mode == meter.ModeHigh,
		Cycles:    ctrl.Cycles(),
		Repaint:   fb.Stats().Fraction(fb.Width(), fb.Height()),
	})

	return ui.ComposeLayout(menuBar, screenPanel, readings, statusBar)
}

func screenCaption(w, h, cols, rows int) string {
	return fmt.Sprintf("%dx%d px  scale 1:%d", w, h, ui.ScreenScale(w, h, cols, rows))
}

func tickCmd() tea.Cmd {
	return tea.Tick(config.LoopPause, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
