package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swr-meter.klederson.com/internal/sensor"
)

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestModelTickCycles(t *testing.T) {
	c, _, _ := newTestController(t, &constSampler{fwd: watts(25)}, &sensor.VirtualPin{})
	m := New(c, "demo")

	m, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd, "ticks reschedule")
	assert.Equal(t, 1, c.Cycles())

	m, _ = update(t, m, key('p'))
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, 1, c.Cycles(), "paused model does not sample")

	m, _ = update(t, m, key('p'))
	_, _ = update(t, m, TickMsg{})
	assert.Equal(t, 2, c.Cycles())
}

func TestModelQuit(t *testing.T) {
	c, _, _ := newTestController(t, &constSampler{}, &sensor.VirtualPin{})
	_, cmd := update(t, New(c, "demo"), key('q'))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModelRedrawKey(t *testing.T) {
	c, _, _ := newTestController(t, &constSampler{}, &sensor.VirtualPin{})
	m := New(c, "demo")

	m, _ = update(t, m, TickMsg{})
	assert.Zero(t, c.Framebuffer().Stats().Pixels, "idle meter repaints nothing")

	_, _ = update(t, m, key('r'))
	assert.Greater(t, c.Framebuffer().Stats().Pixels, 0)
}

func TestModelView(t *testing.T) {
	c, _, _ := newTestController(t, &constSampler{fwd: watts(25)}, &sensor.VirtualPin{})
	m := New(c, "serial /dev/ttyUSB0")

	assert.Contains(t, m.View(), "Initializing")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 50})
	m, _ = update(t, m, TickMsg{})
	view := m.View()
	assert.Contains(t, view, "SWR-METER")
	assert.Contains(t, view, "READINGS")
	assert.Contains(t, view, "serial /dev/ttyUSB0")
	assert.Contains(t, view, "▀")
}
