package ui

import "github.com/charmbracelet/lipgloss"

// Instrument color palette
var (
	ColorAmber        = lipgloss.Color("#FFB000")
	ColorAmberMid     = lipgloss.Color("#C78800")
	ColorAmberDim     = lipgloss.Color("#5A3D00")
	ColorCyan         = lipgloss.Color("#00FFFF")
	ColorYellow       = lipgloss.Color("#FFFF00")
	ColorBorderBright = lipgloss.Color("#FFB000")
	ColorBorderNorm   = lipgloss.Color("#A06E00")
	ColorError        = lipgloss.Color("#FF3300")
	ColorWarning      = lipgloss.Color("#FFAA00")
	ColorOK           = lipgloss.Color("#00CC33")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#221800")).
			Foreground(ColorAmber).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorAmberMid)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#221800")).
			Foreground(ColorAmberMid).
			Padding(0, 1)

	StyleStatusRunning = lipgloss.NewStyle().
				Foreground(ColorOK).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleRangeHigh = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	StyleRangeLow = lipgloss.NewStyle().
			Foreground(ColorOK).
			Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderBright)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true).
			Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorAmberMid)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StyleForward = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	StyleSWR = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	StyleRule = lipgloss.NewStyle().
			Foreground(ColorAmberDim)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorAmberDim)
)
