package widgets

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the slots use.
const (
	ColorPink     lipgloss.Color = "#f5c2e7"
	ColorRed      lipgloss.Color = "#f38ba8"
	ColorPeach    lipgloss.Color = "#fab387"
	ColorYellow   lipgloss.Color = "#f9e2af"
	ColorGreen    lipgloss.Color = "#a6e3a1"
	ColorTeal     lipgloss.Color = "#94e2d5"
	ColorSky      lipgloss.Color = "#89dceb"
	ColorBlue     lipgloss.Color = "#89b4fa"
	ColorLavender lipgloss.Color = "#b4befe"
	ColorText     lipgloss.Color = "#cdd6f4"
	ColorOverlay1 lipgloss.Color = "#7f849c"
	ColorSurface2 lipgloss.Color = "#585b70"
)

// Semantic aliases.
const (
	ColorAccent  = ColorPink
	ColorFocus   = ColorLavender
	ColorSuccess = ColorGreen
	ColorError   = ColorRed
	ColorWarning = ColorYellow
	ColorInfo    = ColorTeal
	ColorMuted   = ColorOverlay1
	ColorBorder  = ColorSurface2
)

var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	GoodStyle  = lipgloss.NewStyle().Foreground(ColorSuccess)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo)
)
