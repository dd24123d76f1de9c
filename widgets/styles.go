package widgets

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset shared by every widget renderer.
const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext  lipgloss.Color = "#a6adc8"
	colorOverlay  lipgloss.Color = "#6c7086"
	colorSurface  lipgloss.Color = "#313244"
	colorLavender lipgloss.Color = "#b4befe"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorGreen    lipgloss.Color = "#a6e3a1"
)

var (
	styleItem     = lipgloss.NewStyle().Foreground(colorText)
	styleDisabled = lipgloss.NewStyle().Foreground(colorOverlay)
	styleSelected = lipgloss.NewStyle().Foreground(colorGreen)
	styleFocused  = lipgloss.NewStyle().Foreground(colorLavender).Background(colorSurface).Bold(true)
	styleTitle    = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	styleHint     = lipgloss.NewStyle().Foreground(colorSubtext).Italic(true)
)
