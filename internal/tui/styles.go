package tui

import (
	"lol-watcher/internal/app"
	"lol-watcher/internal/format"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorFocused   = lipgloss.Color("#3B82F6")
	colorUnfocused = lipgloss.Color("#6B7280")
	colorWarning   = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorInfo      = lipgloss.Color("#06B6D4")
	colorSelected  = lipgloss.Color("#7C3AED")
)

var (
	styleBorderFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorFocused)

	styleBorderNormal = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorUnfocused)

	styleTitle = lipgloss.NewStyle().Bold(true)

	styleTitleFocused = lipgloss.NewStyle().Bold(true).Foreground(colorFocused)

	styleMuted = lipgloss.NewStyle().Foreground(format.ColorMuted)

	styleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorSelected)

	styleCursor = lipgloss.NewStyle().Foreground(colorFocused)

	styleSearching = lipgloss.NewStyle().Foreground(colorWarning)
	styleFailed    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)

var logKindStyles = map[app.LogKind]lipgloss.Style{
	app.LogInfo:    lipgloss.NewStyle().Foreground(colorInfo),
	app.LogWarning: lipgloss.NewStyle().Foreground(colorWarning),
	app.LogError:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
}
