package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorWin     = lipgloss.Color("#10B981")
	ColorLoss    = lipgloss.Color("#EF4444")
	ColorAccent  = lipgloss.Color("#06B6D4")
	ColorValue   = lipgloss.Color("#F59E0B")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorBlue    = lipgloss.Color("#3B82F6")
	ColorRed     = lipgloss.Color("#F43F5E")
	ColorPrimary = lipgloss.Color("#7C3AED")
)

var tierColors = map[string]lipgloss.Color{
	"IRON":        "#453234",
	"BRONZE":      "#AE6A66",
	"SILVER":      "#607393",
	"GOLD":        "#DDAB57",
	"PLATINUM":    "#0FDC95",
	"EMERALD":     "#009B5E",
	"DIAMOND":     "#74E2FE",
	"MASTER":      "#EC02C2",
	"GRANDMASTER": "#F21F0C",
	"CHALLENGER":  "#0057E9",
}

func TierColor(tier string) lipgloss.Color {
	if c, ok := tierColors[strings.ToUpper(tier)]; ok {
		return c
	}
	return ColorMuted
}
