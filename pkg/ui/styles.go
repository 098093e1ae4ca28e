package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
)

var (
	// PanelStyle is the default style for unfocused panels
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#44475A"))

	// FocusedPanelStyle is the style for focused panels
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#BD93F9"))
)

// RenderTypeBadge returns a styled badge for a setting type
func RenderTypeBadge(t Theme, settingType model.SettingType) string {
	var fg lipgloss.AdaptiveColor
	var label string

	switch settingType {
	case model.TypeText:
		fg, label = t.Text, "txt"
	case model.TypeBool:
		fg, label = t.Bool, "bool"
	case model.TypeInt:
		fg, label = t.Number, "int"
	case model.TypeFloat:
		fg, label = t.Number, "num"
	case model.TypeChoice:
		fg, label = t.Choice, "sel"
	default:
		fg, label = t.Muted, "???"
	}

	return t.Renderer.NewStyle().
		Foreground(fg).
		Render("[" + label + "]")
}

// RenderMatchBadge returns the search-match indicator, or "" when
// unmarked.
func RenderMatchBadge(t Theme, marked bool) string {
	if !marked {
		return ""
	}
	return t.MatchText.Render("●")
}

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#44475A")).
		Render(strings.Repeat("─", width))
}
