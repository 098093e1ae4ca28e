package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlayModel shows either the keybinding reference or a setting's
// help text rendered as markdown. Any key dismisses it.
type HelpOverlayModel struct {
	visible  bool
	markdown string // when set, rendered instead of the key reference
	theme    Theme
	width    int
	height   int
}

// NewHelpOverlayModel creates a hidden overlay.
func NewHelpOverlayModel(theme Theme) HelpOverlayModel {
	return HelpOverlayModel{theme: theme}
}

// Visible reports whether the overlay is showing.
func (m *HelpOverlayModel) Visible() bool { return m.visible }

// Toggle shows or hides the keybinding reference.
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
	m.markdown = ""
}

// ShowMarkdown displays a markdown document (a setting's help text).
func (m *HelpOverlayModel) ShowMarkdown(md string) {
	m.visible = true
	m.markdown = md
}

// Hide dismisses the overlay.
func (m *HelpOverlayModel) Hide() {
	m.visible = false
	m.markdown = ""
}

// SetSize updates the overlay dimensions.
func (m *HelpOverlayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

type helpBinding struct {
	key  string
	desc string
}

var helpBindings = []helpBinding{
	{"j/k, ↓/↑", "move cursor"},
	{"h/l, ←/→", "collapse / expand category"},
	{"space", "toggle expand"},
	{"enter", "edit setting / toggle bool"},
	{"/", "search"},
	{"esc", "clear search / close modal"},
	{"?", "help for selected setting"},
	{"y", "copy breadcrumb"},
	{"r", "reload definition"},
	{"F1", "this reference"},
	{"q", "quit"},
}

// View renders the overlay box.
func (m *HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}
	t := m.theme

	var content string
	if m.markdown != "" {
		content = m.renderMarkdown()
	} else {
		var b strings.Builder
		b.WriteString(t.PrimaryBold.Render("Keys"))
		b.WriteString("\n\n")
		for _, kb := range helpBindings {
			b.WriteString(t.SecondaryText.Render(padRight(kb.key, 12)))
			b.WriteString(t.Base.Render(kb.desc))
			b.WriteString("\n")
		}
		content = b.String()
	}

	content += "\n" + t.MutedText.Render("press any key to close")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2)
	if m.width > 0 {
		box = box.Width(min(m.width-4, 70))
	}
	return box.Render(content)
}

func (m *HelpOverlayModel) renderMarkdown() string {
	wrap := 60
	if m.width > 0 && m.width-10 < wrap {
		wrap = m.width - 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return m.markdown
	}
	out, err := r.Render(m.markdown)
	if err != nil {
		return m.markdown
	}
	return strings.TrimRight(out, "\n")
}
