package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

// ContentModel renders the groups and settings of the selected category
// in a scrollable pane and tracks a setting cursor for editing.
type ContentModel struct {
	category *model.Category
	rows     []settingRow
	cursor   int
	viewport viewport.Model
	theme    Theme
	width    int
	height   int

	ShowBreadcrumb bool
}

// settingRow maps a display row back to its setting.
type settingRow struct {
	group   *model.Group
	setting *model.Setting
}

// NewContentModel creates an empty content pane.
func NewContentModel(theme Theme) ContentModel {
	vp := viewport.New(0, 0)
	return ContentModel{
		viewport:       vp,
		theme:          theme,
		ShowBreadcrumb: true,
	}
}

// SetSize updates the pane dimensions.
func (m *ContentModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetCategory swaps the displayed category and resets the cursor.
func (m *ContentModel) SetCategory(c *model.Category) {
	if m.category == c {
		m.render()
		return
	}
	m.category = c
	m.cursor = 0
	m.rebuildRows()
	m.viewport.GotoTop()
	m.render()
}

// Refresh re-renders after external changes (search marks, edited
// values, re-translation).
func (m *ContentModel) Refresh() {
	m.rebuildRows()
	m.render()
}

func (m *ContentModel) rebuildRows() {
	m.rows = m.rows[:0]
	if m.category == nil {
		return
	}
	for _, g := range m.category.Groups() {
		for _, s := range g.Settings() {
			m.rows = append(m.rows, settingRow{group: g, setting: s})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SelectedSetting returns the setting under the cursor, or nil.
func (m *ContentModel) SelectedSetting() *model.Setting {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].setting
}

// SelectedGroup returns the group owning the setting under the cursor.
func (m *ContentModel) SelectedGroup() *model.Group {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].group
}

// HandleKey processes cursor movement. Returns true if consumed.
func (m *ContentModel) HandleKey(key string) bool {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.render()
		return true
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		m.render()
		return true
	case "g":
		m.cursor = 0
		m.viewport.GotoTop()
		m.render()
		return true
	case "G":
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
		}
		m.viewport.GotoBottom()
		m.render()
		return true
	}
	return false
}

// Update forwards scroll events to the viewport.
func (m ContentModel) Update(msg tea.Msg) (ContentModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// render rebuilds the viewport content from the current category.
func (m *ContentModel) render() {
	t := m.theme

	if m.category == nil {
		m.viewport.SetContent(t.MutedText.Render("  select a category"))
		return
	}

	var b strings.Builder

	if m.ShowBreadcrumb {
		b.WriteString(t.Breadcrumb.Render(m.category.Breadcrumb()))
		b.WriteString("\n\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(t.MutedText.Render("  no settings in this category"))
		m.viewport.SetContent(b.String())
		return
	}

	row := 0
	var lastGroup *model.Group
	for _, r := range m.rows {
		if r.group != lastGroup {
			if lastGroup != nil {
				b.WriteString("\n")
			}
			b.WriteString(m.renderGroupHeader(r.group))
			b.WriteString("\n")
			lastGroup = r.group
		}
		b.WriteString(m.renderSetting(r.setting, row == m.cursor))
		b.WriteString("\n")
		row++
	}

	m.viewport.SetContent(b.String())
	m.scrollToCursor()
}

func (m *ContentModel) renderGroupHeader(g *model.Group) string {
	t := m.theme
	title := g.Description()
	if title == "" {
		title = "Settings"
	}
	header := t.PrimaryBold.Render(title)
	if badge := RenderMatchBadge(t, g.IsMarked()); badge != "" {
		header += " " + badge
	}
	return header
}

func (m *ContentModel) renderSetting(s *model.Setting, selected bool) string {
	t := m.theme

	badge := RenderTypeBadge(t, s.Type)
	name := s.Description()
	if s.IsMarked() {
		name = t.MatchText.Render(name)
	}

	value := formatValue(s)
	if value == "" {
		value = t.MutedText.Render("unset")
	} else {
		value = t.SecondaryText.Render(value)
	}

	line := badge + " " + name + "  " + value
	if m.width > 0 {
		line = truncate(line, m.width-SpaceMD)
	}

	if selected {
		return t.Selected.Render(line)
	}
	return t.Base.Render(" " + line)
}

// scrollToCursor keeps the cursor row inside the viewport. Rows are
// located by counting rendered lines above the cursor.
func (m *ContentModel) scrollToCursor() {
	if m.height <= 0 || len(m.rows) == 0 {
		return
	}

	line := 0
	if m.ShowBreadcrumb {
		line += 2
	}
	var lastGroup *model.Group
	for i, r := range m.rows {
		if r.group != lastGroup {
			if lastGroup != nil {
				line++
			}
			line++
			lastGroup = r.group
		}
		if i == m.cursor {
			break
		}
		line++
	}

	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	}
	if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// View renders the pane.
func (m *ContentModel) View() string {
	return m.viewport.View()
}

// Header renders the pane title bar with the category description.
func (m *ContentModel) Header() string {
	t := m.theme
	title := "Settings"
	if m.category != nil {
		title = m.category.Description()
	}
	return lipgloss.NewStyle().Width(m.width).Render(t.Header.Render(" " + title + " "))
}
