package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

// ValueInputModel is the modal for editing a setting's value. Text and
// numeric settings use a text input; choice settings cycle through their
// options with the arrow keys. Bool settings never reach the modal, they
// toggle in place.
type ValueInputModel struct {
	setting   *model.Setting
	input     textinput.Model
	choiceIdx int
	errMsg    string
	active    bool
	submitted bool
	cancelled bool
	theme     Theme
	width     int
}

// NewValueInputModel creates an inactive modal.
func NewValueInputModel(theme Theme) ValueInputModel {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	return ValueInputModel{input: ti, theme: theme}
}

// Open activates the modal for a setting, seeding the current value.
func (m *ValueInputModel) Open(s *model.Setting) {
	m.setting = s
	m.errMsg = ""
	m.active = true
	m.submitted = false
	m.cancelled = false

	switch s.Type {
	case model.TypeChoice:
		m.choiceIdx = 0
		if cur, ok := s.Value.(string); ok {
			for i, opt := range s.Options {
				if opt == cur {
					m.choiceIdx = i
					break
				}
			}
		}
	default:
		m.input.SetValue(formatValue(s))
		m.input.CursorEnd()
		m.input.Focus()
		m.input.Prompt = "> "
	}
}

// Active reports whether the modal is showing.
func (m *ValueInputModel) Active() bool { return m.active }

// Submitted reports whether the last update committed a value.
func (m *ValueInputModel) Submitted() bool { return m.submitted }

// Cancelled reports whether the last update dismissed the modal.
func (m *ValueInputModel) Cancelled() bool { return m.cancelled }

// Setting returns the setting being edited.
func (m *ValueInputModel) Setting() *model.Setting { return m.setting }

// SetWidth updates the modal width.
func (m *ValueInputModel) SetWidth(w int) {
	m.width = w
	if w > 10 {
		m.input.Width = w - 10
	}
}

// Close deactivates the modal without committing.
func (m *ValueInputModel) Close() {
	m.active = false
	m.input.Blur()
}

// Update handles key input while the modal is active.
func (m ValueInputModel) Update(msg tea.Msg) (ValueInputModel, tea.Cmd) {
	m.submitted = false
	m.cancelled = false

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		m.cancelled = true
		m.Close()
		return m, nil
	case "enter":
		if err := m.commit(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.submitted = true
		m.Close()
		return m, nil
	}

	if m.setting != nil && m.setting.Type == model.TypeChoice {
		switch keyMsg.String() {
		case "left", "h", "up", "k":
			if m.choiceIdx > 0 {
				m.choiceIdx--
			} else {
				m.choiceIdx = len(m.setting.Options) - 1
			}
		case "right", "l", "down", "j", "tab":
			m.choiceIdx = (m.choiceIdx + 1) % len(m.setting.Options)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commit validates the entered value and stores it on the setting.
func (m *ValueInputModel) commit() error {
	s := m.setting
	if s == nil {
		return nil
	}

	switch s.Type {
	case model.TypeChoice:
		if len(s.Options) == 0 {
			return fmt.Errorf("choice setting has no options")
		}
		s.Value = s.Options[m.choiceIdx]
	case model.TypeInt:
		n, err := strconv.Atoi(m.input.Value())
		if err != nil {
			return fmt.Errorf("not an integer: %q", m.input.Value())
		}
		s.Value = n
	case model.TypeFloat:
		f, err := strconv.ParseFloat(m.input.Value(), 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", m.input.Value())
		}
		s.Value = f
	default:
		s.Value = m.input.Value()
	}
	return nil
}

// View renders the modal box.
func (m *ValueInputModel) View() string {
	if !m.active || m.setting == nil {
		return ""
	}
	t := m.theme

	title := t.PrimaryBold.Render("Edit: " + m.setting.Description())

	var body string
	if m.setting.Type == model.TypeChoice {
		var line string
		for i, opt := range m.setting.Options {
			if i > 0 {
				line += "  "
			}
			if i == m.choiceIdx {
				line += t.Selected.Render(opt)
			} else {
				line += t.MutedText.Render(opt)
			}
		}
		body = line
	} else {
		body = m.input.View()
	}

	hint := t.MutedText.Render("enter save · esc cancel")
	content := title + "\n\n" + body + "\n\n" + hint
	if m.errMsg != "" {
		content += "\n" + t.MatchText.Render(m.errMsg)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2)
	if m.width > 0 {
		box = box.Width(min(m.width-4, 60))
	}
	return box.Render(content)
}
