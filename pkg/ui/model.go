package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/prefnav/pkg/config"
	"github.com/Dicklesworthstone/prefnav/pkg/loader"
	"github.com/Dicklesworthstone/prefnav/pkg/model"
	"github.com/Dicklesworthstone/prefnav/pkg/search"
	"github.com/Dicklesworthstone/prefnav/pkg/storage"
	"github.com/Dicklesworthstone/prefnav/pkg/tree"
)

type focusArea int

const (
	focusNav focusArea = iota
	focusContent
)

// ReloadMsg asks the model to re-read the definition file. The file
// watcher sends it through Program.Send from its callback goroutine.
type ReloadMsg struct{}

type reloadedMsg struct {
	def *loader.Definition
	err error
}

type statusClearMsg struct{}

// Options carries the external collaborators of the UI model.
type Options struct {
	DefinitionPath string
	Store          *storage.Store           // nil disables persistence
	Translator     model.TranslationService // nil shows raw keys
	Config         config.Config
}

// Model is the top-level Bubble Tea model: a navigation tree on the
// left, the selected category's settings on the right, a search bar,
// and modal overlays for editing and help.
type Model struct {
	opts  Options
	theme Theme

	title      string
	categories []*model.Category

	nav     NavTreeModel
	content ContentModel
	modal   ValueInputModel
	help    HelpOverlayModel

	searchInput textinput.Model
	searching   bool
	result      search.Result

	focus  focusArea
	status string
	width  int
	height int
}

// NewModel builds the UI from a parsed definition.
func NewModel(def *loader.Definition, opts Options, renderer *lipgloss.Renderer) Model {
	theme := DefaultTheme(renderer)

	si := textinput.New()
	si.Prompt = "/ "
	si.Placeholder = "search settings"
	si.CharLimit = 128

	m := Model{
		opts:        opts,
		theme:       theme,
		modal:       NewValueInputModel(theme),
		help:        NewHelpOverlayModel(theme),
		searchInput: si,
	}
	m.install(def)
	return m
}

// install wires a freshly loaded definition into the model. It is used
// both at construction and after a live reload.
func (m *Model) install(def *loader.Definition) {
	m.title = def.Title
	m.categories = def.Categories

	if m.opts.Translator != nil {
		for _, c := range model.FlattenCategories(m.categories) {
			c.Translate(m.opts.Translator)
			c.UpdateGroupDescriptions(m.opts.Translator)
		}
		model.StampBreadcrumbs(m.categories)
	}

	if m.opts.Store != nil {
		if skipped, err := m.opts.Store.ApplyStored(m.categories); err != nil {
			m.setStatus(fmt.Sprintf("load values: %v", err))
		} else if skipped > 0 {
			m.setStatus(fmt.Sprintf("%d stored values no longer fit their settings", skipped))
		}
	}

	initial := def.InitialCategory
	if m.opts.Config.UI.InitialCategory != "" {
		initial = m.opts.Config.UI.InitialCategory
	}

	tr := tree.New(m.categories, tree.WithInitialCategory(initial))
	m.nav = NewNavTreeModel(tr, m.theme)

	m.content = NewContentModel(m.theme)
	if m.opts.Config.UI.ShowBreadcrumb != nil {
		m.content.ShowBreadcrumb = *m.opts.Config.UI.ShowBreadcrumb
	}
	m.content.SetCategory(m.nav.SelectedCategory())

	// Carry an active search across reloads.
	if m.searching || m.searchInput.Value() != "" {
		m.applySearch(m.searchInput.Value())
	} else {
		m.result = search.Apply("", m.categories)
	}

	m.layout()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case ReloadMsg:
		return m, m.reloadCmd()

	case reloadedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("reload failed: %v", msg.err))
			return m, m.clearStatusLater()
		}
		selected := ""
		if c := m.nav.SelectedCategory(); c != nil {
			selected = c.Description()
		}
		m.install(msg.def)
		if selected != "" && m.nav.Tree().Select(selected) {
			m.nav.moveCursorToSelection()
			m.content.SetCategory(m.nav.SelectedCategory())
		}
		m.setStatus("definition reloaded")
		return m, m.clearStatusLater()

	case statusClearMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.modal.Active() {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.help.Visible() {
		m.help.Hide()
		return m, nil
	}

	if m.modal.Active() {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		if m.modal.Submitted() {
			m.persistSetting(m.content.SelectedGroup(), m.modal.Setting())
			m.content.Refresh()
			return m, m.clearStatusLater()
		}
		return m, cmd
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "esc":
		if m.searchInput.Value() != "" {
			m.clearSearch()
		}
		return m, nil
	case "tab":
		if m.focus == focusNav {
			m.focus = focusContent
		} else {
			m.focus = focusNav
		}
		return m, nil
	case "f1":
		m.help.Toggle()
		return m, nil
	case "?":
		if s := m.content.SelectedSetting(); s != nil && s.Help != "" {
			m.help.ShowMarkdown(s.Help)
		} else {
			m.help.Toggle()
		}
		return m, nil
	case "y":
		m.yankBreadcrumb()
		return m, m.clearStatusLater()
	case "r":
		return m, m.reloadCmd()
	case "enter":
		if m.focus == focusContent {
			return m.editSelected()
		}
	}

	switch m.focus {
	case focusNav:
		if m.nav.HandleKey(key) {
			m.content.SetCategory(m.nav.SelectedCategory())
		}
	case focusContent:
		m.content.HandleKey(key)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.clearSearch()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.focus = focusNav
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.applySearch(m.searchInput.Value())
	}
	return m, cmd
}

// applySearch runs the fuzzy search, filters the tree, and refreshes
// both panes. Marks and predicate stay consistent because both come from
// the same search pass.
func (m *Model) applySearch(query string) {
	m.result = search.Apply(query, m.categories)
	m.nav.Tree().SetPredicate(m.result.Predicate())
	m.nav.ExpandAll()
	m.nav.moveCursorToSelection()
	m.content.SetCategory(m.nav.SelectedCategory())
	m.content.Refresh()
}

func (m *Model) clearSearch() {
	m.searching = false
	m.searchInput.Blur()
	m.searchInput.SetValue("")
	m.applySearch("")
	m.focus = focusNav
}

// editSelected opens the edit modal, or toggles bool settings in place.
func (m Model) editSelected() (tea.Model, tea.Cmd) {
	s := m.content.SelectedSetting()
	if s == nil {
		return m, nil
	}

	if s.Type == model.TypeBool {
		cur, _ := s.Value.(bool)
		s.Value = !cur
		m.persistSetting(m.content.SelectedGroup(), s)
		m.content.Refresh()
		return m, m.clearStatusLater()
	}

	m.modal.Open(s)
	return m, textinput.Blink
}

func (m *Model) persistSetting(g *model.Group, s *model.Setting) {
	if s == nil {
		return
	}
	if m.opts.Store == nil || g == nil {
		m.setStatus("changed (not persisted)")
		return
	}
	if err := m.opts.Store.SaveSetting(g, s); err != nil {
		m.setStatus(fmt.Sprintf("save failed: %v", err))
		return
	}
	m.setStatus("saved")
}

func (m *Model) yankBreadcrumb() {
	c := m.nav.SelectedCategory()
	if c == nil {
		return
	}
	if err := clipboard.WriteAll(c.Breadcrumb()); err != nil {
		m.setStatus(fmt.Sprintf("clipboard: %v", err))
		return
	}
	m.setStatus("breadcrumb copied")
}

func (m *Model) reloadCmd() tea.Cmd {
	path := m.opts.DefinitionPath
	return func() tea.Msg {
		def, err := loader.Load(path)
		return reloadedMsg{def: def, err: err}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
}

func (m *Model) clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// layout distributes the window between the two panes.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	ratio := m.opts.Config.UI.SplitRatio
	if ratio == 0 {
		ratio = config.DefaultConfig().UI.SplitRatio
	}

	navWidth := int(float64(m.width) * ratio)
	contentWidth := m.width - navWidth - SpaceSM

	// Header and status rows plus panel borders.
	paneHeight := m.height - 4

	m.nav.SetSize(navWidth-SpaceSM, paneHeight)
	m.content.SetSize(contentWidth-SpaceSM, paneHeight)
	m.modal.SetWidth(m.width)
	m.help.SetSize(m.width, m.height)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	if m.help.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View())
	}
	if m.modal.Active() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modal.View())
	}

	header := m.renderHeader()

	navStyle := PanelStyle
	contentStyle := PanelStyle
	if m.focus == focusNav {
		navStyle = FocusedPanelStyle
	} else {
		contentStyle = FocusedPanelStyle
	}

	ratio := m.opts.Config.UI.SplitRatio
	if ratio == 0 {
		ratio = config.DefaultConfig().UI.SplitRatio
	}
	navWidth := int(float64(m.width) * ratio)
	paneHeight := m.height - 4

	navPane := navStyle.Width(navWidth - SpaceSM).Height(paneHeight).Render(m.nav.View())
	contentPane := contentStyle.Width(m.width - navWidth - SpaceSM).Height(paneHeight).Render(m.content.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, navPane, contentPane)

	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	t := m.theme

	title := m.title
	if title == "" {
		title = "Preferences"
	}
	left := t.Header.Render(" " + title + " ")

	right := ""
	if q := m.searchInput.Value(); q != "" && !m.searching {
		right = t.MatchText.Render(fmt.Sprintf("%d matches for %q", m.result.MatchCount(), q))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

func (m Model) renderFooter() string {
	t := m.theme

	if m.searching {
		return m.searchInput.View()
	}
	if m.status != "" {
		return t.SecondaryText.Render(" " + m.status)
	}
	return t.MutedText.Render(" / search · enter edit · tab switch pane · F1 help · q quit")
}
