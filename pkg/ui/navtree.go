package ui

import (
	"strings"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
	"github.com/Dicklesworthstone/prefnav/pkg/tree"
)

// NavFlatNode is a single visible row in the navigation pane
type NavFlatNode struct {
	Node       *tree.Node
	TreePrefix string // Visual tree prefix (├─, └─, │ )
}

// NavTreeModel renders the filterable category tree and tracks cursor,
// scroll, and expand state. The synthetic root is never rendered.
type NavTreeModel struct {
	tree   *tree.Tree
	flat   []NavFlatNode
	cursor int
	scroll int
	width  int
	height int
	theme  Theme
}

// NewNavTreeModel wraps a filterable tree for display.
func NewNavTreeModel(tr *tree.Tree, theme Theme) NavTreeModel {
	m := NavTreeModel{tree: tr, theme: theme}
	m.RebuildFlat()
	m.moveCursorToSelection()
	return m
}

// Tree returns the underlying filterable tree.
func (m *NavTreeModel) Tree() *tree.Tree {
	return m.tree
}

// SetSize updates the available dimensions.
func (m *NavTreeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// RebuildFlat flattens the visible tree into display rows, descending
// only into expanded nodes.
func (m *NavTreeModel) RebuildFlat() {
	m.flat = m.flat[:0]

	var walk func(n *tree.Node, parentPath []bool)
	walk = func(n *tree.Node, parentPath []bool) {
		children := n.VisibleChildren()
		for i, child := range children {
			isLast := i == len(children)-1

			prefix := ""
			for _, wasLast := range parentPath {
				if wasLast {
					prefix += "   "
				} else {
					prefix += "│  "
				}
			}
			if child.Depth() > 0 {
				if isLast {
					prefix += "└─ "
				} else {
					prefix += "├─ "
				}
			}

			m.flat = append(m.flat, NavFlatNode{Node: child, TreePrefix: prefix})
			if child.Expanded {
				next := parentPath
				if child.Depth() > 0 {
					next = append(append([]bool{}, parentPath...), isLast)
				}
				walk(child, next)
			}
		}
	}

	// Start below the two synthetic levels.
	origin := m.tree.Root().VisibleChildren()
	if len(origin) > 0 {
		walk(origin[0], nil)
	}

	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// ExpandAll expands every visible node, used while a search filter is
// active so matches are always reachable.
func (m *NavTreeModel) ExpandAll() {
	for _, n := range m.tree.VisibleNodes() {
		n.Expanded = true
	}
	m.RebuildFlat()
}

// HandleKey processes a navigation key. Returns true if the key was
// consumed.
func (m *NavTreeModel) HandleKey(key string) bool {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.syncSelection()
		m.ensureVisible()
		return true
	case "down", "j":
		if m.cursor < len(m.flat)-1 {
			m.cursor++
		}
		m.syncSelection()
		m.ensureVisible()
		return true
	case "right", "l":
		if n := m.cursorNode(); n != nil && len(n.VisibleChildren()) > 0 {
			n.Expanded = true
			m.RebuildFlat()
		}
		return true
	case "left", "h":
		if n := m.cursorNode(); n != nil {
			if n.Expanded && len(n.VisibleChildren()) > 0 {
				n.Expanded = false
				m.RebuildFlat()
			} else if parent := n.Parent(); parent != nil && parent.Category() != nil {
				m.moveCursorTo(parent)
			}
		}
		return true
	case " ", "tab":
		if n := m.cursorNode(); n != nil && len(n.VisibleChildren()) > 0 {
			n.Expanded = !n.Expanded
			m.RebuildFlat()
		}
		return true
	}
	return false
}

// SelectedCategory returns the category under the cursor, or nil when
// the tree is empty.
func (m *NavTreeModel) SelectedCategory() *model.Category {
	if n := m.cursorNode(); n != nil {
		return n.Category()
	}
	return nil
}

// RowCount returns the number of visible rows.
func (m *NavTreeModel) RowCount() int {
	return len(m.flat)
}

func (m *NavTreeModel) cursorNode() *tree.Node {
	if m.cursor < 0 || m.cursor >= len(m.flat) {
		return nil
	}
	return m.flat[m.cursor].Node
}

func (m *NavTreeModel) syncSelection() {
	m.tree.SelectNode(m.cursorNode())
}

// moveCursorToSelection positions the cursor on the tree's selected node,
// expanding ancestors so it is actually on screen.
func (m *NavTreeModel) moveCursorToSelection() {
	sel := m.tree.Selected()
	if sel == nil {
		return
	}
	for p := sel.Parent(); p != nil; p = p.Parent() {
		p.Expanded = true
	}
	m.RebuildFlat()
	m.moveCursorTo(sel)
}

func (m *NavTreeModel) moveCursorTo(target *tree.Node) {
	for i, row := range m.flat {
		if row.Node == target {
			m.cursor = i
			m.syncSelection()
			m.ensureVisible()
			return
		}
	}
}

func (m *NavTreeModel) ensureVisible() {
	if m.height <= 0 {
		return
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+m.height {
		m.scroll = m.cursor - m.height + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// View renders the navigation pane.
func (m *NavTreeModel) View() string {
	t := m.theme

	if len(m.flat) == 0 {
		return t.MutedText.Render("  no matching categories")
	}

	var b strings.Builder
	end := len(m.flat)
	if m.height > 0 && m.scroll+m.height < end {
		end = m.scroll + m.height
	}

	for i := m.scroll; i < end; i++ {
		row := m.flat[i]
		category := row.Node.Category()

		label := category.Description()
		if icon := category.ItemIcon(); icon != "" {
			label = icon + " " + label
		}
		if len(row.Node.SourceChildren()) > 0 {
			if row.Node.Expanded {
				label = "▾ " + label
			} else {
				label = "▸ " + label
			}
		}

		line := row.TreePrefix + label
		if m.width > 0 {
			line = truncate(line, m.width-SpaceSM)
		}

		if i == m.cursor {
			b.WriteString(t.Selected.Render(line))
		} else {
			b.WriteString(t.Base.Render(" " + line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
