package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := m.styles.Title.Render("Notes")
	tree := m.styles.ActivePane.
		Width(m.treeWidth()).
		Height(m.paneHeight()).
		Render(m.treeView())
	preview := m.styles.Pane.
		Width(m.previewWidth()).
		Height(m.paneHeight()).
		Render(m.Viewport.View())

	panes := lipgloss.JoinHorizontal(lipgloss.Top, tree, preview)
	return title + "\n" + panes + "\n" + m.statusLine()
}

// treeView renders the visible slice of the tree pane, keeping the cursor
// inside the window.
func (m Model) treeView() string {
	items := m.tree.Items()
	if len(items) == 0 {
		return m.styles.Status.Render("(empty)")
	}

	height := m.paneHeight()
	top := 0
	if m.tree.Selected() >= height {
		top = m.tree.Selected() - height + 1
	}
	end := top + height
	if end > len(items) {
		end = len(items)
	}

	width := m.treeWidth()
	var b strings.Builder
	for i := top; i < end; i++ {
		item := items[i]
		label := strings.Repeat("  ", item.Depth)
		if item.IsDir {
			if item.Expanded {
				label += "▾ "
			} else {
				label += "▸ "
			}
			label += item.Name
		} else {
			label += "  " + item.Name
		}
		label = runewidth.Truncate(label, width, "…")

		line := label
		switch {
		case i == m.tree.Selected():
			line = m.styles.Selected.Render(label)
		case item.IsDir:
			line = m.styles.Dir.Render(label)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) statusLine() string {
	switch m.mode {
	case modeRename:
		return m.styles.Prompt.Render("rename: ") + m.Input.View()

	case modeDeleteConfirm:
		return m.styles.Prompt.Render("delete " + m.deleteTarget + "? (y/n)")

	case modeLineNav:
		if m.status != "" {
			return m.styles.Status.Render(m.status)
		}
		return m.styles.Status.Render("line nav  j/k move  y copy  i edit  esc back")

	case modeConfig:
		label := configFields[m.configField]
		return m.styles.Prompt.Render(label+": ") + m.Input.View() +
			m.styles.Status.Render("  (tab next, enter save)")
	}

	if m.status != "" {
		return m.styles.Status.Render(m.status)
	}
	return m.styles.Status.Render("j/k move  enter edit  n new  d delete  r rename  s sync  c config  q quit")
}
