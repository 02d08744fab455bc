package bubbletea

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/notes"
	"github.com/fwojciec/notes/fs"
	"github.com/fwojciec/notes/git"
)

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		m.tree.Next()
		m.loadSelected()
		return m, nil

	case "k", "up":
		m.tree.Prev()
		m.loadSelected()
		return m, nil

	case "tab", " ":
		if err := m.tree.Toggle(); err != nil {
			m.status = m.styles.Error.Render(err.Error())
			return m, nil
		}
		m.loadSelected()
		return m, nil

	case "enter", "e":
		item, ok := m.tree.SelectedItem()
		if !ok {
			return m, nil
		}
		if item.IsDir {
			if err := m.tree.Toggle(); err != nil {
				m.status = m.styles.Error.Render(err.Error())
			}
			return m, nil
		}
		return m, m.editCmd(item.Path)

	case "n":
		return m.createEntry(fs.CreateNote), nil

	case "f":
		return m.createEntry(fs.CreateFolder), nil

	case "r":
		item, ok := m.tree.SelectedItem()
		if !ok {
			m.status = notes.ErrNoSelection.Error()
			return m, nil
		}
		m.mode = modeRename
		name := item.Name
		if !item.IsDir {
			name = strings.TrimSuffix(name, ".md")
		}
		m.Input.SetValue(name)
		m.Input.CursorEnd()
		m.Input.Focus()
		return m, nil

	case "d":
		item, ok := m.tree.SelectedItem()
		if !ok {
			m.status = notes.ErrNoSelection.Error()
			return m, nil
		}
		m.deleteTarget = item.Path
		m.mode = modeDeleteConfirm
		return m, nil

	case "v":
		if len(m.rendered) == 0 {
			return m, nil
		}
		m.mode = modeLineNav
		m.lineSel = 0
		m.status = ""
		m.refreshPreview()
		m.Viewport.GotoTop()
		return m, nil

	case "s":
		m.status = "syncing..."
		return m, m.gitCmd("sync")

	case "p":
		m.status = "pulling..."
		return m, m.gitCmd("pull")

	case "c":
		m.mode = modeConfig
		m.configField = 0
		m.Input.SetValue(m.configValue(0))
		m.Input.CursorEnd()
		m.Input.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// createEntry runs a create operation in the directory implied by the
// selection, then reveals the new entry.
func (m Model) createEntry(create func(dir string) (string, error)) Model {
	dir := fs.TargetDir(m.tree)
	path, err := create(dir)
	if err != nil {
		m.status = m.styles.Error.Render(err.Error())
		return m
	}
	m.tree.Expand(dir)
	if err := m.tree.Refresh(path); err != nil {
		m.status = m.styles.Error.Render(err.Error())
		return m
	}
	m.loadSelected()
	m.status = "created " + filepath.Base(path)
	return m
}

func (m Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.Input.Blur()
		return m, nil

	case "enter":
		item, ok := m.tree.SelectedItem()
		if !ok {
			m.mode = modeNormal
			m.Input.Blur()
			return m, nil
		}
		newPath, err := fs.Rename(item.Path, strings.TrimSpace(m.Input.Value()))
		if err != nil {
			m.status = m.styles.Error.Render(err.Error())
			m.mode = modeNormal
			m.Input.Blur()
			return m, nil
		}
		m.mode = modeNormal
		m.Input.Blur()
		if err := m.tree.Refresh(newPath); err != nil {
			m.status = m.styles.Error.Render(err.Error())
			return m, nil
		}
		m.loadSelected()
		m.status = "renamed to " + filepath.Base(newPath)
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) handleDeleteConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		target := m.deleteTarget
		m.deleteTarget = ""
		m.mode = modeNormal
		if err := fs.Delete(target); err != nil {
			m.status = m.styles.Error.Render(err.Error())
			return m, nil
		}
		if err := m.tree.Refresh(""); err != nil {
			m.status = m.styles.Error.Render(err.Error())
			return m, nil
		}
		m.loadSelected()
		m.status = "deleted " + filepath.Base(target)
		return m, nil

	case "n", "esc":
		m.deleteTarget = ""
		m.mode = modeNormal
		return m, nil
	}
	return m, nil
}

func (m Model) handleLineNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "left", "h":
		m.mode = modeNormal
		m.refreshPreview()
		return m, nil

	case "j", "down":
		if m.lineSel < len(m.rendered)-1 {
			m.lineSel++
			m.refreshPreview()
			m.scrollToLine()
		}
		return m, nil

	case "k", "up":
		if m.lineSel > 0 {
			m.lineSel--
			m.refreshPreview()
			m.scrollToLine()
		}
		return m, nil

	case "y":
		if m.lineSel >= len(m.rendered) {
			return m, nil
		}
		// Prefer the raw source line when the cursor maps onto one;
		// wrapped output past the source falls back to the display text.
		text := m.rendered[m.lineSel].String()
		if m.lineSel < len(m.sourceLines) {
			text = m.sourceLines[m.lineSel]
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.status = m.styles.Error.Render("clipboard: " + err.Error())
			return m, nil
		}
		m.status = "copied line " + strconv.Itoa(m.lineSel+1)
		return m, nil

	case "i", "e", "enter":
		if m.contentPath == "" {
			return m, nil
		}
		m.mode = modeNormal
		m.refreshPreview()
		return m, m.editCmd(m.contentPath)
	}
	return m, nil
}

// Configuration screen fields, in display order.
var configFields = []string{
	"root directory",
	"editor",
	"git enabled",
	"git remote",
	"git username",
	"git email",
}

func (m Model) configValue(field int) string {
	switch field {
	case 0:
		return m.cfg.RootDir
	case 1:
		return m.cfg.Editor
	case 2:
		return strconv.FormatBool(m.cfg.GitEnabled)
	case 3:
		return m.cfg.GitRemote
	case 4:
		return m.cfg.GitUsername
	case 5:
		return m.cfg.GitEmail
	}
	return ""
}

func (m *Model) setConfigValue(field int, value string) {
	switch field {
	case 0:
		if value != "" {
			m.cfg.RootDir = value
		}
	case 1:
		if value != "" {
			m.cfg.Editor = value
		}
	case 2:
		if enabled, err := strconv.ParseBool(value); err == nil {
			m.cfg.GitEnabled = enabled
		}
	case 3:
		m.cfg.GitRemote = value
	case 4:
		m.cfg.GitUsername = value
	case 5:
		m.cfg.GitEmail = value
	}
}

func (m Model) handleConfigKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.setConfigValue(m.configField, strings.TrimSpace(m.Input.Value()))
		m.configField = (m.configField + 1) % len(configFields)
		m.Input.SetValue(m.configValue(m.configField))
		m.Input.CursorEnd()
		return m, nil

	case "shift+tab", "up":
		m.setConfigValue(m.configField, strings.TrimSpace(m.Input.Value()))
		m.configField = (m.configField - 1 + len(configFields)) % len(configFields)
		m.Input.SetValue(m.configValue(m.configField))
		m.Input.CursorEnd()
		return m, nil

	case "enter", "esc":
		m.setConfigValue(m.configField, strings.TrimSpace(m.Input.Value()))
		m.mode = modeNormal
		m.Input.Blur()
		return m.applyConfig(), nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// applyConfig persists the edited settings and rebuilds everything derived
// from them.
func (m Model) applyConfig() Model {
	if err := m.cfg.Save(m.cfgPath); err != nil {
		m.status = m.styles.Error.Render("save config: " + err.Error())
		return m
	}

	if m.cfg.RootDir != m.tree.Root() {
		tree, err := fs.NewTree(m.cfg.RootDir, m.cfg.Ignore)
		if err != nil {
			m.status = m.styles.Error.Render("open notes dir: " + err.Error())
			return m
		}
		m.tree = tree
	}
	m.git = git.NewManager(m.cfg.RootDir, git.Options{
		Enabled:  m.cfg.GitEnabled,
		Remote:   m.cfg.GitRemote,
		Username: m.cfg.GitUsername,
		Email:    m.cfg.GitEmail,
	}, m.git.Runner())

	m.loadSelected()
	m.status = "configuration saved"
	return m
}
