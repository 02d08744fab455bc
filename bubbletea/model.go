package bubbletea

import (
	"context"
	"errors"
	"os"
	osexec "os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/notes"
	"github.com/fwojciec/notes/config"
	"github.com/fwojciec/notes/fs"
	"github.com/fwojciec/notes/git"
	"github.com/fwojciec/notes/goldmark"
	"github.com/fwojciec/notes/render"
)

type mode int

const (
	modeNormal mode = iota
	modeRename
	modeDeleteConfirm
	modeLineNav
	modeConfig
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the notes browser.
type Model struct {
	// Viewport is the scrollable preview pane. Exported for test access.
	Viewport viewport.Model
	// Input edits rename and configuration values. Exported for test access.
	Input textinput.Model

	cfg     *config.Config
	cfgPath string
	tree    *fs.Tree
	git     *git.Manager
	theme   notes.Theme
	styles  Styles

	mode   mode
	width  int
	height int
	ready  bool

	// Preview state for the selected file. sourceLines is the raw
	// newline split used by line copy; rendered is the styled output the
	// line cursor moves over.
	contentPath string
	sourceLines []string
	rendered    []notes.Line
	lineSel     int

	deleteTarget string
	configField  int
	status       string
}

// New creates the TUI model. The tree and git manager are built by the
// caller so tests can inject fakes.
func New(cfg *config.Config, cfgPath string, tree *fs.Tree, manager *git.Manager, theme notes.Theme) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0

	return Model{
		Input:   ti,
		cfg:     cfg,
		cfgPath: cfgPath,
		tree:    tree,
		git:     manager,
		theme:   theme,
		styles:  NewStyles(theme),
	}
}

// Mode helpers for tests.

// Renaming reports whether the rename prompt is active.
func (m Model) Renaming() bool { return m.mode == modeRename }

// ConfirmingDelete reports whether the delete confirmation is active.
func (m Model) ConfirmingDelete() bool { return m.mode == modeDeleteConfirm }

// Navigating reports whether line navigation is active.
func (m Model) Navigating() bool { return m.mode == modeLineNav }

// Configuring reports whether the configuration screen is active.
func (m Model) Configuring() bool { return m.mode == modeConfig }

// Status returns the status bar message.
func (m Model) Status() string { return m.status }

// Root returns the notes directory currently shown in the tree.
func (m Model) Root() string { return m.tree.Root() }

// ConfigPath returns where settings are persisted.
func (m Model) ConfigPath() string { return m.cfgPath }

// LineSelection returns the line-navigation cursor index.
func (m Model) LineSelection() int { return m.lineSel }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		switch m.mode {
		case modeRename:
			return m.handleRenameKey(msg)
		case modeDeleteConfirm:
			return m.handleDeleteConfirmKey(msg)
		case modeLineNav:
			return m.handleLineNavKey(msg)
		case modeConfig:
			return m.handleConfigKey(msg)
		default:
			return m.handleNormalKey(msg)
		}

	case editorFinishedMsg:
		if msg.err != nil {
			m.status = m.styles.Error.Render("editor: " + msg.err.Error())
			return m, nil
		}
		m.loadSelected()
		m.status = "reloaded"
		return m, nil

	case gitResultMsg:
		return m.handleGitResult(msg), nil
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	vpWidth := m.previewWidth()
	vpHeight := m.paneHeight()
	if !m.ready {
		m.Viewport = viewport.New(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = vpWidth
		m.Viewport.Height = vpHeight
	}

	// Re-render at the new wrap width.
	m.loadSelected()
	return m
}

func (m *Model) treeWidth() int {
	w := m.width * 3 / 10
	if w < 20 {
		w = 20
	}
	if w > 40 {
		w = 40
	}
	return w
}

func (m *Model) previewWidth() int {
	w := m.width - m.treeWidth() - 4 // pane borders
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) paneHeight() int {
	h := m.height - 4 // title, status, pane borders
	if h < 3 {
		h = 3
	}
	return h
}

// loadSelected reads the file under the cursor and rebuilds the preview.
// A parse failure degrades to one unstyled line per raw source line.
func (m *Model) loadSelected() {
	item, ok := m.tree.SelectedItem()
	if !ok || item.IsDir {
		m.contentPath = ""
		m.sourceLines = nil
		m.rendered = nil
		m.lineSel = 0
		if m.ready {
			m.Viewport.SetContent("")
		}
		return
	}

	data, err := os.ReadFile(item.Path)
	if err != nil {
		m.contentPath = item.Path
		m.sourceLines = []string{"Error reading file"}
		m.rendered = verbatim(m.sourceLines)
		m.refreshPreview()
		return
	}

	content := string(data)
	m.contentPath = item.Path
	m.sourceLines = notes.SourceLines(content)
	m.lineSel = 0

	elements, err := goldmark.Parse(content)
	if err != nil {
		m.rendered = verbatim(m.sourceLines)
	} else {
		m.rendered = render.Render(elements, m.previewWidth(), m.theme)
	}
	m.refreshPreview()
	if m.ready {
		m.Viewport.GotoTop()
	}
}

// verbatim wraps raw source lines as unstyled display lines.
func verbatim(lines []string) []notes.Line {
	out := make([]notes.Line, len(lines))
	for i, ln := range lines {
		out[i] = notes.Line{{Text: ln, Style: notes.PlainStyle()}}
	}
	return out
}

func (m *Model) refreshPreview() {
	if m.ready {
		m.Viewport.SetContent(m.previewContent())
	}
}

// previewContent joins the rendered lines, highlighting the cursor line
// while line navigation is active.
func (m *Model) previewContent() string {
	lines := make([]string, len(m.rendered))
	for i, line := range m.rendered {
		if m.mode == modeLineNav && i == m.lineSel {
			lines[i] = m.styles.LineCursor.Render(line.String())
			continue
		}
		lines[i] = m.styles.RenderLine(line)
	}
	return strings.Join(lines, "\n")
}

// scrollToLine keeps the line-navigation cursor inside the viewport.
func (m *Model) scrollToLine() {
	if !m.ready {
		return
	}
	top := m.Viewport.YOffset
	bottom := top + m.Viewport.Height - 1
	if m.lineSel < top {
		m.Viewport.SetYOffset(m.lineSel)
	} else if m.lineSel > bottom {
		m.Viewport.SetYOffset(m.lineSel - m.Viewport.Height + 1)
	}
}

func (m Model) editCmd(path string) tea.Cmd {
	cmd := osexec.Command(m.cfg.Editor, path)
	cmd.Dir = m.tree.Root()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (m Model) gitCmd(op string) tea.Cmd {
	manager := m.git
	return func() tea.Msg {
		var (
			out string
			err error
		)
		switch op {
		case "pull":
			out, err = manager.Pull(context.Background())
		default:
			out, err = manager.Sync(context.Background())
		}
		return gitResultMsg{op: op, out: out, err: err}
	}
}

func (m Model) handleGitResult(msg gitResultMsg) Model {
	switch {
	case errors.Is(msg.err, notes.ErrGitDisabled):
		m.status = "git integration is not enabled (see config)"
	case msg.err != nil:
		m.status = m.styles.Error.Render("git " + msg.op + ": " + msg.err.Error())
	default:
		m.status = msg.out
		if msg.op == "pull" {
			if err := m.tree.Refresh(""); err == nil {
				m.loadSelected()
			}
		}
	}
	return m
}
