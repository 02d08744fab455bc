package bubbletea_test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/notes"
	bt "github.com/fwojciec/notes/bubbletea"
	"github.com/fwojciec/notes/config"
	"github.com/fwojciec/notes/fs"
	"github.com/fwojciec/notes/git"
)

func TestMain(m *testing.M) {
	// Pin the color profile so rendered output is stable regardless of the
	// terminal the tests run in.
	lipgloss.SetColorProfile(termenv.ANSI)
	os.Exit(m.Run())
}

var ansiRe = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// seedVault writes a small notes directory and returns its path.
func seedVault(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "alpha.md"),
		[]byte("# Alpha\n\nBody text here.\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "beta.md"),
		[]byte("Beta contents.\n"), 0o644))
	return root
}

// noopRunner satisfies git.Runner without touching a repository.
type noopRunner struct{}

func (noopRunner) Run(context.Context, string, ...string) (string, error) {
	return "", nil
}

// initModel builds a model over a seeded vault and initializes the
// viewport with a WindowSizeMsg.
func initModel(t *testing.T) bt.Model {
	t.Helper()
	root := seedVault(t)
	cfg := &config.Config{RootDir: root, Editor: "true"}
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	tree, err := fs.NewTree(root, nil)
	require.NoError(t, err)
	manager := git.NewManager(root, git.Options{}, noopRunner{})

	m := bt.New(cfg, cfgPath, tree, manager, notes.DefaultTheme())
	return updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
