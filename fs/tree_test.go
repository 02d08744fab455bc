package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/notes/fs"
)

// seedVault creates a small notes directory:
//
//	alpha.md
//	beta.md
//	notes.txt          (excluded: not markdown)
//	.hidden/           (excluded: hidden)
//	projects/
//	  plan.md
//	  sub/
//	    deep.md
func seedVault(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "projects", "sub"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".hidden"), 0o755))
	for _, f := range []string{
		"alpha.md",
		"beta.md",
		"notes.txt",
		filepath.Join("projects", "plan.md"),
		filepath.Join("projects", "sub", "deep.md"),
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("# x\n"), 0o644))
	}
	return root
}

func names(items []fs.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestTree(t *testing.T) {
	t.Parallel()

	t.Run("directories first then markdown files, alphabetical", func(t *testing.T) {
		t.Parallel()
		tree, err := fs.NewTree(seedVault(t), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"projects", "alpha.md", "beta.md"}, names(tree.Items()))
	})

	t.Run("collapsed directories are not descended into", func(t *testing.T) {
		t.Parallel()
		tree, err := fs.NewTree(seedVault(t), nil)
		require.NoError(t, err)
		for _, item := range tree.Items() {
			assert.Zero(t, item.Depth)
		}
	})

	t.Run("toggle expands a directory and keeps the cursor on it", func(t *testing.T) {
		t.Parallel()
		tree, err := fs.NewTree(seedVault(t), nil)
		require.NoError(t, err)

		require.NoError(t, tree.Toggle()) // cursor starts on projects/
		assert.Equal(t, []string{"projects", "sub", "plan.md", "alpha.md", "beta.md"}, names(tree.Items()))
		item, ok := tree.SelectedItem()
		require.True(t, ok)
		assert.Equal(t, "projects", item.Name)
		assert.True(t, item.Expanded)

		require.NoError(t, tree.Toggle())
		assert.Equal(t, []string{"projects", "alpha.md", "beta.md"}, names(tree.Items()))
	})

	t.Run("nested expansion tracks depth", func(t *testing.T) {
		t.Parallel()
		tree, err := fs.NewTree(seedVault(t), nil)
		require.NoError(t, err)
		require.NoError(t, tree.Toggle())
		tree.Next() // sub/
		require.NoError(t, tree.Toggle())

		byName := map[string]fs.Item{}
		for _, item := range tree.Items() {
			byName[item.Name] = item
		}
		assert.Equal(t, 1, byName["sub"].Depth)
		assert.Equal(t, 2, byName["deep.md"].Depth)
	})

	t.Run("cursor wraps in both directions", func(t *testing.T) {
		t.Parallel()
		tree, err := fs.NewTree(seedVault(t), nil)
		require.NoError(t, err)
		tree.Prev()
		assert.Equal(t, tree.Len()-1, tree.Selected())
		tree.Next()
		assert.Equal(t, 0, tree.Selected())
	})

	t.Run("selected file skips directories", func(t *testing.T) {
		t.Parallel()
		tree, err := fs.NewTree(seedVault(t), nil)
		require.NoError(t, err)
		_, ok := tree.SelectedFile() // cursor on projects/
		assert.False(t, ok)
		tree.Next()
		path, ok := tree.SelectedFile()
		require.True(t, ok)
		assert.Equal(t, "alpha.md", filepath.Base(path))
	})

	t.Run("ignore globs filter the tree", func(t *testing.T) {
		t.Parallel()
		tree, err := fs.NewTree(seedVault(t), []string{"beta.md", "projects/**"})
		require.NoError(t, err)
		assert.Equal(t, []string{"projects", "alpha.md"}, names(tree.Items()))

		// Expanding the directory reveals nothing: its contents match
		// the projects/** glob, but the directory row itself stays.
		require.NoError(t, tree.Toggle())
		assert.Equal(t, []string{"projects", "alpha.md"}, names(tree.Items()))
	})

	t.Run("exact directory glob hides the directory", func(t *testing.T) {
		t.Parallel()
		tree, err := fs.NewTree(seedVault(t), []string{"projects"})
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha.md", "beta.md"}, names(tree.Items()))
	})

	t.Run("refresh keeps expansion state and targets a new path", func(t *testing.T) {
		t.Parallel()
		root := seedVault(t)
		tree, err := fs.NewTree(root, nil)
		require.NoError(t, err)
		require.NoError(t, tree.Toggle())

		path := filepath.Join(root, "projects", "new.md")
		require.NoError(t, os.WriteFile(path, []byte("# n\n"), 0o644))
		require.NoError(t, tree.Refresh(path))

		item, ok := tree.SelectedItem()
		require.True(t, ok)
		assert.Equal(t, "new.md", item.Name)
		assert.Contains(t, names(tree.Items()), "plan.md")
	})

	t.Run("empty root yields no selection", func(t *testing.T) {
		t.Parallel()
		tree, err := fs.NewTree(t.TempDir(), nil)
		require.NoError(t, err)
		assert.Zero(t, tree.Len())
		_, ok := tree.SelectedItem()
		assert.False(t, ok)
	})
}

func TestOps(t *testing.T) {
	t.Parallel()

	t.Run("create note seeds content", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path, err := fs.CreateNote(dir)
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "# New Note")
		assert.Equal(t, ".md", filepath.Ext(path))
	})

	t.Run("rename keeps the markdown extension", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		old := filepath.Join(dir, "a.md")
		require.NoError(t, os.WriteFile(old, []byte("x"), 0o644))

		renamed, err := fs.Rename(old, "b")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "b.md"), renamed)
		assert.NoFileExists(t, old)
		assert.FileExists(t, renamed)
	})

	t.Run("rename rejects an empty name", func(t *testing.T) {
		t.Parallel()
		_, err := fs.Rename(filepath.Join(t.TempDir(), "a.md"), "")
		assert.Error(t, err)
	})

	t.Run("delete removes directories recursively", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		sub := filepath.Join(dir, "sub")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(sub, "a.md"), []byte("x"), 0o644))

		require.NoError(t, fs.Delete(sub))
		assert.NoDirExists(t, sub)
	})

	t.Run("welcome note is written once", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, fs.WriteWelcome(root))
		path := filepath.Join(root, "welcome.md")
		require.NoError(t, os.WriteFile(path, []byte("edited"), 0o644))
		require.NoError(t, fs.WriteWelcome(root))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "edited", string(data))
	})

	t.Run("target dir follows the selection", func(t *testing.T) {
		t.Parallel()
		root := seedVault(t)
		tree, err := fs.NewTree(root, nil)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(root, "projects"), fs.TargetDir(tree)) // dir selected
		tree.Next()
		assert.Equal(t, root, fs.TargetDir(tree)) // file selected: its parent
	})
}
