package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Tree is the flattened view of the notes directory: directories first,
// then markdown files, alphabetical within each group. Collapsed
// directories are not descended into. Hidden entries, non-markdown files
// and ignore-glob matches are excluded.
type Tree struct {
	root     string
	ignore   []string
	items    []Item
	expanded map[string]bool
	selected int
}

// NewTree scans root and returns a tree with everything collapsed and the
// first item selected. Ignore patterns are doublestar globs relative to
// root.
func NewTree(root string, ignore []string) (*Tree, error) {
	t := &Tree{
		root:     root,
		ignore:   ignore,
		expanded: make(map[string]bool),
	}
	if err := t.rebuild(); err != nil {
		return nil, err
	}
	return t, nil
}

// Root returns the scanned directory.
func (t *Tree) Root() string { return t.root }

// Items returns the visible rows in display order.
func (t *Tree) Items() []Item { return t.items }

// Len returns the number of visible rows.
func (t *Tree) Len() int { return len(t.items) }

// Selected returns the cursor index.
func (t *Tree) Selected() int { return t.selected }

// SelectedItem returns the row under the cursor.
func (t *Tree) SelectedItem() (Item, bool) {
	if t.selected < 0 || t.selected >= len(t.items) {
		return Item{}, false
	}
	return t.items[t.selected], true
}

// SelectedFile returns the path under the cursor when it is a file.
func (t *Tree) SelectedFile() (string, bool) {
	item, ok := t.SelectedItem()
	if !ok || item.IsDir {
		return "", false
	}
	return item.Path, true
}

// Next moves the cursor down, wrapping at the end.
func (t *Tree) Next() {
	if len(t.items) == 0 {
		return
	}
	t.selected = (t.selected + 1) % len(t.items)
}

// Prev moves the cursor up, wrapping at the start.
func (t *Tree) Prev() {
	if len(t.items) == 0 {
		return
	}
	t.selected = (t.selected - 1 + len(t.items)) % len(t.items)
}

// Toggle expands or collapses the directory under the cursor and rebuilds
// the visible rows, keeping the cursor on the same path. Toggling a file
// is a no-op.
func (t *Tree) Toggle() error {
	item, ok := t.SelectedItem()
	if !ok || !item.IsDir {
		return nil
	}
	t.expanded[item.Path] = !t.expanded[item.Path]
	return t.Refresh(item.Path)
}

// Expand marks a directory as expanded without rebuilding. Useful before a
// Refresh that should reveal a newly created file.
func (t *Tree) Expand(dir string) {
	if dir != t.root {
		t.expanded[dir] = true
	}
}

// Refresh rescans the directory preserving expansion state. When
// selectPath is non-empty the cursor moves to it; otherwise the cursor
// stays on its current path when that path still exists.
func (t *Tree) Refresh(selectPath string) error {
	if selectPath == "" {
		if item, ok := t.SelectedItem(); ok {
			selectPath = item.Path
		}
	}
	if err := t.rebuild(); err != nil {
		return err
	}
	if !t.SelectPath(selectPath) && t.selected >= len(t.items) {
		t.selected = 0
	}
	return nil
}

// SelectPath moves the cursor to the row showing path.
func (t *Tree) SelectPath(path string) bool {
	for i, item := range t.items {
		if item.Path == path {
			t.selected = i
			return true
		}
	}
	return false
}

func (t *Tree) rebuild() error {
	t.items = t.items[:0]
	return t.addDir(t.root, 0)
}

func (t *Tree) addDir(dir string, depth int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	// ReadDir sorts by name; a stable partition keeps directories first
	// without disturbing the alphabetical order inside each group.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].IsDir() && !entries[j].IsDir()
	})

	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !e.IsDir() && filepath.Ext(name) != ".md" {
			continue
		}
		path := filepath.Join(dir, name)
		if t.ignored(path, e.IsDir()) {
			continue
		}
		item := Item{
			Path:     path,
			Name:     name,
			Depth:    depth,
			IsDir:    e.IsDir(),
			Expanded: t.expanded[path],
		}
		t.items = append(t.items, item)
		if item.IsDir && item.Expanded {
			if err := t.addDir(path, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// ignored reports whether a pattern hides the entry. A dir/** pattern
// hides everything under dir without hiding the directory row itself
// (doublestar lets ** match zero segments, which would otherwise make the
// directory vanish along with its contents).
func (t *Tree) ignored(path string, isDir bool) bool {
	rel, err := filepath.Rel(t.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range t.ignore {
		if isDir {
			if base, ok := strings.CutSuffix(pattern, "/**"); ok && base == rel {
				continue
			}
		}
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
