package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const seedContent = "# New Note\n\nWrite your notes here...\n"

const welcomeContent = `# Welcome to Notes!

This is your markdown notes browser.

## Features:
- Navigate through markdown files
- Edit files with your preferred editor
- VIM-like interface
- Git integration for syncing notes

## Usage:
- Use arrow keys or j/k to navigate
- Press Enter to edit a file
- Press 'n' to create a new file
- Press 'c' to open configuration
- Press 'q' to quit

Happy note-taking!
`

// CreateNote writes a timestamped markdown note in dir and returns its
// path.
func CreateNote(dir string) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("note_%d.md", time.Now().Unix()))
	if err := os.WriteFile(path, []byte(seedContent), 0o644); err != nil {
		return "", fmt.Errorf("create note: %w", err)
	}
	return path, nil
}

// CreateFolder creates a timestamped folder in dir and returns its path.
func CreateFolder(dir string) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("folder_%d", time.Now().Unix()))
	if err := os.Mkdir(path, 0o755); err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}
	return path, nil
}

// Rename renames the entry at path to newName within the same directory
// and returns the new path. Markdown files keep their extension even when
// the new name omits it.
func Rename(path, newName string) (string, error) {
	if newName == "" {
		return "", fmt.Errorf("rename %s: empty name", path)
	}
	if strings.HasSuffix(path, ".md") && !strings.HasSuffix(newName, ".md") {
		newName += ".md"
	}
	newPath := filepath.Join(filepath.Dir(path), newName)
	if err := os.Rename(path, newPath); err != nil {
		return "", fmt.Errorf("rename: %w", err)
	}
	return newPath, nil
}

// Delete removes a file, or a directory with all its contents.
func Delete(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// WriteWelcome creates the first-run welcome note in root unless one
// already exists.
func WriteWelcome(root string) error {
	path := filepath.Join(root, "welcome.md")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(welcomeContent), 0o644); err != nil {
		return fmt.Errorf("write welcome note: %w", err)
	}
	return nil
}

// TargetDir resolves where a new entry should go relative to the current
// selection: inside a selected directory, next to a selected file, or at
// the root when nothing is selected.
func TargetDir(t *Tree) string {
	item, ok := t.SelectedItem()
	if !ok {
		return t.Root()
	}
	if item.IsDir {
		return item.Path
	}
	return filepath.Dir(item.Path)
}
