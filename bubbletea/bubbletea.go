// Package bubbletea implements the terminal UI for the notes browser: a
// directory tree pane, a rendered markdown preview pane, and a mode state
// machine for file operations, line navigation and configuration editing.
package bubbletea

// editorFinishedMsg reports the external editor process exiting.
type editorFinishedMsg struct {
	err error
}

// gitResultMsg reports a completed git operation.
type gitResultMsg struct {
	op  string
	out string
	err error
}
