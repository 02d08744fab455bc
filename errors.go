package notes

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrParse indicates the markdown parser could not process the source.
	// Hosts must fall back to verbatim per-line display on this error.
	ErrParse = errors.New("parse error")

	// ErrGitDisabled indicates a git operation was requested while git
	// integration is turned off in the configuration.
	ErrGitDisabled = errors.New("git integration is not enabled")

	// ErrNoSelection indicates a file operation was requested with no tree
	// item selected.
	ErrNoSelection = errors.New("no selection")
)
