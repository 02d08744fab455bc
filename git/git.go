// Package git synchronizes the notes directory with a remote repository
// by invoking the installed git binary.
package git

import (
	"context"
	"fmt"
	"os"
	osexec "os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/notes"
)

const gitignoreContent = "*.tmp\n*.bak\n*~\n.DS_Store\nThumbs.db\n"

// DefaultTimeout bounds a single git invocation. Network operations
// against an unreachable remote hang far longer than a user will wait.
const DefaultTimeout = 60 * time.Second

// Runner executes one git subcommand in a directory and returns its
// combined output. It exists so tests can record invocations without a
// repository.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// CommandRunner runs git via os/exec.
type CommandRunner struct{}

// Run implements Runner.
func (CommandRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	cmd := osexec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(out))
	if err != nil {
		if text != "" {
			return text, fmt.Errorf("git %s: %s: %w", args[0], text, err)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return text, nil
}

// Options mirror the configuration's git settings.
type Options struct {
	Enabled  bool
	Remote   string
	Username string
	Email    string
}

// Manager performs repository operations on the notes root. Every
// operation returns notes.ErrGitDisabled when integration is off.
type Manager struct {
	dir    string
	opts   Options
	runner Runner
}

// NewManager creates a Manager for the notes directory. A nil runner
// falls back to the real git binary.
func NewManager(dir string, opts Options, runner Runner) *Manager {
	if runner == nil {
		runner = CommandRunner{}
	}
	return &Manager{dir: dir, opts: opts, runner: runner}
}

// Runner returns the manager's runner so callers rebuilding a Manager with
// new options keep the one they injected.
func (m *Manager) Runner() Runner { return m.runner }

// Init initializes a repository in the notes directory on first use:
// git init, a default .gitignore, and the configured remote as origin.
// Re-running against an existing repository is a no-op.
func (m *Manager) Init(ctx context.Context) error {
	if !m.opts.Enabled {
		return notes.ErrGitDisabled
	}
	if _, err := m.runner.Run(ctx, m.dir, "rev-parse", "--git-dir"); err == nil {
		return nil
	}
	if _, err := m.runner.Run(ctx, m.dir, "init"); err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	path := filepath.Join(m.dir, ".gitignore")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(gitignoreContent), 0o644); err != nil {
			return fmt.Errorf("write .gitignore: %w", err)
		}
	}
	if m.opts.Remote != "" {
		if _, err := m.runner.Run(ctx, m.dir, "remote", "add", "origin", m.opts.Remote); err != nil {
			return fmt.Errorf("add remote: %w", err)
		}
	}
	return nil
}

// Sync stages everything, commits with the configured author, and pushes
// to origin when a remote is configured. A clean tree short-circuits
// without committing.
func (m *Manager) Sync(ctx context.Context) (string, error) {
	if !m.opts.Enabled {
		return "", notes.ErrGitDisabled
	}
	if _, err := m.runner.Run(ctx, m.dir, "add", "-A"); err != nil {
		return "", fmt.Errorf("stage changes: %w", err)
	}
	status, err := m.runner.Run(ctx, m.dir, "status", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("check status: %w", err)
	}
	if status == "" {
		return "nothing to commit", nil
	}

	args := make([]string, 0, 8)
	if m.opts.Username != "" {
		args = append(args, "-c", "user.name="+m.opts.Username)
	}
	if m.opts.Email != "" {
		args = append(args, "-c", "user.email="+m.opts.Email)
	}
	message := "Notes update " + time.Now().Format("2006-01-02 15:04:05")
	args = append(args, "commit", "-m", message)
	if _, err := m.runner.Run(ctx, m.dir, args...); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	if m.opts.Remote == "" {
		return "committed (no remote configured)", nil
	}
	out, err := m.runner.Run(ctx, m.dir, "push", "origin", "HEAD")
	if err != nil {
		return "", fmt.Errorf("push: %w", err)
	}
	if out == "" {
		out = "pushed to origin"
	}
	return out, nil
}

// Pull rebases local commits on top of the remote.
func (m *Manager) Pull(ctx context.Context) (string, error) {
	if !m.opts.Enabled {
		return "", notes.ErrGitDisabled
	}
	out, err := m.runner.Run(ctx, m.dir, "pull", "--rebase", "origin")
	if err != nil {
		return "", fmt.Errorf("pull: %w", err)
	}
	if out == "" {
		out = "up to date"
	}
	return out, nil
}
