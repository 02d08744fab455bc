package git_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/notes"
	"github.com/fwojciec/notes/git"
)

// fakeRunner records invocations and replays canned results keyed by the
// git subcommand.
type fakeRunner struct {
	calls   [][]string
	outputs map[string]string
	errors  map[string]error
}

func (f *fakeRunner) Run(_ context.Context, _ string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	key := subcommand(args)
	if err, ok := f.errors[key]; ok {
		return "", err
	}
	return f.outputs[key], nil
}

// subcommand skips any leading -c key=value config pairs.
func subcommand(args []string) string {
	for i := 0; i < len(args); i++ {
		if args[i] == "-c" {
			i++
			continue
		}
		return args[i]
	}
	return ""
}

func (f *fakeRunner) called(sub string) bool {
	for _, call := range f.calls {
		if subcommand(call) == sub {
			return true
		}
	}
	return false
}

func enabledOpts() git.Options {
	return git.Options{
		Enabled:  true,
		Remote:   "git@example.com:me/notes.git",
		Username: "Me",
		Email:    "me@example.com",
	}
}

func TestNewManagerRunner(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	m := git.NewManager(t.TempDir(), enabledOpts(), runner)
	assert.Same(t, runner, m.Runner())

	m = git.NewManager(t.TempDir(), enabledOpts(), nil)
	assert.IsType(t, git.CommandRunner{}, m.Runner())
}

func TestManagerDisabled(t *testing.T) {
	t.Parallel()

	m := git.NewManager(t.TempDir(), git.Options{}, &fakeRunner{})

	assert.ErrorIs(t, m.Init(context.Background()), notes.ErrGitDisabled)
	_, err := m.Sync(context.Background())
	assert.ErrorIs(t, err, notes.ErrGitDisabled)
	_, err = m.Pull(context.Background())
	assert.ErrorIs(t, err, notes.ErrGitDisabled)
}

func TestManagerInit(t *testing.T) {
	t.Parallel()

	t.Run("initializes and wires the remote", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		runner := &fakeRunner{errors: map[string]error{"rev-parse": errors.New("not a repo")}}
		m := git.NewManager(dir, enabledOpts(), runner)

		require.NoError(t, m.Init(context.Background()))
		assert.True(t, runner.called("init"))
		assert.Contains(t, runner.calls, []string{"remote", "add", "origin", "git@example.com:me/notes.git"})
		assert.FileExists(t, filepath.Join(dir, ".gitignore"))
	})

	t.Run("existing repository is left alone", func(t *testing.T) {
		t.Parallel()
		runner := &fakeRunner{}
		m := git.NewManager(t.TempDir(), enabledOpts(), runner)

		require.NoError(t, m.Init(context.Background()))
		assert.False(t, runner.called("init"))
	})
}

func TestManagerSync(t *testing.T) {
	t.Parallel()

	t.Run("clean tree short-circuits", func(t *testing.T) {
		t.Parallel()
		runner := &fakeRunner{}
		m := git.NewManager(t.TempDir(), enabledOpts(), runner)

		out, err := m.Sync(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "nothing to commit", out)
		assert.False(t, runner.called("commit"))
	})

	t.Run("commits with the configured author and pushes", func(t *testing.T) {
		t.Parallel()
		runner := &fakeRunner{outputs: map[string]string{"status": " M welcome.md"}}
		m := git.NewManager(t.TempDir(), enabledOpts(), runner)

		out, err := m.Sync(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "pushed to origin", out)

		var commit []string
		for _, call := range runner.calls {
			if subcommand(call) == "commit" {
				commit = call
			}
		}
		require.NotNil(t, commit)
		assert.Contains(t, strings.Join(commit, " "), "user.name=Me")
		assert.Contains(t, strings.Join(commit, " "), "user.email=me@example.com")
		assert.Contains(t, runner.calls, []string{"push", "origin", "HEAD"})
	})

	t.Run("no remote commits without pushing", func(t *testing.T) {
		t.Parallel()
		opts := enabledOpts()
		opts.Remote = ""
		runner := &fakeRunner{outputs: map[string]string{"status": " M a.md"}}
		m := git.NewManager(t.TempDir(), opts, runner)

		out, err := m.Sync(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "committed (no remote configured)", out)
		assert.False(t, runner.called("push"))
	})

	t.Run("push failure surfaces", func(t *testing.T) {
		t.Parallel()
		runner := &fakeRunner{
			outputs: map[string]string{"status": " M a.md"},
			errors:  map[string]error{"push": errors.New("remote unreachable")},
		}
		m := git.NewManager(t.TempDir(), enabledOpts(), runner)

		_, err := m.Sync(context.Background())
		assert.ErrorContains(t, err, "push")
	})
}

func TestManagerPull(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{outputs: map[string]string{"pull": "Already up to date."}}
	m := git.NewManager(t.TempDir(), enabledOpts(), runner)

	out, err := m.Pull(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Already up to date.", out)
	assert.Contains(t, runner.calls, []string{"pull", "--rebase", "origin"})
}
