// Command notes is a terminal browser for a directory of markdown notes.
//
// Usage:
//
//	notes [flags]
//
// Flags:
//
//	-config string  Path to config file (default: os.UserConfigDir()/notes/config.yaml)
//	-dir string     Notes directory (overrides the configured root)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/notes"
	bt "github.com/fwojciec/notes/bubbletea"
	"github.com/fwojciec/notes/config"
	"github.com/fwojciec/notes/fs"
	"github.com/fwojciec/notes/git"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "notes: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "Path to config file")
		dir        = flag.String("dir", "", "Notes directory (overrides the configured root)")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	path := *configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if *dir != "" {
		cfg.RootDir = *dir
		if err := os.MkdirAll(cfg.RootDir, 0o755); err != nil {
			return fmt.Errorf("create notes dir: %w", err)
		}
	}

	if err := fs.WriteWelcome(cfg.RootDir); err != nil {
		return err
	}

	manager := git.NewManager(cfg.RootDir, git.Options{
		Enabled:  cfg.GitEnabled,
		Remote:   cfg.GitRemote,
		Username: cfg.GitUsername,
		Email:    cfg.GitEmail,
	}, nil)
	if cfg.GitEnabled {
		if err := manager.Init(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "notes: git init: %v\n", err)
		}
		// Open with the latest notes; an unreachable remote is not fatal.
		if _, err := manager.Pull(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "notes: git pull: %v\n", err)
		}
	}

	tree, err := fs.NewTree(cfg.RootDir, cfg.Ignore)
	if err != nil {
		return err
	}

	m := bt.New(cfg, path, tree, manager, notes.DefaultTheme())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}
