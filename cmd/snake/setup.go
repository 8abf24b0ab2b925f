package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// loadConfig loads the config and applies the command-line overrides.
func loadConfig() (config.SnakeConfig, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.SnakeConfig{}, "", err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, source, nil
}

// newLogger creates the logger for a command. Logs go to --log-file when
// set, otherwise to out. The returned func closes the log file.
func newLogger(prefix string, out io.Writer) (*log.Logger, func(), error) {
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// openStore opens the scores database. A failure is logged and the game
// runs without persistence.
func openStore(cfg config.SnakeConfig, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open scores database", "path", cfg.Storage.Path, "error", err)
		return nil
	}
	return store
}

// sessionOptions builds game options backed by store, which may be nil.
func sessionOptions(cfg config.SnakeConfig, store *storage.Store, logger *log.Logger) session.Options {
	opts := session.OptionsFromConfig(cfg)
	opts.Seed = flagSeed
	opts.Logger = logger
	if store != nil {
		opts.Store = storage.NewHighScoreSlot(store, cfg.Storage.HighScoreKey)
		opts.Recorder = store
	}
	return opts
}

// runtimeConfig returns the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc
}
