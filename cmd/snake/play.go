package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tcellui"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagRenderer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  Enter/Space      - Start
  R                - Restart
  Ctrl+S           - Screenshot (bubbletea renderer)
  Q/Esc/Ctrl+C     - Quit

Renderers:
  bubbletea - Full-frame rendering with lipgloss styles (default)
  tcell     - Draws only the cells that change

Difficulty options:
  easy   - Starts slow, speeds up gently with score
  normal - Starts at 30% difficulty, speeds up with score
  hard   - Starts at 70% difficulty, speeds up fast
  fixed  - Constant speed (default)

Examples:
  snake play
  snake play --renderer tcell
  snake play --difficulty hard
  snake play --config ./my-snake.yaml --log-file snake.log --verbose`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "bubbletea", "Renderer: bubbletea or tcell")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagRenderer != "bubbletea" && flagRenderer != "tcell" {
		fmt.Fprintf(os.Stderr, "Error: unknown renderer %q (want bubbletea or tcell)\n", flagRenderer)
		os.Exit(1)
	}

	cfg, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The UI owns the terminal, so logs are discarded unless --log-file is set
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", source, "difficulty", cfg.Difficulty.Enabled)

	store := openStore(cfg, logger)
	opts := sessionOptions(cfg, store, logger)

	var runErr error
	switch flagRenderer {
	case "tcell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		runErr = tcellui.Run(ctx, cfg, opts)
		stop()
		if errors.Is(runErr, context.Canceled) {
			runErr = nil
		}
	default:
		rc := runtimeConfig()
		runErr = tui.Run(cfg, opts, rc.ScreenW, rc.ScreenH)
	}

	// Close store and log before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
