package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/world"
)

var (
	flagLogFile       string
	flagScreenshotDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Steer
  1            - Drink a potion (invincibility)
  2            - Plant a bomb
  3            - Swallow a shrink pill
  4            - Swallow a slow pill
  +/-          - Speed up / slow down
  P/Esc        - Pause
  R            - Restart (after game over)
  F1           - Dump the world state to the log
  Ctrl+S       - Save a screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

The terminal takes over the screen, so logs are discarded unless
--log-file is given.

Examples:
  gridsnake play
  gridsnake play --difficulty easy
  gridsnake play --layout box --size 24
  gridsnake play --log-file game.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "", "Screenshot directory (default ~/.gridsnake/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one terminal session. It returns instead of exiting so the log
// file is flushed and closed on every path.
func play() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logOut, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logOut.Close()

	logger, err := newLogger(logOut, "gridsnake")
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.GridSize = cfg.Grid.Size
	rt.TickRate = cfg.Runtime.TickRate
	rt.Seed = seed()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	minW, minH := world.MinScreen(rt.GridSize)
	if rt.ScreenW < minW || rt.ScreenH < minH+1 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n",
			rt.ScreenW, rt.ScreenH, minW, minH+1)
	}

	w, err := world.New(cfg, rt.Seed, logger)
	if err != nil {
		return err
	}
	logger.Info("starting game", "seed", rt.Seed, "size", rt.GridSize, "layout", cfg.Grid.Layout)

	runErr := tui.Run(w, tui.Options{
		TickRate:      rt.TickRate,
		ScreenW:       rt.ScreenW,
		ScreenH:       rt.ScreenH,
		ScreenshotDir: flagScreenshotDir,
	}, logger)
	if runErr != nil {
		logger.Error("game failed", "err", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	fmt.Printf("Final score: %d\n", w.Score())
	return nil
}

// discardCloser is the log sink when no log file is given.
type discardCloser struct{ io.Writer }

func (discardCloser) Close() error { return nil }

// openLogFile opens path for appending. An empty path discards logs.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return discardCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
