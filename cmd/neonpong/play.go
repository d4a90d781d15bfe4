package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-pong/internal/platform/tui"
	"github.com/vovakirdan/neon-pong/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Neon Pong in the terminal. The playfield is drawn with half-block
characters in true colour.

Controls:
  Up/W, Down/S - Move paddle (terminals have no key release; a key counts
                 as held for a few frames after its last repeat)
  Mouse        - Move paddle to the pointer
  P/Esc        - Pause
  R            - Restart
  Ctrl+S       - Save a PNG screenshot to ~/.neonpong/screenshots
  Q/Ctrl+C     - Quit (records the session's rally statistics)

Logs go to ~/.neonpong/neonpong.log unless --log-file is set.

Examples:
  neonpong play
  neonpong play --difficulty easy
  neonpong play --config ./my-pong.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}

	logger, closer, err := fileLogger("~/.neonpong/neonpong.log")
	if err != nil {
		fatal("%v", err)
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		logger.Warn("could not open sessions database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting terminal game", "size", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS, "difficulty", flagDifficulty)

	opts := tui.Options{
		Store:    store,
		Logger:   logger,
		Frontend: "tui",
		Player:   os.Getenv("USER"),
	}
	if err := tui.Run(cfg, runtimeConfig(width, height), opts); err != nil {
		logger.Error("game exited with error", "error", err)
		fatal("%v", err)
	}
}
