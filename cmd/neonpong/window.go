package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pong/internal/platform/window"
	"github.com/vovakirdan/neon-pong/internal/storage"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Neon Pong in a desktop window rendered with Ebiten.

Controls:
  Up/W, Down/S - Move paddle
  Mouse        - Move paddle to the pointer
  P            - Pause
  Q/Esc        - Quit

Examples:
  neonpong window
  neonpong window --scale 1.5 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 800x600 playfield")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}

	logger, closer, err := stderrLogger()
	if err != nil {
		fatal("%v", err)
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open sessions database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	w, h := int(cfg.Surface.Width), int(cfg.Surface.Height)
	logger.Info("opening window", "size", fmt.Sprintf("%dx%d", w, h), "scale", flagScale)

	opts := window.Options{Store: store, Logger: logger, Scale: flagScale}
	if err := window.Run(cfg, runtimeConfig(w, h), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
