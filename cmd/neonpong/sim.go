package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pong/internal/games/pong"
	"github.com/vovakirdan/neon-pong/internal/headless"
	"github.com/vovakirdan/neon-pong/internal/storage"
)

var (
	flagSimFrames int
	flagSimPNG    string
	flagSimText   bool
	flagSimCols   int
	flagSimRows   int
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a display",
	Long: `Run the game headless: nobody moves the player paddle, the computer
plays against it. Score changes are logged.

With --frames 0 the simulation runs in real time at --fps until
interrupted; otherwise it runs the given number of frames as fast as
possible.

Examples:
  neonpong sim --frames 3600 --seed 1
  neonpong sim --frames 600 --png final.png
  neonpong sim --frames 600 --text --cols 100 --rows 30
  neonpong sim --frames 0 --debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 3600, "Frames to simulate (0 = real time until interrupted)")
	simCmd.Flags().StringVar(&flagSimPNG, "png", "", "Write the final frame to this PNG file")
	simCmd.Flags().BoolVar(&flagSimText, "text", false, "Print the final frame as plain text")
	simCmd.Flags().IntVar(&flagSimCols, "cols", 80, "Text frame width in cells")
	simCmd.Flags().IntVar(&flagSimRows, "rows", 30, "Text frame height in cells")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record the run in the sessions database")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}

	logger, closer, err := stderrLogger()
	if err != nil {
		fatal("%v", err)
	}
	defer closer.Close()

	rc := runtimeConfig(int(cfg.Surface.Width), int(cfg.Surface.Height))
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result := headless.Run(ctx, cfg, rc, logger, headless.Options{
		Frames: flagSimFrames,
		Raster: flagSimPNG != "",
	})

	st := result.Game.Stats()
	s := result.Game.State()
	logger.Info("simulation finished",
		"seed", rc.Seed,
		"frames", st.Frames,
		"player", s.PlayerScore,
		"computer", s.ComputerScore,
		"longest_rally", st.LongestRally,
	)

	if flagSimPNG != "" {
		if err := result.Raster.WritePNGFile(flagSimPNG); err != nil {
			fatal("%v", err)
		}
		logger.Info("wrote final frame", "path", flagSimPNG)
	}

	if flagSimText {
		fmt.Println(headless.TextFrame(result.Game, flagSimCols, flagSimRows))
	}

	if flagSimRecord {
		recordSim(logger, st, result.Elapsed)
	}
}

func recordSim(logger *log.Logger, st pong.Stats, elapsed time.Duration) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open sessions database", "error", err)
		return
	}
	defer store.Close()

	_, err = store.SaveSession(storage.Session{
		Frontend:     "sim",
		Frames:       st.Frames,
		PaddleHits:   st.PaddleHits,
		LongestRally: st.LongestRally,
		Points:       st.Points,
		Duration:     elapsed,
	})
	if err != nil {
		logger.Error("could not record session", "error", err)
	}
}
