// neonpong is a neon-styled Pong: one human paddle against a computer
// paddle, with a glowing colour-cycling ball and a fading trail.
//
// Usage:
//
//	neonpong play            - Play in the terminal
//	neonpong window          - Play in a desktop window
//	neonpong sim             - Run the simulation headless
//	neonpong serve           - Start SSH server for remote play
//	neonpong stats           - Show recorded sessions
//	neonpong config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible serves
//	--db <path>           - Set database path (default: ~/.neonpong/sessions.db)
//	--config <path>       - Use a custom pong.yaml
//	--difficulty <preset> - easy, normal or hard
//	--debug               - Verbose logs and per-frame state checks
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonpong",
	Short: "Neon Pong - paddle against the computer",
	Long: `Neon Pong is a two-paddle ball game: you play the left paddle, the
computer plays the right one. The ball glows, cycles through colours and
leaves a fading trail.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run the simulation without a display
  serve    - Start SSH server for remote play
  stats    - View recorded sessions
  config   - Print the effective configuration

Examples:
  neonpong play
  neonpong play --difficulty hard
  neonpong window --scale 1.5
  neonpong sim --frames 3600 --png final.png
  neonpong serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neonpong/sessions.db", "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pong config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play defaults to ~/.neonpong/neonpong.log)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and per-frame state checks")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the pong config and applies the difficulty preset.
func loadGameConfig() (config.PongConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PongConfig{}, err
	}
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return config.PongConfig{}, err
	}
	config.ApplyPongPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = width, height
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed
	rc.Debug = flagDebug
	return rc
}

// newLogger creates the command's logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "neonpong",
		Level:           level,
	})
}

// fileLogger opens the log file for commands that own the terminal.
// The returned closer must be called on exit.
func fileLogger(defaultPath string) (*log.Logger, io.Closer, error) {
	path := flagLogFile
	if path == "" {
		path = defaultPath
	}
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f), f, nil
}

// stderrLogger logs to --log-file when given and to stderr otherwise.
func stderrLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile != "" {
		return fileLogger(flagLogFile)
	}
	return newLogger(os.Stderr), io.NopCloser(nil), nil
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
