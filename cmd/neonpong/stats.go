package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-pong/internal/platform/tui"
	"github.com/vovakirdan/neon-pong/internal/storage"
)

var (
	flagStatsLimit int
	flagStatsPlain bool
	flagStatsClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded sessions",
	Long: `Show the rally statistics of recorded sessions: how long each session
ran, how many points were played, paddle hits and the longest rally.
Scores are not recorded.

In a terminal the list is interactive; use --plain for a static table.

Examples:
  neonpong stats
  neonpong stats --plain --limit 5
  neonpong stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&flagStatsLimit, "limit", "n", 10, "Number of sessions to show with --plain")
	statsCmd.Flags().BoolVar(&flagStatsPlain, "plain", false, "Print a static table instead of the interactive view")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete all recorded sessions")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("%v", err)
	}
	defer store.Close()

	if flagStatsClear {
		if err := store.ClearSessions(); err != nil {
			fatal("%v", err)
		}
		fmt.Println("Cleared all sessions.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagStatsPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunStats(store, width, height); err != nil {
			fatal("%v", err)
		}
		return
	}

	sessions, err := store.RecentSessions(flagStatsLimit)
	if err != nil {
		fatal("%v", err)
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}
	longest, err := store.LongestRally()
	if err != nil {
		fatal("%v", err)
	}
	fmt.Print(tui.RenderSessions(sessions, longest))
}
