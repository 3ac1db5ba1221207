package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-playroom/internal/registry"
	"github.com/vovakirdan/tui-playroom/internal/storage"
)

var (
	flagCSV      bool
	flagSessions bool
	flagLimit    int
)

var statsCmd = &cobra.Command{
	Use:   "stats [scene]",
	Short: "Show play history",
	Long: `Display a per-scene summary of recorded play sessions.

With --sessions, lists the most recent sessions instead.
With --csv, writes the same data as CSV to stdout.

Examples:
  playroom stats
  playroom stats bubbles --sessions
  playroom stats --csv > history.csv`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagCSV, "csv", false, "Write CSV instead of a table")
	statsCmd.Flags().BoolVar(&flagSessions, "sessions", false, "List individual sessions")
	statsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of sessions to list")
}

func runStats(_ *cobra.Command, args []string) {
	sceneID := ""
	if len(args) == 1 {
		sceneID = args[0]
		if !registry.Exists(sceneID) {
			fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
			fmt.Fprintln(os.Stderr, "Run 'playroom list' to see available scenes.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening playroom database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagSessions {
		sessions, err := store.RecentSessions(sceneID, flagLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
			return
		}
		if flagCSV {
			if err := storage.WriteSessionsCSV(os.Stdout, sessions); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			return
		}
		printSessions(sessions)
		return
	}

	sessions, err := store.AllSessions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}
	if sceneID != "" {
		filtered := sessions[:0]
		for _, s := range sessions {
			if s.SceneID == sceneID {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}

	stats := storage.Summarize(sessions)
	if flagCSV {
		if err := storage.WriteStatsCSV(os.Stdout, stats); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}
	printStats(stats)
}

func printSessions(sessions []storage.Session) {
	if len(sessions) == 0 {
		fmt.Println("No play sessions recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-10s  %5s  %5s  %4s  %8s\n", "Date", "Scene", "Pops", "Auto", "Yay", "Time")
	fmt.Printf("  %-16s  %-10s  %5s  %5s  %4s  %8s\n", "----", "-----", "----", "----", "---", "----")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-10s  %5d  %5d  %4d  %8s\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.SceneID,
			s.ManualPops,
			s.AutoPops,
			s.Combos,
			s.Duration().Round(time.Second))
	}
}

func printStats(stats []storage.SceneStats) {
	if len(stats) == 0 {
		fmt.Println("No play sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'playroom play' to start playing!")
		return
	}

	for _, st := range stats {
		fmt.Printf("%s\n", st.SceneID)
		fmt.Printf("  Sessions:      %d\n", st.Sessions)
		fmt.Printf("  Pops:          %d (%.1f ± %.1f per session)\n", st.TotalPops, st.MeanPops, st.StdDevPops)
		fmt.Printf("  Pops/minute:   %.1f\n", st.PopsPerMinute)
		fmt.Printf("  Mean length:   %s\n", st.MeanDuration.Round(time.Second))
		fmt.Printf("  Combos, shots: %d, %d\n", st.Combos, st.Shots)
		fmt.Printf("  Last played:   %s\n", st.LastPlayed.Format("2006-01-02 15:04"))
		fmt.Println()
	}
}
