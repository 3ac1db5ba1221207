// playroom is a terminal playroom for small children: calm scenes to poke
// at with a mouse, played locally or over SSH.
//
// Usage:
//
//	playroom list              - List available scenes
//	playroom play [scene]      - Play a scene (default: bubbles)
//	playroom menu              - Start menu to pick scenes interactively
//	playroom serve             - Start SSH server for remote play
//	playroom stats             - Show play history per scene
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible play
//	--db <path>     - Set database path (default: ~/.playroom/playroom.db)
//	--log <path>    - Set log file path (default: ~/.playroom/playroom.log)
//	--no-audio      - Disable sound and music
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/tui-playroom/internal/scenes/bubbles"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagNoAudio bool
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "playroom",
	Short: "TUI Playroom - gentle toys for little hands in your terminal",
	Long: `TUI Playroom is a set of calm, no-fail scenes for small children.
Move the mouse, click and hold. There is nothing to lose.

Grown-ups open the settings by pressing U five times quickly
(or clicking the small lock in the lower right corner).

Available commands:
  list     - Show all available scenes
  play     - Play a scene directly
  menu     - Interactive scene picker menu
  serve    - Start SSH server for remote play
  stats    - Show play history

Examples:
  playroom play
  playroom play bubbles --config ./my-bubbles.yaml
  playroom menu
  playroom serve --ssh :2222
  playroom stats --csv`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.playroom/playroom.db", "Path to playroom database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (default ~/.playroom/playroom.log)")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound effects and music")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
