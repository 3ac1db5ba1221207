package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-playroom/internal/platform/tui"
	"github.com/vovakirdan/tui-playroom/internal/scenes/bubbles"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the playroom with a scene picker menu",
	Long: `Start the playroom in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a scene.
Esc inside a scene returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select scene
  Q            - Quit

Examples:
  playroom menu
  playroom menu --fps 30
  playroom menu --db ./playroom.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	bubbles.SetConfigPath(flagConfig)

	rt := openLocal()
	err := tui.RunSession(rt.cfg, rt.deps)
	rt.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
