package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-playroom/internal/platform/tui"
	"github.com/vovakirdan/tui-playroom/internal/registry"
	"github.com/vovakirdan/tui-playroom/internal/scenes/bubbles"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Play a scene",
	Long: `Start playing the specified scene (bubbles if omitted).

Controls:
  Mouse click     - Pop a bubble
  Mouse hold      - Bubble gun, follows the pointer
  Arrows/WASD     - Tilt the scene
  U x5            - Open the grown-up settings
  Ctrl+S          - Save a text screenshot
  Q/Ctrl+C        - Quit

Examples:
  playroom play
  playroom play bubbles --seed 42
  playroom play bubbles --config ./my-bubbles.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	sceneID := bubbles.ID
	if len(args) == 1 {
		sceneID = args[0]
	}

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'playroom list' to see available scenes.")
		os.Exit(1)
	}

	bubbles.SetConfigPath(flagConfig)

	scene, err := registry.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	rt := openLocal()
	runErr := tui.Run(scene, rt.cfg, rt.deps)
	rt.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}
