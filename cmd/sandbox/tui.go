package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"falling-sand/internal/sims/sand"
	"falling-sand/internal/tui"
)

var flagTUIScene string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive sandbox in this terminal",
	Long: `Draw with the mouse in the terminal.

Controls:
  Left mouse   - Place the selected material
  Right mouse  - Erase
  1/2/3        - Select sand, water, air
  +/-          - Brush size
  Space        - Pause
  N            - Step once while paused
  M            - Toggle sequential/synchronous
  C            - Clear
  R            - Reset
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&flagTUIScene, "scene", "", "Built-in scene name or scene file")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := worldConfig(cmd, "")
	if err != nil {
		return err
	}
	scene, err := loadScene(flagTUIScene)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg.Width, cfg.Height = tui.GridSize(width, height)

	world := sand.NewWithConfig(cfg)
	if scene != nil {
		scene.Apply(world)
	}
	return tui.Run(world, settings.TPS)
}
