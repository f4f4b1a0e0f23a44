// sandbox runs the falling-sand simulation headless, in the terminal or over SSH.
//
// Usage:
//
//	sandbox list             - List registered simulations and built-in scenes
//	sandbox run              - Run a world headless and print a summary
//	sandbox sweep            - Run one scene across many seeds in parallel
//	sandbox runs             - Show recorded runs
//	sandbox tui              - Interactive sandbox in this terminal
//	sandbox serve            - Serve interactive sandboxes over SSH
//
// Global flags:
//
//	--config <path>     - Path to sandbox.yaml
//	--seed <value>      - Override the configured seed
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"falling-sand/internal/config"
	"falling-sand/internal/sims/sand"

	// Import sims to register them
	_ "falling-sand/internal/sims/life"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	settings config.Sandbox
	logger   *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Falling sand - a sand and water cellular automaton",
	Long: `sandbox simulates sand and water on a grid: sand falls and piles,
water falls and spreads, and the denser material always sinks.

Examples:
  sandbox run --scene hourglass --ticks 300 --ascii
  sandbox sweep --scene hourglass --seeds 64
  sandbox tui
  sandbox serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to sandbox.yaml (default: search ~/.sandbox, ./configs, built-in)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup configures logging and loads the sandbox settings for every command.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sandbox",
		Level:           level,
	})

	settings, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		settings.Seed = flagSeed
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	logger.Debug("config loaded", "sim", settings.Sim, "seed", settings.Seed, "mode", settings.Mode)
	return nil
}

// worldConfig returns the sand world settings, with mode overridden when
// the command has a --mode flag that was set.
func worldConfig(cmd *cobra.Command, mode string) (sand.Config, error) {
	cfg := sand.FromMap(settings.SimOptions())
	if f := cmd.Flags().Lookup("mode"); f != nil && f.Changed {
		m, err := sand.ParseMode(mode)
		if err != nil {
			return sand.Config{}, err
		}
		cfg.Mode = m
	}
	return cfg, nil
}

// loadScene resolves an optional --scene flag.
func loadScene(name string) (*config.Scene, error) {
	if name == "" {
		return nil, nil
	}
	s, err := config.LoadScene(name)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
