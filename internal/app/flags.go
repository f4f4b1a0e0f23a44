package app

import (
	"flag"

	"falling-sand/internal/config"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	ConfigPath string
	Sim        string
	Scene      string
	Scale      int
	TPS        int
	Seed       int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := config.Default()
	return &Config{Sim: d.Sim, Scale: d.Scale, TPS: d.TPS, Seed: d.Seed}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to sandbox.yaml")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Scene, "scene", c.Scene, "built-in scene name or scene file")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}

// Merge copies the flags that were set explicitly on fs over sb, so the
// command line wins over the config file.
func (c *Config) Merge(fs *flag.FlagSet, sb *config.Sandbox) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sim":
			sb.Sim = c.Sim
		case "scale":
			sb.Scale = c.Scale
		case "tps":
			sb.TPS = c.TPS
		case "seed":
			sb.Seed = c.Seed
		}
	})
}
