// Package config provides YAML-based sandbox configuration and scene files.
package config

import (
	"errors"
	"fmt"
	"strconv"

	"falling-sand/internal/sims/sand"
)

// Sandbox contains all settings shared by the GUI, terminal and headless
// front ends.
type Sandbox struct {
	Sim    string `yaml:"sim"`
	Window Window `yaml:"window"`
	Scale  int    `yaml:"scale"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`

	TPS  int    `yaml:"tps"`
	Seed int64  `yaml:"seed"`
	Mode string `yaml:"mode"`

	Material string `yaml:"material"`
	Brush    int    `yaml:"brush"`

	Server Server `yaml:"server"`
}

// Window is the rendering surface size in pixels.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Server configures the SSH front end.
type Server struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key"`
	IdleMinutes int    `yaml:"idle_timeout_minutes"`
}

// Default returns the built-in configuration, matching defaults/sandbox.yaml.
func Default() Sandbox {
	return Sandbox{
		Sim:      "sand",
		Window:   Window{Width: 800, Height: 600},
		Scale:    10,
		TPS:      60,
		Seed:     1,
		Mode:     "sequential",
		Material: "sand",
		Brush:    0,
		Server: Server{
			Address:     ":23235",
			IdleMinutes: 30,
		},
	}
}

// GridSize returns the grid dimensions: explicit width/height when set,
// otherwise the window size divided by the cell scale.
func (c Sandbox) GridSize() (int, int) {
	w, h := c.Width, c.Height
	scale := c.Scale
	if scale <= 0 {
		scale = 1
	}
	if w <= 0 {
		w = c.Window.Width / scale
	}
	if h <= 0 {
		h = c.Window.Height / scale
	}
	return w, h
}

// Validate reports the first invalid setting.
func (c Sandbox) Validate() error {
	var errs []error
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if w, h := c.GridSize(); w <= 0 || h <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d is empty", w, h))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if _, err := sand.ParseMode(c.Mode); err != nil {
		errs = append(errs, err)
	}
	if _, err := sand.ParseMaterial(c.Material); err != nil {
		errs = append(errs, err)
	}
	if c.Brush < 0 || c.Brush > sand.MaxBrush {
		errs = append(errs, fmt.Errorf("brush must be within [0,%d], got %d", sand.MaxBrush, c.Brush))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// SimOptions renders the settings as the string map accepted by registered
// sim factories.
func (c Sandbox) SimOptions() map[string]string {
	w, h := c.GridSize()
	return map[string]string{
		"w":        strconv.Itoa(w),
		"h":        strconv.Itoa(h),
		"seed":     strconv.FormatInt(c.Seed, 10),
		"mode":     c.Mode,
		"material": c.Material,
		"brush":    strconv.Itoa(c.Brush),
	}
}
