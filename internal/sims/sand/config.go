package sand

import "strconv"

// MaxBrush bounds the brush radius exposed to pointer collaborators.
const MaxBrush = 8

// Config controls the dimensions and authoring defaults of a World.
type Config struct {
	Width  int
	Height int

	Seed int64
	Mode Mode

	Material Material
	Brush    int
}

// DefaultConfig returns an 80×60 world, the size of an 800×600 surface at ten
// pixels per cell.
func DefaultConfig() Config {
	return Config{
		Width:    80,
		Height:   60,
		Seed:     1,
		Mode:     Sequential,
		Material: Sand,
		Brush:    0,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable entries keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, err := ParseMode(v); err == nil {
			c.Mode = parsed
		}
	}
	if v, ok := cfg["material"]; ok {
		if parsed, err := ParseMaterial(v); err == nil {
			c.Material = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Brush = clampBrush(parsed)
		}
	}
	return c
}

func clampBrush(r int) int {
	if r < 0 {
		return 0
	}
	if r > MaxBrush {
		return MaxBrush
	}
	return r
}
