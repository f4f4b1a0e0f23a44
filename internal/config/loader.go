package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/sandbox.yaml
var defaultSandboxYAML []byte

// Load reads the sandbox configuration.
// Search order: customPath -> ~/.sandbox/sandbox.yaml -> ./configs/sandbox.yaml -> embedded default.
// Only an explicit path that fails to load is an error; the other locations
// are skipped when missing or malformed.
func Load(customPath string) (Sandbox, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Sandbox{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Sandbox{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath("sandbox.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "sandbox.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultSandboxYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// parse decodes data over the built-in defaults so partial files work.
func parse(data []byte) (Sandbox, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Sandbox{}, err
	}
	return cfg, nil
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte { return defaultSandboxYAML }

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sandbox", filename)
}
