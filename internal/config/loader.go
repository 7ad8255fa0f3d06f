package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPacman loads maze chase configuration.
// Search order: customPath -> ~/.arcade/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default
func LoadPacman(customPath string) (PacmanConfig, error) {
	return load(customPath, "pacman.yaml", defaultPacmanYAML, DefaultPacmanConfig)
}

// LoadFlappy loads pipe flyer configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load(customPath, "flappy.yaml", defaultFlappyYAML, DefaultFlappyConfig)
}

// LoadDoodle loads platform jumper configuration.
// Search order: customPath -> ~/.arcade/configs/doodle.yaml -> ./configs/doodle.yaml -> embedded default
func LoadDoodle(customPath string) (DoodleConfig, error) {
	return load(customPath, "doodle.yaml", defaultDoodleYAML, DefaultDoodleConfig)
}

// sanitizer is implemented by every game config pointer.
type sanitizer interface {
	sanitize()
}

// load reads the config and replaces unusable values with defaults.
func load[T any](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	cfg, err := read(customPath, filename, embedded, fallback)
	if s, ok := any(&cfg).(sanitizer); ok {
		s.sanitize()
	}
	return cfg, err
}

// read walks the search order shared by every game. Only an explicit
// customPath can fail; the other locations fall through silently.
func read[T any](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	// Start from the hardcoded defaults so partial files keep sane values
	cfg := fallback()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, ok := parse(data, fallback); ok {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if parsed, ok := parse(data, fallback); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if parsed, ok := parse(embedded, fallback); ok {
		return parsed, nil
	}
	return fallback(), nil // Fallback to hardcoded if embed fails
}

func parse[T any](data []byte, fallback func() T) (T, bool) {
	cfg := fallback()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
