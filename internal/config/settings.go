package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const SettingsFileName = "config.yml"

// Settings represents the optional config.yml in the synap config directory.
type Settings struct {
	Version             string   `yaml:"version"`
	Template            string   `yaml:"template,omitempty"`
	Color               *bool    `yaml:"color,omitempty"`
	ExtraTerminals      []string `yaml:"extra_terminals,omitempty"`
	SkipPackageManagers []string `yaml:"skip_package_managers,omitempty"`
}

func DefaultSettingsPath(h *Host) string {
	dir := h.AppDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, SettingsFileName)
}

// LoadSettings reads and validates a settings file. A missing file yields
// nil settings and no error.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &s, nil
}

// Validate checks if the settings are valid
func (s *Settings) Validate() error {
	if s.Version == "" {
		return fmt.Errorf("version field is required")
	}

	if s.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (supported: 1.0)", s.Version)
	}

	for _, m := range s.SkipPackageManagers {
		if !isPackageManager(m) {
			return fmt.Errorf("unknown package manager: %s", m)
		}
	}

	for _, name := range s.ExtraTerminals {
		if name == "" {
			return fmt.Errorf("extra_terminals entries must not be empty")
		}
	}

	return nil
}

// ColorEnabled returns the color preference, defaulting to on.
func (s *Settings) ColorEnabled() bool {
	if s == nil || s.Color == nil {
		return true
	}
	return *s.Color
}

func isPackageManager(name string) bool {
	for _, m := range PackageManagers {
		if m == name {
			return true
		}
	}
	return false
}
