// internal/app/settings.go
package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the process configuration, read from menukit.yaml next to the
// binary. Everything has a working default so the file is optional.
type Settings struct {
	Addr    string `yaml:"addr"`     // web editor listen address
	Token   string `yaml:"token"`    // API token; empty disables the gate
	DataDir string `yaml:"data_dir"` // config store and asset roots
}

func DefaultSettings() Settings {
	return Settings{
		Addr:    "127.0.0.1:9876",
		DataDir: "data",
	}
}

// LoadSettings reads path if it exists; a missing file returns the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings: %w", err)
	}
	if s.Addr == "" {
		s.Addr = DefaultSettings().Addr
	}
	if s.DataDir == "" {
		s.DataDir = DefaultSettings().DataDir
	}
	return s, nil
}
