package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ApplyFile overlays YAML settings from path onto target. Keys absent from
// the file leave the current field values in place, so a sparse file only
// overrides what it names.
func ApplyFile(path string, target any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
