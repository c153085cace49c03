package config

import (
	"fmt"
	"sort"
)

// LogCategories lists the category names kata logs under. Keys of
// logging.categories outside this list are rejected by Validate.
var LogCategories = []string{"boot", "cli", "store", "containers", "digits", "tree"}

// LoggingConfig controls the per-category debug logs under .kata/logs.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`           // debug, info, warn, error
	Format     string          `yaml:"format" json:"format,omitempty"`         // json, text
	DebugMode  bool            `yaml:"debug_mode" json:"debug_mode,omitempty"` // false disables every category
	Categories map[string]bool `yaml:"categories" json:"categories,omitempty"` // unlisted categories stay on
}

// IsCategoryEnabled reports whether category writes a log file. Nothing is
// enabled outside debug mode.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	enabled, ok := c.Categories[category]
	return !ok || enabled
}

// Validate checks the level, the encoding and the category names.
func (c *LoggingConfig) Validate() error {
	if !contains(validLevels, c.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Level, validLevels)
	}
	if !contains(validFormats, c.Format) {
		return fmt.Errorf("invalid logging format: %s (valid: %v)", c.Format, validFormats)
	}

	var unknown []string
	for name := range c.Categories {
		if !contains(LogCategories, name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown logging categories %v (valid: %v)", unknown, LogCategories)
	}
	return nil
}
