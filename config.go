package ybt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the conversion settings shared by the command line tools.
type Config struct {
	// Period of the mixing function in seconds.
	Period float64 `yaml:"period"`

	// Rate is the output frame rate in frames per second.
	Rate float64 `yaml:"rate"`

	// Loops is the number of periods an encoded animation plays; zero
	// loops forever.
	Loops int `yaml:"loops"`

	// Format selects the animation output ("gif" or "png").
	Format string `yaml:"format"`

	// Matrices holds additional named color matrices, available next to
	// the built-in ones.
	Matrices map[string]ColorMatrix `yaml:"matrices"`
}

// DefaultConfig are the default conversion settings.
var DefaultConfig = Config{
	Period: 2,
	Rate:   30,
	Format: "gif",
}

// LoadConfig reads a Config from a YAML file. Settings not present in the
// file keep their [DefaultConfig] value.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("ybt: error parsing %s: %w", filename, err)
	}
	return &config, nil
}

// Matrix resolves a matrix by name, preferring matrices defined in the
// configuration over the built-in ones.
func (c *Config) Matrix(name string) (ColorMatrix, bool) {
	if c != nil {
		if m, ok := c.Matrices[name]; ok {
			return m, true
		}
	}
	return Named(name)
}
