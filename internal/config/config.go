// Package config loads the YAML run configuration: which calendar page to
// fetch and which of its sections to turn into agenda entries.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when no --config flag
// is given.
const DefaultPath = "calendar_headers.yaml"

// ErrNoSections indicates a configuration that selects nothing to emit.
var ErrNoSections = errors.New("configuration selects no sections, holidays or science weeks")

// Section maps a full section header on the page to the short name used
// in entry titles. Sections are emitted in file order.
type Section struct {
	Header string `yaml:"header"`
	Short  string `yaml:"short"`
}

// Config is the top-level run configuration.
type Config struct {
	// CalendarURL overrides the default academic calendar page.
	CalendarURL string `yaml:"calendar_url"`

	// Sections lists the calendar headers to extract, in output order.
	Sections []Section `yaml:"sections"`

	// Holidays enables the FERIADOS section read from the page's last table.
	Holidays bool `yaml:"holidays"`

	// ScienceWeeks lists the science-week block titles to extract.
	ScienceWeeks []string `yaml:"science_weeks"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Sections) == 0 && !c.Holidays && len(c.ScienceWeeks) == 0 {
		return ErrNoSections
	}
	for i, s := range c.Sections {
		if s.Header == "" {
			return fmt.Errorf("sections[%d]: missing header", i)
		}
		if s.Short == "" {
			return fmt.Errorf("sections[%d] (%s): missing short name", i, s.Header)
		}
	}
	return nil
}
