// Package config loads named YAML session profiles for the
// measurement CLI: fixed test-bench configurations so a sample rate,
// tone frequency, and filter selection don't need to be retyped on
// every invocation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is one named measurement configuration.
type Profile struct {
	Name            string  `yaml:"name"`
	SampleRateHz    int     `yaml:"sample_rate_hz"`
	TestFrequencyHz float64 `yaml:"test_frequency_hz"`
	Filter          string  `yaml:"filter"`
	ReportEveryS    int     `yaml:"report_every_s"`
}

// File is the top-level shape of a profiles YAML document.
type File struct {
	Profiles []Profile `yaml:"profiles"`
}

// Load reads and parses a profiles file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return f, nil
}

// Find returns the named profile, or false if no profile with that
// name exists in the file.
func (f File) Find(name string) (Profile, bool) {
	for _, p := range f.Profiles {
		if p.Name == name {
			return p, true
		}
	}

	return Profile{}, false
}
