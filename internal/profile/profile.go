// Package profile defines icon set layouts for target platforms.
package profile

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Profile defines the icon set generated for a target platform.
type Profile struct {
	Name     string  `yaml:"name"`
	Sizes    []int   `yaml:"sizes"`    // square icon sizes in pixels
	Disabled bool    `yaml:"disabled"` // also emit grayscale disabled-state variants
	Padding  float64 `yaml:"padding"`  // safe-zone margin per edge, fraction of size
}

// Built-in profiles.
var profiles = map[string]Profile{
	"chrome-extension": {
		Name:     "chrome-extension",
		Sizes:    []int{16, 32, 48, 128},
		Disabled: true,
	},
	"firefox-extension": {
		Name:     "firefox-extension",
		Sizes:    []int{16, 32, 48, 96},
		Disabled: true,
	},
	"web-app": {
		Name:    "web-app",
		Sizes:   []int{192, 512},
		Padding: 0.10, // maskable-icon safe zone
	},
	"favicon": {
		Name:  "favicon",
		Sizes: []int{16, 32, 48},
	},
}

// Get returns a profile by name. Falls back to chrome-extension if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["chrome-extension"]
	p.Name = name // preserve requested name
	return p
}

// Names lists the built-in profile names, sorted.
func Names() []string {
	out := make([]string, 0, len(profiles))
	for n := range profiles {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Load reads a custom profile from a YAML file.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	if p.Name == "" {
		p.Name = "custom"
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks the profile for values the pipeline cannot build.
func (p Profile) Validate() error {
	if len(p.Sizes) == 0 {
		return fmt.Errorf("profile %q: no sizes", p.Name)
	}
	for _, s := range p.Sizes {
		if s <= 0 {
			return fmt.Errorf("profile %q: invalid size %d", p.Name, s)
		}
	}
	if p.Padding < 0 || p.Padding > 0.4 {
		return fmt.Errorf("profile %q: padding %.2f outside [0, 0.4]", p.Name, p.Padding)
	}
	return nil
}

// EffectiveSizes returns the sizes deduplicated and ascending.
func (p Profile) EffectiveSizes() []int {
	seen := map[int]bool{}
	var result []int
	for _, s := range p.Sizes {
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	sort.Ints(result)
	return result
}
