package config

import "fmt"

// Validate checks structural constraints on the parsed scenario.
func (c *Config) Validate() error {
	if c.Driver.Name == "" {
		return fmt.Errorf("driver.name is required")
	}

	seen := make(map[string]bool, len(c.Platforms))
	for i, p := range c.Platforms {
		if p.Name == "" {
			return fmt.Errorf("platforms[%d].name is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate platform name %q", p.Name)
		}
		seen[p.Name] = true
	}

	return nil
}
