package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tabulon-ext/molecule/internal/config"
)

const fileHeader = `# Molecule scenario configuration.
# Generated by 'molecule init'; edit freely.
`

// Config converts the wizard answers into a scenario configuration.
func (r *Result) Config() *config.Config {
	return &config.Config{
		Scenario: config.ScenarioConfig{Name: r.ScenarioName},
		Driver:   config.DriverConfig{Name: r.DriverName},
		Platforms: []config.Platform{
			{
				Name:       r.PlatformName,
				ServerType: r.ServerType,
				Image:      r.Image,
				Location:   r.Location,
				SSHKeys:    r.SSHKeys,
			},
		},
	}
}

// WriteFile marshals the scenario configuration to path. The file is not
// overwritten unless force is set.
func WriteFile(path string, cfg *config.Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
	}

	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(fileHeader), content...), 0600); err != nil {
		return fmt.Errorf("failed to write scenario config: %w", err)
	}

	return nil
}
