package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Inventory handles the inventory command. An instance without connection
// info yields an empty mapping, not an error: before first provisioning the
// instance config legitimately does not exist.
func Inventory(_ context.Context, configPath, instanceName string, jsonOutput bool) error {
	cfg, st, err := loadScenario(configPath)
	if err != nil {
		return err
	}

	drv, err := newDriver(cfg, st)
	if err != nil {
		return err
	}

	vars := drv.AnsibleConnectionOptions(instanceName)

	if jsonOutput {
		data, err := json.MarshalIndent(vars, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal connection options: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(vars) == 0 {
		fmt.Println("{}")
		return nil
	}

	data, err := yaml.Marshal(vars)
	if err != nil {
		return fmt.Errorf("failed to marshal connection options: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
