// Package handlers implements the execution logic behind the CLI commands.
package handlers

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/tabulon-ext/molecule/internal/config"
	"github.com/tabulon-ext/molecule/internal/driver"
	"github.com/tabulon-ext/molecule/internal/driver/hetznercloud"
	"github.com/tabulon-ext/molecule/internal/state"
)

// loadScenario resolves and loads the scenario file plus its run state.
func loadScenario(configPath string) (*config.Config, *state.State, error) {
	path, err := config.Locate(configPath)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := state.Open(cfg.StateFilePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open run state: %w", err)
	}

	return cfg, st, nil
}

// newDriver constructs the driver named by the scenario.
func newDriver(cfg *config.Config, st *state.State) (driver.Driver, error) {
	switch cfg.Driver.Name {
	case hetznercloud.DriverName:
		return hetznercloud.New(cfg, st), nil
	default:
		return nil, fmt.Errorf("unknown driver %q", cfg.Driver.Name)
	}
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
