// Package wizard implements the interactive scenario scaffolding used by
// `molecule init` on a TTY.
package wizard

import (
	"context"
	"fmt"
)

// Result holds all answers from the interactive wizard.
type Result struct {
	ScenarioName string
	DriverName   string

	// Platform definition
	PlatformName string
	ServerType   string
	Image        string
	Location     string
	SSHKeys      []string
}

// Run executes the wizard groups in order. The context is used for
// cancellation support (Ctrl+C).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{DriverName: defaultDriver}

	if err := runScenarioGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	if err := runPlatformGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("platform: %w", err)
	}

	if err := runSSHAccessGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("ssh access: %w", err)
	}

	return result, nil
}
