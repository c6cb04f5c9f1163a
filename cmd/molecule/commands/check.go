package commands

import (
	"github.com/spf13/cobra"

	"github.com/tabulon-ext/molecule/cmd/molecule/handlers"
)

// Check returns the command for running driver sanity checks.
//
// The check verifies the environment can support provisioning: API token
// presence and validity, required client tools, and ssh-agent availability.
//
// Optional flags:
//
//	--config, -c: path to the scenario file (default: molecule.yml)
//	--json: output in JSON format
func Check() *cobra.Command {
	var configPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run driver sanity checks against the environment",
		Long: `Run the driver's pre-flight sanity checks and report the environment state.

A successful run is recorded in the scenario's run state; subsequent checks
short-circuit until the state file is removed.

Examples:
  # Check the default scenario
  molecule check

  # Machine-readable output
  molecule check --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Check(cmd.Context(), configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to scenario file (default: molecule.yml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
