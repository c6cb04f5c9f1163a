package commands

import (
	"github.com/spf13/cobra"

	"github.com/tabulon-ext/molecule/cmd/molecule/handlers"
)

// Inventory returns the command for printing Ansible connection variables.
//
// Before first provisioning the instance config does not exist; the command
// then prints an empty mapping and exits zero, since callers must tolerate
// "no connection info available".
//
// Optional flags:
//
//	--config, -c: path to the scenario file (default: molecule.yml)
//	--json: output in JSON format (default: YAML)
func Inventory() *cobra.Command {
	var configPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inventory <instance>",
		Short: "Print Ansible connection variables for an instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Inventory(cmd.Context(), configPath, args[0], jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to scenario file (default: molecule.yml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
