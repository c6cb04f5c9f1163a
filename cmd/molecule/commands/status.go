package commands

import (
	"github.com/spf13/cobra"

	"github.com/tabulon-ext/molecule/cmd/molecule/handlers"
)

// Status returns the command for showing instance status.
//
// The command lists the instances recorded in the instance config and, when
// an API token is available, probes the Hetzner Cloud API for the matching
// servers.
//
// Optional flags:
//
//	--config, -c: path to the scenario file (default: molecule.yml)
func Status() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show provisioned instance status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to scenario file (default: molecule.yml)")

	return cmd
}
