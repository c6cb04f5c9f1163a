// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the molecule CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "molecule",
		Short: "Exercise infrastructure test scenarios on Hetzner Cloud",

		// main owns error output so remediation hints print once.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Check())
	cmd.AddCommand(Login())
	cmd.AddCommand(Inventory())
	cmd.AddCommand(Status())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
