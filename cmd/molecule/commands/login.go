package commands

import (
	"github.com/spf13/cobra"

	"github.com/tabulon-ext/molecule/cmd/molecule/handlers"
)

// Login returns the command for opening an SSH session to an instance.
//
// Optional flags:
//
//	--config, -c: path to the scenario file (default: molecule.yml)
//	--print: print the ssh command instead of executing it
func Login() *cobra.Command {
	var configPath string
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "login <instance>",
		Short: "Log in to a provisioned instance via SSH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Login(cmd.Context(), configPath, args[0], printOnly)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to scenario file (default: molecule.yml)")
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the ssh command without executing it")

	return cmd
}
