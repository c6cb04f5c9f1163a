package commands

import (
	"github.com/spf13/cobra"

	"github.com/tabulon-ext/molecule/cmd/molecule/handlers"
)

// Init returns the command for scaffolding a new scenario.
//
// On an interactive terminal the scenario is built through a wizard; with
// flags (or on non-TTY output) the given values are used directly.
//
// Optional flags:
//
//	--driver: driver name (default: hetznercloud)
//	--platform-name: name of the single platform to define (default: instance)
//	--server-type, --image, --location: platform parameters
//	--force: overwrite an existing molecule.yml
func Init() *cobra.Command {
	var opts handlers.InitOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a scenario configuration",
		Long: `Scaffold a molecule.yml scenario configuration in the current directory.

Examples:
  # Interactive wizard
  molecule init

  # Non-interactive
  molecule init --platform-name instance --server-type cx22 --image debian-12`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Driver, "driver", "", "Driver name")
	cmd.Flags().StringVar(&opts.PlatformName, "platform-name", "", "Platform name")
	cmd.Flags().StringVar(&opts.ServerType, "server-type", "", "Hetzner Cloud server type")
	cmd.Flags().StringVar(&opts.Image, "image", "", "Operating system image")
	cmd.Flags().StringVar(&opts.Location, "location", "", "Hetzner Cloud location")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing scenario file")

	return cmd
}
