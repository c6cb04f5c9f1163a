package handlers

import (
	"context"
	"fmt"

	"github.com/tabulon-ext/molecule/internal/config"
	"github.com/tabulon-ext/molecule/internal/config/wizard"
)

// InitOptions holds the flag values for the init command.
type InitOptions struct {
	Driver       string
	PlatformName string
	ServerType   string
	Image        string
	Location     string
	Force        bool
}

// interactive reports whether no scenario flags were provided, so the wizard
// should run.
func (o InitOptions) interactive() bool {
	return o.Driver == "" && o.PlatformName == "" && o.ServerType == "" &&
		o.Image == "" && o.Location == ""
}

// Init handles the init command: scaffold molecule.yml either through the
// interactive wizard or from flags.
func Init(ctx context.Context, opts InitOptions) error {
	var result *wizard.Result

	if opts.interactive() && isInteractiveTTY() {
		var err error
		result, err = wizard.Run(ctx)
		if err != nil {
			return fmt.Errorf("wizard aborted: %w", err)
		}
	} else {
		result = &wizard.Result{
			ScenarioName: config.DefaultScenarioName,
			DriverName:   defaultOr(opts.Driver, config.DefaultDriverName),
			PlatformName: defaultOr(opts.PlatformName, "instance"),
			ServerType:   defaultOr(opts.ServerType, "cx22"),
			Image:        defaultOr(opts.Image, "debian-12"),
			Location:     defaultOr(opts.Location, "fsn1"),
		}
	}

	cfg := result.Config()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	if err := wizard.WriteFile(config.DefaultFileName, cfg, opts.Force); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", config.DefaultFileName)
	return nil
}

func defaultOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
