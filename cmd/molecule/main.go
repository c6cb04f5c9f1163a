// Package main is the entry point for the molecule CLI.
//
// molecule exercises infrastructure test scenarios against instances
// provisioned on Hetzner Cloud. The CLI maps the declarative scenario file
// into SSH login parameters and Ansible connection variables, and performs
// environment sanity checks before provisioning.
//
// For detailed usage information, run:
//
//	molecule --help
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tabulon-ext/molecule/cmd/molecule/commands"
	"github.com/tabulon-ext/molecule/internal/driver"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Environment failures carry a remediation message for the
		// operator; the exit decision lives here, not in the driver.
		var fatal *driver.FatalError
		if errors.As(err, &fatal) {
			fmt.Fprintln(os.Stderr, fatal.Remediation)
		}

		os.Exit(1)
	}
}
