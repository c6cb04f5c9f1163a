package hetznercloud

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tabulon-ext/molecule/internal/driver"
	platformhcloud "github.com/tabulon-ext/molecule/internal/platform/hcloud"
)

// SanityChecks verifies the environment before provisioning: the Hetzner
// Cloud API token must be present and usable. Failures are returned as
// *driver.FatalError with a remediation message; the CLI performs the exit.
//
// The check runs at most once per run: a successful pass records the one-way
// sanity_checked transition in the run state and later calls short-circuit.
func (d *Driver) SanityChecks(ctx context.Context) error {
	if d.st.SanityChecked() {
		return nil
	}

	log.Debug("running sanity checks", "driver", d.name)

	token := os.Getenv(platformhcloud.TokenEnv)
	if token == "" {
		return &driver.FatalError{
			Err: fmt.Errorf("missing Hetzner Cloud API token"),
			Remediation: fmt.Sprintf(
				"Expose the %s environment variable with your account API token value.",
				platformhcloud.TokenEnv),
		}
	}

	if err := d.newClient(token).ValidateToken(ctx); err != nil {
		return &driver.FatalError{
			Err: fmt.Errorf("hetzner cloud API is not usable: %w", err),
			Remediation: fmt.Sprintf(
				"Verify that the token in %s is valid for your Hetzner Cloud project and that api.hetzner.cloud is reachable.",
				platformhcloud.TokenEnv),
		}
	}

	return d.st.MarkSanityChecked()
}
