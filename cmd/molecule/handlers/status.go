package handlers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tabulon-ext/molecule/internal/instanceconfig"
	platformhcloud "github.com/tabulon-ext/molecule/internal/platform/hcloud"
	"github.com/tabulon-ext/molecule/internal/ui"
)

// Status handles the status command: instance config entries plus, when a
// token is available, a live probe of the matching Hetzner Cloud servers.
func Status(ctx context.Context, configPath string) error {
	cfg, _, err := loadScenario(configPath)
	if err != nil {
		return err
	}

	entries, err := instanceconfig.Load(cfg.InstanceConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Println("No instances provisioned yet.")
		return nil
	}
	if err != nil {
		return err
	}

	var client platformhcloud.Client
	if token := os.Getenv(platformhcloud.TokenEnv); token != "" {
		client = platformhcloud.NewRealClient(token)
	}

	fmt.Println()
	fmt.Print(ui.Header(fmt.Sprintf("scenario %s (%s)", cfg.Scenario.Name, cfg.Driver.Name)))

	for _, e := range entries {
		endpoint := fmt.Sprintf("%s@%s:%d", e.User, e.Address, e.Port)

		if client == nil {
			fmt.Print(ui.WarnRow(e.Instance, endpoint+" (not probed, "+platformhcloud.TokenEnv+" unset)"))
			continue
		}

		server, err := client.GetServerByName(ctx, e.Instance)
		switch {
		case err != nil:
			fmt.Print(ui.WarnRow(e.Instance, "probe failed: "+err.Error()))
		case server == nil:
			fmt.Print(ui.Row(false, e.Instance, endpoint+" (no matching server)"))
		default:
			fmt.Print(ui.Row(true, e.Instance, fmt.Sprintf("%s (%s)", endpoint, server.Status)))
		}
	}

	fmt.Println()
	return nil
}
