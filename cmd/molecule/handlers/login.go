package handlers

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Login handles the login command. The instance must already be provisioned;
// a missing instance config entry propagates as an error.
func Login(ctx context.Context, configPath, instanceName string, printOnly bool) error {
	cfg, st, err := loadScenario(configPath)
	if err != nil {
		return err
	}

	drv, err := newDriver(cfg, st)
	if err != nil {
		return err
	}

	opts, err := drv.LoginOptions(instanceName)
	if err != nil {
		return err
	}

	cmdline := renderLoginCommand(drv.LoginCommandTemplate(), opts)

	if printOnly {
		fmt.Println(cmdline)
		return nil
	}

	log.Debug("executing login command", "instance", instanceName, "cmd", cmdline)

	args := strings.Fields(cmdline)
	// #nosec G204 -- argv is assembled from the driver template and instance facts
	c := exec.CommandContext(ctx, args[0], args[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

// renderLoginCommand substitutes the template placeholders with the looked-up
// connection facts.
func renderLoginCommand(template string, opts map[string]interface{}) string {
	r := strings.NewReplacer(
		"{address}", fmt.Sprintf("%v", opts["address"]),
		"{user}", fmt.Sprintf("%v", opts["user"]),
		"{port}", fmt.Sprintf("%v", opts["port"]),
	)
	return strings.TrimSpace(r.Replace(template))
}
