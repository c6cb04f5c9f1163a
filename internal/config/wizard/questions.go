package wizard

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
)

// nameRegex validates scenario and platform names: 1-32 lowercase
// alphanumeric with hyphens.
var nameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// runScenarioGroup prompts for scenario identity.
func runScenarioGroup(ctx context.Context, result *Result) error {
	result.ScenarioName = "default"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Scenario Name").
				Description("1-32 lowercase alphanumeric characters or hyphens").
				Placeholder("default").
				Value(&result.ScenarioName).
				Validate(validateName),
		).Title("Scenario"),
	).RunWithContext(ctx)
}

// runPlatformGroup prompts for the instance definition.
func runPlatformGroup(ctx context.Context, result *Result) error {
	result.PlatformName = "instance"
	result.ServerType = defaultServerType
	result.Image = defaultImage
	result.Location = defaultLocation

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Instance Name").
				Placeholder("instance").
				Value(&result.PlatformName).
				Validate(validateName),
			huh.NewSelect[string]().
				Title("Server Type").
				Description("Hetzner Cloud server type").
				Options(ServerTypeOptions()...).
				Value(&result.ServerType),
			huh.NewSelect[string]().
				Title("Image").
				Description("Operating system image").
				Options(ImageOptions()...).
				Value(&result.Image),
			huh.NewSelect[string]().
				Title("Location").
				Description("Hetzner Cloud datacenter").
				Options(LocationOptions()...).
				Value(&result.Location),
		).Title("Platform"),
	).RunWithContext(ctx)
}

// runSSHAccessGroup prompts for pre-registered SSH key names. The driver
// relies on keys already registered with the Hetzner Cloud account and
// loaded in the caller's ssh-agent.
func runSSHAccessGroup(ctx context.Context, result *Result) error {
	var sshKeysInput string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("SSH Key Names").
				Description("Comma-separated SSH key names registered with your Hetzner Cloud account").
				Placeholder("me@myorganisation").
				Value(&sshKeysInput),
		).Title("SSH Access"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	result.SSHKeys = parseSSHKeys(sshKeysInput)
	return nil
}

func validateName(s string) error {
	if !nameRegex.MatchString(s) {
		return errInvalidName
	}
	return nil
}

// parseSSHKeys splits a comma-separated key list, dropping empty items.
func parseSSHKeys(input string) []string {
	var keys []string
	for _, part := range strings.Split(input, ",") {
		if key := strings.TrimSpace(part); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
