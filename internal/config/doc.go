// Package config loads and validates the declarative scenario file
// (molecule.yml): scenario identity, driver surface, and platform
// definitions. Paths derived from the scenario (ephemeral directory,
// instance config, run state) are also computed here so every subcommand
// resolves them identically.
package config
