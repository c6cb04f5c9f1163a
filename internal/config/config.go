package config

import "path/filepath"

// DefaultDriverName is the driver used when the scenario does not name one.
const DefaultDriverName = "hetznercloud"

// DefaultScenarioName is used when the scenario section omits a name.
const DefaultScenarioName = "default"

// DefaultFileName is the scenario file looked up in the working directory.
const DefaultFileName = "molecule.yml"

// ephemeralDirName is the per-scenario working directory created next to the
// scenario file.
const ephemeralDirName = ".molecule"

// Config holds a parsed scenario file.
type Config struct {
	Scenario  ScenarioConfig `mapstructure:"scenario" yaml:"scenario"`
	Driver    DriverConfig   `mapstructure:"driver" yaml:"driver"`
	Platforms []Platform     `mapstructure:"platforms" yaml:"platforms"`

	// dir is the directory containing the scenario file. Derived paths
	// (ephemeral directory, instance config, state) are anchored here.
	dir string
}

// ScenarioConfig identifies the scenario.
type ScenarioConfig struct {
	Name string `mapstructure:"name" yaml:"name"`
}

// DriverConfig is the declarative driver surface.
type DriverConfig struct {
	Name string `mapstructure:"name" yaml:"name"`

	// SSHConnectionOptions fully overrides the driver's built-in defaults
	// when set. Lists are never merged.
	SSHConnectionOptions []string `mapstructure:"ssh_connection_options" yaml:"ssh_connection_options,omitempty"`

	// SafeFiles are appended to the driver's default safe files; the
	// orchestrator must not delete them between subcommand invocations.
	SafeFiles []string `mapstructure:"safe_files" yaml:"safe_files,omitempty"`
}

// Platform is a declarative instance definition, consumed by the provisioner.
type Platform struct {
	Name       string   `mapstructure:"name" yaml:"name"`
	ServerType string   `mapstructure:"server_type" yaml:"server_type,omitempty"`
	Image      string   `mapstructure:"image" yaml:"image,omitempty"`
	Location   string   `mapstructure:"location" yaml:"location,omitempty"`
	SSHKeys    []string `mapstructure:"ssh_keys" yaml:"ssh_keys,omitempty"`
}

// EphemeralDir returns the scenario's ephemeral working directory.
func (c *Config) EphemeralDir() string {
	return filepath.Join(c.dir, ephemeralDirName, c.Scenario.Name)
}

// InstanceConfigPath returns the path of the instance config file written by
// the provisioner.
func (c *Config) InstanceConfigPath() string {
	return filepath.Join(c.EphemeralDir(), "instance_config.yml")
}

// StateFilePath returns the path of the run state file.
func (c *Config) StateFilePath() string {
	return filepath.Join(c.EphemeralDir(), "state.yml")
}
