// Package driver defines the contract between the orchestrator and the cloud
// backends that provision test instances. A driver translates a logical
// instance name into SSH login parameters and Ansible connection variables,
// and performs environment pre-flight checks before provisioning.
package driver

import "context"

// Driver is implemented by each cloud backend.
type Driver interface {
	// Name returns the driver identity.
	Name() string

	// SetName overrides the driver identity.
	SetName(name string)

	// LoginCommandTemplate returns the ssh invocation template with
	// {address}, {user} and {port} placeholders followed by the effective
	// SSH connection options. Pure function of configuration.
	LoginCommandTemplate() string

	// DefaultSSHConnectionOptions returns the driver's built-in SSH option
	// policy, order-preserved.
	DefaultSSHConnectionOptions() []string

	// SSHConnectionOptions returns the effective options: the configured
	// list when present (full override, never merged), otherwise defaults.
	SSHConnectionOptions() []string

	// DefaultSafeFiles returns the files the orchestrator must preserve
	// between subcommand invocations.
	DefaultSafeFiles() []string

	// SafeFiles returns DefaultSafeFiles plus any configured safe files.
	SafeFiles() []string

	// LoginOptions returns the connection facts for a provisioned instance.
	// A missing entry is an error: by the time login is requested the
	// instance is assumed to exist.
	LoginOptions(instanceName string) (map[string]interface{}, error)

	// AnsibleConnectionOptions returns the ansible_* connection variables
	// for an instance. Before first provisioning the instance config file
	// legitimately does not exist, so lookup failures yield an empty map
	// rather than an error.
	AnsibleConnectionOptions(instanceName string) map[string]interface{}

	// SanityChecks verifies the environment can support provisioning.
	// Failures that require operator action are returned as *FatalError;
	// the CLI entry point decides to exit, not the driver. The check runs
	// at most once per run, tracked in the run state.
	SanityChecks(ctx context.Context) error
}
