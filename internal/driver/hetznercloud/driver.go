// Package hetznercloud implements the Hetzner Cloud driver.
//
// The driver maps scenario configuration into the parameters the external
// provisioner consumes and exposes SSH login facts for created instances.
// Unlike other drivers it does not generate an SSH keypair: the key named in
// the platform definition must be pre-registered with the Hetzner Cloud
// account and loaded in the caller's ssh-agent. Host keys of freshly created
// cloud instances are unknown in advance, so host-key checking is disabled in
// the default SSH options.
package hetznercloud

import (
	"fmt"
	"strings"

	"github.com/tabulon-ext/molecule/internal/config"
	"github.com/tabulon-ext/molecule/internal/driver"
	"github.com/tabulon-ext/molecule/internal/instanceconfig"
	platformhcloud "github.com/tabulon-ext/molecule/internal/platform/hcloud"
	"github.com/tabulon-ext/molecule/internal/state"
)

// DriverName is the default identity of this driver.
const DriverName = "hetznercloud"

// Driver manages Hetzner Cloud instances.
type Driver struct {
	name string
	cfg  *config.Config
	st   *state.State

	// newClient builds the API client used by sanity checks. Injectable
	// for tests.
	newClient func(token string) platformhcloud.Client
}

var _ driver.Driver = (*Driver)(nil)

// Option configures a Driver.
type Option func(*Driver)

// WithClientFactory overrides how the Hetzner Cloud API client is built.
func WithClientFactory(f func(token string) platformhcloud.Client) Option {
	return func(d *Driver) {
		d.newClient = f
	}
}

// New creates a Hetzner Cloud driver bound to the scenario config and run
// state.
func New(cfg *config.Config, st *state.State, opts ...Option) *Driver {
	d := &Driver{
		name: DriverName,
		cfg:  cfg,
		st:   st,
		newClient: func(token string) platformhcloud.Client {
			return platformhcloud.NewRealClient(token)
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the driver identity.
func (d *Driver) Name() string { return d.name }

// SetName overrides the driver identity.
func (d *Driver) SetName(name string) { d.name = name }

// LoginCommandTemplate returns the ssh invocation template. Placeholders are
// filled in from LoginOptions by the caller.
func (d *Driver) LoginCommandTemplate() string {
	options := strings.Join(d.SSHConnectionOptions(), " ")
	return fmt.Sprintf("ssh {address} -l {user} -p {port} %s", options)
}

// DefaultSSHConnectionOptions returns the built-in SSH option policy:
// no host-key checking or known-hosts storage, connection multiplexing with a
// 60s persistence window, and IdentitiesOnly disabled so the ssh-agent
// supplies the pre-registered key.
func (d *Driver) DefaultSSHConnectionOptions() []string {
	return []string{
		"-o UserKnownHostsFile=/dev/null",
		"-o ControlMaster=auto",
		"-o ControlPersist=60s",
		"-o IdentitiesOnly=no",
		"-o StrictHostKeyChecking=no",
	}
}

// SSHConnectionOptions returns the configured options when set, otherwise
// the defaults. A configured list fully replaces the defaults.
func (d *Driver) SSHConnectionOptions() []string {
	if len(d.cfg.Driver.SSHConnectionOptions) > 0 {
		return d.cfg.Driver.SSHConnectionOptions
	}
	return d.DefaultSSHConnectionOptions()
}

// DefaultSafeFiles returns the files that must survive between subcommand
// invocations: the instance config written by the provisioner.
func (d *Driver) DefaultSafeFiles() []string {
	return []string{
		d.cfg.InstanceConfigPath(),
	}
}

// SafeFiles returns the default safe files plus any configured ones.
func (d *Driver) SafeFiles() []string {
	return append(d.DefaultSafeFiles(), d.cfg.Driver.SafeFiles...)
}

// LoginOptions returns the connection facts for instanceName merged with the
// instance key itself. Lookup failures propagate: login is only requested for
// instances that already exist.
func (d *Driver) LoginOptions(instanceName string) (map[string]interface{}, error) {
	entry, err := instanceconfig.Lookup(d.cfg.InstanceConfigPath(), instanceName)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"instance": instanceName,
		"user":     entry.User,
		"address":  entry.Address,
		"port":     entry.Port,
	}, nil
}

// AnsibleConnectionOptions returns the ansible_* connection variables for
// instanceName. During the early provisioning phase the instance config file
// does not exist yet, so any lookup failure yields an empty map: callers
// must tolerate "no connection info available".
func (d *Driver) AnsibleConnectionOptions(instanceName string) map[string]interface{} {
	entry, err := instanceconfig.Lookup(d.cfg.InstanceConfigPath(), instanceName)
	if err != nil {
		return map[string]interface{}{}
	}

	return map[string]interface{}{
		"ansible_user":            entry.User,
		"ansible_host":            entry.Address,
		"ansible_port":            entry.Port,
		"connection":              "ssh",
		"ansible_ssh_common_args": strings.Join(d.SSHConnectionOptions(), " "),
	}
}
