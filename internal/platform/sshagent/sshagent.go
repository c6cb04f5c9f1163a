// Package sshagent probes the caller's ssh-agent. The Hetzner Cloud driver
// does not generate a keypair for new instances, so login only works when a
// pre-registered key is loaded in the agent.
package sshagent

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/crypto/ssh/agent"
)

// SockEnv is the environment variable pointing at the agent socket.
const SockEnv = "SSH_AUTH_SOCK"

// Probe connects to the ssh-agent and returns the number of loaded keys.
func Probe() (int, error) {
	sock := os.Getenv(SockEnv)
	if sock == "" {
		return 0, fmt.Errorf("%s is not set, no ssh-agent available", SockEnv)
	}

	conn, err := net.Dial("unix", sock)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to ssh-agent: %w", err)
	}
	defer func() { _ = conn.Close() }()

	keys, err := agent.NewClient(conn).List()
	if err != nil {
		return 0, fmt.Errorf("failed to list ssh-agent keys: %w", err)
	}

	return len(keys), nil
}
