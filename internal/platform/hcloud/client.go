// Package hcloud provides a narrow wrapper around the Hetzner Cloud API for
// the driver's pre-flight checks and instance status probes.
package hcloud

import (
	"context"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// TokenEnv is the environment variable carrying the Hetzner Cloud API token.
const TokenEnv = "HCLOUD_TOKEN"

// Client is the API surface the orchestrator needs from Hetzner Cloud.
type Client interface {
	// ValidateToken performs a lightweight authenticated call to verify the
	// API token is usable. Invalid credentials are reported without retry.
	ValidateToken(ctx context.Context) error

	// GetServerByName returns the server with the given name, or nil if it
	// does not exist.
	GetServerByName(ctx context.Context, name string) (*hcloud.Server, error)

	// ListServersByLabel returns all servers matching the label selector.
	ListServersByLabel(ctx context.Context, selector string) ([]*hcloud.Server, error)
}
