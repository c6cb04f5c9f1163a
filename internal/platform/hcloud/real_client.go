package hcloud

import (
	"context"
	"fmt"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/tabulon-ext/molecule/internal/util/retry"
)

// RealClient implements Client using the Hetzner Cloud API.
type RealClient struct {
	client *hcloud.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHCloudClient sets a custom hcloud client (useful for testing).
func WithHCloudClient(hc *hcloud.Client) ClientOption {
	return func(c *RealClient) {
		c.client = hc
	}
}

// NewRealClient creates a RealClient authenticated with token.
func NewRealClient(token string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		client: hcloud.NewClient(hcloud.WithToken(token)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ValidateToken lists datacenter locations as a cheap authenticated probe.
// Transient failures are retried; authentication failures are not.
func (c *RealClient) ValidateToken(ctx context.Context) error {
	err := retry.Do(ctx, func() error {
		_, err := c.client.Location.All(ctx)
		if err != nil && IsUnauthorized(err) {
			return retry.Fatal(err)
		}
		return err
	}, retry.WithMaxRetries(2))
	if err != nil {
		return fmt.Errorf("hetzner cloud API token validation failed: %w", err)
	}
	return nil
}

// GetServerByName returns the named server, or nil if it does not exist.
func (c *RealClient) GetServerByName(ctx context.Context, name string) (*hcloud.Server, error) {
	server, _, err := c.client.Server.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get server %s: %w", name, err)
	}
	return server, nil
}

// ListServersByLabel returns all servers matching the label selector.
func (c *RealClient) ListServersByLabel(ctx context.Context, selector string) ([]*hcloud.Server, error) {
	servers, err := c.client.Server.AllWithOpts(ctx, hcloud.ServerListOpts{
		ListOpts: hcloud.ListOpts{LabelSelector: selector},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	return servers, nil
}
