package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInventory_NoInstanceConfigYet(t *testing.T) {
	t.Parallel()

	path := writeTestScenario(t, "platforms:\n  - name: instance\n", "")

	// Before first provisioning there is no connection info; the command
	// reports an empty mapping and succeeds.
	require.NoError(t, Inventory(context.Background(), path, "instance", false))
	require.NoError(t, Inventory(context.Background(), path, "instance", true))
}

func TestInventory_ProvisionedInstance(t *testing.T) {
	t.Parallel()

	path := writeTestScenario(t,
		"platforms:\n  - name: instance\n",
		"- instance: instance\n  user: root\n  address: 1.2.3.4\n  port: 22\n")

	require.NoError(t, Inventory(context.Background(), path, "instance", false))
}
