package handlers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabulon-ext/molecule/internal/config"
	"github.com/tabulon-ext/molecule/internal/instanceconfig"
)

// writeTestScenario creates a scenario file plus a provisioned instance
// config in a temp dir and returns the scenario path.
func writeTestScenario(t *testing.T, scenario, instances string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0600))

	if instances != "" {
		cfg, err := config.LoadFile(path)
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll(cfg.EphemeralDir(), 0750))
		require.NoError(t, os.WriteFile(cfg.InstanceConfigPath(), []byte(instances), 0600))
	}

	return path
}

func TestRenderLoginCommand(t *testing.T) {
	t.Parallel()

	opts := map[string]interface{}{
		"instance": "i1",
		"user":     "root",
		"address":  "1.2.3.4",
		"port":     22,
	}

	got := renderLoginCommand("ssh {address} -l {user} -p {port} -o StrictHostKeyChecking=no", opts)
	assert.Equal(t, "ssh 1.2.3.4 -l root -p 22 -o StrictHostKeyChecking=no", got)
}

func TestLogin_UnknownInstance(t *testing.T) {
	t.Parallel()

	path := writeTestScenario(t,
		"platforms:\n  - name: instance\n",
		"- instance: instance\n  user: root\n  address: 1.2.3.4\n  port: 22\n")

	err := Login(context.Background(), path, "missing", true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, instanceconfig.ErrNotFound))
}

func TestLogin_MissingScenario(t *testing.T) {
	t.Parallel()

	err := Login(context.Background(), filepath.Join(t.TempDir(), "nope.yml"), "instance", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
