package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabulon-ext/molecule/internal/config"
)

func testResult() *Result {
	return &Result{
		ScenarioName: "default",
		DriverName:   "hetznercloud",
		PlatformName: "instance",
		ServerType:   "cx22",
		Image:        "debian-12",
		Location:     "fsn1",
		SSHKeys:      []string{"me@myorganisation"},
	}
}

func TestResultConfig(t *testing.T) {
	t.Parallel()

	cfg := testResult().Config()

	assert.Equal(t, "default", cfg.Scenario.Name)
	assert.Equal(t, "hetznercloud", cfg.Driver.Name)
	require.Len(t, cfg.Platforms, 1)
	assert.Equal(t, "instance", cfg.Platforms[0].Name)
	assert.Equal(t, "cx22", cfg.Platforms[0].ServerType)
	assert.Equal(t, []string{"me@myorganisation"}, cfg.Platforms[0].SSHKeys)
	require.NoError(t, cfg.Validate())
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("writes loadable scenario", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), config.DefaultFileName)

		require.NoError(t, WriteFile(path, testResult().Config(), false))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Generated by 'molecule init'")

		loaded, err := config.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hetznercloud", loaded.Driver.Name)
		require.Len(t, loaded.Platforms, 1)
		assert.Equal(t, "instance", loaded.Platforms[0].Name)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), config.DefaultFileName)
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0600))

		err := WriteFile(path, testResult().Config(), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		require.NoError(t, WriteFile(path, testResult().Config(), true))
	})
}
