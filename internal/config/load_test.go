package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()
		path := writeScenario(t, `
platforms:
  - name: instance
    server_type: cx22
    image: debian-12
`)

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultScenarioName, cfg.Scenario.Name)
		assert.Equal(t, DefaultDriverName, cfg.Driver.Name)
		assert.Empty(t, cfg.Driver.SSHConnectionOptions)
	})

	t.Run("parses full driver surface", func(t *testing.T) {
		t.Parallel()
		path := writeScenario(t, `
scenario:
  name: upgrade
driver:
  name: hetznercloud
  ssh_connection_options:
    - -o ControlPath=~/.ansible/cp/%r@%h-%p
  safe_files:
    - foo
platforms:
  - name: instance
    server_type: cx32
    image: ubuntu-24.04
    location: nbg1
    ssh_keys:
      - me@myorganisation
`)

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "upgrade", cfg.Scenario.Name)
		assert.Equal(t, []string{"-o ControlPath=~/.ansible/cp/%r@%h-%p"}, cfg.Driver.SSHConnectionOptions)
		assert.Equal(t, []string{"foo"}, cfg.Driver.SafeFiles)
		require.Len(t, cfg.Platforms, 1)
		assert.Equal(t, []string{"me@myorganisation"}, cfg.Platforms[0].SSHKeys)
	})

	t.Run("derived paths anchor at config dir", func(t *testing.T) {
		t.Parallel()
		path := writeScenario(t, "platforms:\n  - name: i1\n")

		cfg, err := LoadFile(path)
		require.NoError(t, err)

		dir := filepath.Dir(path)
		assert.Equal(t, filepath.Join(dir, ".molecule", "default"), cfg.EphemeralDir())
		assert.Equal(t, filepath.Join(dir, ".molecule", "default", "instance_config.yml"), cfg.InstanceConfigPath())
		assert.Equal(t, filepath.Join(dir, ".molecule", "default", "state.yml"), cfg.StateFilePath())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
	})

	t.Run("validation failure propagates", func(t *testing.T) {
		t.Parallel()
		path := writeScenario(t, "platforms:\n  - server_type: cx22\n")
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration validation failed")
	})
}

func TestLocate(t *testing.T) {
	t.Parallel()

	t.Run("explicit path", func(t *testing.T) {
		t.Parallel()
		path := writeScenario(t, "platforms: []\n")
		got, err := Locate(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("missing explicit path", func(t *testing.T) {
		t.Parallel()
		_, err := Locate(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
