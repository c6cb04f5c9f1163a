// Package instanceconfig reads the instance connection facts persisted by the
// provisioner. The file is rewritten after every create/destroy cycle, so
// lookups always re-read it from disk instead of caching.
package instanceconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNotFound indicates that no entry matched the requested instance name.
var ErrNotFound = errors.New("instance not found in instance config")

// Entry holds the connection facts for a single provisioned instance.
type Entry struct {
	Instance string `yaml:"instance"`
	User     string `yaml:"user"`
	Address  string `yaml:"address"`
	Port     int    `yaml:"port"`
}

// Load reads all entries from the instance config file at path.
// A missing file is reported via the wrapped os error so callers can
// distinguish "not provisioned yet" from a malformed file.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from scenario config
	if err != nil {
		return nil, fmt.Errorf("failed to read instance config: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal instance config: %w", err)
	}

	return entries, nil
}

// Lookup returns the first entry whose instance name matches name.
// Returns ErrNotFound when the file exists but contains no matching entry.
func Lookup(path, name string) (Entry, error) {
	entries, err := Load(path)
	if err != nil {
		return Entry{}, err
	}

	for _, e := range entries {
		if e.Instance == name {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}
