// Package state tracks per-run orchestrator state in a small YAML file under
// the scenario's ephemeral directory. The state object replaces implicit
// process-wide flags: callers hold a *State and query it through predicates.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Data is the persisted run state.
type Data struct {
	Created       bool   `yaml:"created"`
	Converged     bool   `yaml:"converged"`
	Driver        string `yaml:"driver,omitempty"`
	SanityChecked bool   `yaml:"sanity_checked"`
}

// State is a run-state file handle. All mutations persist immediately.
type State struct {
	path string
	data Data
}

// Open loads the state file at path, or initializes empty state if the file
// does not exist yet.
func Open(path string) (*State, error) {
	s := &State{path: path}

	raw, err := os.ReadFile(path) // #nosec G304 -- path derived from scenario config
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state file: %w", err)
	}

	return s, nil
}

// Path returns the location of the state file.
func (s *State) Path() string { return s.path }

// SanityChecked reports whether sanity checks already ran this run.
func (s *State) SanityChecked() bool { return s.data.SanityChecked }

// Created reports whether instances were created this run.
func (s *State) Created() bool { return s.data.Created }

// Converged reports whether the scenario converged this run.
func (s *State) Converged() bool { return s.data.Converged }

// Driver returns the driver name recorded for this run.
func (s *State) Driver() string { return s.data.Driver }

// MarkSanityChecked records the one-way unchecked->checked transition.
// Subsequent calls are no-ops.
func (s *State) MarkSanityChecked() error {
	if s.data.SanityChecked {
		return nil
	}
	s.data.SanityChecked = true
	return s.save()
}

// MarkCreated records that instances exist.
func (s *State) MarkCreated() error {
	s.data.Created = true
	return s.save()
}

// MarkConverged records that the scenario converged.
func (s *State) MarkConverged() error {
	s.data.Converged = true
	return s.save()
}

// SetDriver records the driver name used for this run.
func (s *State) SetDriver(name string) error {
	s.data.Driver = name
	return s.save()
}

// save writes the state atomically: temp file in the same directory, then
// rename over the target.
func (s *State) save() error {
	content, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.yml")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp state file: %w", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to chmod state file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}
