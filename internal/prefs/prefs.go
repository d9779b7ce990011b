// Package prefs persists small UI preferences between runs.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "prefs.yaml"

// Prefs are remembered across restarts. Game state is never stored here.
type Prefs struct {
	DisplayMode string `yaml:"display_mode,omitempty"`
	LastCity    string `yaml:"last_city,omitempty"`
}

type Store struct {
	Dir string
}

func DefaultStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &Store{Dir: filepath.Join(dir, "miniapps")}, nil
}

func (s *Store) path() (string, error) {
	if s.Dir == "" {
		return "", fmt.Errorf("prefs: no directory")
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, fileName), nil
}

// Load returns zero Prefs when no file exists yet.
func (s *Store) Load() (Prefs, error) {
	path, err := s.path()
	if err != nil {
		return Prefs{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Prefs{}, nil
		}
		return Prefs{}, err
	}
	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

func (s *Store) Save(p Prefs) error {
	path, err := s.path()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
