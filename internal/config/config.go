// Package config loads and stores CLI settings in the XDG config dir,
// using the basedir library's own resource helpers.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/lengau/basedir"
)

// Config holds CLI settings.
type Config struct {
	// App scopes ensure/find sub-paths under an application directory.
	// Empty means no scoping.
	App string `json:"app"`
}

// path returns the path to the config file, creating its directory if needed.
func path() (string, error) {
	locs, err := basedir.Default()
	if err != nil {
		return "", err
	}
	dir, err := locs.EnsureConfigResource("basedir")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file returns defaults.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
