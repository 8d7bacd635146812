// Package basedir resolves XDG Base Directory locations for user and system
// data, configuration, state, cache, and runtime files, and provides helpers
// to create or look up resources under them.
//
// Locations are resolved from an Environment snapshot, so the caller owns
// their lifetime: resolve once at startup with Default (or Resolve with a
// custom snapshot) and pass the value around. The environment is never
// re-read after resolution.
package basedir

import (
	"fmt"
	"path/filepath"
	"sync"
)

// Base directory environment variables.
const (
	envDataHome   = "XDG_DATA_HOME"
	envConfigHome = "XDG_CONFIG_HOME"
	envStateHome  = "XDG_STATE_HOME"
	envCacheHome  = "XDG_CACHE_HOME"
	envDataDirs   = "XDG_DATA_DIRS"
	envConfigDirs = "XDG_CONFIG_DIRS"
	envRuntimeDir = "XDG_RUNTIME_DIR"
)

// Defaults used when the corresponding list variable is unset or empty.
const (
	defaultDataDirs   = "/usr/local/share/:/usr/share/"
	defaultConfigDirs = "/etc/xdg"
)

// Locations holds the resolved base directories. Values are fixed at
// resolution time and never mutated afterwards.
type Locations struct {
	// Home is the current user's home directory.
	Home string

	// Per-user base directories, the highest-priority location for each
	// category.
	DataHome   string
	ConfigHome string
	StateHome  string
	CacheHome  string

	// System-wide search paths in descending priority order. They supplement
	// DataHome and ConfigHome for lookups.
	DataDirs   []string
	ConfigDirs []string

	// RuntimeDir is the directory for per-user runtime files. When
	// XDG_RUNTIME_DIR is unset, the conventional but unreliable fallback
	// /tmp/user-<uid> is used instead; unlike a spec-compliant runtime
	// directory it carries no ownership, permission, or lifetime guarantees,
	// so callers that depend on those must verify them.
	RuntimeDir string
}

// Resolve computes Locations from the given environment snapshot.
func Resolve(env Environment) (*Locations, error) {
	home, err := env.HomeDir()
	if err != nil {
		return nil, wrapError(MissingConfiguration, "user home directory", err)
	}

	l := &Locations{Home: home}
	if l.DataHome, err = GetPath(env, envDataHome, filepath.Join(home, ".local", "share")); err != nil {
		return nil, err
	}
	if l.ConfigHome, err = GetPath(env, envConfigHome, filepath.Join(home, ".config")); err != nil {
		return nil, err
	}
	if l.StateHome, err = GetPath(env, envStateHome, filepath.Join(home, ".local", "state")); err != nil {
		return nil, err
	}
	if l.CacheHome, err = GetPath(env, envCacheHome, filepath.Join(home, ".cache")); err != nil {
		return nil, err
	}
	if l.DataDirs, err = collectPaths(GenPaths(env, envDataDirs, defaultDataDirs)); err != nil {
		return nil, err
	}
	if l.ConfigDirs, err = collectPaths(GenPaths(env, envConfigDirs, defaultConfigDirs)); err != nil {
		return nil, err
	}
	runtimeFallback := fmt.Sprintf("/tmp/user-%d", env.UserID())
	if l.RuntimeDir, err = GetPath(env, envRuntimeDir, runtimeFallback); err != nil {
		return nil, err
	}
	return l, nil
}

// DataSearchPath returns DataHome followed by DataDirs, the effective lookup
// order for data resources.
func (l *Locations) DataSearchPath() []string {
	return append([]string{l.DataHome}, l.DataDirs...)
}

// ConfigSearchPath returns ConfigHome followed by ConfigDirs, the effective
// lookup order for config resources.
func (l *Locations) ConfigSearchPath() []string {
	return append([]string{l.ConfigHome}, l.ConfigDirs...)
}

// Resolved from the live environment exactly once; later calls observe the
// same snapshot even if the environment has changed since.
var defaultLocations = sync.OnceValues(func() (*Locations, error) {
	return Resolve(OSEnvironment())
})

// Default returns the process-wide Locations resolved from the environment at
// first use. Code that needs different values must call Resolve with its own
// snapshot rather than mutate the environment.
func Default() (*Locations, error) { return defaultLocations() }
