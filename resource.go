package basedir

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// EnsureResource creates the directory formed by joining base with subPaths,
// together with any missing parents, and returns its path. A directory that
// already exists is not an error, so concurrent callers racing on the same
// path all succeed. The joined path must stay inside base; a PathEscape error
// is returned otherwise, whether or not the path exists. Any other creation
// failure is returned as a Filesystem error wrapping the OS cause.
func EnsureResource(base string, subPaths ...string) (string, error) {
	path, err := containedJoin(base, joinSubPaths(subPaths))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", wrapError(Filesystem, fmt.Sprintf("create directory %s", path), err)
	}
	return path, nil
}

// FindResource reports the existing occurrences of subPaths under each of
// basePaths, in the given priority order. Existence is checked lazily as the
// sequence is consumed, and ranging over it again recomputes the lookups.
// A sub-path escaping one of the bases yields a PathEscape error and ends the
// sequence instead of skipping that base.
func FindResource(basePaths []string, subPaths ...string) iter.Seq2[string, error] {
	sub := joinSubPaths(subPaths)
	return func(yield func(string, error) bool) {
		for _, base := range basePaths {
			path, err := containedJoin(base, sub)
			if err != nil {
				yield("", err)
				return
			}
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if !yield(path, nil) {
				return
			}
		}
	}
}

// EnsureDataResource creates a subdirectory of DataHome.
func (l *Locations) EnsureDataResource(subPaths ...string) (string, error) {
	return EnsureResource(l.DataHome, subPaths...)
}

// EnsureConfigResource creates a subdirectory of ConfigHome.
func (l *Locations) EnsureConfigResource(subPaths ...string) (string, error) {
	return EnsureResource(l.ConfigHome, subPaths...)
}

// EnsureStateResource creates a subdirectory of StateHome.
func (l *Locations) EnsureStateResource(subPaths ...string) (string, error) {
	return EnsureResource(l.StateHome, subPaths...)
}

// EnsureCacheResource creates a subdirectory of CacheHome.
func (l *Locations) EnsureCacheResource(subPaths ...string) (string, error) {
	return EnsureResource(l.CacheHome, subPaths...)
}

// FindDataResource searches DataHome and then DataDirs for subPaths.
func (l *Locations) FindDataResource(subPaths ...string) iter.Seq2[string, error] {
	return FindResource(l.DataSearchPath(), subPaths...)
}

// FindConfigResource searches ConfigHome and then ConfigDirs for subPaths.
func (l *Locations) FindConfigResource(subPaths ...string) iter.Seq2[string, error] {
	return FindResource(l.ConfigSearchPath(), subPaths...)
}

// joinSubPaths combines components the way successive path joins do: a
// component that is itself absolute restarts the path. Components may contain
// separators.
func joinSubPaths(components []string) string {
	sub := ""
	for _, c := range components {
		switch {
		case filepath.IsAbs(c):
			sub = c
		case sub == "":
			sub = c
		default:
			sub += string(filepath.Separator) + c
		}
	}
	return sub
}

// containedJoin joins base and sub and verifies the cleaned result is base
// itself or a descendant of it. The check is lexical: neither path needs to
// exist.
func containedJoin(base, sub string) (string, error) {
	path := base
	switch {
	case sub == "":
	case filepath.IsAbs(sub):
		path = filepath.Clean(sub)
	default:
		path = filepath.Join(base, sub)
	}
	rel, err := filepath.Rel(filepath.Clean(base), path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", newError(PathEscape, fmt.Sprintf("%s escapes base directory %s", path, base))
	}
	return path, nil
}
