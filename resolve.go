package basedir

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"
)

// GetPath resolves a single path from an environment variable or a fallback.
//
// A non-empty value of variable in env wins; otherwise fallback is used when
// non-empty. The result is cleaned but not checked for existence or
// absoluteness. Passing variable == "" skips the environment lookup entirely.
// When neither source yields a value, a MissingConfiguration error is
// returned.
func GetPath(env Environment, variable, fallback string) (string, error) {
	value := ""
	if variable != "" {
		value = env.Getenv(variable)
	}
	if value == "" {
		value = fallback
	}
	if value == "" {
		if variable == "" {
			return "", newError(MissingConfiguration, "no path value and no fallback provided")
		}
		return "", newError(MissingConfiguration,
			fmt.Sprintf("%s is unset and no fallback path was provided", variable))
	}
	return filepath.Clean(value), nil
}

// GenPaths resolves a colon-separated list of paths from an environment
// variable or a fallback spec string, yielding one path per segment in
// priority order.
//
// The sequence is lazy and finite; ranging over it again recomputes it from
// the start. When neither the variable nor fallbackSpec yields a non-empty
// spec, the first element carries a MissingConfiguration error. Each segment
// is resolved through GetPath, so an empty segment (consecutive colons) also
// produces a MissingConfiguration error; iteration stops at the first error
// rather than skipping the offending segment.
func GenPaths(env Environment, variable, fallbackSpec string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		spec := env.Getenv(variable)
		if spec == "" {
			spec = fallbackSpec
		}
		if spec == "" {
			yield("", newError(MissingConfiguration,
				fmt.Sprintf("%s is unset and no fallback paths were provided", variable)))
			return
		}
		for _, segment := range strings.Split(spec, ":") {
			path, err := GetPath(env, "", segment)
			if err != nil {
				yield("", err)
				return
			}
			if !yield(path, nil) {
				return
			}
		}
	}
}

// collectPaths materializes seq, stopping at the first error.
func collectPaths(seq iter.Seq2[string, error]) ([]string, error) {
	var paths []string
	for path, err := range seq {
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
