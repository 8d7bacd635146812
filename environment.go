package basedir

import (
	"errors"
	"os"
)

// Environment is a snapshot of the process state consulted during path
// resolution. Production code uses OSEnvironment; tests build synthetic
// snapshots with MapEnvironment instead of mutating the real environment.
type Environment interface {
	// Getenv returns the value of the named variable, or "" when unset.
	Getenv(name string) string
	// HomeDir returns the current user's home directory.
	HomeDir() (string, error)
	// UserID returns the numeric id of the current user.
	UserID() int
}

type osEnvironment struct{}

func (osEnvironment) Getenv(name string) string { return os.Getenv(name) }
func (osEnvironment) HomeDir() (string, error)  { return os.UserHomeDir() }
func (osEnvironment) UserID() int               { return os.Getuid() }

// OSEnvironment returns an Environment backed by the live process
// environment.
func OSEnvironment() Environment { return osEnvironment{} }

type mapEnvironment struct {
	vars map[string]string
	home string
	uid  int
}

func (e mapEnvironment) Getenv(name string) string { return e.vars[name] }

func (e mapEnvironment) HomeDir() (string, error) {
	if e.home == "" {
		return "", errors.New("home directory not set")
	}
	return e.home, nil
}

func (e mapEnvironment) UserID() int { return e.uid }

// MapEnvironment returns a fixed Environment built from vars, home and uid.
// Variables absent from vars read as unset.
func MapEnvironment(vars map[string]string, home string, uid int) Environment {
	return mapEnvironment{vars: vars, home: home, uid: uid}
}
