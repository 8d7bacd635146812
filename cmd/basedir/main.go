// Package main is the entry point for the basedir CLI, a small inspection
// tool over the basedir library.
package main

import (
	"github.com/lengau/basedir/internal/cli"
)

func main() {
	cli.Execute()
}
