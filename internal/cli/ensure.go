// Copyright (c) 2025 Basedir
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cli

import (
	"fmt"

	"github.com/lengau/basedir"
	"github.com/lengau/basedir/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// ensureCmd creates a resource directory under one of the per-user base
// locations.
var ensureCmd = &cobra.Command{
	Use:   "ensure <data|config|state|cache> <subpath>...",
	Short: "Create a resource directory under a base location",
	Long: `The ensure command creates a subdirectory (including missing parents) under the
per-user base directory of the given category and prints the resulting path.
Creating a directory that already exists is not an error.

When an application scope is configured (see "basedir config"), sub-paths are
created under that application's directory.`,
	Args: cobra.MinimumNArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		locs, err := basedir.Default()
		if err != nil {
			return err
		}

		sub := scopedSubPaths(args[1:])
		var path string
		switch args[0] {
		case "data":
			path, err = locs.EnsureDataResource(sub...)
		case "config":
			path, err = locs.EnsureConfigResource(sub...)
		case "state":
			path, err = locs.EnsureStateResource(sub...)
		case "cache":
			path, err = locs.EnsureCacheResource(sub...)
		default:
			return fmt.Errorf("unknown category %q (want data, config, state or cache)", args[0])
		}
		if err != nil {
			return err
		}

		pterm.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ensureCmd)
}

// scopedSubPaths prepends the configured application scope, if any.
func scopedSubPaths(sub []string) []string {
	c, err := config.Load()
	if err != nil || c.App == "" {
		return sub
	}
	return append([]string{c.App}, sub...)
}
