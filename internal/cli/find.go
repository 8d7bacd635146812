// Copyright (c) 2025 Basedir
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cli

import (
	"fmt"
	"iter"

	"github.com/lengau/basedir"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var findFirst bool

// findCmd lists existing occurrences of a resource across the category's
// search path.
var findCmd = &cobra.Command{
	Use:   "find <data|config> <subpath>...",
	Short: "List existing occurrences of a resource across the search path",
	Long: `The find command looks for the given sub-path under the per-user base directory
and each system directory of the category, printing every location where it
exists, highest priority first.

When an application scope is configured (see "basedir config"), sub-paths are
looked up under that application's directory.`,
	Args: cobra.MinimumNArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		locs, err := basedir.Default()
		if err != nil {
			return err
		}

		sub := scopedSubPaths(args[1:])
		var seq iter.Seq2[string, error]
		switch args[0] {
		case "data":
			seq = locs.FindDataResource(sub...)
		case "config":
			seq = locs.FindConfigResource(sub...)
		default:
			return fmt.Errorf("unknown category %q (want data or config)", args[0])
		}

		found := 0
		for path, err := range seq {
			if err != nil {
				return err
			}
			pterm.Println(path)
			found++
			if findFirst {
				break
			}
		}
		if found == 0 {
			pterm.Println("⚠️  No matching resource found")
		}
		return nil
	},
}

func init() {
	findCmd.Flags().BoolVar(&findFirst, "first", false, "Stop after the highest-priority match")
	rootCmd.AddCommand(findCmd)
}
