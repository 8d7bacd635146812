// Copyright (c) 2025 Basedir
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cli

import (
	"os"
	"strings"

	"github.com/lengau/basedir"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// pathsCmd displays the base directories resolved from the current
// environment.
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the resolved base directories",
	Long: `The paths command resolves the XDG base directories from the current environment
and displays them, one row per category. List categories (data dirs, config dirs)
are shown colon-separated in priority order.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		locs, err := basedir.Default()
		if err != nil {
			return err
		}

		rows := pterm.TableData{
			{"Category", "Location"},
			{"home", locs.Home},
			{"data home", locs.DataHome},
			{"config home", locs.ConfigHome},
			{"state home", locs.StateHome},
			{"cache home", locs.CacheHome},
			{"data dirs", strings.Join(locs.DataDirs, ":")},
			{"config dirs", strings.Join(locs.ConfigDirs, ":")},
			{"runtime", locs.RuntimeDir},
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}

		if os.Getenv("XDG_RUNTIME_DIR") == "" {
			pterm.Println()
			pterm.Println("⚠️  XDG_RUNTIME_DIR is unset; the runtime directory shown is the /tmp")
			pterm.Println("   fallback and carries no ownership or permission guarantees.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
