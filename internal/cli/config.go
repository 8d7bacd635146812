// Copyright (c) 2025 Basedir
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cli

import (
	"github.com/lengau/basedir/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var appScope string

// configCmd shows or changes the CLI settings.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI settings",
	Long: `The config command displays the current CLI settings. With --app it sets the
application scope: the directory name ensure and find place in front of their
sub-path arguments. An empty value removes the scope.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("app") {
			c.App = appScope
			if err := config.Save(c); err != nil {
				return err
			}
		}

		if c.App == "" {
			pterm.Println("No application scope configured; ensure and find use raw sub-paths.")
			return nil
		}
		pterm.Printf("Application scope: %s\n", c.App)
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&appScope, "app", "", "Application directory to scope ensure/find sub-paths under")
	rootCmd.AddCommand(configCmd)
}
