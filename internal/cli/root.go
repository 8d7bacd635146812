// Copyright (c) 2025 Basedir
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cli provides the command-line interface for the basedir tool.
// It implements subcommands for inspecting the resolved XDG base directories
// and for creating or locating resources under them, using the Cobra CLI
// framework.
package cli

import (
	"fmt"
	"os"

	"github.com/lengau/basedir/internal/present"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "basedir",
	Short:         "Inspect and manage XDG base directories",
	Long:          `Basedir resolves the XDG base directories for the current user and provides commands to create or locate application resources under them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("basedir %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, present.Error(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}
