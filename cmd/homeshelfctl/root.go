// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

const (
	defaultServerURL = "http://localhost:8787"
	serverURLEnvVar  = "HOMESHELF_URL"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	server  string
	timeout time.Duration
	json    bool
}

func (o *globalOptions) client() *apiClient {
	return newAPIClient(o.server, o.timeout)
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "homeshelfctl",
		Short:         "Inspect and manage a Homeshelf server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	server := os.Getenv(serverURLEnvVar)
	if server == "" {
		server = defaultServerURL
	}

	rootCmd.PersistentFlags().StringVarP(&opts.server, "server", "s", server, "Homeshelf base URL (env "+serverURLEnvVar+")")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print raw JSON instead of tables")

	rootCmd.AddCommand(newSectionsCommand(opts))
	rootCmd.AddCommand(newHealthCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}
