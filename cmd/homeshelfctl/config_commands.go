// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tomtom215/homeshelf/internal/config"
)

func newConfigCommand(opts *globalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(opts))

	return configCmd
}

func newConfigValidateCommand(opts *globalOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file without starting the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(path)
			if target == "" {
				target = config.FindConfigFile()
			}

			cfg, err := config.LoadFile(target)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			profiles := cfg.Profiles()
			if opts.json {
				return writeJSON(cmd, profiles)
			}

			out := cmd.OutOrStdout()
			if target == "" {
				fmt.Fprintln(out, "No config file found; defaults and environment were used")
			} else {
				fmt.Fprintf(out, "Config path: %s\n", target)
			}
			fmt.Fprintf(out, "Jellyfin: %s (api %s)\n", cfg.Jellyfin.URL, cfg.Jellyfin.APIVersion)
			fmt.Fprintf(out, "Listen: %s\n", cfg.Server.Addr())
			fmt.Fprintf(out, "Fetch limit: %s files\n", humanize.Comma(int64(cfg.Filter.FetchLimit)))
			if len(profiles) > 0 {
				fmt.Fprintln(out, renderProfiles(profiles))
			} else {
				fmt.Fprintln(out, "No sections defined")
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "Configuration file path (default: search "+config.ConfigPathEnvVar+" and standard locations)")
	return cmd
}
