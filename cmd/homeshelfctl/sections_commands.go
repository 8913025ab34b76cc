// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/homeshelf/internal/homescreen"
	"github.com/tomtom215/homeshelf/internal/models"
)

func newSectionsCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sections",
		Aliases: []string{"section"},
		Short:   "Inspect configured sections",
	}

	cmd.AddCommand(newSectionsListCommand(opts))
	cmd.AddCommand(newSectionsShowCommand(opts))
	cmd.AddCommand(newSectionsDescriptorCommand(opts))
	cmd.AddCommand(newSectionsPreviewCommand(opts))
	cmd.AddCommand(newSectionsRegisterCommand(opts))

	return cmd
}

func newSectionsListCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var profiles []models.SectionProfile
			if err := opts.client().getData(cmd.Context(), apiPrefix+"/sections", &profiles); err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd, profiles)
			}
			if len(profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sections configured")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderProfiles(profiles))
			return nil
		},
	}
}

func newSectionsShowCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <section-id>",
		Short: "Show one section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var profile models.SectionProfile
			if err := opts.client().getData(cmd.Context(), sectionPath(args[0]), &profile); err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd, profile)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderKeyValues([][2]string{
				{"ID", profile.ID},
				{"Display name", profile.DisplayName},
				{"Kinds", kindsLabel(&profile)},
				{"Sort", sortLabel(&profile)},
				{"Excluded libraries", strings.Join(profile.ExcludedLibraryNames, ", ")},
				{"Route", profile.Route},
			}))
			return nil
		},
	}
}

func newSectionsDescriptorCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "descriptor <section-id>",
		Short: "Show the payload sent to the home-screen plugin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var d models.SectionDescriptor
			if err := opts.client().getData(cmd.Context(), sectionPath(args[0])+"/descriptor", &d); err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd, d)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderKeyValues([][2]string{
				{"id", d.ID},
				{"displayText", d.DisplayText},
				{"limit", fmt.Sprint(d.Limit)},
				{"route", d.Route},
				{"additionalData", d.AdditionalData},
				{"resultsEndpoint", d.ResultsEndpoint},
			}))
			return nil
		},
	}
}

func newSectionsPreviewCommand(opts *globalOptions) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "preview <section-id>",
		Short: "Show the items a user would see in a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID = strings.TrimSpace(userID)
			if userID == "" {
				return fmt.Errorf("--user is required")
			}

			result, err := opts.client().results(cmd.Context(), args[0], userID)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			if len(result.Items) == 0 {
				fmt.Fprintln(out, "No items (unknown section or user, or nothing matches)")
				return nil
			}
			fmt.Fprintln(out, renderItems(result.Items))
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "Jellyfin user ID")
	return cmd
}

func newSectionsRegisterCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Register every section with the home-screen plugin now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var report homescreen.RegistrationReport
			if err := opts.client().postData(cmd.Context(), apiPrefix+"/sections/register", &report); err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Registered %d of %d sections\n", report.Registered, report.Total)
			if len(report.Failed) > 0 {
				fmt.Fprintf(out, "Failed: %s\n", strings.Join(report.Failed, ", "))
				return fmt.Errorf("%d sections failed to register", len(report.Failed))
			}
			return nil
		},
	}
}

func sectionPath(id string) string {
	return apiPrefix + "/sections/" + url.PathEscape(id)
}
