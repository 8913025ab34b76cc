// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type liveness struct {
	Alive   bool    `json:"alive"`
	Version string  `json:"version"`
	Uptime  float64 `json:"uptime"`
}

type readiness struct {
	Ready             bool `json:"ready"`
	JellyfinConnected bool `json:"jellyfin_connected"`
	Sections          int  `json:"sections"`
}

type healthReport struct {
	Live  liveness  `json:"live"`
	Ready readiness `json:"ready"`
}

var errNotReady = errors.New("homeshelf is not ready")

func newHealthCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server liveness and readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()

			var report healthReport
			if err := client.getData(cmd.Context(), apiPrefix+"/health/live", &report.Live); err != nil {
				return err
			}

			// A 503 still carries the readiness data.
			body, _, err := client.do(cmd.Context(), http.MethodGet, apiPrefix+"/health/ready")
			if err != nil {
				return err
			}
			var env envelope
			if err := json.Unmarshal(body, &env); err != nil {
				return fmt.Errorf("decode readiness: %w", err)
			}
			if len(env.Data) > 0 {
				if err := json.Unmarshal(env.Data, &report.Ready); err != nil {
					return fmt.Errorf("decode readiness: %w", err)
				}
			}

			if opts.json {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else {
				uptime := time.Duration(report.Live.Uptime * float64(time.Second)).Truncate(time.Second)
				fmt.Fprintln(cmd.OutOrStdout(), renderKeyValues([][2]string{
					{"Version", report.Live.Version},
					{"Uptime", uptime.String()},
					{"Ready", strconv.FormatBool(report.Ready.Ready)},
					{"Jellyfin", connectedLabel(report.Ready.JellyfinConnected)},
					{"Sections", strconv.Itoa(report.Ready.Sections)},
				}))
			}

			if !report.Ready.Ready {
				return errNotReady
			}
			return nil
		},
	}
}

func connectedLabel(ok bool) string {
	if ok {
		return "connected"
	}
	return "unreachable"
}
