// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

/*
Package services provides suture.Service wrappers for Homeshelf components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts ListenAndServe to Serve

Section Registration (RegistrationService):
  - Registers all sections once at startup, after the registrar's delay
  - Re-registers on Trigger, coalescing bursts into one run

Config Watcher (ConfigWatchService):
  - Watches the YAML config file through the Koanf file provider
  - Debounces write bursts, reloads and validates the file
  - Swaps the section store snapshot and calls OnReload on success
  - Keeps the current sections when the new file is invalid

A ConfigWatchService with an empty path returns suture.ErrDoNotRestart so
the supervisor drops it instead of restarting it.
*/
package services
