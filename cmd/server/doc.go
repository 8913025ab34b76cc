// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

/*
Package main is the entry point for the Homeshelf server.

Homeshelf serves curated home-screen sections (recently added movies,
shows and albums, or any configured sort) to the Jellyfin Home Screen
Sections plugin. The plugin calls back into Homeshelf for each section it
renders, and Homeshelf answers with at most 20 items drawn from one
catalog query.

# Application Architecture

	RootSupervisor ("homeshelf")
	├── SectionsSupervisor ("sections-layer")
	│   ├── RegistrationService (registration.enabled)
	│   └── ConfigWatchService (config file in use)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Initialization order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Jellyfin client: rate limited, behind a gobreaker circuit breaker
 4. Catalog: route style detected from the server version
 5. Section store, filter engine, request adapter and registrar
 6. HTTP server: chi router with CORS, rate limiting and Prometheus
 7. Supervisor tree: suture v4

# Configuration

The minimum is a Jellyfin URL and API key:

	export JELLYFIN_URL=http://jellyfin:8096
	export JELLYFIN_API_KEY=your-api-key
	export PUBLIC_URL=http://homeshelf:8787
	./homeshelf

Sections are defined in config.yaml; see the config package.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to ten seconds and services that fail to stop
are reported before exit.
*/
package main
