// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

/*
Package supervisor runs the long-lived Homeshelf services under a suture v4
supervisor tree.

# Layout

	RootSupervisor ("homeshelf")
	├── SectionsSupervisor ("sections-layer")
	│   ├── RegistrationService (if registration.enabled)
	│   └── ConfigWatchService (when a config file is in use)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures on its own, so a crash loop in section
registration leaves the HTTP server alone.

Supervisor events (start, stop, failure, backoff) go through sutureslog
into the zerolog-backed slog handler from the logging package.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), 10*time.Second))
	tree.AddSectionService(services.NewRegistrationService(registrar))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

See the services subpackage for the service implementations.
*/
package supervisor
