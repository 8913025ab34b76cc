// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

/*
Package api provides the Homeshelf HTTP API using the Chi router.

# Endpoints

The home-screen plugin calls one endpoint per rendered section:

	POST /api/v1/sections/results      {"UserId": "...", "AdditionalData": "<section id>"}
	GET  /api/v1/sections/{id}/results?userId=...

Both always answer 200 with a bare QueryResult body. Malformed requests and
upstream failures produce an empty result, never an error status, because
the plugin renders whatever it receives.

Operator endpoints use the standard APIResponse envelope:

	GET  /api/v1/sections                 configured section profiles
	GET  /api/v1/sections/{id}            one profile
	GET  /api/v1/sections/{id}/descriptor registration descriptor
	POST /api/v1/sections/register        re-run plugin registration
	GET  /api/v1/health/live              liveness probe
	GET  /api/v1/health/ready             readiness probe (Jellyfin reachable)
	GET  /metrics                         Prometheus metrics

# Middleware

Every route runs behind request ID propagation, chi Recoverer and go-chi/cors.
API routes add go-chi/httprate limiting, security headers and Prometheus
instrumentation.
*/
package api
