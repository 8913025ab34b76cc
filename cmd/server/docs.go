// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

// @title Homeshelf API
// @version 1.0
// @description Curated home-screen sections for the Jellyfin Home Screen Sections plugin.
// @description
// @description ## Results
// @description
// @description The plugin posts `{"UserId","AdditionalData"}` to `/sections/results` for every
// @description section it renders. The response is always 200 with a QueryResult of at most 20
// @description items; unknown sections, unknown users and Jellyfin failures yield an empty list.
// @description
// @description ## Rate Limiting
// @description
// @description Operator endpoints are limited per IP address (default 300 requests per minute).
// @description Results endpoints are not limited because every request arrives from the Jellyfin server.
// @description
// @description ## Error Responses
// @description
// @description Operator endpoint errors follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "section not found: recent"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-01T12:00:00Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/homeshelf/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Sections
// @tag.description Section results for the home-screen plugin and section inspection for operators
//
// @tag.name Health
// @tag.description Liveness and readiness checks

package main
