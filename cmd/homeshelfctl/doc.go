// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

/*
Command homeshelfctl inspects and drives a running Homeshelf server.

	homeshelfctl sections list
	homeshelfctl sections show recent-movies
	homeshelfctl sections descriptor recent-movies
	homeshelfctl sections preview recent-movies --user 0f6e0f7a1b2c4d3e8f9a0b1c2d3e4f50
	homeshelfctl sections register
	homeshelfctl health
	homeshelfctl config validate --config /etc/homeshelf/config.yaml

The server address comes from --server or HOMESHELF_URL and defaults to
http://localhost:8787. Every command that talks to the server accepts
--json to print the raw payload instead of a table.

config validate works offline: it loads the file with the same layering
the server uses (defaults, file, environment) and reports the first
validation error.
*/
package main
