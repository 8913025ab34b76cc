// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

/*
Package config provides configuration loading for Homeshelf.

Configuration is layered with Koanf v2. Later layers override earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (config.yaml, config.yml, /etc/homeshelf/config.yaml
    or the path in CONFIG_PATH)
 3. Environment variables listed in envTransformFunc

# Sections

Section profiles can only be defined in the YAML file, because a list of
structured entries has no sensible environment encoding:

	sections:
	  - id: recent-movies
	    display_name: Recently Added Movies
	    include_movies: true
	    include_series: false
	    sort_by: DateCreated
	    sort_descending: true

Omitted include flags and sort fields take the defaults of
models.NewSectionProfile.

# Hot Reload

WatchConfigFile wraps the Koanf file provider watcher. The supervisor's
config watch service reloads the file and swaps the section store snapshot
when it changes.

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
	store := sections.NewStore(cfg.Profiles())
*/
package config
