// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/homeshelf/internal/config"
	"github.com/tomtom215/homeshelf/internal/logging"
	"github.com/tomtom215/homeshelf/internal/metrics"
	"github.com/tomtom215/homeshelf/internal/models"
)

// DefaultReloadDebounce absorbs the burst of write events editors produce
// when saving a file.
const DefaultReloadDebounce = 500 * time.Millisecond

// SectionStore receives reloaded section profiles.
// Implemented by *sections.Store.
type SectionStore interface {
	Replace(profiles []models.SectionProfile)
	Len() int
}

// ConfigLoader loads configuration from path.
type ConfigLoader func(path string) (*config.Config, error)

// FileWatcher starts watching path. Matches config.WatchConfigFile.
type FileWatcher func(path string, onChange func(), onError func(error)) (stop func() error, err error)

// ConfigWatchConfig configures a ConfigWatchService.
type ConfigWatchConfig struct {
	// Path of the YAML file to watch. Empty disables the service.
	Path string

	// Debounce delays a reload until writes settle.
	// Default: DefaultReloadDebounce
	Debounce time.Duration

	// Load defaults to config.LoadFile.
	Load ConfigLoader

	// Watch defaults to config.WatchConfigFile.
	Watch FileWatcher

	// OnReload runs after a successful reload, for example to trigger
	// re-registration.
	OnReload func(cfg *config.Config)
}

// ConfigWatchService reloads section profiles when the config file
// changes. A reload that fails to load or validate keeps the current
// profiles.
type ConfigWatchService struct {
	cfg    ConfigWatchConfig
	store  SectionStore
	events chan struct{}
	name   string
}

// NewConfigWatchService creates the service.
func NewConfigWatchService(store SectionStore, cfg ConfigWatchConfig) *ConfigWatchService {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultReloadDebounce
	}
	if cfg.Load == nil {
		cfg.Load = config.LoadFile
	}
	if cfg.Watch == nil {
		cfg.Watch = config.WatchConfigFile
	}
	return &ConfigWatchService{
		cfg:    cfg,
		store:  store,
		events: make(chan struct{}, 1),
		name:   "config-watcher",
	}
}

// Serve implements suture.Service.
func (s *ConfigWatchService) Serve(ctx context.Context) error {
	logger := logging.WithComponent(s.name)
	if s.cfg.Path == "" {
		logger.Info().Msg("No config file in use, hot reload disabled")
		return suture.ErrDoNotRestart
	}

	stop, err := s.cfg.Watch(s.cfg.Path, s.notify, func(err error) {
		logger.Warn().Err(err).Str("path", s.cfg.Path).Msg("Config watcher error")
	})
	if err != nil {
		return fmt.Errorf("watch config file %s: %w", s.cfg.Path, err)
	}
	defer func() {
		if err := stop(); err != nil {
			logger.Debug().Err(err).Msg("Stopping config watcher")
		}
	}()

	logger.Info().Str("path", s.cfg.Path).Msg("Watching config file for section changes")

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case <-s.events:
			if timer == nil {
				timer = time.NewTimer(s.cfg.Debounce)
			} else {
				timer.Reset(s.cfg.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			s.Reload()
		}
	}
}

// notify is the watcher callback. It never blocks.
func (s *ConfigWatchService) notify() {
	select {
	case s.events <- struct{}{}:
	default:
	}
}

// Reload loads the file once and swaps the section store snapshot.
// It reports whether the new configuration was applied.
func (s *ConfigWatchService) Reload() bool {
	logger := logging.WithComponent(s.name)
	cfg, err := s.cfg.Load(s.cfg.Path)
	if err != nil {
		logger.Error().Err(err).Str("path", s.cfg.Path).Msg("Config reload failed, keeping current sections")
		metrics.ConfigReloads.WithLabelValues("error").Inc()
		return false
	}

	s.store.Replace(cfg.Profiles())
	metrics.SectionsConfigured.Set(float64(s.store.Len()))
	metrics.ConfigReloads.WithLabelValues("ok").Inc()
	logging.SetLevelString(cfg.Logging.Level)

	logger.Info().Int("sections", s.store.Len()).Msg("Configuration reloaded")

	if s.cfg.OnReload != nil {
		s.cfg.OnReload(cfg)
	}
	return true
}

// String implements fmt.Stringer for logging.
func (s *ConfigWatchService) String() string {
	return s.name
}
