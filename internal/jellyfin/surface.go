// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package jellyfin

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/homeshelf/internal/models"
)

// Defaults for the Home Screen Sections plugin.
const (
	DefaultPluginName   = "Home Screen Sections"
	DefaultRegisterPath = "/HomeScreen/RegisterSection"
)

// HomeScreenSurface registers sections with the Home Screen Sections
// plugin over HTTP.
type HomeScreenSurface struct {
	api          API
	pluginName   string
	registerPath string
}

// NewHomeScreenSurface creates a surface. Empty arguments use the defaults.
func NewHomeScreenSurface(api API, pluginName, registerPath string) *HomeScreenSurface {
	if pluginName == "" {
		pluginName = DefaultPluginName
	}
	if registerPath == "" {
		registerPath = DefaultRegisterPath
	}
	if !strings.HasPrefix(registerPath, "/") {
		registerPath = "/" + registerPath
	}
	return &HomeScreenSurface{api: api, pluginName: pluginName, registerPath: registerPath}
}

// Available reports whether the plugin is installed and active.
func (s *HomeScreenSurface) Available(ctx context.Context) (bool, error) {
	plugins, err := s.api.GetPlugins(ctx)
	if err != nil {
		return false, fmt.Errorf("list plugins: %w", err)
	}
	for i := range plugins {
		if strings.EqualFold(plugins[i].Name, s.pluginName) && plugins[i].Active() {
			return true, nil
		}
	}
	return false, nil
}

// RegisterSection posts one descriptor to the plugin.
func (s *HomeScreenSurface) RegisterSection(ctx context.Context, descriptor models.SectionDescriptor) error {
	if err := s.api.PostJSON(ctx, s.registerPath, descriptor); err != nil {
		return fmt.Errorf("register section %s: %w", descriptor.ID, err)
	}
	return nil
}
