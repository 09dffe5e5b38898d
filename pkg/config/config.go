// Applaunch Core
// Copyright (c) 2025 The Applaunch Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Applaunch Core.
//
// Applaunch Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Applaunch Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Applaunch Core.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ApplaunchProject/applaunch-core/pkg/helpers/syncutil"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "APPLAUNCH_CFG"
)

type Values struct {
	Launch       Launch `toml:"launch,omitempty"`
	ConfigSchema int    `toml:"config_schema"`
	DebugLogging bool   `toml:"debug_logging"`
}

type Launch struct {
	ExtraDesktopDirs   []string `toml:"extra_desktop_dirs,omitempty,multiline"`
	CommandTimeout     int      `toml:"command_timeout,omitempty"`
	AutoMatchThreshold int      `toml:"auto_match_threshold,omitempty"`
	MaxSuggestions     int      `toml:"max_suggestions,omitempty"`
	MaxListing         int      `toml:"max_listing,omitempty"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Launch: Launch{
		CommandTimeout:     5,
		AutoMatchThreshold: 80,
		MaxSuggestions:     5,
		MaxListing:         15,
	},
}

type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		mu:       syncutil.RWMutex{},
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	if _, err := os.Stat(c.cfgPath); err != nil {
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	// This ensures fields not present in the file retain their default values.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	c.vals = newVals

	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	// set current schema version
	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// ExtraDesktopDirs returns additional directories to scan for desktop
// entries, on top of the standard system and user locations.
func (c *Instance) ExtraDesktopDirs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	dirs := make([]string, len(c.vals.Launch.ExtraDesktopDirs))
	copy(dirs, c.vals.Launch.ExtraDesktopDirs)
	return dirs
}

// CommandTimeout returns the timeout applied to every external packaging
// tool invocation.
func (c *Instance) CommandTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Launch.CommandTimeout <= 0 {
		return CommandTimeout
	}
	return time.Duration(c.vals.Launch.CommandTimeout) * time.Second
}

// AutoMatchThreshold returns the minimum fuzzy score (0-100) at which the
// top candidate is accepted without user disambiguation.
func (c *Instance) AutoMatchThreshold() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Launch.AutoMatchThreshold <= 0 {
		return BaseDefaults.Launch.AutoMatchThreshold
	}
	return c.vals.Launch.AutoMatchThreshold
}

func (c *Instance) MaxSuggestions() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Launch.MaxSuggestions <= 0 {
		return BaseDefaults.Launch.MaxSuggestions
	}
	return c.vals.Launch.MaxSuggestions
}

func (c *Instance) MaxListing() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Launch.MaxListing <= 0 {
		return BaseDefaults.Launch.MaxListing
	}
	return c.vals.Launch.MaxListing
}
