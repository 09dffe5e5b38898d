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

package helpers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ApplaunchProject/applaunch-core/pkg/config"
	"github.com/adrg/xdg"
)

// ConfigDir returns the directory where the user config file lives.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

// DataDir returns the directory for persistent application data.
func DataDir() string {
	return filepath.Join(xdg.DataHome, config.AppName)
}

// TempDir returns the directory used for logs and other transient files.
func TempDir() string {
	return filepath.Join(os.TempDir(), config.AppName)
}

// EnsureDirectories creates the standard application directories if missing.
func EnsureDirectories() error {
	for _, dir := range []string{ConfigDir(), DataDir(), TempDir()} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
