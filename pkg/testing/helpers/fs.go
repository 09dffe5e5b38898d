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

// Package helpers provides utilities for filesystem mocking in tests.
package helpers

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FSHelper provides utilities for filesystem mocking in tests.
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing.
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// WriteDesktopEntry writes a minimal desktop entry file to dir. An empty
// name produces an entry without a Name line.
func (h *FSHelper) WriteDesktopEntry(dir, stem, name string) error {
	content := "[Desktop Entry]\nType=Application\n"
	if name != "" {
		content += "Name=" + name + "\n"
	}
	content += "Exec=" + stem + "\n"
	return h.WriteFile(filepath.Join(dir, stem+".desktop"), []byte(content))
}

// WriteHiddenDesktopEntry writes a desktop entry marked NoDisplay=true.
func (h *FSHelper) WriteHiddenDesktopEntry(dir, stem, name string) error {
	content := "[Desktop Entry]\nType=Application\nName=" + name + "\nNoDisplay=true\n"
	return h.WriteFile(filepath.Join(dir, stem+".desktop"), []byte(content))
}

// WriteFile writes content to a file, creating parent directories.
func (h *FSHelper) WriteFile(path string, content []byte) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for file %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
