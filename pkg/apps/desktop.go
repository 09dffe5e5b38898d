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

package apps

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const desktopExt = ".desktop"

// DesktopReader collects applications from freedesktop.org desktop entry
// files. The filesystem is injected so tests can run against an in-memory fs.
type DesktopReader struct {
	fs   afero.Fs
	dirs []string
}

// NewDesktopReader returns a reader over the standard system and per-user
// application directories plus any extra configured directories.
func NewDesktopReader(fs afero.Fs, extraDirs []string) *DesktopReader {
	dirs := []string{
		"/usr/share/applications",
		"/usr/local/share/applications",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "applications"))
	}
	dirs = append(dirs, extraDirs...)
	return &DesktopReader{fs: fs, dirs: dirs}
}

// NewDesktopReaderWithDirs returns a reader over an explicit directory list.
func NewDesktopReaderWithDirs(fs afero.Fs, dirs []string) *DesktopReader {
	return &DesktopReader{fs: fs, dirs: dirs}
}

// Read scans every configured directory for desktop entries and returns a
// mapping of file stem to display name. Missing directories contribute
// nothing; unreadable or hidden entries are skipped.
func (r *DesktopReader) Read(ctx context.Context) Mapping {
	entries := make(Mapping)
	for _, dir := range r.dirs {
		if ctx.Err() != nil {
			return entries
		}

		infos, err := afero.ReadDir(r.fs, dir)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Warn().Err(err).Msgf("failed to scan desktop entry directory: %s", dir)
			}
			continue
		}

		for _, info := range infos {
			if info.IsDir() || !strings.HasSuffix(info.Name(), desktopExt) {
				continue
			}

			path := filepath.Join(dir, info.Name())
			id, name, ok := r.parseEntry(path)
			if !ok {
				continue
			}
			entries[id] = name
		}
	}
	return entries
}

// parseEntry extracts the launcher id and display name from a single desktop
// file. Entries marked as hidden and entries without a Name line are skipped.
// Content is treated as raw bytes so invalid encodings can't fail the scan.
func (r *DesktopReader) parseEntry(path string) (id, name string, ok bool) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		log.Warn().Err(err).Msgf("failed to read desktop entry: %s", path)
		return "", "", false
	}

	content := string(data)
	if strings.Contains(content, "NoDisplay=true") || strings.Contains(content, "Hidden=true") {
		return "", "", false
	}

	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, "Name=") {
			continue
		}
		displayName := strings.TrimSpace(strings.TrimPrefix(line, "Name="))
		if displayName == "" {
			continue
		}
		stem := strings.TrimSuffix(filepath.Base(path), desktopExt)
		return stem, displayName, true
	}

	return "", "", false
}
