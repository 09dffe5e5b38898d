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
	"testing"

	testhelpers "github.com/ApplaunchProject/applaunch-core/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesktopReader_Read(t *testing.T) {
	t.Parallel()

	t.Run("extracts_name_and_stem", func(t *testing.T) {
		t.Parallel()

		fs := testhelpers.NewMemoryFS()
		require.NoError(t, fs.WriteDesktopEntry("/usr/share/applications", "firefox", "Firefox Web Browser"))
		require.NoError(t, fs.WriteDesktopEntry("/usr/share/applications", "code", "Visual Studio Code"))

		reader := NewDesktopReaderWithDirs(fs.Fs, []string{"/usr/share/applications"})
		entries := reader.Read(context.Background())

		assert.Equal(t, Mapping{
			"firefox": "Firefox Web Browser",
			"code":    "Visual Studio Code",
		}, entries)
	})

	t.Run("skips_hidden_entries", func(t *testing.T) {
		t.Parallel()

		fs := testhelpers.NewMemoryFS()
		require.NoError(t, fs.WriteHiddenDesktopEntry("/usr/share/applications", "ghost", "Ghost App"))
		require.NoError(t, fs.WriteFile(
			"/usr/share/applications/phantom.desktop",
			[]byte("[Desktop Entry]\nName=Phantom\nHidden=true\n"),
		))
		require.NoError(t, fs.WriteDesktopEntry("/usr/share/applications", "firefox", "Firefox"))

		reader := NewDesktopReaderWithDirs(fs.Fs, []string{"/usr/share/applications"})
		entries := reader.Read(context.Background())

		assert.Equal(t, Mapping{"firefox": "Firefox"}, entries)
	})

	t.Run("skips_entries_without_name_line", func(t *testing.T) {
		t.Parallel()

		fs := testhelpers.NewMemoryFS()
		require.NoError(t, fs.WriteDesktopEntry("/usr/share/applications", "nameless", ""))

		reader := NewDesktopReaderWithDirs(fs.Fs, []string{"/usr/share/applications"})
		entries := reader.Read(context.Background())

		assert.Empty(t, entries)
	})

	t.Run("ignores_non_desktop_files", func(t *testing.T) {
		t.Parallel()

		fs := testhelpers.NewMemoryFS()
		require.NoError(t, fs.WriteFile("/usr/share/applications/readme.txt", []byte("Name=Not An App\n")))

		reader := NewDesktopReaderWithDirs(fs.Fs, []string{"/usr/share/applications"})
		entries := reader.Read(context.Background())

		assert.Empty(t, entries)
	})

	t.Run("missing_directory_contributes_nothing", func(t *testing.T) {
		t.Parallel()

		fs := testhelpers.NewMemoryFS()
		require.NoError(t, fs.WriteDesktopEntry("/usr/share/applications", "firefox", "Firefox"))

		reader := NewDesktopReaderWithDirs(fs.Fs, []string{
			"/usr/share/applications",
			"/does/not/exist",
		})
		entries := reader.Read(context.Background())

		assert.Equal(t, Mapping{"firefox": "Firefox"}, entries)
	})

	t.Run("later_directories_override_earlier", func(t *testing.T) {
		t.Parallel()

		fs := testhelpers.NewMemoryFS()
		require.NoError(t, fs.WriteDesktopEntry("/usr/share/applications", "firefox", "Firefox (system)"))
		require.NoError(t, fs.WriteDesktopEntry("/home/user/.local/share/applications", "firefox", "Firefox (user)"))

		reader := NewDesktopReaderWithDirs(fs.Fs, []string{
			"/usr/share/applications",
			"/home/user/.local/share/applications",
		})
		entries := reader.Read(context.Background())

		assert.Equal(t, "Firefox (user)", entries["firefox"])
	})

	t.Run("tolerates_invalid_encoding", func(t *testing.T) {
		t.Parallel()

		fs := testhelpers.NewMemoryFS()
		content := append([]byte("[Desktop Entry]\n"), 0xff, 0xfe, '\n')
		content = append(content, []byte("Name=Mangled App\n")...)
		require.NoError(t, fs.WriteFile("/usr/share/applications/mangled.desktop", content))

		reader := NewDesktopReaderWithDirs(fs.Fs, []string{"/usr/share/applications"})
		entries := reader.Read(context.Background())

		assert.Equal(t, Mapping{"mangled": "Mangled App"}, entries)
	})
}
