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
	"time"

	testhelpers "github.com/ApplaunchProject/applaunch-core/pkg/testing/helpers"
	"github.com/ApplaunchProject/applaunch-core/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("merges_all_sources_with_desktop_precedence", func(t *testing.T) {
		t.Parallel()

		fs := testhelpers.NewMemoryFS()
		require.NoError(t, fs.WriteDesktopEntry("/usr/share/applications", "firefox", "Firefox Web Browser"))

		mockExec := &mocks.MockCommandExecutor{}
		mockExec.On("Output", mock.Anything, "flatpak", mock.Anything).
			Return([]byte("firefox\tFirefox (flatpak)\norg.gimp.GIMP\tGIMP\n"), nil)
		mockExec.On("Output", mock.Anything, "snap", mock.Anything).
			Return([]byte("Name Version Rev Tracking Publisher Notes\nspotify 1.0 75 stable spotify -\n"), nil)

		builder := NewCatalogBuilder(
			NewDesktopReaderWithDirs(fs.Fs, []string{"/usr/share/applications"}),
			NewFlatpakReader(mockExec, lookPathFound, time.Second),
			NewSnapReader(mockExec, lookPathFound, time.Second),
		)
		catalog := builder.Build(context.Background())

		require.Len(t, catalog, 3)
		assert.Equal(t, "Firefox Web Browser", catalog["firefox"].Name)
		assert.Equal(t, OriginDesktop, catalog["firefox"].Origin)
		assert.Equal(t, OriginFlatpak, catalog["org.gimp.GIMP"].Origin)
		assert.Equal(t, OriginSnap, catalog["spotify"].Origin)
	})

	t.Run("missing_packaging_tools_do_not_block_discovery", func(t *testing.T) {
		t.Parallel()

		fs := testhelpers.NewMemoryFS()
		require.NoError(t, fs.WriteDesktopEntry("/usr/share/applications", "code", "Visual Studio Code"))

		mockExec := &mocks.MockCommandExecutor{}

		builder := NewCatalogBuilder(
			NewDesktopReaderWithDirs(fs.Fs, []string{"/usr/share/applications"}),
			NewFlatpakReader(mockExec, lookPathMissing, time.Second),
			NewSnapReader(mockExec, lookPathMissing, time.Second),
		)
		catalog := builder.Build(context.Background())

		require.Len(t, catalog, 1)
		assert.Equal(t, "Visual Studio Code", catalog["code"].Name)
		mockExec.AssertNotCalled(t, "Output", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rebuilds_fresh_on_every_call", func(t *testing.T) {
		t.Parallel()

		fs := testhelpers.NewMemoryFS()
		mockExec := &mocks.MockCommandExecutor{}

		builder := NewCatalogBuilder(
			NewDesktopReaderWithDirs(fs.Fs, []string{"/usr/share/applications"}),
			NewFlatpakReader(mockExec, lookPathMissing, time.Second),
			NewSnapReader(mockExec, lookPathMissing, time.Second),
		)

		assert.Empty(t, builder.Build(context.Background()))

		require.NoError(t, fs.WriteDesktopEntry("/usr/share/applications", "firefox", "Firefox"))

		assert.Len(t, builder.Build(context.Background()), 1)
	})
}
