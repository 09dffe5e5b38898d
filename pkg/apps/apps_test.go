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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("combines_all_sources", func(t *testing.T) {
		t.Parallel()

		catalog := Merge(
			Mapping{"org.gimp.GIMP": "GIMP"},
			Mapping{"spotify": "spotify"},
			Mapping{"firefox": "Firefox"},
		)

		require.Len(t, catalog, 3)
		assert.Equal(t, Entry{ID: "org.gimp.GIMP", Name: "GIMP", Origin: OriginFlatpak}, catalog["org.gimp.GIMP"])
		assert.Equal(t, Entry{ID: "spotify", Name: "spotify", Origin: OriginSnap}, catalog["spotify"])
		assert.Equal(t, Entry{ID: "firefox", Name: "Firefox", Origin: OriginDesktop}, catalog["firefox"])
	})

	t.Run("desktop_wins_collisions", func(t *testing.T) {
		t.Parallel()

		catalog := Merge(
			Mapping{"firefox": "Firefox (flatpak)"},
			Mapping{"firefox": "firefox"},
			Mapping{"firefox": "Firefox Web Browser"},
		)

		require.Len(t, catalog, 1)
		assert.Equal(t, "Firefox Web Browser", catalog["firefox"].Name)
		assert.Equal(t, OriginDesktop, catalog["firefox"].Origin)
	})

	t.Run("snap_wins_over_flatpak", func(t *testing.T) {
		t.Parallel()

		catalog := Merge(
			Mapping{"spotify": "Spotify (flatpak)"},
			Mapping{"spotify": "spotify"},
			Mapping{},
		)

		require.Len(t, catalog, 1)
		assert.Equal(t, OriginSnap, catalog["spotify"].Origin)
	})

	t.Run("merge_is_deterministic", func(t *testing.T) {
		t.Parallel()

		flatpaks := Mapping{"a": "A", "b": "B"}
		snaps := Mapping{"b": "b", "c": "c"}
		desktops := Mapping{"c": "C", "d": "D"}

		first := Merge(flatpaks, snaps, desktops)
		second := Merge(flatpaks, snaps, desktops)

		assert.Equal(t, first, second)
		assert.Equal(t, OriginDesktop, first["c"].Origin)
		assert.Equal(t, OriginSnap, first["b"].Origin)
	})

	t.Run("empty_sources_yield_empty_catalog", func(t *testing.T) {
		t.Parallel()

		catalog := Merge(Mapping{}, Mapping{}, Mapping{})

		assert.Empty(t, catalog)
	})
}
