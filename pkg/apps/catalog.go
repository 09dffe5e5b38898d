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

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// CatalogBuilder runs the three source readers and reconciles their
// contributions. A fresh catalog is built on every call; nothing is cached
// between requests.
type CatalogBuilder struct {
	desktop *DesktopReader
	flatpak *FlatpakReader
	snap    *SnapReader
}

func NewCatalogBuilder(
	desktop *DesktopReader,
	flatpak *FlatpakReader,
	snap *SnapReader,
) *CatalogBuilder {
	return &CatalogBuilder{desktop: desktop, flatpak: flatpak, snap: snap}
}

// Build runs the readers concurrently, waits for all three, and merges them
// with Desktop > Snap > Flatpak precedence. Readers are best-effort and never
// fail the build; a missing packaging system just contributes zero entries.
func (b *CatalogBuilder) Build(ctx context.Context) Catalog {
	var desktops, flatpaks, snaps Mapping

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		desktops = b.desktop.Read(gCtx)
		return nil
	})
	g.Go(func() error {
		flatpaks = b.flatpak.Read(gCtx)
		return nil
	})
	g.Go(func() error {
		snaps = b.snap.Read(gCtx)
		return nil
	})
	_ = g.Wait()

	catalog := Merge(flatpaks, snaps, desktops)
	log.Debug().Msgf(
		"built catalog: %d entries (%d desktop, %d flatpak, %d snap)",
		len(catalog), len(desktops), len(flatpaks), len(snaps),
	)
	return catalog
}
