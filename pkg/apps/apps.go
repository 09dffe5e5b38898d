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

// Package apps discovers installed GUI applications across the packaging
// systems present on a Linux host and reconciles them into a single catalog.
package apps

// Origin identifies the packaging system an entry was discovered from.
type Origin string

const (
	OriginDesktop Origin = "desktop"
	OriginFlatpak Origin = "flatpak"
	OriginSnap    Origin = "snap"
)

// Entry is a single launchable application. ID is the identifier usable for
// launching (desktop entry stem, Flatpak app ID or Snap package name); Name
// is the human-readable display name, which may equal ID when a source has
// nothing richer to offer.
type Entry struct {
	ID     string
	Name   string
	Origin Origin
}

// Mapping is one source's contribution: launcher identifier to display name.
type Mapping map[string]string

// Catalog is the merged, request-scoped namespace of all discoverable
// applications, keyed by launcher identifier.
type Catalog map[string]Entry

// Merge combines the three source mappings into a catalog. Later sources
// overwrite earlier ones on identifier collision, so precedence is
// Desktop > Snap > Flatpak. Desktop metadata is the richest and closest to
// what the user sees in a menu, which is why it wins naming conflicts.
func Merge(flatpaks, snaps, desktops Mapping) Catalog {
	catalog := make(Catalog, len(flatpaks)+len(snaps)+len(desktops))
	for id, name := range flatpaks {
		catalog[id] = Entry{ID: id, Name: name, Origin: OriginFlatpak}
	}
	for id, name := range snaps {
		catalog[id] = Entry{ID: id, Name: name, Origin: OriginSnap}
	}
	for id, name := range desktops {
		catalog[id] = Entry{ID: id, Name: name, Origin: OriginDesktop}
	}
	return catalog
}
