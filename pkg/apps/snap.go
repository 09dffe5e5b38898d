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
	"strings"
	"time"

	"github.com/ApplaunchProject/applaunch-core/pkg/helpers"
	"github.com/rs/zerolog/log"
)

// SnapReader collects installed snaps by invoking the snap CLI. Snap list
// output carries no display name, so the package name is used for both
// sides of the mapping. Same degrade-to-empty discipline as FlatpakReader.
type SnapReader struct {
	executor helpers.CommandExecutor
	lookPath helpers.LookPathFunc
	timeout  time.Duration
}

func NewSnapReader(
	executor helpers.CommandExecutor,
	lookPath helpers.LookPathFunc,
	timeout time.Duration,
) *SnapReader {
	return &SnapReader{executor: executor, lookPath: lookPath, timeout: timeout}
}

// Read returns {name: name} for every installed snap.
func (r *SnapReader) Read(ctx context.Context) Mapping {
	if _, err := r.lookPath("snap"); err != nil {
		log.Debug().Msg("snap not found in PATH, skipping")
		return Mapping{}
	}

	listCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.executor.Output(listCtx, "snap", "list", "--color=never")
	if err != nil {
		log.Warn().Err(err).Msg("snap list failed")
		return Mapping{}
	}

	return parseSnapList(string(out))
}

// parseSnapList parses `snap list` output, skipping the header row. The
// first whitespace-delimited column is the package name.
func parseSnapList(out string) Mapping {
	entries := make(Mapping)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return entries
	}
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		entries[fields[0]] = fields[0]
	}
	return entries
}
