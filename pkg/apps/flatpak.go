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

// FlatpakReader collects installed Flatpak applications by invoking the
// flatpak CLI. If the tool is missing or the command fails, the reader
// degrades to an empty contribution rather than reporting an error.
type FlatpakReader struct {
	executor helpers.CommandExecutor
	lookPath helpers.LookPathFunc
	timeout  time.Duration
}

func NewFlatpakReader(
	executor helpers.CommandExecutor,
	lookPath helpers.LookPathFunc,
	timeout time.Duration,
) *FlatpakReader {
	return &FlatpakReader{executor: executor, lookPath: lookPath, timeout: timeout}
}

// Read returns {app id: display name} for every installed Flatpak app.
func (r *FlatpakReader) Read(ctx context.Context) Mapping {
	if _, err := r.lookPath("flatpak"); err != nil {
		log.Debug().Msg("flatpak not found in PATH, skipping")
		return Mapping{}
	}

	listCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.executor.Output(listCtx, "flatpak", "list", "--app", "--columns=application,name")
	if err != nil {
		log.Warn().Err(err).Msg("flatpak list failed")
		return Mapping{}
	}

	return parseFlatpakList(string(out))
}

// parseFlatpakList parses the tab-separated two-column output of
// `flatpak list --columns=application,name`. Malformed rows are skipped.
func parseFlatpakList(out string) Mapping {
	entries := make(Mapping)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var fields []string
		for _, field := range strings.Split(line, "\t") {
			if trimmed := strings.TrimSpace(field); trimmed != "" {
				fields = append(fields, trimmed)
			}
		}
		if len(fields) >= 2 {
			entries[fields[0]] = fields[1]
		}
	}
	return entries
}
