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

// Package service wires the source readers, resolver and launch chain into
// the single caller-facing operation. Responses are human-readable text
// because the consumer is a language-driven agent, not a structured client.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ApplaunchProject/applaunch-core/pkg/apps"
	"github.com/ApplaunchProject/applaunch-core/pkg/apps/matcher"
	"github.com/ApplaunchProject/applaunch-core/pkg/apps/resolver"
	"github.com/ApplaunchProject/applaunch-core/pkg/config"
	"github.com/ApplaunchProject/applaunch-core/pkg/helpers"
	"github.com/ApplaunchProject/applaunch-core/pkg/launcher"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const noAppsHint = "No applications found. Try common names like 'firefox', 'code', 'nautilus'."

// Engine handles one resolution request at a time: discover, reconcile,
// resolve, launch. No state is shared between requests; the catalog is
// rebuilt fresh on every call.
type Engine struct {
	cfg     *config.Instance
	builder *apps.CatalogBuilder
	res     *resolver.Resolver
	chain   *launcher.Chain
}

// New builds an engine from its collaborators. The filesystem, executor and
// path lookup are injected so tests can run without touching the host.
func New(
	cfg *config.Instance,
	fs afero.Fs,
	executor helpers.CommandExecutor,
	lookPath helpers.LookPathFunc,
) *Engine {
	timeout := cfg.CommandTimeout()
	return &Engine{
		cfg: cfg,
		builder: apps.NewCatalogBuilder(
			apps.NewDesktopReader(fs, cfg.ExtraDesktopDirs()),
			apps.NewFlatpakReader(executor, lookPath, timeout),
			apps.NewSnapReader(executor, lookPath, timeout),
		),
		res:   resolver.New(cfg.AutoMatchThreshold(), cfg.MaxSuggestions()),
		chain: launcher.NewChain(executor, lookPath, timeout),
	}
}

// OpenApp resolves and launches the named application, or lists available
// applications when name is empty. Always returns a descriptive message;
// nothing on this path is fatal to the hosting process.
func (e *Engine) OpenApp(ctx context.Context, name string) string {
	catalog := e.builder.Build(ctx)

	if strings.TrimSpace(name) == "" {
		return e.listing(catalog)
	}

	res := e.res.Resolve(name, catalog)
	switch res.Kind {
	case resolver.KindExact:
		log.Info().Msgf("resolved %q to %s (exact)", name, res.Target.ID)
		if e.chain.Launch(ctx, res.Target.ID) {
			return fmt.Sprintf("Successfully launched %s", res.Target.ID)
		}
		return launchFailed(res.Target.ID)
	case resolver.KindFuzzy:
		log.Info().Msgf(
			"resolved %q to %s (fuzzy, %d%%), launching automatically",
			name, res.Target.ID, res.Score,
		)
		if e.chain.Launch(ctx, res.Target.ID) {
			return fmt.Sprintf(
				"Successfully launched %s (matched from '%s')",
				res.Target.ID, name,
			)
		}
		return launchFailed(res.Target.ID)
	case resolver.KindAmbiguous:
		return suggestions(name, res.Candidates)
	case resolver.KindNotFound:
		fallthrough
	default:
		return noAppsHint
	}
}

func (e *Engine) listing(catalog apps.Catalog) string {
	if len(catalog) == 0 {
		return noAppsHint
	}

	entries, omitted := resolver.Listing(catalog, e.cfg.MaxListing())

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Available applications (%d shown):\n", len(entries)))
	b.WriteString(strings.Join(entries, "\n"))
	if omitted > 0 {
		b.WriteString(fmt.Sprintf("\n... and %d more", omitted))
	}
	return b.String()
}

func suggestions(query string, candidates []matcher.Candidate) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Similar applications to '%s':\n", strings.TrimSpace(query)))
	for _, c := range candidates {
		b.WriteString(fmt.Sprintf("%s (%s) - %d%% match\n", c.ID, c.Name, c.Score))
	}
	b.WriteString("\nUse one of these names to launch an application")
	return b.String()
}

func launchFailed(id string) string {
	return fmt.Sprintf(
		"Unable to launch '%s'. It may require reinstalling or extra permissions.",
		id,
	)
}
