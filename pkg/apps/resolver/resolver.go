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

// Package resolver turns a user-supplied application name into a single
// launch target, a ranked suggestion list, or a not-found outcome.
package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ApplaunchProject/applaunch-core/pkg/apps"
	"github.com/ApplaunchProject/applaunch-core/pkg/apps/matcher"
	"github.com/rs/zerolog/log"
)

// Kind is the outcome of a resolution attempt.
type Kind int

const (
	// KindNotFound means the catalog was empty or produced no candidates.
	KindNotFound Kind = iota
	// KindExact means the query matched a launcher identifier exactly
	// (case-insensitive); fuzzy scoring was never consulted.
	KindExact
	// KindFuzzy means the top fuzzy candidate scored at or above the
	// auto-accept threshold and was selected without disambiguation.
	KindFuzzy
	// KindAmbiguous means no candidate was confident enough to auto-select;
	// Candidates holds the ranked suggestions.
	KindAmbiguous
)

// Resolution is the result of resolving a query against a catalog.
type Resolution struct {
	Target     apps.Entry
	Candidates []matcher.Candidate
	Kind       Kind
	Score      int
}

// Resolver resolves queries with a fixed auto-accept threshold and
// suggestion cap. The zero value is not usable; construct with New.
type Resolver struct {
	threshold      int
	maxSuggestions int
}

func New(threshold, maxSuggestions int) *Resolver {
	return &Resolver{threshold: threshold, maxSuggestions: maxSuggestions}
}

// Resolve normalizes the query and resolves it against the catalog. Exact
// identifier matches always win, even when a different entry would fuzzy
// score 100. The threshold is a hard cutoff: a top score one point below it
// falls through to disambiguation.
func (r *Resolver) Resolve(query string, catalog apps.Catalog) Resolution {
	if len(catalog) == 0 {
		return Resolution{Kind: KindNotFound}
	}

	key := strings.ToLower(strings.TrimSpace(query))

	for id, entry := range catalog {
		if strings.ToLower(id) == key {
			return Resolution{Kind: KindExact, Target: entry}
		}
	}

	candidates := matcher.TopCandidates(key, catalog, r.maxSuggestions)
	if len(candidates) == 0 {
		return Resolution{Kind: KindNotFound}
	}

	if top := candidates[0]; top.Score >= r.threshold {
		log.Info().Msgf(
			"close match for %q: %s (%s) - %d%% match",
			query, top.ID, top.Name, top.Score,
		)
		return Resolution{
			Kind:   KindFuzzy,
			Target: catalog[top.ID],
			Score:  top.Score,
		}
	}

	return Resolution{Kind: KindAmbiguous, Candidates: candidates}
}

// Listing returns an alphabetically sorted "id (name)" slice capped at
// maxEntries, plus a count of how many entries were omitted.
func Listing(catalog apps.Catalog, maxEntries int) (entries []string, omitted int) {
	entries = make([]string, 0, len(catalog))
	for id, entry := range catalog {
		entries = append(entries, fmt.Sprintf("%s (%s)", id, entry.Name))
	}
	sort.Strings(entries)

	if maxEntries > 0 && len(entries) > maxEntries {
		omitted = len(entries) - maxEntries
		entries = entries[:maxEntries]
	}
	return entries, omitted
}
