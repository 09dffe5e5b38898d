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

// Package matcher scores user queries against launcher identifiers.
package matcher

import (
	"math"
	"sort"
	"strings"

	"github.com/ApplaunchProject/applaunch-core/pkg/apps"
	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

// Candidate is a launcher identifier that fuzzy-matched a query, with a
// normalized similarity score from 0 (unrelated) to 100 (identical).
type Candidate struct {
	ID    string
	Name  string
	Score int
}

// Score computes the similarity between a query and a candidate identifier
// on a 0-100 scale using Jaro-Winkler similarity. Jaro-Winkler is optimized
// for short strings and heavily weights matching prefixes, which suits
// launcher names where users typically get the start correct.
func Score(query, candidate string) int {
	similarity := edlib.JaroWinklerSimilarity(
		strings.ToLower(query),
		strings.ToLower(candidate),
	)
	return int(math.Round(float64(similarity) * 100))
}

// TopCandidates scores the query against every identifier in the catalog and
// returns up to limit candidates, best first. Candidates are scored from an
// alphabetical pass over the catalog and sorted stably, so equal scores keep
// a deterministic order across calls.
func TopCandidates(query string, catalog apps.Catalog, limit int) []Candidate {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	candidates := make([]Candidate, 0, len(ids))
	for _, id := range ids {
		score := Score(query, id)
		if score > 70 {
			log.Debug().
				Str("query", query).
				Str("candidate", id).
				Int("score", score).
				Msg("fuzzy match candidate evaluation")
		}
		candidates = append(candidates, Candidate{
			ID:    id,
			Name:  catalog[id].Name,
			Score: score,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
