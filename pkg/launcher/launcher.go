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

// Package launcher starts applications by trying a fixed sequence of
// OS-level launch mechanisms until one succeeds.
package launcher

import (
	"context"
	"time"

	"github.com/ApplaunchProject/applaunch-core/pkg/helpers"
	"github.com/rs/zerolog/log"
)

// Strategy is one concrete launch mechanism. Available reports whether the
// strategy applies to the identifier on this host; unavailable strategies
// are skipped without counting as failed attempts.
type Strategy struct {
	Available func(id string) bool
	Attempt   func(ctx context.Context, id string) error
	ID        string
}

// Chain tries each strategy in order and stops at the first success.
type Chain struct {
	executor helpers.CommandExecutor
	lookPath helpers.LookPathFunc
	timeout  time.Duration
}

func NewChain(
	executor helpers.CommandExecutor,
	lookPath helpers.LookPathFunc,
	timeout time.Duration,
) *Chain {
	return &Chain{executor: executor, lookPath: lookPath, timeout: timeout}
}

// Strategies returns the launch mechanisms in their fixed attempt order:
// direct execution, gtk-launch, flatpak run, snap run, then xdg-open as a
// last resort.
func (c *Chain) Strategies() []Strategy {
	return []Strategy{
		{
			ID: "direct",
			Available: func(id string) bool {
				_, err := c.lookPath(id)
				return err == nil
			},
			Attempt: func(_ context.Context, id string) error {
				// Detached fire-and-forget: the spawned application must
				// outlive the request, so no timeout context is attached.
				return c.executor.Start(context.Background(), id)
			},
		},
		c.toolStrategy("gtk-launch", "gtk-launch"),
		c.toolStrategy("flatpak", "flatpak", "run"),
		c.toolStrategy("snap", "snap", "run"),
		c.toolStrategy("xdg-open", "xdg-open"),
	}
}

// toolStrategy builds a strategy that runs an external helper tool with the
// launcher id appended, bounded by the chain timeout. Success iff exit zero.
func (c *Chain) toolStrategy(tool string, argv ...string) Strategy {
	return Strategy{
		ID: tool,
		Available: func(_ string) bool {
			_, err := c.lookPath(tool)
			return err == nil
		},
		Attempt: func(ctx context.Context, id string) error {
			runCtx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()
			args := make([]string, 0, len(argv))
			args = append(args, argv[1:]...)
			args = append(args, id)
			return c.executor.Run(runCtx, argv[0], args...)
		},
	}
}

// Launch attempts each applicable strategy for the identifier. Success means
// the OS accepted the request to start the process, not that the application
// is still running. Returns false when every applicable strategy failed or
// none were applicable.
func (c *Chain) Launch(ctx context.Context, id string) bool {
	for _, strategy := range c.Strategies() {
		if !strategy.Available(id) {
			log.Debug().Msgf("launch %s: strategy %s not applicable", id, strategy.ID)
			continue
		}

		if err := strategy.Attempt(ctx, id); err != nil {
			log.Warn().Err(err).Msgf("launch %s: strategy %s failed", id, strategy.ID)
			continue
		}

		log.Info().Msgf("launched %s via %s", id, strategy.ID)
		return true
	}

	log.Warn().Msgf("launch %s: all strategies exhausted", id)
	return false
}
