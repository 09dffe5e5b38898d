//go:build linux

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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ApplaunchProject/applaunch-core/pkg/config"
	"github.com/ApplaunchProject/applaunch-core/pkg/helpers"
	"github.com/ApplaunchProject/applaunch-core/pkg/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	doList := flag.Bool(
		"list",
		false,
		"list available applications without launching",
	)
	doVersion := flag.Bool(
		"version",
		false,
		"print version and exit",
	)
	verbose := flag.Bool(
		"verbose",
		false,
		"also log to stderr",
	)
	flag.Parse()

	if *doVersion {
		_, _ = fmt.Printf("Applaunch v%s\n", config.AppVersion)
		return nil
	}

	if err := helpers.EnsureDirectories(); err != nil {
		return fmt.Errorf("error creating directories: %w", err)
	}

	var logWriters []io.Writer
	if *verbose {
		logWriters = []io.Writer{os.Stderr}
	}
	if err := helpers.InitLogging(logWriters); err != nil {
		return fmt.Errorf("error initializing logging: %w", err)
	}

	cfg, err := config.NewConfig(helpers.ConfigDir(), config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	engine := service.New(
		cfg,
		afero.NewOsFs(),
		&helpers.RealCommandExecutor{},
		exec.LookPath,
	)

	name := strings.Join(flag.Args(), " ")
	if *doList {
		name = ""
	}

	_, _ = fmt.Println(engine.OpenApp(context.Background(), name))
	return nil
}
