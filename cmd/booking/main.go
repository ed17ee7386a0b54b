// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-myweblog/internal/client"
	"github.com/MKhiriev/go-myweblog/internal/config"
	"github.com/MKhiriev/go-myweblog/internal/logger"
	"github.com/MKhiriev/go-myweblog/internal/tui"
	"github.com/MKhiriev/go-myweblog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fs := flag.NewFlagSet("booking", flag.ExitOnError)
	flagCfg := config.RegisterFlags(fs)
	showVersion := fs.Bool("version", false, "Print build information and exit")
	_ = fs.Parse(os.Args[1:])

	if *showVersion {
		fmt.Println(tui.RenderBuildInfo("booking", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
		return
	}

	cfg, err := config.GetClientConfig(flagCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("booking", cfg.Log.Path, cfg.Log.Level)
	log.Info().
		Str("version", buildVersion).
		Str("commit", buildCommit).
		Object("credentials", cfg.Credentials).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := client.NewSessionFromConfig(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("create session")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}

	prompter := tui.New(os.Stdin, os.Stdout, log)
	var app client.Client = client.NewApp(session, prompter, cfg.Workflow, log)

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("booking run error")
		fmt.Fprintln(os.Stderr, "Error:", tui.HumanizeError(err))
		stop()
		os.Exit(1)
	}
}
