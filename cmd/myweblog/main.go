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
	fs := flag.NewFlagSet("myweblog", flag.ExitOnError)
	flagCfg := config.RegisterFlags(fs)

	selected := make([]bool, len(client.Operations))
	for i, op := range client.Operations {
		usage := "Run " + op.Label
		fs.BoolVar(&selected[i], op.Short, false, usage)
		fs.BoolVar(&selected[i], op.Flag, false, usage)
	}
	limit := fs.Int("limit", models.DefaultLimit, "Row limit for transactions and flight logs")
	showVersion := fs.Bool("version", false, "Print build information and exit")
	_ = fs.Parse(os.Args[1:])

	if *showVersion {
		fmt.Println(tui.RenderBuildInfo("myweblog", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
		return
	}

	cfg, err := config.GetClientConfig(flagCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("myweblog", cfg.Log.Path, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, selected, *limit, log); err != nil {
		log.Error().Err(err).Msg("query run error")
		fmt.Fprintln(os.Stderr, "Error:", tui.HumanizeError(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, selected []bool, limit int, log *logger.Logger) error {
	session, err := client.NewSessionFromConfig(cfg, log)
	if err != nil {
		return err
	}
	defer session.Close()

	ctx = session.Bind(ctx)

	prompter := tui.New(os.Stdin, os.Stdout, log)
	query := client.NewQuery(session.Gateway, prompter, os.Stdout, client.QueryOptions{
		Limit:             limit,
		WindowDays:        cfg.Workflow.WindowDays,
		PlaceholderPrefix: cfg.Workflow.PlaceholderPrefix,
	}, log)

	var names []string
	for i, on := range selected {
		if on {
			names = append(names, client.Operations[i].Name)
		}
	}
	if len(names) == 0 {
		if names, err = query.ChooseOperations(ctx); err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No operation selected.")
			return nil
		}
	}

	if err = session.Start(ctx); err != nil {
		return err
	}

	return query.Run(ctx, names)
}
