// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/loan-tracker/internal/client"
	"github.com/MKhiriev/loan-tracker/internal/config"
	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/service"
	"github.com/MKhiriev/loan-tracker/internal/store"
	"github.com/MKhiriev/loan-tracker/internal/tui"
	"github.com/MKhiriev/loan-tracker/internal/validators"
	"github.com/MKhiriev/loan-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		return err
	}

	log := logger.NewClientLogger("loan-tracker", cfg.Log.File)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Warn().Err(err).Str("level", cfg.Log.Level).Msg("unknown log level, keeping default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create storage")
		return err
	}
	defer func() {
		if cerr := storages.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("close storage")
		}
	}()

	services := service.NewServices(storages.Tracking, service.SystemClock, log)

	ui, err := tui.New(services, validators.NewFormValidator(), buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating ui")
		return err
	}

	app, err := client.NewApp(services, ui, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return err
	}

	if err = app.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Error().Err(err).Msg("client run error")
		return err
	}
	log.Info().Msg("bye")
	return nil
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, line := range info.Lines() {
		fmt.Println(line)
	}
}
