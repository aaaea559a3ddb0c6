// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cms-admin/internal/config"
	"github.com/MKhiriev/go-cms-admin/internal/handler"
	"github.com/MKhiriev/go-cms-admin/internal/logger"
	"github.com/MKhiriev/go-cms-admin/internal/server"
	"github.com/MKhiriev/go-cms-admin/internal/service"
	"github.com/MKhiriev/go-cms-admin/internal/store"
	"github.com/MKhiriev/go-cms-admin/internal/workers"
	"github.com/MKhiriev/go-cms-admin/models"
	"golang.org/x/sync/errgroup"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("cms-admin-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("received configs")
	if cfg.UsesDefaultTokenSignKey() {
		log.Warn().Msg("APP_TOKEN_SIGN_KEY is not set, sessions are signed with the built-in development key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log.Named("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.AuthService.EnsureBootstrapAdmin(ctx, cfg.App.BootstrapAdminEmail, cfg.App.BootstrapAdminPassword); err != nil {
		log.Fatal().Err(err).Msg("error creating bootstrap administrator")
	}

	handlers, err := handler.NewHandlers(services, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(handlers.HTTP.LoginLimiter(), cfg.Workers, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		backgroundWorkers.Run(gctx)
		return nil
	})

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
