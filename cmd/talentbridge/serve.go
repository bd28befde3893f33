package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talentbridge/internal/db"
	"github.com/jonathan/talentbridge/internal/evaluation"
	"github.com/jonathan/talentbridge/internal/server"
	"github.com/jonathan/talentbridge/internal/server/ratelimit"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Start an HTTP server exposing the stateless evaluation endpoints under /v1/eval. " +
		"With database.url and auth.jwt_secret configured it also serves the authenticated job, client, candidate, company and submission views.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srvCfg := server.Config{
		Addr:       cfg.Addr(),
		CORSOrigin: cfg.Server.CORSOrigin,
		RateLimit:  ratelimit.NewConfig(cfg.Server.RateLimit, cfg.Server.RateLimitPerMinute, cfg.Server.RateLimitAllowlist),
		DisplayKey: []byte(cfg.Anonymization.DisplayKey),
		Logger:     log,
	}

	if cfg.Auth.JWTSecret != "" {
		jwtCfg, err := cfg.JWT()
		if err != nil {
			return err
		}
		srvCfg.JWT = jwtCfg
	}

	if cfg.Database.URL != "" {
		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer database.Close()

		srvCfg.Pinger = database
		srvCfg.Service = evaluation.NewService(database, evaluation.Options{
			Logger:      log.Named("evaluation"),
			DisplayKey:  srvCfg.DisplayKey,
			Concurrency: cfg.Evaluation.Concurrency,
		})
	} else {
		log.Warn("database.url not set, serving stateless evaluation endpoints only")
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Debug("server configured",
		zap.Bool("rate_limit", cfg.Server.RateLimit),
		zap.Bool("database", srvCfg.Service != nil),
		zap.Bool("auth", srvCfg.JWT != nil))

	return srv.Start(ctx)
}
