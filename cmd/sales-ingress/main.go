// cmd/sales-ingress/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/GrayMists/sales-ingress/pkg/cleaner"
	"github.com/GrayMists/sales-ingress/pkg/config"
	"github.com/GrayMists/sales-ingress/pkg/importer"
	"github.com/GrayMists/sales-ingress/pkg/ingest"
	"github.com/GrayMists/sales-ingress/pkg/region"
	"github.com/GrayMists/sales-ingress/pkg/server"
	"github.com/GrayMists/sales-ingress/pkg/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	registry := region.DefaultRegistry()

	client, err := store.NewClient(cfg.Supabase, store.ClientOptions{
		ChunkSize:      cfg.ChunkSize,
		PageSize:       cfg.PageSize,
		RequestTimeout: cfg.RequestTimeout,
		RateLimit:      cfg.RateLimit,
	}, logger.Named("store"))
	if err != nil {
		return fmt.Errorf("failed to create store client: %w", err)
	}
	cachedReader := store.NewCachedReader(client, logger.Named("store-cache"))

	imp, err := importer.New(cfg.AllowedRegions, logger.Named("importer"))
	if err != nil {
		return fmt.Errorf("failed to create importer: %w", err)
	}

	pipeline, err := cleaner.NewPipeline(registry, logger.Named("cleaner"))
	if err != nil {
		return fmt.Errorf("failed to create cleaning pipeline: %w", err)
	}

	opts := ingest.ServiceOptions{Invalidator: cachedReader}

	// The direct database connection is optional: without it the service
	// still ingests, it just skips the audit trail and row-count checks.
	if cfg.Postgres != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		pg, err := store.NewPostgres(ctx, cfg.Postgres, logger.Named("postgres"))
		cancel()
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer pg.Close()

		ensureCtx, ensureCancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = pg.EnsureAuditTable(ensureCtx)
		ensureCancel()
		if err != nil {
			return err
		}

		opts.Audit = pg
		opts.Verifier = ingest.NewVerifier(pg, cfg.Supabase.SalesTable, logger.Named("verifier"))
	}

	svc, err := ingest.NewService(imp, pipeline, client, opts, logger.Named("ingest"))
	if err != nil {
		return fmt.Errorf("failed to create ingest service: %w", err)
	}

	srv, err := server.NewServer(":"+cfg.HTTPPort, svc, cachedReader, registry, logger.Named("http"))
	if err != nil {
		return fmt.Errorf("failed to create HTTP server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err == nil {
		zapCfg.Level = level
	}

	return zapCfg.Build()
}
