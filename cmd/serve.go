package main

import (
	"context"
	"errors"
	"metashare/internal/api"
	"metashare/internal/api/handler/v1handler"
	"metashare/internal/config"
	"metashare/internal/export"
	"metashare/internal/worker"
	"metashare/pkg/logger"
	"metashare/pkg/metadata"
	"metashare/pkg/metadata/xmlcodec"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, service export.Service) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{
			Service: service,
		},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background export workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			options := export.NewOptions(cfg)
			service := export.New(strg, options)

			stopWebserver := setupServer(ctx, cfg, service)

			pipeline := export.NewPipeline(
				metadata.NewStoreSource(strg),
				metadata.NewValidator(),
				xmlcodec.New(),
				metadata.NewCrossRefEnricher(cfg.Export.CrossRefSource),
				options)
			riverClient, err := worker.Start(ctx, strg.Pool,
				worker.NewExportWorker(pipeline, strg, cfg.Export.MaxAttempts))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
