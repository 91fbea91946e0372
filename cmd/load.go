package main

import (
	"context"
	"encoding/json"
	"metashare/internal/config"
	"metashare/pkg/domain"
	"metashare/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadCommand constructs the 'load' subcommand that ingests a records fixture
// file into the database so the server can resolve them during exports.
func loadCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Loads metadata records from a JSON file into the database",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			recordsPath, _ := cmd.Flags().GetString("records")

			data, err := os.ReadFile(recordsPath)
			if err != nil {
				logger.Fatal(ctx, "could not read records file", zap.Error(err))
			}
			var records []*domain.GenericRecord
			if err := json.Unmarshal(data, &records); err != nil {
				logger.Fatal(ctx, "could not decode records file", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stored, err := strg.StoreRecords(ctx, records...)
			if err != nil {
				logger.Fatal(ctx, "could not store records", zap.Error(err))
			}
			total, err := strg.RecordCount(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not count records", zap.Error(err))
			}

			logger.Info(ctx, "records loaded",
				zap.Int64("stored", stored),
				zap.Int64("total", total))
		},
	}

	cmd.Flags().String("records", "records.json", "Path to the records file (JSON array)")

	return cmd
}
