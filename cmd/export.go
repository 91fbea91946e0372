package main

import (
	"context"
	"fmt"
	"metashare/internal/config"
	"metashare/internal/export"
	"metashare/pkg/domain"
	"metashare/pkg/logger"
	"metashare/pkg/metadata"
	"metashare/pkg/metadata/xmlcodec"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parseItems converts "Type:UUID" flags into domain items.
func parseItems(raw []string) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(raw))
	for _, s := range raw {
		recordType, rawUUID, ok := strings.Cut(s, ":")
		if !ok {
			return nil, fmt.Errorf("invalid item %q, expected Type:UUID", s)
		}
		id, err := uuid.Parse(rawUUID)
		if err != nil {
			return nil, fmt.Errorf("invalid item uuid %q: %w", rawUUID, err)
		}

		items = append(items, domain.Item{Type: recordType, UUID: id})
	}

	return items, nil
}

// exportCommand constructs the 'export' subcommand that runs one export
// against a records fixture file and writes the artifact to disk, without
// touching the database or the job queue.
func exportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Runs a one-shot export from a records file and writes the artifact to disk",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			recordsPath, _ := cmd.Flags().GetString("records")
			name, _ := cmd.Flags().GetString("name")
			description, _ := cmd.Flags().GetString("description")
			rawItems, _ := cmd.Flags().GetStringArray("item")
			outDir, _ := cmd.Flags().GetString("out")

			data, err := os.ReadFile(recordsPath)
			if err != nil {
				logger.Fatal(ctx, "could not read records file", zap.Error(err))
			}
			registry := metadata.NewRegistry()
			if err := registry.LoadJSON(data); err != nil {
				logger.Fatal(ctx, "could not load records file", zap.Error(err))
			}
			logger.Info(ctx, "records loaded", zap.Int("records", registry.Len()))

			items, err := parseItems(rawItems)
			if err != nil {
				logger.Fatal(ctx, "could not parse items", zap.Error(err))
			}

			pkg := &domain.Package{
				ID:          domain.PackageID(uuid.New()),
				GroupUUID:   uuid.New(),
				Name:        name,
				Description: description,
				Version:     1,
				Items:       items,
				Status:      domain.ExportStatusPending,
			}

			pipeline := export.NewPipeline(
				registry,
				metadata.NewValidator(),
				xmlcodec.New(),
				metadata.NewCrossRefEnricher(cfg.Export.CrossRefSource),
				export.NewOptions(cfg))
			serialized, err := pipeline.Export(ctx, pkg)
			if err != nil {
				logger.Fatal(ctx, "export failed", zap.Error(err))
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				logger.Fatal(ctx, "could not create output directory", zap.Error(err))
			}
			headerPath := filepath.Join(outDir, "header.xml")
			if err := os.WriteFile(headerPath, []byte(serialized.Header), 0o644); err != nil {
				logger.Fatal(ctx, "could not write header", zap.Error(err))
			}
			for i, body := range serialized.Chunks {
				chunkPath := filepath.Join(outDir, fmt.Sprintf("chunk-%d.xml", i+1))
				if err := os.WriteFile(chunkPath, []byte(body), 0o644); err != nil {
					logger.Fatal(ctx, "could not write chunk", zap.Error(err))
				}
			}

			logger.Info(ctx, "artifact written",
				zap.String("dir", outDir),
				zap.Int("chunks", len(serialized.Chunks)),
				zap.Int("relatedItems", pkg.RelatedItems.Len()))
		},
	}

	cmd.Flags().String("records", "records.json", "Path to the records fixture file (JSON array)")
	cmd.Flags().String("name", "", "Package name")
	cmd.Flags().String("description", "", "Package description")
	cmd.Flags().StringArray("item", nil, "Item to export as Type:UUID (repeatable)")
	cmd.Flags().String("out", ".", "Output directory for the artifact files")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
