package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/docsift/docsift/internal/config"
	"github.com/docsift/docsift/internal/embed"
	"github.com/docsift/docsift/internal/pipeline"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	var inputDir, outputDir string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run one batch analysis over the input directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

			cfg := config.Load()
			if inputDir != "" {
				cfg.InputDir = inputDir
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			req, err := pipeline.LoadRequest(cfg.InputDir)
			if err != nil {
				return err
			}

			embedder := embed.NewClient(cfg.EmbedBaseURL, cfg.EmbedModel, cfg.EmbedAPIKey)
			defer embedder.Close()

			analyzer := pipeline.NewAnalyzer(cfg, embedder, log)
			rep, err := analyzer.Run(context.Background(), req)
			if err != nil {
				return err
			}

			path, err := pipeline.WriteReport(cfg.OutputDir, rep)
			if err != nil {
				return err
			}
			log.Info("report written", "path", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "input directory (request.json + docs/)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for report.json")

	return cmd
}
