package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/gov-df/safedoc/pkg/batch"
	"github.com/gov-df/safedoc/pkg/config"
	"github.com/gov-df/safedoc/pkg/obs"
)

func newBatchCmd() *cobra.Command {
	var (
		glob       string
		configFile string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Analyze every CSV file matched by --glob, one row per document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if glob == "" {
				return fmt.Errorf("batch: --glob is required")
			}

			files, err := doublestar.FilepathGlob(glob)
			if err != nil {
				return fmt.Errorf("batch: invalid glob %q: %w", glob, err)
			}
			if len(files) == 0 {
				return fmt.Errorf("batch: glob %q matched no files", glob)
			}

			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}
			logger := obs.New(cfg.Logging.Level, cfg.Logging.Pretty)

			concurrency := workers
			if concurrency <= 0 {
				concurrency = cfg.Scanner.Workers
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			for _, path := range files {
				rows, err := readRows(path)
				if err != nil {
					logger.Error().Err(err).Str("file", path).Msg("skipping file")
					continue
				}
				results, err := batch.AnalyzeTable(cmd.Context(), rows, batch.Options{
					Policy:      cfg.Policy.ToPolicy(),
					Concurrency: concurrency,
					Memoize:     cfg.Scanner.BatchMemoize,
					Logger:      logger,
				})
				if err != nil && err != context.Canceled {
					logger.Error().Err(err).Str("file", path).Msg("batch run failed")
				}
				if err := enc.Encode(map[string]any{"arquivo": path, "resultados": results}); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&glob, "glob", "g", "", "doublestar glob matching CSV files to analyze, e.g. \"data/**/*.csv\"")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "configuration file (default: built-in)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrency (default: from config)")
	return cmd
}

func readRows(path string) ([]batch.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := batch.FindTextColumn(header)
	if col == -1 {
		return nil, fmt.Errorf("no text column found (looked for %v)", batch.TextColumnCandidates)
	}

	var rows []batch.Row
	for i := 0; ; i++ {
		record, err := r.Read()
		if err != nil {
			break
		}
		if col >= len(record) {
			continue
		}
		rows = append(rows, batch.Row{Index: i, Text: record[col]})
	}
	return rows, nil
}
