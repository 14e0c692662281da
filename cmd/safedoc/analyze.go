package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gov-df/safedoc/pkg/config"
	"github.com/gov-df/safedoc/pkg/engine"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		filePath   string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "analyze [texto]",
		Short: "Analyze a single piece of text and print the detection result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := resolveText(args, filePath)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}

			result := engine.Analyze(text, cfg.Policy.ToPolicy())
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "read text from this file instead of the argument")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "configuration file (default: built-in)")
	return cmd
}

func resolveText(args []string, filePath string) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", filePath, err)
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("either a text argument or --file must be given")
	}
	return args[0], nil
}
