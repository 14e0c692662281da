package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "safedoc",
		Short: "safedoc - detect and redact Brazilian-context PII in free text",
		Long: `safedoc scans citizen-submitted documents for Brazilian-context
personally identifiable information (CPF, CNPJ, phone, process numbers,
and a family of contextual identifiers), scores each document against a
policy, and recommends publish, review, or block.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("safedoc\nVersion: %s\nBuild: %s\nBuild Date: %s\n", version, commit, buildDate)
		},
	}
}
