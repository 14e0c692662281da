package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/gov-df/safedoc/pkg/config"
	"github.com/gov-df/safedoc/pkg/httpapi"
	"github.com/gov-df/safedoc/pkg/obs"
)

func newServeCmd() *cobra.Command {
	var (
		addr       string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP host adapter (POST /validate/texto, POST /validate/csv)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			logger := obs.New(cfg.Logging.Level, cfg.Logging.Pretty)

			srv := &httpapi.Server{Policy: cfg.Policy.ToPolicy(), Logger: logger}
			mux := http.NewServeMux()
			srv.Routes(mux)

			logger.Info().Str("addr", addr).Msg("safedoc listening")
			return http.ListenAndServe(addr, mux)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "configuration file (default: built-in)")
	return cmd
}
