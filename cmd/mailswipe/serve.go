package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mailswipe/mailswipe/internal/config"
	"github.com/mailswipe/mailswipe/internal/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the validation backend",
		Long: `Runs the companion validation backend: the email feed plus the endpoints
that validate calendar events and reminders before the client writes them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if addr == "" {
				addr = cfg.ListenAddr
			}

			fmt.Printf("mailswipe backend listening on %s\n", addr)
			return http.ListenAndServe(addr, server.New())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to listen_addr from config)")

	return cmd
}
