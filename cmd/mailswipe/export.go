package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mailswipe/mailswipe/internal/config"
	"github.com/mailswipe/mailswipe/internal/ics"
	"github.com/mailswipe/mailswipe/internal/store"
)

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved calendar events as an ICS file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			events, err := db.Events()
			if err != nil {
				return fmt.Errorf("list events: %w", err)
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			if err := ics.Export(w, events); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if out != "" {
				fmt.Fprintf(os.Stderr, "Wrote %d event(s) to %s\n", len(events), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to file instead of stdout")

	return cmd
}
