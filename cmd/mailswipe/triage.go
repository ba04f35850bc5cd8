package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mailswipe/mailswipe/internal/backend"
	"github.com/mailswipe/mailswipe/internal/config"
	"github.com/mailswipe/mailswipe/internal/deck"
	"github.com/mailswipe/mailswipe/internal/store"
	"github.com/mailswipe/mailswipe/internal/tui"
)

func triageCmd() *cobra.Command {
	var live bool

	cmd := &cobra.Command{
		Use:   "triage",
		Short: "Fetch emails and triage them in the card deck",
		Long: `Fetches the email feed from the validation backend, parses each email into
a card, and opens the deck. Accept writes the card into the local
calendar/reminders store after a validation round-trip; dismiss drops it.
Both are undoable for the length of the session.`,
		Args: cobra.NoArgs,
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

			d := deck.New(db, backend.New(cfg.BackendURL))

			useTest := cfg.UseTestEmails && !live
			if err := d.Load(context.Background(), useTest); err != nil {
				return err
			}
			if d.Remaining() == 0 {
				fmt.Println("No emails to triage.")
				return nil
			}

			return tui.Run(d)
		},
	}

	cmd.Flags().BoolVar(&live, "live", false, "Use the live email feed instead of the test feed")

	return cmd
}
