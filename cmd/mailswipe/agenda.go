package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mailswipe/mailswipe/internal/config"
	"github.com/mailswipe/mailswipe/internal/store"
)

func agendaCmd() *cobra.Command {
	var eventsOnly, remindersOnly bool

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "List saved calendar events and reminders",
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

			if !remindersOnly {
				events, err := db.Events()
				if err != nil {
					return fmt.Errorf("list events: %w", err)
				}
				fmt.Printf("=== Events (%d) ===\n", len(events))
				for _, ev := range events {
					line := fmt.Sprintf("  %s - %s  %s",
						ev.StartAt.Format("2006-01-02 15:04"),
						ev.EndAt.Format("15:04"),
						ev.Title)
					if ev.Location != "" {
						line += "  @ " + ev.Location
					}
					fmt.Println(line)
				}
			}

			if !eventsOnly {
				reminders, err := db.Reminders()
				if err != nil {
					return fmt.Errorf("list reminders: %w", err)
				}
				fmt.Printf("=== Reminders (%d) ===\n", len(reminders))
				for _, rem := range reminders {
					line := "  [ ] " + rem.Title
					if rem.DueAt != nil {
						line += "  (due " + rem.DueAt.Format("2006-01-02") + ")"
					}
					fmt.Println(line)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&eventsOnly, "events", false, "Show only calendar events")
	cmd.Flags().BoolVar(&remindersOnly, "reminders", false, "Show only reminders")

	return cmd
}
