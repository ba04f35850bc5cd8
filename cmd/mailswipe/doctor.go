package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mailswipe/mailswipe/internal/backend"
	"github.com/mailswipe/mailswipe/internal/config"
	"github.com/mailswipe/mailswipe/internal/store"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, backend reachability, and store stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			fmt.Printf("  Backend URL: %s\n", cfg.BackendURL)
			fmt.Printf("  DB path:     %s\n", cfg.DBPath)
			fmt.Printf("  Test feed:   %v\n", cfg.UseTestEmails)

			fmt.Println("\n=== Backend ===")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			client := backend.New(cfg.BackendURL)
			if emails, err := client.TestEmails(ctx); err != nil {
				fmt.Printf("  Status: UNREACHABLE (%v)\n", err)
				fmt.Println("  Hint: run 'mailswipe serve' or point backend_url at a running backend")
			} else {
				fmt.Printf("  Status: OK (%d test emails)\n", len(emails))
			}

			fmt.Println("\n=== Store ===")
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (created on first triage)")
				return nil
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			eventCount, err := db.EventCount()
			if err != nil {
				return fmt.Errorf("count events: %w", err)
			}
			reminderCount, err := db.ReminderCount()
			if err != nil {
				return fmt.Errorf("count reminders: %w", err)
			}
			fmt.Printf("  Events:    %d\n", eventCount)
			fmt.Printf("  Reminders: %d\n", reminderCount)

			if info, err := os.Stat(cfg.DBPath); err == nil {
				fmt.Printf("  Size:      %.1f KB\n", float64(info.Size())/1024)
			}

			return nil
		},
	}
}
