package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mailswipe/mailswipe/internal/backend"
	"github.com/mailswipe/mailswipe/internal/config"
	"github.com/mailswipe/mailswipe/internal/parse"
)

const (
	eColorReset = "\033[0m"
	eColorGreen = "\033[1;32m"
	eColorBlue  = "\033[1;34m"
	eColorDim   = "\033[2m"
)

func emailsCmd() *cobra.Command {
	var live bool

	cmd := &cobra.Command{
		Use:   "emails",
		Short: "Fetch and list the email feed with parse results",
		Long: `Fetches the email feed and shows what the parser makes of each email.
Output is TSV when piped: id, kind, from, subject, start, location.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			client := backend.New(cfg.BackendURL)
			ctx := context.Background()

			var emails []backend.Email
			if cfg.UseTestEmails && !live {
				emails, err = client.TestEmails(ctx)
			} else {
				emails, err = client.Emails(ctx)
			}
			if err != nil {
				return err
			}

			if len(emails) == 0 {
				fmt.Fprintln(os.Stderr, "No emails.")
				return nil
			}

			isTTY := term.IsTerminal(int(os.Stdout.Fd()))
			for _, e := range emails {
				ev := parse.ParseEvent(e.Preview)
				kind := "task"
				start, loc := "-", "-"
				if ev.Valid() {
					kind = "event"
					start = ev.Start.Format("2006-01-02 15:04")
					if ev.Location != "" {
						loc = ev.Location
					}
				}

				if isTTY {
					badge := eColorBlue + "task " + eColorReset
					if kind == "event" {
						badge = eColorGreen + "event" + eColorReset
					}
					fmt.Printf("%s  %-28s  %s\n", badge, truncateCell(e.From, 28), e.Subject)
					if kind == "event" {
						fmt.Printf("%s       %s @ %s%s\n", eColorDim, start, loc, eColorReset)
					}
				} else {
					fmt.Printf("%s\t%s\t%s\t%s\t%s\t%s\n",
						e.ID, kind, cell(e.From), cell(e.Subject), start, cell(loc))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&live, "live", false, "Use the live email feed instead of the test feed")

	return cmd
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func truncateCell(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}
