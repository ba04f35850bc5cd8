package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mailswipe/mailswipe/internal/parse"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Run the event parser over a file or stdin",
		Long: `Reads email text from a file (or stdin when no file is given) and reports
what the parser extracted. Useful for checking why an email became a task
instead of a calendar event.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text []byte
			var err error
			if len(args) == 1 {
				text, err = os.ReadFile(args[0])
			} else {
				text, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			ev := parse.ParseEvent(string(text))

			fmt.Printf("marker:   %v\n", ev.HasMarker)
			fmt.Printf("valid:    %v\n", ev.Valid())
			fmt.Printf("start:    %s\n", formatStamp(ev.Start))
			fmt.Printf("end:      %s\n", formatStamp(ev.End))
			if ev.Location != "" {
				fmt.Printf("location: %s\n", ev.Location)
			} else {
				fmt.Printf("location: -\n")
			}

			if ev.Valid() {
				fmt.Println("\n-> would become a calendar event")
			} else {
				fmt.Println("\n-> would become a reminder/task")
			}
			return nil
		},
	}
}

func formatStamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("Mon, Jan 2 2006 3:04 PM MST")
}
