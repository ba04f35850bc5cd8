package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "mailswipe",
		Short:   "Triage emails into calendar events and reminders, one card at a time",
		Version: version,
	}

	rootCmd.AddCommand(triageCmd())
	rootCmd.AddCommand(emailsCmd())
	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(agendaCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
