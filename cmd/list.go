package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-valo-stats/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored events",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	events, err := db.ListEvents()
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}
	if len(events) == 0 {
		fmt.Fprintln(os.Stdout, "No events stored yet. Run 'valostats import <table.csv> --event <slug>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-28s  %-32s  %-10s  %-8s  %s\n",
		"SLUG", "NAME", "DATE", "REGION", "MAPS")
	fmt.Fprintf(os.Stdout, "%-28s  %-32s  %-10s  %-8s  %s\n",
		"────────────────────────────", "────────────────────────────────", "──────────", "────────", "────")
	for _, ev := range events {
		fmt.Fprintf(os.Stdout, "%-28s  %-32s  %-10s  %-8s  %d\n",
			ev.Slug, ev.Name, ev.EventDate, ev.Region, ev.MapCount)
	}
	return nil
}
