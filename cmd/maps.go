package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-valo-stats/internal/storage"
)

var mapsCmd = &cobra.Command{
	Use:   "maps <event-slug>",
	Short: "List the maps stored for an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runMaps,
}

func runMaps(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ev, err := resolveEvent(db, args[0])
	if err != nil {
		return err
	}

	maps, err := db.ListMaps(ev.Slug)
	if err != nil {
		return fmt.Errorf("list maps: %w", err)
	}
	for _, m := range maps {
		fmt.Fprintln(os.Stdout, m)
	}
	return nil
}
