package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-valo-stats/internal/storage"
)

var dropForce bool

// dropCmd deletes one stored event, or the whole database file.
var dropCmd = &cobra.Command{
	Use:   "drop [event-slug]",
	Short: "Delete a stored event, or the whole database",
	Long: `Delete one event and all its stat lines. With no argument, permanently
delete the SQLite database file itself. Re-import your tables afterwards
to rebuild.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
}

func runDrop(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return dropDatabase()
	}
	return dropEvent(args[0])
}

func dropDatabase() error {
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}
	if err := os.Remove(dbPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stdout, "Database does not exist, nothing to drop.")
			return nil
		}
		return fmt.Errorf("remove database: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Deleted: %s\n", dbPath)
	return nil
}

func dropEvent(slug string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ev, err := resolveEvent(db, slug)
	if err != nil {
		return err
	}
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will delete event %q (%s) and its %d maps of stat lines.\n", ev.Slug, ev.Name, ev.MapCount)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}
	deleted, err := db.DeleteEvent(ev.Slug)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if !deleted {
		fmt.Fprintf(os.Stdout, "Event %q not found.\n", ev.Slug)
		return nil
	}
	fmt.Fprintf(os.Stdout, "Deleted event: %s\n", ev.Slug)
	return nil
}
