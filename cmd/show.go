package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-valo-stats/internal/aggregator"
	"github.com/pable/go-valo-stats/internal/model"
	"github.com/pable/go-valo-stats/internal/report"
	"github.com/pable/go-valo-stats/internal/storage"
)

var (
	showMap    string
	showPlayer string
)

var showCmd = &cobra.Command{
	Use:   "show <event-slug>",
	Short: "Show stored stat tables for an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showMap, "map", "", "only this map")
	showCmd.Flags().StringVar(&showPlayer, "player", "", "highlight player")
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ev, err := resolveEvent(db, args[0])
	if err != nil {
		return err
	}
	report.PrintEventSummary(os.Stdout, *ev)

	maps, err := eventMaps(db, ev.Slug, showMap)
	if err != nil {
		return err
	}

	var all []model.PlayerLine
	for _, m := range maps {
		lines, err := db.GetPlayerLines(ev.Slug, m)
		if err != nil {
			return fmt.Errorf("get lines for %s: %w", m, err)
		}
		report.PrintMapTable(os.Stdout, m, lines, showPlayer)
		fmt.Fprintln(os.Stdout)
		all = append(all, lines...)
	}

	// Event-wide aggregates only make sense across more than one map.
	if showMap == "" && len(maps) > 1 {
		aggs, err := aggregator.AggregateEvent(all)
		if err != nil {
			return fmt.Errorf("aggregate: %w", err)
		}
		fmt.Fprintln(os.Stdout, "--- Event totals ---")
		report.PrintAggregateTable(os.Stdout, aggs, showPlayer)
	}
	return nil
}

// resolveEvent looks up an event by slug or unique prefix.
func resolveEvent(db *storage.DB, slug string) (*model.EventSummary, error) {
	ev, err := db.GetEventBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("query event: %w", err)
	}
	if ev == nil {
		return nil, fmt.Errorf("no event found with slug %q", slug)
	}
	return ev, nil
}

// eventMaps returns the maps to operate on: the single requested map
// (validated against storage) or all maps of the event.
func eventMaps(db *storage.DB, slug, only string) ([]string, error) {
	maps, err := db.ListMaps(slug)
	if err != nil {
		return nil, fmt.Errorf("list maps: %w", err)
	}
	if len(maps) == 0 {
		return nil, fmt.Errorf("event %q has no stored maps", slug)
	}
	if only == "" {
		return maps, nil
	}
	for _, m := range maps {
		if m == only {
			return []string{only}, nil
		}
	}
	return nil, fmt.Errorf("map %q not stored for event %q (have: %v)", only, slug, maps)
}
