package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/pable/go-valo-stats/internal/storage"
)

// summaryCmd is the cobra command for displaying a high-level database overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the database",
	Long: `Display aggregate statistics about all events stored in the database:
event count, date range, map breakdown, and the cross-event ACS leaderboard.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ov, err := db.GetOverview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	if ov.TotalEvents == 0 {
		fmt.Fprintln(os.Stdout, "No events stored yet. Run 'valostats import <table.csv> --event <slug>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n=== Database Summary ===\n\n")
	fmt.Fprintf(os.Stdout, "  Events stored : %d\n", ov.TotalEvents)
	fmt.Fprintf(os.Stdout, "  Date range    : %s → %s\n", ov.EarliestDate, ov.LatestDate)
	fmt.Fprintf(os.Stdout, "  Unique maps   : %d\n", ov.TotalMaps)
	fmt.Fprintf(os.Stdout, "  Players seen  : %d\n", ov.TotalPlayers)
	fmt.Fprintf(os.Stdout, "  Stat lines    : %d\n", ov.TotalLines)

	// Map breakdown.
	maps, err := db.GetMapBreakdown()
	if err != nil {
		return fmt.Errorf("get map breakdown: %w", err)
	}
	fmt.Fprintf(os.Stdout, "\n--- Maps ---\n\n")
	mt := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	mt.Header("MAP", "EVENTS", "LINES")
	for _, m := range maps {
		mt.Append(
			m.MapName,
			fmt.Sprintf("%d", m.Events),
			fmt.Sprintf("%d", m.Lines),
		)
	}
	mt.Render()

	// Cross-event leaderboard.
	players, err := db.GetTopPlayers(10)
	if err != nil {
		return fmt.Errorf("get top players: %w", err)
	}
	fmt.Fprintf(os.Stdout, "\n--- ACS Leaderboard ---\n\n")
	pt := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	pt.Header("PLAYER", "TEAM", "MAPS", "AVG ACS", "AVG ADR")
	for _, p := range players {
		pt.Append(
			p.Player,
			p.Team,
			fmt.Sprintf("%d", p.Maps),
			fmt.Sprintf("%.0f", p.AvgACS),
			fmt.Sprintf("%.1f", p.AvgADR),
		)
	}
	pt.Render()

	return nil
}
