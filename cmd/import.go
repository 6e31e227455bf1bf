package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pable/go-valo-stats/internal/dataset"
	"github.com/pable/go-valo-stats/internal/model"
	"github.com/pable/go-valo-stats/internal/report"
	"github.com/pable/go-valo-stats/internal/storage"
)

var (
	importEvent  string
	importName   string
	importDate   string
	importRegion string
)

var importCmd = &cobra.Command{
	Use:   "import <table.csv>",
	Short: "Import a transcribed stat table for an event",
	Long: `Parse a CSV stat table (one row per player per map) and store it under
an event slug. Required columns:

  map,player,team,agent,kills,deaths,assists,acs,adr,kast,hs,fk,fd

Percentages accept "74" or "74%". Re-importing the same event replaces
existing lines for the same map+player.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importEvent, "event", "", "event slug, e.g. masters-copenhagen-2022")
	importCmd.Flags().StringVar(&importName, "name", "", "display name (default: the slug)")
	importCmd.Flags().StringVar(&importDate, "date", "", "event date, YYYY-MM-DD")
	importCmd.Flags().StringVar(&importRegion, "region", "", "region label, e.g. EMEA")
	importCmd.MarkFlagRequired("event")
}

func runImport(cmd *cobra.Command, args []string) error {
	tablePath := args[0]

	table, err := dataset.ReadFile(tablePath, importEvent)
	if err != nil {
		return fmt.Errorf("import table: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	exists, err := db.EventExists(importEvent)
	if err != nil {
		return fmt.Errorf("check event: %w", err)
	}
	if exists {
		log.Info().Str("event", importEvent).Msg("event already stored, replacing lines")
	}

	name := importName
	if name == "" {
		name = importEvent
	}
	ev := model.EventSummary{
		Slug:      importEvent,
		Name:      name,
		EventDate: importDate,
		Region:    importRegion,
		MapCount:  len(table.Maps),
	}
	if err := db.InsertEvent(ev); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	if err := db.InsertPlayerLines(table.AllLines()); err != nil {
		return fmt.Errorf("insert player lines: %w", err)
	}

	report.PrintEventSummary(os.Stdout, ev)
	for _, m := range table.Maps {
		report.PrintMapTable(os.Stdout, m, table.Lines[m], "")
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
