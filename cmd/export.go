package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pable/go-valo-stats/internal/chartbuild"
	"github.com/pable/go-valo-stats/internal/export"
	"github.com/pable/go-valo-stats/internal/model"
	"github.com/pable/go-valo-stats/internal/radar"
	"github.com/pable/go-valo-stats/internal/storage"
)

var (
	exportOut string
	exportMap string
)

var exportCmd = &cobra.Command{
	Use:   "export <event-slug>",
	Short: "Export an event to an Excel workbook",
	Long: `Write an event to an .xlsx workbook: one sheet per map with the raw stat
lines and the normalized chart-scale values for every player.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default <slug>.xlsx)")
	exportCmd.Flags().StringVar(&exportMap, "map", "", "only this map")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ev, err := resolveEvent(db, args[0])
	if err != nil {
		return err
	}
	maps, err := eventMaps(db, ev.Slug, exportMap)
	if err != nil {
		return err
	}

	metrics := model.DefaultMetrics()
	linesByMap := make(map[string][]model.PlayerLine, len(maps))
	figs := make(map[string]*radar.Figure, len(maps))
	for _, m := range maps {
		lines, err := db.GetPlayerLines(ev.Slug, m)
		if err != nil {
			return fmt.Errorf("get lines for %s: %w", m, err)
		}
		linesByMap[m] = lines

		c, err := chartbuild.FromLines(m, metrics, lines, false)
		if err != nil {
			return fmt.Errorf("build chart for %s: %w", m, err)
		}
		fig, err := c.Build()
		if err != nil {
			// Degenerate axis (everyone identical on some metric): the raw
			// block still exports; the sheet carries a note for the omitted
			// normalized block.
			log.Warn().Err(err).Str("map", m).Msg("skipping normalized block")
			continue
		}
		figs[m] = fig
	}

	out := exportOut
	if out == "" {
		out = ev.Slug + ".xlsx"
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := export.WriteExcel(f, *ev, maps, linesByMap, figs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}
	log.Info().Str("file", out).Msg("workbook written")
	return nil
}
