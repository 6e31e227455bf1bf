package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pable/go-valo-stats/internal/aggregator"
	"github.com/pable/go-valo-stats/internal/chartbuild"
	"github.com/pable/go-valo-stats/internal/model"
	"github.com/pable/go-valo-stats/internal/radar"
	"github.com/pable/go-valo-stats/internal/report"
	"github.com/pable/go-valo-stats/internal/storage"
)

var (
	chartMap     string
	chartPlayers string
	chartTop     int
	chartFormat  string
	chartScale   string
	chartOut     string
	chartWidth   int
	chartHeight  int
)

var chartCmd = &cobra.Command{
	Use:   "chart <event-slug>",
	Short: "Render radar charts comparing players per map",
	Long: `Render one overlaid radar chart per map: one axis per metric, one closed
polygon per player. Axes are the nine standard metrics (Kills, ACS, K-D Diff,
Assists, KAST%, ADR, HS%, First Kills, FK Diff).

A bigger polygon reads as a stronger overall map, but that is a visual
heuristic, not a score — the per-metric normalized values are printed
alongside every chart so single axes can be judged on their own.`,
	Args: cobra.ExactArgs(1),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartMap, "map", "", "only this map")
	chartCmd.Flags().StringVar(&chartPlayers, "players", "", "comma-separated players to overlay (default: top N by avg ACS)")
	chartCmd.Flags().IntVar(&chartTop, "top", 5, "number of players when --players is not set")
	chartCmd.Flags().StringVar(&chartFormat, "format", "svg", "output format: svg, png, or both")
	chartCmd.Flags().StringVar(&chartScale, "scale", "fixed", "axis scaling: fixed (declared ranges for %-axes) or observed")
	chartCmd.Flags().StringVar(&chartOut, "out", ".", "output directory")
	chartCmd.Flags().IntVar(&chartWidth, "width", 0, "chart width in px (default 640)")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "chart height in px (default 640)")
}

func runChart(cmd *cobra.Command, args []string) error {
	switch chartFormat {
	case "svg", "png", "both":
	default:
		return fmt.Errorf("invalid --format %q: use svg, png, or both", chartFormat)
	}
	switch chartScale {
	case "fixed", "observed":
	default:
		return fmt.Errorf("invalid --scale %q: use fixed or observed", chartScale)
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ev, err := resolveEvent(db, args[0])
	if err != nil {
		return err
	}
	maps, err := eventMaps(db, ev.Slug, chartMap)
	if err != nil {
		return err
	}

	players, err := chartRoster(db, ev.Slug)
	if err != nil {
		return err
	}
	log.Debug().Strs("players", players).Msg("chart roster")

	if err := os.MkdirAll(chartOut, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	opts := radar.DefaultOptions()
	if w := viper.GetInt("chart.width"); w > 0 {
		opts.Width = w
	}
	if h := viper.GetInt("chart.height"); h > 0 {
		opts.Height = h
	}
	if chartWidth > 0 {
		opts.Width = chartWidth
	}
	if chartHeight > 0 {
		opts.Height = chartHeight
	}

	metrics := model.DefaultMetrics()
	for _, m := range maps {
		lines, err := db.GetPlayerLines(ev.Slug, m)
		if err != nil {
			return fmt.Errorf("get lines for %s: %w", m, err)
		}
		picked, err := chartbuild.FilterPlayers(lines, players)
		if err != nil {
			return fmt.Errorf("map %s: %w", m, err)
		}

		c, err := chartbuild.FromLines(fmt.Sprintf("%s — %s", ev.Name, m), metrics, picked, chartScale == "observed")
		if err != nil {
			return fmt.Errorf("build chart for %s: %w", m, err)
		}
		fig, err := c.Build()
		if err != nil {
			return fmt.Errorf("build chart for %s: %w", m, err)
		}

		fmt.Fprintf(os.Stdout, "--- %s (normalized) ---\n", m)
		report.PrintNormalizedTable(os.Stdout, fig)
		fmt.Fprintln(os.Stdout)

		if chartFormat == "svg" || chartFormat == "both" {
			if err := writeChart(fig, opts, chartFile(ev.Slug, m, "svg"), radar.RenderSVG); err != nil {
				return err
			}
		}
		if chartFormat == "png" || chartFormat == "both" {
			if err := writeChart(fig, opts, chartFile(ev.Slug, m, "png"), radar.RenderPNG); err != nil {
				return err
			}
		}
	}
	return nil
}

// chartRoster resolves --players, falling back to the event's top N by
// average ACS across all maps.
func chartRoster(db *storage.DB, slug string) ([]string, error) {
	if chartPlayers != "" {
		var players []string
		for _, raw := range strings.Split(chartPlayers, ",") {
			if p := strings.TrimSpace(raw); p != "" {
				players = append(players, p)
			}
		}
		return players, nil
	}
	all, err := db.GetPlayerLinesAllMaps(slug)
	if err != nil {
		return nil, fmt.Errorf("get event lines: %w", err)
	}
	aggs, err := aggregator.AggregateEvent(all)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	return aggregator.TopPlayers(aggs, chartTop), nil
}

func chartFile(slug, mapName, ext string) string {
	name := fmt.Sprintf("%s_%s.%s", slug, strings.ToLower(mapName), ext)
	return filepath.Join(chartOut, name)
}

func writeChart(fig *radar.Figure, opts radar.RenderOptions, path string, render func(w io.Writer, fig *radar.Figure, opts radar.RenderOptions) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f, fig, opts); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Info().Str("file", path).Msg("chart written")
	return nil
}
