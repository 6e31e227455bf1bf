package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-valo-stats/internal/model"
	"github.com/pable/go-valo-stats/internal/radar"
)

func newStatsTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintEventSummary prints a one-line header for the event.
func PrintEventSummary(w io.Writer, ev model.EventSummary) {
	region := ev.Region
	if region == "" {
		region = "—"
	}
	fmt.Fprintf(w, "\nEvent: %s  |  Date: %s  |  Region: %s  |  Maps: %d  |  Slug: %s\n\n",
		ev.Name, ev.EventDate, region, ev.MapCount, ev.Slug)
}

// PrintMapTable prints the raw stat lines for one map.
// If focusPlayer is non-empty, that player's row is marked with ">".
func PrintMapTable(w io.Writer, mapName string, lines []model.PlayerLine, focusPlayer string) {
	fmt.Fprintf(w, "--- %s ---\n", mapName)
	table := newStatsTable(w)
	table.Header(" ", "PLAYER", "TEAM", "AGENT", "K", "D", "A", "+/-", "ACS", "ADR", "KAST%", "HS%", "FK", "FD", "FK+/-")

	for i := range lines {
		l := &lines[i]
		marker := " "
		if focusPlayer != "" && l.Player == focusPlayer {
			marker = ">"
		}
		table.Append(
			marker,
			l.Player,
			l.Team,
			l.Agent,
			strconv.Itoa(l.Kills),
			strconv.Itoa(l.Deaths),
			strconv.Itoa(l.Assists),
			fmt.Sprintf("%+d", l.KDDiff()),
			fmt.Sprintf("%.0f", l.ACS),
			fmt.Sprintf("%.1f", l.ADR),
			fmt.Sprintf("%.0f%%", l.KASTPct),
			fmt.Sprintf("%.0f%%", l.HSPct),
			strconv.Itoa(l.FirstKills),
			strconv.Itoa(l.FirstDeaths),
			fmt.Sprintf("%+d", l.FKDiff()),
		)
	}
	table.Render()
}

// PrintAggregateTable prints event-wide per-player aggregates.
func PrintAggregateTable(w io.Writer, aggs []model.PlayerEventAggregate, focusPlayer string) {
	table := newStatsTable(w)
	table.Header(" ", "PLAYER", "TEAM", "MAPS", "K", "D", "A", "+/-", "K/D", "ACS", "ADR", "KAST%", "HS%", "FK+/-")

	for i := range aggs {
		a := &aggs[i]
		marker := " "
		if focusPlayer != "" && a.Player == focusPlayer {
			marker = ">"
		}
		table.Append(
			marker,
			a.Player,
			a.Team,
			strconv.Itoa(a.Maps),
			strconv.Itoa(a.Kills),
			strconv.Itoa(a.Deaths),
			strconv.Itoa(a.Assists),
			fmt.Sprintf("%+d", a.KDDiff()),
			fmt.Sprintf("%.2f", a.KD()),
			fmt.Sprintf("%.0f", a.AvgACS),
			fmt.Sprintf("%.1f", a.AvgADR),
			fmt.Sprintf("%.0f%%", a.AvgKASTPct),
			fmt.Sprintf("%.0f%%", a.AvgHSPct),
			fmt.Sprintf("%+d", a.FKDiff()),
		)
	}
	table.Render()
}

// PrintNormalizedTable prints the per-axis normalized values of a built
// figure, one row per player. The chart's polygon area is only a visual
// heuristic; this table is the honest per-metric view that goes with it.
func PrintNormalizedTable(w io.Writer, fig *radar.Figure) {
	header := make([]any, 0, len(fig.Axes.Names)+1)
	header = append(header, "PLAYER")
	for _, name := range fig.Axes.Names {
		header = append(header, name)
	}

	table := newStatsTable(w)
	table.Header(header...)

	for _, t := range fig.Traces {
		row := make([]any, 0, len(t.Normalized)+1)
		row = append(row, t.Label)
		for _, v := range t.Normalized {
			row = append(row, fmt.Sprintf("%.3f", v))
		}
		table.Append(row...)
	}
	table.Render()
}
