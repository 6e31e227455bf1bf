// Package chartbuild turns stored stat lines into radar charts over the
// standard metric catalog.
package chartbuild

import (
	"fmt"

	"github.com/pable/go-valo-stats/internal/model"
	"github.com/pable/go-valo-stats/internal/radar"
)

// FromLines builds a radar chart with one series per player line.
//
// With forceObserved false, metrics with a declared fixed range (the
// percentage axes) keep it and the rest scale against the overlaid players;
// with forceObserved true every axis scales against the overlaid players,
// which is how the original tournament analyses were plotted.
func FromLines(title string, metrics []model.MetricDef, lines []model.PlayerLine, forceObserved bool) (*radar.Chart, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("no player lines for chart %q", title)
	}

	rms := make([]radar.Metric, len(metrics))
	for i, m := range metrics {
		rms[i] = radar.Metric{
			Name:     m.Name,
			Min:      m.Min,
			Max:      m.Max,
			Explicit: m.Fixed && !forceObserved,
		}
	}

	series := make([]radar.Series, 0, len(lines))
	for i := range lines {
		l := &lines[i]
		values := make([]float64, len(metrics))
		for j, m := range metrics {
			values[j] = m.Value(l)
		}
		series = append(series, radar.Series{Label: l.Player, Values: values})
	}

	return radar.New(title, rms, series)
}

// FilterPlayers keeps only the named players, in line order. Every requested
// player must be present on the map; a miss is reported rather than silently
// charting fewer polygons.
func FilterPlayers(lines []model.PlayerLine, players []string) ([]model.PlayerLine, error) {
	if len(players) == 0 {
		return lines, nil
	}
	want := make(map[string]bool, len(players))
	for _, p := range players {
		want[p] = true
	}
	var out []model.PlayerLine
	for _, l := range lines {
		if want[l.Player] {
			out = append(out, l)
			delete(want, l.Player)
		}
	}
	for p := range want {
		return nil, fmt.Errorf("player %q has no stat line on this map", p)
	}
	return out, nil
}
