package aggregator

import (
	"fmt"
	"sort"

	"github.com/pable/go-valo-stats/internal/model"
)

// AggregateEvent rolls per-map player lines up into one aggregate per player.
// Counting stats are summed; rate stats (ACS, ADR, KAST%, HS%) are unweighted
// means of the per-map values, matching how the source tables report them.
// Output is sorted by average ACS descending.
func AggregateEvent(lines []model.PlayerLine) ([]model.PlayerEventAggregate, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("no player lines to aggregate")
	}

	type accum struct {
		agg     model.PlayerEventAggregate
		acsSum  float64
		adrSum  float64
		kastSum float64
		hsSum   float64
	}
	byPlayer := make(map[string]*accum)
	var order []string

	for _, l := range lines {
		a, ok := byPlayer[l.Player]
		if !ok {
			a = &accum{agg: model.PlayerEventAggregate{Player: l.Player, Team: l.Team}}
			byPlayer[l.Player] = a
			order = append(order, l.Player)
		}
		a.agg.Maps++
		a.agg.Kills += l.Kills
		a.agg.Deaths += l.Deaths
		a.agg.Assists += l.Assists
		a.agg.FirstKills += l.FirstKills
		a.agg.FirstDeaths += l.FirstDeaths
		a.acsSum += l.ACS
		a.adrSum += l.ADR
		a.kastSum += l.KASTPct
		a.hsSum += l.HSPct
	}

	out := make([]model.PlayerEventAggregate, 0, len(order))
	for _, p := range order {
		a := byPlayer[p]
		n := float64(a.agg.Maps)
		a.agg.AvgACS = a.acsSum / n
		a.agg.AvgADR = a.adrSum / n
		a.agg.AvgKASTPct = a.kastSum / n
		a.agg.AvgHSPct = a.hsSum / n
		out = append(out, a.agg)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgACS != out[j].AvgACS {
			return out[i].AvgACS > out[j].AvgACS
		}
		return out[i].Player < out[j].Player
	})
	return out, nil
}

// TopPlayers returns the names of the n best players by average ACS.
func TopPlayers(aggs []model.PlayerEventAggregate, n int) []string {
	if n > len(aggs) {
		n = len(aggs)
	}
	names := make([]string, 0, n)
	for _, a := range aggs[:n] {
		names = append(names, a.Player)
	}
	return names
}
