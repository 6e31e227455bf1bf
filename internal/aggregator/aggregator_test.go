package aggregator

import (
	"testing"

	"github.com/pable/go-valo-stats/internal/model"
)

func mapLine(player, mapName string, kills, deaths int, acs, kast float64) model.PlayerLine {
	return model.PlayerLine{
		EventSlug: "ev", MapName: mapName, Player: player, Team: "LOUD",
		Kills: kills, Deaths: deaths, Assists: 2,
		ACS: acs, ADR: 150, KASTPct: kast, HSPct: 30,
		FirstKills: 3, FirstDeaths: 1,
	}
}

func TestAggregateEvent(t *testing.T) {
	lines := []model.PlayerLine{
		mapLine("aspas", "Ascent", 22, 14, 260, 70),
		mapLine("aspas", "Bind", 26, 16, 300, 80),
		mapLine("Derke", "Ascent", 18, 15, 240, 72),
	}

	aggs, err := AggregateEvent(lines)
	if err != nil {
		t.Fatalf("AggregateEvent: %v", err)
	}
	if len(aggs) != 2 {
		t.Fatalf("got %d aggregates, want 2", len(aggs))
	}

	// Sorted by average ACS descending.
	a := aggs[0]
	if a.Player != "aspas" {
		t.Fatalf("top aggregate is %q, want aspas", a.Player)
	}
	if a.Maps != 2 {
		t.Errorf("maps = %d, want 2", a.Maps)
	}
	if a.Kills != 48 || a.Deaths != 30 || a.Assists != 4 {
		t.Errorf("counting sums = %d/%d/%d", a.Kills, a.Deaths, a.Assists)
	}
	if a.AvgACS != 280 {
		t.Errorf("avg ACS = %v, want 280", a.AvgACS)
	}
	if a.AvgKASTPct != 75 {
		t.Errorf("avg KAST = %v, want 75", a.AvgKASTPct)
	}
	if a.FirstKills != 6 || a.FirstDeaths != 2 {
		t.Errorf("FK/FD sums = %d/%d", a.FirstKills, a.FirstDeaths)
	}

	if aggs[1].Player != "Derke" || aggs[1].Maps != 1 {
		t.Errorf("second aggregate = %+v", aggs[1])
	}
}

func TestAggregateEventEmpty(t *testing.T) {
	if _, err := AggregateEvent(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestTopPlayers(t *testing.T) {
	lines := []model.PlayerLine{
		mapLine("aspas", "Ascent", 22, 14, 260, 70),
		mapLine("Derke", "Ascent", 18, 15, 240, 72),
		mapLine("yay", "Ascent", 20, 12, 250, 75),
	}
	aggs, err := AggregateEvent(lines)
	if err != nil {
		t.Fatalf("AggregateEvent: %v", err)
	}

	top := TopPlayers(aggs, 2)
	if len(top) != 2 || top[0] != "aspas" || top[1] != "yay" {
		t.Errorf("top 2 = %v, want [aspas yay]", top)
	}

	all := TopPlayers(aggs, 10)
	if len(all) != 3 {
		t.Errorf("TopPlayers over-asked returned %d names", len(all))
	}
}
