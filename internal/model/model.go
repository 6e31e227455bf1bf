package model

// EventSummary is a lightweight record for list/show commands.
type EventSummary struct {
	Slug      string
	Name      string
	EventDate string // "YYYY-MM-DD"
	Region    string
	MapCount  int // populated when queried (JOIN with player_map_stats)
}

// PlayerLine is one player's stat line on one map, transcribed from a
// third-party stats site. Counting stats are per-map totals; ACS, ADR,
// KASTPct and HSPct arrive pre-computed from the source table.
type PlayerLine struct {
	EventSlug string
	MapName   string

	Player string
	Team   string
	Agent  string

	Kills   int
	Deaths  int
	Assists int

	ACS     float64 // Average Combat Score
	ADR     float64 // Average Damage per Round
	KASTPct float64 // 0–100
	HSPct   float64 // 0–100

	FirstKills  int
	FirstDeaths int
}

// KDDiff returns kills minus deaths.
func (l *PlayerLine) KDDiff() int {
	return l.Kills - l.Deaths
}

// FKDiff returns first kills minus first deaths.
func (l *PlayerLine) FKDiff() int {
	return l.FirstKills - l.FirstDeaths
}

// KD returns the kill/death ratio. Deathless maps return Kills.
func (l *PlayerLine) KD() float64 {
	if l.Deaths == 0 {
		return float64(l.Kills)
	}
	return float64(l.Kills) / float64(l.Deaths)
}

// PlayerEventAggregate holds stats for a single player summed across every
// map of an event. Rate stats (ACS, ADR, KAST%, HS%) are unweighted means of
// the per-map values, which matches how the source tables report them.
type PlayerEventAggregate struct {
	Player string
	Team   string
	Maps   int

	Kills   int
	Deaths  int
	Assists int

	AvgACS     float64
	AvgADR     float64
	AvgKASTPct float64
	AvgHSPct   float64

	FirstKills  int
	FirstDeaths int
}

// KDDiff returns kills minus deaths across the event.
func (a *PlayerEventAggregate) KDDiff() int {
	return a.Kills - a.Deaths
}

// FKDiff returns first kills minus first deaths across the event.
func (a *PlayerEventAggregate) FKDiff() int {
	return a.FirstKills - a.FirstDeaths
}

// KD returns the event-wide kill/death ratio.
func (a *PlayerEventAggregate) KD() float64 {
	if a.Deaths == 0 {
		return float64(a.Kills)
	}
	return float64(a.Kills) / float64(a.Deaths)
}
