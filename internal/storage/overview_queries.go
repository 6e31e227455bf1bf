package storage

// Overview holds headline counts for the whole database.
type Overview struct {
	TotalEvents  int
	TotalMaps    int
	TotalPlayers int
	TotalLines   int
	EarliestDate string
	LatestDate   string
}

// MapBreakdown is one map's appearance count across all events.
type MapBreakdown struct {
	MapName string
	Events  int
	Lines   int
}

// TopPlayer is one row of the cross-event ACS leaderboard.
type TopPlayer struct {
	Player string
	Team   string
	Maps   int
	AvgACS float64
	AvgADR float64
}

// GetOverview returns headline counts across every stored event.
func (db *DB) GetOverview() (*Overview, error) {
	var ov Overview
	err := db.conn.QueryRow(`
		SELECT
			(SELECT COUNT(1) FROM events),
			(SELECT COUNT(DISTINCT map_name) FROM player_map_stats),
			(SELECT COUNT(DISTINCT player) FROM player_map_stats),
			(SELECT COUNT(1) FROM player_map_stats),
			COALESCE((SELECT MIN(event_date) FROM events WHERE event_date != ''), ''),
			COALESCE((SELECT MAX(event_date) FROM events WHERE event_date != ''), '')`,
	).Scan(&ov.TotalEvents, &ov.TotalMaps, &ov.TotalPlayers, &ov.TotalLines,
		&ov.EarliestDate, &ov.LatestDate)
	if err != nil {
		return nil, err
	}
	return &ov, nil
}

// GetMapBreakdown returns per-map counts across all events, most played first.
func (db *DB) GetMapBreakdown() ([]MapBreakdown, error) {
	rows, err := db.conn.Query(`
		SELECT map_name, COUNT(DISTINCT event_slug), COUNT(1)
		FROM player_map_stats
		GROUP BY map_name
		ORDER BY COUNT(DISTINCT event_slug) DESC, map_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MapBreakdown
	for rows.Next() {
		var m MapBreakdown
		if err := rows.Scan(&m.MapName, &m.Events, &m.Lines); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetTopPlayers returns the cross-event ACS leaderboard, limited to n rows.
func (db *DB) GetTopPlayers(n int) ([]TopPlayer, error) {
	rows, err := db.conn.Query(`
		SELECT player, MAX(team), COUNT(1), AVG(acs), AVG(adr)
		FROM player_map_stats
		GROUP BY player
		ORDER BY AVG(acs) DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TopPlayer
	for rows.Next() {
		var p TopPlayer
		if err := rows.Scan(&p.Player, &p.Team, &p.Maps, &p.AvgACS, &p.AvgADR); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
