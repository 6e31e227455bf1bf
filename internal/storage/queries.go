package storage

import (
	"database/sql"
	"fmt"

	"github.com/pable/go-valo-stats/internal/model"
)

// EventExists returns true if an event with the given slug is already stored.
func (db *DB) EventExists(slug string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM events WHERE slug = ?", slug).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertEvent inserts an event record. Uses INSERT OR REPLACE for idempotency.
func (db *DB) InsertEvent(ev model.EventSummary) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO events(slug, name, event_date, region)
		VALUES (?, ?, ?, ?)`,
		ev.Slug, ev.Name, ev.EventDate, ev.Region,
	)
	return err
}

// GetEventBySlug resolves a slug or unique slug prefix to a stored event.
// Returns nil when nothing matches.
func (db *DB) GetEventBySlug(prefix string) (*model.EventSummary, error) {
	row := db.conn.QueryRow(`
		SELECT e.slug, e.name, e.event_date, e.region,
		       (SELECT COUNT(DISTINCT map_name) FROM player_map_stats WHERE event_slug = e.slug)
		FROM events e
		WHERE e.slug = ? OR e.slug LIKE ?
		ORDER BY e.slug = ? DESC
		LIMIT 1`,
		prefix, prefix+"%", prefix)

	var ev model.EventSummary
	err := row.Scan(&ev.Slug, &ev.Name, &ev.EventDate, &ev.Region, &ev.MapCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// ListEvents returns all stored events, newest first.
func (db *DB) ListEvents() ([]model.EventSummary, error) {
	rows, err := db.conn.Query(`
		SELECT e.slug, e.name, e.event_date, e.region,
		       (SELECT COUNT(DISTINCT map_name) FROM player_map_stats WHERE event_slug = e.slug)
		FROM events e
		ORDER BY e.event_date DESC, e.slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.EventSummary
	for rows.Next() {
		var ev model.EventSummary
		if err := rows.Scan(&ev.Slug, &ev.Name, &ev.EventDate, &ev.Region, &ev.MapCount); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// DeleteEvent removes an event and (via cascade) its player lines.
// Returns true if an event row was actually deleted.
func (db *DB) DeleteEvent(slug string) (bool, error) {
	// The cascade needs foreign keys on; delete lines explicitly as well so
	// behavior does not depend on the connection pragma.
	tx, err := db.conn.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM player_map_stats WHERE event_slug = ?", slug); err != nil {
		return false, err
	}
	res, err := tx.Exec("DELETE FROM events WHERE slug = ?", slug)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, tx.Commit()
}

// InsertPlayerLines bulk-inserts player map lines in a transaction.
func (db *DB) InsertPlayerLines(lines []model.PlayerLine) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO player_map_stats(
			event_slug, map_name, player, team, agent,
			kills, deaths, assists,
			acs, adr, kast_pct, hs_pct,
			first_kills, first_deaths
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, l := range lines {
		_, err = stmt.Exec(
			l.EventSlug, l.MapName, l.Player, l.Team, l.Agent,
			l.Kills, l.Deaths, l.Assists,
			l.ACS, l.ADR, l.KASTPct, l.HSPct,
			l.FirstKills, l.FirstDeaths,
		)
		if err != nil {
			return fmt.Errorf("insert player_map_stats for %s on %s: %w", l.Player, l.MapName, err)
		}
	}
	return tx.Commit()
}

// ListMaps returns the maps stored for an event, alphabetical.
func (db *DB) ListMaps(eventSlug string) ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT DISTINCT map_name FROM player_map_stats
		WHERE event_slug = ?
		ORDER BY map_name`, eventSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var maps []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}
	return maps, rows.Err()
}

const playerLineColumns = `
	event_slug, map_name, player, team, agent,
	kills, deaths, assists,
	acs, adr, kast_pct, hs_pct,
	first_kills, first_deaths`

func scanPlayerLines(rows *sql.Rows) ([]model.PlayerLine, error) {
	var out []model.PlayerLine
	for rows.Next() {
		var l model.PlayerLine
		err := rows.Scan(
			&l.EventSlug, &l.MapName, &l.Player, &l.Team, &l.Agent,
			&l.Kills, &l.Deaths, &l.Assists,
			&l.ACS, &l.ADR, &l.KASTPct, &l.HSPct,
			&l.FirstKills, &l.FirstDeaths,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// GetPlayerLines returns the stat lines for one map of an event, best ACS first.
func (db *DB) GetPlayerLines(eventSlug, mapName string) ([]model.PlayerLine, error) {
	rows, err := db.conn.Query(`
		SELECT `+playerLineColumns+`
		FROM player_map_stats
		WHERE event_slug = ? AND map_name = ?
		ORDER BY acs DESC`, eventSlug, mapName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlayerLines(rows)
}

// GetPlayerLinesAllMaps returns every stat line of an event, grouped by map.
func (db *DB) GetPlayerLinesAllMaps(eventSlug string) ([]model.PlayerLine, error) {
	rows, err := db.conn.Query(`
		SELECT `+playerLineColumns+`
		FROM player_map_stats
		WHERE event_slug = ?
		ORDER BY map_name, acs DESC`, eventSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlayerLines(rows)
}

// QueryRaw runs an arbitrary query and stringifies every cell for display.
func (db *DB) QueryRaw(query string) (cols []string, rows [][]string, err error) {
	r, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	cols, err = r.Columns()
	if err != nil {
		return nil, nil, err
	}
	for r.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := r.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			switch t := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(t)
			case float64:
				row[i] = fmt.Sprintf("%g", t)
			default:
				row[i] = fmt.Sprint(t)
			}
		}
		rows = append(rows, row)
	}
	return cols, rows, r.Err()
}
