// Package dataset reads manually transcribed stat tables into PlayerLines.
// Input is CSV with a header row; one row per player per map. Validation is
// fail-fast: a malformed or missing cell aborts the whole import with an
// IncompleteRecordError naming the row and column, so the source table can
// be fixed instead of debugging a chart downstream.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pable/go-valo-stats/internal/model"
)

// Columns required in the CSV header, in any order. Extra columns are ignored.
var requiredColumns = []string{
	"map", "player", "team", "agent",
	"kills", "deaths", "assists",
	"acs", "adr", "kast", "hs",
	"fk", "fd",
}

// IncompleteRecordError reports a row that cannot be turned into a complete
// PlayerLine: a blank cell, an unparsable number, or a duplicated player.
type IncompleteRecordError struct {
	Row    int // 1-based, counting the header as row 1
	Column string
	Reason string
}

func (e *IncompleteRecordError) Error() string {
	return fmt.Sprintf("dataset: row %d column %q: %s", e.Row, e.Column, e.Reason)
}

// Table is one imported event: per-map player lines in source order.
type Table struct {
	Maps  []string                      // first-seen order
	Lines map[string][]model.PlayerLine // keyed by map name
}

// AllLines flattens the table in map order.
func (t *Table) AllLines() []model.PlayerLine {
	var out []model.PlayerLine
	for _, m := range t.Maps {
		out = append(out, t.Lines[m]...)
	}
	return out
}

// ReadFile opens and parses a transcribed CSV table.
func ReadFile(path, eventSlug string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, eventSlug)
}

// ReadCSV parses a transcribed table from r, tagging every line with the
// given event slug.
func ReadCSV(r io.Reader, eventSlug string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("dataset: header is missing required column %q", c)
		}
	}

	t := &Table{Lines: make(map[string][]model.PlayerLine)}
	seen := make(map[string]struct{}) // map+player uniqueness

	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}

		line := model.PlayerLine{EventSlug: eventSlug}
		rr := rowReader{rec: rec, cols: cols, row: row}

		line.MapName = rr.str("map")
		line.Player = rr.str("player")
		line.Team = rr.str("team")
		line.Agent = rr.str("agent")
		line.Kills = rr.integer("kills")
		line.Deaths = rr.integer("deaths")
		line.Assists = rr.integer("assists")
		line.ACS = rr.float("acs")
		line.ADR = rr.float("adr")
		line.KASTPct = rr.percent("kast")
		line.HSPct = rr.percent("hs")
		line.FirstKills = rr.integer("fk")
		line.FirstDeaths = rr.integer("fd")
		if rr.err != nil {
			return nil, rr.err
		}

		key := line.MapName + "\x00" + line.Player
		if _, dup := seen[key]; dup {
			return nil, &IncompleteRecordError{
				Row: row, Column: "player",
				Reason: fmt.Sprintf("duplicate line for %s on %s", line.Player, line.MapName),
			}
		}
		seen[key] = struct{}{}

		if _, ok := t.Lines[line.MapName]; !ok {
			t.Maps = append(t.Maps, line.MapName)
		}
		t.Lines[line.MapName] = append(t.Lines[line.MapName], line)
	}

	if len(t.Maps) == 0 {
		return nil, fmt.Errorf("dataset: table has no data rows")
	}
	return t, nil
}

// rowReader extracts typed cells from one CSV record, latching the first
// error so call sites stay flat.
type rowReader struct {
	rec  []string
	cols map[string]int
	row  int
	err  error
}

func (r *rowReader) cell(col string) string {
	i := r.cols[col]
	if i >= len(r.rec) {
		return ""
	}
	return strings.TrimSpace(r.rec[i])
}

func (r *rowReader) str(col string) string {
	if r.err != nil {
		return ""
	}
	v := r.cell(col)
	if v == "" {
		r.err = &IncompleteRecordError{Row: r.row, Column: col, Reason: "empty cell"}
	}
	return v
}

func (r *rowReader) integer(col string) int {
	if r.err != nil {
		return 0
	}
	v := r.cell(col)
	if v == "" {
		r.err = &IncompleteRecordError{Row: r.row, Column: col, Reason: "empty cell"}
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.err = &IncompleteRecordError{Row: r.row, Column: col, Reason: fmt.Sprintf("not an integer: %q", v)}
		return 0
	}
	return n
}

func (r *rowReader) float(col string) float64 {
	if r.err != nil {
		return 0
	}
	v := r.cell(col)
	if v == "" {
		r.err = &IncompleteRecordError{Row: r.row, Column: col, Reason: "empty cell"}
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.err = &IncompleteRecordError{Row: r.row, Column: col, Reason: fmt.Sprintf("not a number: %q", v)}
		return 0
	}
	return f
}

// percent parses "74" or "74%" into 74.0.
func (r *rowReader) percent(col string) float64 {
	if r.err != nil {
		return 0
	}
	v := strings.TrimSuffix(r.cell(col), "%")
	if v == "" {
		r.err = &IncompleteRecordError{Row: r.row, Column: col, Reason: "empty cell"}
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.err = &IncompleteRecordError{Row: r.row, Column: col, Reason: fmt.Sprintf("not a percentage: %q", v)}
		return 0
	}
	return f
}
