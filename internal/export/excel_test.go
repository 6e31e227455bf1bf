package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/pable/go-valo-stats/internal/model"
	"github.com/pable/go-valo-stats/internal/radar"
)

func testEvent() model.EventSummary {
	return model.EventSummary{
		Slug: "masters-cph-2022", Name: "Masters Copenhagen 2022",
		EventDate: "2022-07-10", Region: "EMEA", MapCount: 1,
	}
}

func testLines() []model.PlayerLine {
	return []model.PlayerLine{
		{
			Player: "aspas", Team: "LOUD", Agent: "Jett", MapName: "Ascent",
			Kills: 22, Deaths: 14, Assists: 3,
			ACS: 265, ADR: 168.3, KASTPct: 74, HSPct: 28,
			FirstKills: 5, FirstDeaths: 2,
		},
		{
			Player: "Derke", Team: "FNC", Agent: "Chamber", MapName: "Ascent",
			Kills: 19, Deaths: 16, Assists: 6,
			ACS: 241.5, ADR: 155, KASTPct: 70, HSPct: 31,
			FirstKills: 3, FirstDeaths: 4,
		},
	}
}

func testFigure(t *testing.T, lines []model.PlayerLine) *radar.Figure {
	t.Helper()
	metrics := []radar.Metric{
		{Name: "Kills", Min: 0, Max: 30, Explicit: true},
		{Name: "ACS", Min: 0, Max: 300, Explicit: true},
		{Name: "HS%", Min: 0, Max: 100, Explicit: true},
	}
	series := make([]radar.Series, 0, len(lines))
	for i := range lines {
		l := &lines[i]
		series = append(series, radar.Series{
			Label:  l.Player,
			Values: []float64{float64(l.Kills), l.ACS, l.HSPct},
		})
	}
	c, err := radar.New("Ascent", metrics, series)
	if err != nil {
		t.Fatalf("radar.New: %v", err)
	}
	fig, err := c.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return fig
}

func readBack(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	if err != nil {
		t.Fatalf("GetCellValue(%s!%s): %v", sheet, ref, err)
	}
	return v
}

func TestWriteExcel(t *testing.T) {
	lines := testLines()
	linesByMap := map[string][]model.PlayerLine{"Ascent": lines}
	figs := map[string]*radar.Figure{"Ascent": testFigure(t, lines)}

	var buf bytes.Buffer
	if err := WriteExcel(&buf, testEvent(), []string{"Ascent"}, linesByMap, figs); err != nil {
		t.Fatalf("WriteExcel: %v", err)
	}

	f := readBack(t, &buf)
	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Ascent" {
		t.Fatalf("sheets = %v, want [Ascent]", sheets)
	}

	// Raw block: header row, then one row per player with integer cells
	// written as numbers.
	if got := cell(t, f, "Ascent", "A3"); got != "Player" {
		t.Errorf("A3 = %q, want Player", got)
	}
	if got := cell(t, f, "Ascent", "A4"); got != "aspas" {
		t.Errorf("A4 = %q, want aspas", got)
	}
	if got := cell(t, f, "Ascent", "D4"); got != "22" {
		t.Errorf("D4 kills = %q, want 22", got)
	}
	if got := cell(t, f, "Ascent", "G5"); got != "3" {
		t.Errorf("G5 K-D diff = %q, want 3", got)
	}

	// Normalized block follows two rows below the last stat line.
	if got := cell(t, f, "Ascent", "A7"); got != "Normalized (chart scale)" {
		t.Errorf("A7 = %q, want normalized heading", got)
	}
	if got := cell(t, f, "Ascent", "A8"); got != "Player" {
		t.Errorf("A8 = %q, want Player", got)
	}
	if got := cell(t, f, "Ascent", "A9"); got != "aspas" {
		t.Errorf("A9 = %q, want aspas", got)
	}
	if got := cell(t, f, "Ascent", "B9"); got != "0.733" {
		t.Errorf("B9 normalized kills = %q, want 0.733", got)
	}
}

func TestWriteExcelMissingFigure(t *testing.T) {
	lines := testLines()
	linesByMap := map[string][]model.PlayerLine{"Ascent": lines}

	var buf bytes.Buffer
	if err := WriteExcel(&buf, testEvent(), []string{"Ascent"}, linesByMap, nil); err != nil {
		t.Fatalf("WriteExcel: %v", err)
	}

	// The raw block still exports and the sheet says why the normalized
	// block is missing.
	f := readBack(t, &buf)
	if got := cell(t, f, "Ascent", "A4"); got != "aspas" {
		t.Errorf("A4 = %q, want aspas", got)
	}
	want := "Normalized values omitted: a chart axis has no spread on this map"
	if got := cell(t, f, "Ascent", "A7"); got != want {
		t.Errorf("A7 = %q, want omission note", got)
	}
}
