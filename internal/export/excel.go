// Package export writes event stat sheets to Excel workbooks: one sheet per
// map, a raw stat block followed by the normalized chart values.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/pable/go-valo-stats/internal/model"
	"github.com/pable/go-valo-stats/internal/radar"
)

var headerFont = &excelize.Font{
	Family: "Arial",
	Size:   18,
	Bold:   true,
}

// compass tracks a cursor position on a sheet so blocks can be written
// relative to each other.
type compass struct {
	f        *excelize.File
	s        string
	row, col int
}

func newCompass(f *excelize.File, sheet string) *compass {
	return &compass{f: f, s: sheet}
}

func (c *compass) Sheet(sheet string) *compass {
	c.s = sheet
	c.row, c.col = 0, 0
	return c
}

func (c *compass) Down(n int) *compass {
	c.row += n
	return c
}

func (c *compass) Left(n int) *compass {
	c.col -= n
	if c.col < 0 {
		c.col = 0
	}
	return c
}

func (c *compass) Right(n int) *compass {
	c.col += n
	return c
}

func (c *compass) Cell() string {
	cell, _ := excelize.CoordinatesToCellName(c.col+1, c.row+1, false)
	return cell
}

func (c *compass) Heading(text string) *compass {
	c.f.SetCellRichText(c.s, c.Cell(), []excelize.RichTextRun{
		{Text: text, Font: headerFont},
	})
	return c
}

func (c *compass) Str(text string) *compass {
	c.f.SetCellStr(c.s, c.Cell(), text)
	return c
}

func (c *compass) Int(n int) *compass {
	c.f.SetCellInt(c.s, c.Cell(), n)
	return c
}

func (c *compass) Float(n float64, precision int) *compass {
	c.f.SetCellFloat(c.s, c.Cell(), n, precision, 64)
	return c
}

// WriteExcel writes the event workbook. figs supplies the normalized block
// per map and may omit maps; those sheets get a note in place of the block.
func WriteExcel(w io.Writer, ev model.EventSummary, maps []string, linesByMap map[string][]model.PlayerLine, figs map[string]*radar.Figure) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, mapName := range maps {
		sheet := mapName
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}
		c := newCompass(f, "").Sheet(sheet)

		c.Heading(fmt.Sprintf("%s — %s", ev.Name, mapName))

		c.Down(2).Str("Player")
		c.Right(1).Str("Team")
		c.Right(1).Str("Agent")
		c.Right(1).Str("Kills")
		c.Right(1).Str("Deaths")
		c.Right(1).Str("Assists")
		c.Right(1).Str("K-D Diff")
		c.Right(1).Str("ACS")
		c.Right(1).Str("ADR")
		c.Right(1).Str("KAST%")
		c.Right(1).Str("HS%")
		c.Right(1).Str("First Kills")
		c.Right(1).Str("First Deaths")

		lines := linesByMap[mapName]
		for j := range lines {
			l := &lines[j]
			c.Down(1).Left(12).Str(l.Player)
			c.Right(1).Str(l.Team)
			c.Right(1).Str(l.Agent)
			c.Right(1).Int(l.Kills)
			c.Right(1).Int(l.Deaths)
			c.Right(1).Int(l.Assists)
			c.Right(1).Int(l.KDDiff())
			c.Right(1).Float(l.ACS, 1)
			c.Right(1).Float(l.ADR, 1)
			c.Right(1).Float(l.KASTPct, 1)
			c.Right(1).Float(l.HSPct, 1)
			c.Right(1).Int(l.FirstKills)
			c.Right(1).Int(l.FirstDeaths)
		}

		fig, ok := figs[mapName]
		if !ok {
			c.Down(2).Left(12).Str("Normalized values omitted: a chart axis has no spread on this map")
			continue
		}
		c.Down(2).Left(12).Heading("Normalized (chart scale)")
		c.Down(1).Str("Player")
		for _, name := range fig.Axes.Names {
			c.Right(1).Str(name)
		}
		for _, t := range fig.Traces {
			c.Down(1).Left(len(fig.Axes.Names)).Str(t.Label)
			for _, v := range t.Normalized {
				c.Right(1).Float(v, 3)
			}
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
