package radar

import (
	"fmt"
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	pngBackground = drawing.ColorWhite
	pngGridMinor  = drawing.Color{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	pngGridMajor  = drawing.Color{R: 0x9a, G: 0x9a, B: 0x9a, A: 0xff}
	pngTextColor  = drawing.Color{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	pngTitleColor = drawing.Color{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
)

// RenderPNG draws the figure onto a raster canvas and writes the encoded PNG.
// Same layout as RenderSVG: grid rings, spokes, labels, translucent trace
// polygons, legend, title.
func RenderPNG(w io.Writer, fig *Figure, opts RenderOptions) error {
	o := opts.normalized()
	r, err := chart.PNG(o.Width, o.Height)
	if err != nil {
		return fmt.Errorf("create raster renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load default font: %w", err)
	}
	r.SetFont(font)

	cx, cy, radius := plotGeometry(o)
	n := len(fig.Axes.Angles)

	// Background.
	r.SetFillColor(pngBackground)
	r.MoveTo(0, 0)
	r.LineTo(o.Width, 0)
	r.LineTo(o.Width, o.Height)
	r.LineTo(0, o.Height)
	r.Close()
	r.Fill()

	// Grid rings.
	r.SetStrokeWidth(1)
	for ring := 1; ring <= o.Rings; ring++ {
		frac := float64(ring) / float64(o.Rings)
		if ring == o.Rings {
			r.SetStrokeColor(pngGridMajor)
		} else {
			r.SetStrokeColor(pngGridMinor)
		}
		for i := 0; i <= n; i++ {
			x, y := polarXY(cx, cy, radius, fig.Axes.Angles[i%n], frac)
			if i == 0 {
				r.MoveTo(x, y)
			} else {
				r.LineTo(x, y)
			}
		}
		r.Stroke()
	}

	// Spokes.
	r.SetStrokeColor(pngGridMinor)
	for _, a := range fig.Axes.Angles {
		x, y := polarXY(cx, cy, radius, a, 1)
		r.MoveTo(cx, cy)
		r.LineTo(x, y)
		r.Stroke()
	}

	// Axis labels.
	r.SetFontSize(13)
	r.SetFontColor(pngTextColor)
	for i, a := range fig.Axes.Angles {
		label := fig.Axes.Names[i]
		lx, ly := polarXY(cx, cy, radius, a, 1.13)
		tw := r.MeasureText(label).Width()
		switch c := cosClass(a); c {
		case 0:
			lx -= tw / 2
		case -1:
			lx -= tw
		}
		r.Text(label, lx, ly+5)
	}

	// Trace polygons.
	for i, t := range fig.Traces {
		col := pngColor(o.color(i))
		r.SetStrokeColor(col)
		r.SetStrokeWidth(2)
		r.SetFillColor(col.WithAlpha(46))
		for j, p := range t.Points {
			x, y := polarXY(cx, cy, radius, p.Angle, p.Radius)
			if j == 0 {
				r.MoveTo(x, y)
			} else {
				r.LineTo(x, y)
			}
		}
		r.Close()
		r.FillStroke()

		r.SetFillColor(col)
		for _, p := range t.Points[:len(t.Points)-1] {
			x, y := polarXY(cx, cy, radius, p.Angle, p.Radius)
			r.Circle(3, x, y)
			r.Fill()
		}
	}

	// Legend.
	r.SetFontSize(13)
	r.SetFontColor(pngTextColor)
	lx := o.Width - 150
	ly := 34
	for i, t := range fig.Traces {
		col := pngColor(o.color(i))
		r.SetFillColor(col)
		r.MoveTo(lx, ly+i*19-10)
		r.LineTo(lx+12, ly+i*19-10)
		r.LineTo(lx+12, ly+i*19+2)
		r.LineTo(lx, ly+i*19+2)
		r.Close()
		r.Fill()
		r.Text(t.Label, lx+18, ly+i*19)
	}

	if fig.Title != "" {
		r.SetFontSize(17)
		r.SetFontColor(pngTitleColor)
		tw := r.MeasureText(fig.Title).Width()
		r.Text(fig.Title, (o.Width-tw)/2, 26)
	}

	return r.Save(w)
}

// cosClass buckets an axis angle into left (-1), centered (0), or right (1)
// label alignment.
func cosClass(angle float64) int {
	switch c := math.Cos(angle); {
	case c > 0.25:
		return 1
	case c < -0.25:
		return -1
	default:
		return 0
	}
}

func pngColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
