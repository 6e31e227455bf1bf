package radar

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// RenderOptions carries the cosmetic parameters shared by both renderers.
// Geometry is fixed by the Figure; options only change how it is drawn.
type RenderOptions struct {
	Width   int
	Height  int
	Rings   int      // concentric grid rings, outermost included
	Palette []string // hex trace colors, cycled when there are more traces
}

// DefaultOptions returns the standard 640x640 layout with a five-color
// palette, one color per overlaid player.
func DefaultOptions() RenderOptions {
	return RenderOptions{
		Width:  640,
		Height: 640,
		Rings:  5,
		Palette: []string{
			"#1f77b4", "#d62728", "#2ca02c", "#9467bd", "#e6b817",
			"#17becf", "#8c564b", "#e377c2",
		},
	}
}

func (o RenderOptions) normalized() RenderOptions {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Rings <= 0 {
		o.Rings = d.Rings
	}
	if len(o.Palette) == 0 {
		o.Palette = d.Palette
	}
	return o
}

func (o RenderOptions) color(i int) string {
	return o.Palette[i%len(o.Palette)]
}

// plotRadius returns the chart center and the pixel radius of the unit circle,
// leaving margin for axis labels and the title row.
func plotGeometry(o RenderOptions) (cx, cy int, r float64) {
	cx = o.Width / 2
	cy = o.Height/2 + 12
	m := o.Width
	if o.Height < m {
		m = o.Height
	}
	r = float64(m)/2 - 90
	return
}

func polarXY(cx, cy int, r, angle, radius float64) (int, int) {
	x := float64(cx) + r*radius*math.Cos(angle)
	y := float64(cy) + r*radius*math.Sin(angle)
	return int(math.Round(x)), int(math.Round(y))
}

// RenderSVG draws the figure as an SVG document: polygonal grid rings, one
// spoke and label per axis, one translucent filled polygon per trace, and a
// legend. The error is the underlying writer's, surfaced on flush.
func RenderSVG(w io.Writer, fig *Figure, opts RenderOptions) error {
	o := opts.normalized()
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	cx, cy, r := plotGeometry(o)
	n := len(fig.Axes.Angles)

	canvas.Start(o.Width, o.Height)
	canvas.Rect(0, 0, o.Width, o.Height, "fill:white")

	// Grid rings, drawn as polygons through the axis angles so the frame
	// matches the chart shape.
	for ring := 1; ring <= o.Rings; ring++ {
		frac := float64(ring) / float64(o.Rings)
		xs := make([]int, n)
		ys := make([]int, n)
		for i, a := range fig.Axes.Angles {
			xs[i], ys[i] = polarXY(cx, cy, r, a, frac)
		}
		style := "fill:none;stroke:#d0d0d0;stroke-width:1"
		if ring == o.Rings {
			style = "fill:none;stroke:#9a9a9a;stroke-width:1"
		}
		canvas.Polygon(xs, ys, style)
	}

	// Spokes and axis labels.
	canvas.Gstyle("font-family:Helvetica,Arial,sans-serif;font-size:13px;fill:#333")
	for i, a := range fig.Axes.Angles {
		x, y := polarXY(cx, cy, r, a, 1)
		canvas.Line(cx, cy, x, y, "stroke:#d0d0d0;stroke-width:1")

		lx, ly := polarXY(cx, cy, r, a, 1.13)
		anchor := "middle"
		switch c := math.Cos(a); {
		case c > 0.25:
			anchor = "start"
		case c < -0.25:
			anchor = "end"
		}
		canvas.Text(lx, ly+4, fig.Axes.Names[i], "text-anchor:"+anchor)
	}
	canvas.Gend()

	// Trace polygons, translucent fill over a solid outline so overlap stays
	// readable.
	for i, t := range fig.Traces {
		col := o.color(i)
		xs := make([]int, 0, len(t.Points))
		ys := make([]int, 0, len(t.Points))
		for _, p := range t.Points {
			x, y := polarXY(cx, cy, r, p.Angle, p.Radius)
			xs = append(xs, x)
			ys = append(ys, y)
		}
		canvas.Polygon(xs, ys,
			fmt.Sprintf("fill:%s;fill-opacity:0.18;stroke:%s;stroke-width:2", col, col))
		for j := 0; j < len(xs)-1; j++ {
			canvas.Circle(xs[j], ys[j], 3, "fill:"+col)
		}
	}

	// Legend, top-right.
	canvas.Gstyle("font-family:Helvetica,Arial,sans-serif;font-size:13px;fill:#333")
	lx := o.Width - 150
	ly := 34
	for i, t := range fig.Traces {
		canvas.Rect(lx, ly+i*19-10, 12, 12, "fill:"+o.color(i))
		canvas.Text(lx+18, ly+i*19, t.Label)
	}
	canvas.Gend()

	if fig.Title != "" {
		canvas.Text(o.Width/2, 24, fig.Title,
			"text-anchor:middle;font-family:Helvetica,Arial,sans-serif;font-size:17px;font-weight:bold;fill:#111")
	}

	canvas.End()
	return bw.Flush()
}
