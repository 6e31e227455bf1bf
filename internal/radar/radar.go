// Package radar builds overlaid radar (spider) charts: one axis per metric,
// one closed polygon per player, all on a shared radial scale.
//
// The package is split into a pure geometry stage (Chart.Build, producing a
// Figure) and cosmetic renderers (RenderSVG, RenderPNG). Building twice
// yields identical geometry; only the renderers decide colors and layout.
//
// A larger enclosed polygon reads as "better overall performance" across the
// chosen axes. That is a visualization heuristic only — some axes (Assists,
// HS%) are weak standalone quality signals — so every Figure also carries the
// per-axis normalized values for tabular display next to the chart.
package radar

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidChartConfig reports a bad axis setup: fewer than three metrics,
// or duplicate metric names.
var ErrInvalidChartConfig = errors.New("radar: invalid chart config")

// DegenerateRangeError reports a metric whose scaling range has zero spread.
// There is no silent fallback: a constant axis cannot be normalized, and the
// caller has to widen the range or drop the metric.
type DegenerateRangeError struct {
	Metric string
	Value  float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("radar: metric %q has a degenerate range (min == max == %g)", e.Metric, e.Value)
}

// IncompleteRecordError reports a series that does not supply exactly one
// value per chart metric. It is raised at chart construction so the source
// table can be fixed before any rendering is attempted.
type IncompleteRecordError struct {
	Label string
	Want  int
	Got   int
}

func (e *IncompleteRecordError) Error() string {
	return fmt.Sprintf("radar: series %q has %d values, chart has %d metrics", e.Label, e.Got, e.Want)
}

// Metric is one named chart axis with its scaling range. Explicit marks a
// declared (Min, Max); otherwise the range is filled in from the values
// observed across the overlaid series (see ResolveRanges).
type Metric struct {
	Name     string
	Min      float64
	Max      float64
	Explicit bool
}

// Normalize maps a raw value onto the shared radial scale. Values outside
// [Min, Max] clamp to the scale ends rather than producing runaway vertices.
func (m Metric) Normalize(v float64) (float64, error) {
	if m.Max == m.Min {
		return 0, &DegenerateRangeError{Metric: m.Name, Value: m.Min}
	}
	r := (v - m.Min) / (m.Max - m.Min)
	if r < 0 {
		return 0, nil
	}
	if r > 1 {
		return 1, nil
	}
	return r, nil
}

// Series is one labeled overlay: a player's raw value per metric, in axis order.
type Series struct {
	Label  string
	Values []float64
}

// AxisLayout places each metric on the polar plane. Axis i of n sits at
// 2π·i/n − π/2, so the first axis points straight up and the rest follow
// clockwise in screen coordinates.
type AxisLayout struct {
	Names  []string
	Angles []float64
}

// BuildAxes computes the angular layout for the given metric names.
// Radar charts are degenerate below three axes.
func BuildAxes(names []string) (AxisLayout, error) {
	n := len(names)
	if n < 3 {
		return AxisLayout{}, fmt.Errorf("%w: need at least 3 metrics, got %d", ErrInvalidChartConfig, n)
	}
	seen := make(map[string]struct{}, n)
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return AxisLayout{}, fmt.Errorf("%w: duplicate metric %q", ErrInvalidChartConfig, name)
		}
		seen[name] = struct{}{}
	}
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = 2*math.Pi*float64(i)/float64(n) - math.Pi/2
	}
	return AxisLayout{Names: names, Angles: angles}, nil
}

// ResolveRanges returns a copy of metrics with observed (min, max) filled in
// for every non-Explicit metric, scanning all series values on that axis.
// Explicit ranges are left untouched. Callers are expected to have validated
// series lengths already.
func ResolveRanges(metrics []Metric, series []Series) []Metric {
	out := make([]Metric, len(metrics))
	copy(out, metrics)
	for i := range out {
		if out[i].Explicit {
			continue
		}
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, s := range series {
			v := s.Values[i]
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if len(series) > 0 {
			out[i].Min, out[i].Max = lo, hi
		}
	}
	return out
}

// Point is a polar vertex: Radius is normalized to [0, 1].
type Point struct {
	Angle  float64
	Radius float64
}

// Trace is one series resolved to chart geometry. Points is a closed loop of
// len(axes)+1 vertices whose first and last entries are equal. Normalized
// holds the per-axis values before closing, for tabular display.
type Trace struct {
	Label      string
	Normalized []float64
	Points     []Point
}

// Figure is the pure geometric output of a chart build, ready for rendering.
type Figure struct {
	Title  string
	Axes   AxisLayout
	Traces []Trace
}

// Chart is one radar plot: an ordered metric sequence defining the axes and
// a set of labeled series to overlay. Construct with New.
type Chart struct {
	Title   string
	Metrics []Metric
	Series  []Series
}

// New validates the axis setup and record completeness up front, before any
// normalization or rendering. Failing here means no partial chart is ever
// emitted.
func New(title string, metrics []Metric, series []Series) (*Chart, error) {
	names := make([]string, len(metrics))
	for i, m := range metrics {
		names[i] = m.Name
	}
	if _, err := BuildAxes(names); err != nil {
		return nil, err
	}
	for _, s := range series {
		if len(s.Values) != len(metrics) {
			return nil, &IncompleteRecordError{Label: s.Label, Want: len(metrics), Got: len(s.Values)}
		}
	}
	return &Chart{Title: title, Metrics: metrics, Series: series}, nil
}

// Build resolves scaling ranges and turns every series into a closed polygon
// on the shared axes. It does not mutate the chart; calling it twice yields
// geometrically identical figures.
func (c *Chart) Build() (*Figure, error) {
	names := make([]string, len(c.Metrics))
	for i, m := range c.Metrics {
		names[i] = m.Name
	}
	axes, err := BuildAxes(names)
	if err != nil {
		return nil, err
	}
	metrics := ResolveRanges(c.Metrics, c.Series)

	fig := &Figure{Title: c.Title, Axes: axes, Traces: make([]Trace, 0, len(c.Series))}
	for _, s := range c.Series {
		t, err := buildPolygon(s, metrics, axes)
		if err != nil {
			return nil, err
		}
		fig.Traces = append(fig.Traces, t)
	}
	return fig, nil
}

// buildPolygon normalizes one series onto the axes and closes the loop by
// repeating the first vertex, so the drawn shape is a polygon rather than an
// open path.
func buildPolygon(s Series, metrics []Metric, axes AxisLayout) (Trace, error) {
	n := len(axes.Angles)
	t := Trace{
		Label:      s.Label,
		Normalized: make([]float64, n),
		Points:     make([]Point, 0, n+1),
	}
	for i, m := range metrics {
		r, err := m.Normalize(s.Values[i])
		if err != nil {
			return Trace{}, err
		}
		t.Normalized[i] = r
		t.Points = append(t.Points, Point{Angle: axes.Angles[i], Radius: r})
	}
	t.Points = append(t.Points, t.Points[0])
	return t, nil
}
