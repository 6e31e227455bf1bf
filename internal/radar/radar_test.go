package radar

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/go-test/deep"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestBuildAxesAngles(t *testing.T) {
	names := []string{"Kills", "ACS", "HS%", "ADR"}
	axes, err := BuildAxes(names)
	if err != nil {
		t.Fatalf("BuildAxes: %v", err)
	}
	if len(axes.Angles) != len(names) {
		t.Fatalf("got %d angles, want %d", len(axes.Angles), len(names))
	}

	// First axis points straight up.
	if math.Abs(axes.Angles[0]-(-math.Pi/2)) > eps {
		t.Errorf("first axis at %v, want -π/2", axes.Angles[0])
	}

	// Equal spacing of 2π/n between consecutive axes.
	step := 2 * math.Pi / float64(len(names))
	for i := 1; i < len(axes.Angles); i++ {
		if math.Abs(axes.Angles[i]-axes.Angles[i-1]-step) > eps {
			t.Errorf("spacing between axis %d and %d is %v, want %v",
				i-1, i, axes.Angles[i]-axes.Angles[i-1], step)
		}
	}

	// All angles distinct modulo 2π.
	for i := range axes.Angles {
		for j := i + 1; j < len(axes.Angles); j++ {
			d := math.Mod(axes.Angles[j]-axes.Angles[i], 2*math.Pi)
			if math.Abs(d) < eps {
				t.Errorf("axes %d and %d coincide", i, j)
			}
		}
	}
}

func TestBuildAxesTooFew(t *testing.T) {
	for _, names := range [][]string{nil, {"Kills"}, {"Kills", "ACS"}} {
		if _, err := BuildAxes(names); !errors.Is(err, ErrInvalidChartConfig) {
			t.Errorf("BuildAxes(%v) = %v, want ErrInvalidChartConfig", names, err)
		}
	}
}

func TestBuildAxesDuplicate(t *testing.T) {
	_, err := BuildAxes([]string{"Kills", "ACS", "Kills"})
	if !errors.Is(err, ErrInvalidChartConfig) {
		t.Fatalf("got %v, want ErrInvalidChartConfig", err)
	}
}

func TestNormalize(t *testing.T) {
	m := Metric{Name: "ACS", Min: 0, Max: 300}

	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{300, 1},
		{150, 0.5},
		{250, 0.8333},
		{-10, 0},  // clamps low
		{400, 1},  // clamps high
	}
	for _, tt := range tests {
		got, err := m.Normalize(tt.in)
		if err != nil {
			t.Fatalf("Normalize(%v): %v", tt.in, err)
		}
		if !approx(got, tt.want) {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDegenerateRange(t *testing.T) {
	m := Metric{Name: "Kills", Min: 10, Max: 10}
	_, err := m.Normalize(10)
	var dre *DegenerateRangeError
	if !errors.As(err, &dre) {
		t.Fatalf("got %v, want DegenerateRangeError", err)
	}
	if dre.Metric != "Kills" || dre.Value != 10 {
		t.Errorf("error fields = %q/%v, want Kills/10", dre.Metric, dre.Value)
	}
}

func TestNewRejectsShortSeries(t *testing.T) {
	metrics := []Metric{
		{Name: "Kills", Min: 0, Max: 30, Explicit: true},
		{Name: "ACS", Min: 0, Max: 300, Explicit: true},
		{Name: "HS%", Min: 0, Max: 100, Explicit: true},
	}
	_, err := New("t", metrics, []Series{{Label: "aspas", Values: []float64{20, 250}}})
	var ire *IncompleteRecordError
	if !errors.As(err, &ire) {
		t.Fatalf("got %v, want IncompleteRecordError", err)
	}
	if ire.Label != "aspas" || ire.Want != 3 || ire.Got != 2 {
		t.Errorf("error fields = %+v", ire)
	}
}

func TestBuildNormalizedValues(t *testing.T) {
	metrics := []Metric{
		{Name: "Kills", Min: 0, Max: 30, Explicit: true},
		{Name: "ACS", Min: 0, Max: 300, Explicit: true},
		{Name: "HS%", Min: 0, Max: 100, Explicit: true},
	}
	c, err := New("test", metrics, []Series{
		{Label: "aspas", Values: []float64{20, 250, 30}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fig, err := c.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []float64{0.6667, 0.8333, 0.3}
	got := fig.Traces[0].Normalized
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Errorf("axis %d normalized = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuildClosesPolygon(t *testing.T) {
	metrics := []Metric{
		{Name: "Kills", Min: 0, Max: 30, Explicit: true},
		{Name: "ACS", Min: 0, Max: 300, Explicit: true},
		{Name: "ADR", Min: 0, Max: 200, Explicit: true},
		{Name: "HS%", Min: 0, Max: 100, Explicit: true},
	}
	c, err := New("test", metrics, []Series{
		{Label: "p", Values: []float64{15, 200, 140, 25}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fig, err := c.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	pts := fig.Traces[0].Points
	if len(pts) != len(metrics)+1 {
		t.Fatalf("got %d points, want %d", len(pts), len(metrics)+1)
	}
	if pts[0] != pts[len(pts)-1] {
		t.Errorf("polygon not closed: first %v, last %v", pts[0], pts[len(pts)-1])
	}
}

func TestResolveRanges(t *testing.T) {
	metrics := []Metric{
		{Name: "Kills"},
		{Name: "HS%", Min: 0, Max: 100, Explicit: true},
		{Name: "ACS"},
	}
	series := []Series{
		{Label: "a", Values: []float64{12, 25, 180}},
		{Label: "b", Values: []float64{25, 40, 260}},
	}
	out := ResolveRanges(metrics, series)

	if out[0].Min != 12 || out[0].Max != 25 {
		t.Errorf("Kills range = [%v, %v], want [12, 25]", out[0].Min, out[0].Max)
	}
	if out[1].Min != 0 || out[1].Max != 100 {
		t.Errorf("explicit HS%% range was touched: [%v, %v]", out[1].Min, out[1].Max)
	}
	if out[2].Min != 180 || out[2].Max != 260 {
		t.Errorf("ACS range = [%v, %v], want [180, 260]", out[2].Min, out[2].Max)
	}
}

func TestBuildDegenerateObservedRange(t *testing.T) {
	// Every player has the same kill count and the axis has no declared
	// range, so the observed spread is zero.
	metrics := []Metric{
		{Name: "Kills"},
		{Name: "ACS", Min: 0, Max: 300, Explicit: true},
		{Name: "HS%", Min: 0, Max: 100, Explicit: true},
	}
	c, err := New("test", metrics, []Series{
		{Label: "a", Values: []float64{17, 220, 25}},
		{Label: "b", Values: []float64{17, 260, 31}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Build()
	var dre *DegenerateRangeError
	if !errors.As(err, &dre) {
		t.Fatalf("got %v, want DegenerateRangeError", err)
	}
	if dre.Metric != "Kills" {
		t.Errorf("degenerate metric = %q, want Kills", dre.Metric)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	metrics := []Metric{
		{Name: "Kills"},
		{Name: "ACS"},
		{Name: "HS%", Min: 0, Max: 100, Explicit: true},
	}
	c, err := New("test", metrics, []Series{
		{Label: "a", Values: []float64{12, 180, 25}},
		{Label: "b", Values: []float64{25, 260, 40}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f1, err := c.Build()
	if err != nil {
		t.Fatalf("first Build: %v", err)
	}
	f2, err := c.Build()
	if err != nil {
		t.Fatalf("second Build: %v", err)
	}
	if diff := deep.Equal(f1, f2); diff != nil {
		t.Errorf("figures differ between builds: %v", diff)
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	metrics := []Metric{
		{Name: "Kills"},
		{Name: "ACS"},
		{Name: "ADR"},
		{Name: "HS%", Min: 0, Max: 100, Explicit: true},
	}
	c, err := New("Lotus", metrics, []Series{
		{Label: "a", Values: []float64{12, 180, 130, 25}},
		{Label: "b", Values: []float64{25, 260, 170, 40}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fig, err := c.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var b1, b2 bytes.Buffer
	if err := RenderSVG(&b1, fig, DefaultOptions()); err != nil {
		t.Fatalf("first RenderSVG: %v", err)
	}
	if err := RenderSVG(&b2, fig, DefaultOptions()); err != nil {
		t.Fatalf("second RenderSVG: %v", err)
	}
	if !bytes.Equal(b1.Bytes(), b2.Bytes()) {
		t.Error("rendering the same figure twice produced different SVG")
	}
	if b1.Len() == 0 {
		t.Error("empty SVG output")
	}
}

func TestRenderPNGWritesImage(t *testing.T) {
	metrics := []Metric{
		{Name: "Kills"},
		{Name: "ACS"},
		{Name: "HS%", Min: 0, Max: 100, Explicit: true},
	}
	c, err := New("Ascent", metrics, []Series{
		{Label: "a", Values: []float64{12, 180, 25}},
		{Label: "b", Values: []float64{25, 260, 40}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fig, err := c.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := RenderPNG(&buf, fig, DefaultOptions()); err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	sig := []byte{0x89, 'P', 'N', 'G'}
	if buf.Len() < 4 || !bytes.Equal(buf.Bytes()[:4], sig) {
		t.Error("output does not start with a PNG signature")
	}
}
