package model

// MetricDef names a chart axis and knows how to read it off a PlayerLine.
// Fixed metrics carry a declared (Min, Max) scaling range; the rest are
// scaled against the values observed across the players on the chart.
type MetricDef struct {
	Name  string
	Min   float64
	Max   float64
	Fixed bool
	Value func(*PlayerLine) float64
}

// DefaultMetrics returns the nine standard axes in chart order. Percentage
// metrics get fixed 0–100 ranges; counting stats are scaled per chart since
// map length varies too much for a meaningful fixed range.
func DefaultMetrics() []MetricDef {
	return []MetricDef{
		{Name: "Kills", Value: func(l *PlayerLine) float64 { return float64(l.Kills) }},
		{Name: "ACS", Value: func(l *PlayerLine) float64 { return l.ACS }},
		{Name: "K-D Diff", Value: func(l *PlayerLine) float64 { return float64(l.KDDiff()) }},
		{Name: "Assists", Value: func(l *PlayerLine) float64 { return float64(l.Assists) }},
		{Name: "KAST%", Min: 0, Max: 100, Fixed: true, Value: func(l *PlayerLine) float64 { return l.KASTPct }},
		{Name: "ADR", Value: func(l *PlayerLine) float64 { return l.ADR }},
		{Name: "HS%", Min: 0, Max: 100, Fixed: true, Value: func(l *PlayerLine) float64 { return l.HSPct }},
		{Name: "First Kills", Value: func(l *PlayerLine) float64 { return float64(l.FirstKills) }},
		{Name: "FK Diff", Value: func(l *PlayerLine) float64 { return float64(l.FKDiff()) }},
	}
}

// MetricByName looks up a metric from DefaultMetrics. Returns false if the
// name is unknown.
func MetricByName(name string) (MetricDef, bool) {
	for _, m := range DefaultMetrics() {
		if m.Name == name {
			return m, true
		}
	}
	return MetricDef{}, false
}
