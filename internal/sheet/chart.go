package sheet

// LineSeries is one plotted column; Points are indexed by row number.
type LineSeries struct {
	Name   string     `json:"name"`
	Points []*float64 `json:"points"`
}

// Chart is a line chart over the row index.
type Chart struct {
	Series []LineSeries `json:"series"`
}

// NoChartNote explains why a table has no line chart.
const NoChartNote = "Need at least two columns for a line chart."

// LineChart plots the first two columns against the row index.
// It reports false when the table has fewer than two columns.
func (t *Table) LineChart() (*Chart, bool) {
	if len(t.Header) < 2 {
		return nil, false
	}
	c := &Chart{}
	for _, name := range t.Header[:2] {
		pts, err := t.Numeric(name)
		if err != nil {
			return nil, false
		}
		c.Series = append(c.Series, LineSeries{Name: name, Points: pts})
	}
	return c, true
}

// Bounds returns the min and max of the non-missing points and how many there are.
func (s LineSeries) Bounds() (lo, hi float64, n int) {
	for _, p := range s.Points {
		if p == nil {
			continue
		}
		if n == 0 || *p < lo {
			lo = *p
		}
		if n == 0 || *p > hi {
			hi = *p
		}
		n++
	}
	return lo, hi, n
}
