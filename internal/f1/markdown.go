package f1

import (
	"fmt"
	"strconv"
	"strings"
)

// points prints a points value exactly, without exponent or rounding.
func points(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Markdown renders the trend aggregation as a compact report.
func (v *TrendView) Markdown() string {
	var b strings.Builder
	b.WriteString("[CAREER TRENDS]\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", v.Mode))
	if v.Mode == ModeGridFinish {
		b.WriteString(fmt.Sprintf("Pairs: %d (grid and finish below %d)\n", len(v.Pairs), DNFSentinel))
		if v.Correlation != nil {
			b.WriteString(fmt.Sprintf("Correlation: r=%.3f\n", *v.Correlation))
		}
		return b.String()
	}
	b.WriteString(fmt.Sprintf("Groups: %d (point-scoring results only)\n\n", len(v.Groups)))
	for _, g := range v.Groups {
		s := g.Summary
		b.WriteString(fmt.Sprintf("- %s (n=%d): total %s, mean %.2f, median %s (min %s, max %s)\n",
			g.Key, s.Count, points(s.Sum), s.Mean, points(s.Median), points(s.Min), points(s.Max)))
	}
	return b.String()
}

// Markdown renders the single-driver profile.
func (p *Profile) Markdown() string {
	var b strings.Builder
	b.WriteString("[DRIVER PROFILE]\n")
	b.WriteString(fmt.Sprintf("Name: %s\n", Driver{Forename: p.Forename, Surname: p.Surname}.Name()))
	if p.Code != "" {
		b.WriteString(fmt.Sprintf("Code: %s\n", p.Code))
	}
	if p.DOB != "" {
		b.WriteString(fmt.Sprintf("Born: %s\n", p.DOB))
	}
	b.WriteString(fmt.Sprintf("Nationality: %s\n", p.Nationality))
	b.WriteString(fmt.Sprintf("Races: %d\n", p.Races))
	b.WriteString(fmt.Sprintf("Total points: %s\n", points(p.TotalPoints)))
	if p.Portrait != "" {
		b.WriteString(fmt.Sprintf("Portrait: %s\n", p.Portrait))
	}
	b.WriteString("\n[POINTS BY SEASON]\n")
	for _, s := range p.Seasons {
		b.WriteString(fmt.Sprintf("- %d: %s\n", s.Year, points(s.Points)))
	}
	b.WriteString("\n[FINISH POSITIONS]\n")
	for _, f := range p.Finishes {
		b.WriteString(fmt.Sprintf("- P%d: %d\n", f.Position, f.Count))
	}
	return b.String()
}

// Markdown renders both sides of the comparison and the shared histogram.
func (c *Comparison) Markdown() string {
	var b strings.Builder
	b.WriteString("[DRIVER COMPARISON]\n")
	b.WriteString(fmt.Sprintf("| metric | %s | %s |\n", c.A.Name, c.B.Name))
	b.WriteString("| --- | --- | --- |\n")
	b.WriteString(fmt.Sprintf("| races | %d | %d |\n", c.A.Races, c.B.Races))
	b.WriteString(fmt.Sprintf("| points | %s | %s |\n", points(c.A.TotalPoints), points(c.B.TotalPoints)))
	b.WriteString(fmt.Sprintf("| podiums | %d | %d |\n", c.A.Podiums, c.B.Podiums))
	b.WriteString(fmt.Sprintf("| wins | %d | %d |\n", c.A.Wins, c.B.Wins))

	b.WriteString("\n[POINTS BY SEASON]\n")
	for _, side := range []DriverSummary{c.A, c.B} {
		parts := make([]string, len(side.Seasons))
		for i, s := range side.Seasons {
			parts[i] = fmt.Sprintf("%d=%s", s.Year, points(s.Points))
		}
		b.WriteString(fmt.Sprintf("- %s: %s\n", side.Name, strings.Join(parts, ", ")))
	}

	if len(c.Edges) > 1 {
		b.WriteString(fmt.Sprintf("\n[FINISH HISTOGRAM] (%d shared bins)\n", len(c.Edges)-1))
		b.WriteString(fmt.Sprintf("| bin | %s | %s |\n", c.A.Name, c.B.Name))
		b.WriteString("| --- | --- | --- |\n")
		for i := 0; i+1 < len(c.Edges); i++ {
			b.WriteString(fmt.Sprintf("| %.3g-%.3g | %d | %d |\n", c.Edges[i], c.Edges[i+1], c.A.Histogram[i], c.B.Histogram[i]))
		}
	}
	return b.String()
}

// DriversMarkdown lists selectable drivers.
func DriversMarkdown(drivers []Driver) string {
	var b strings.Builder
	b.WriteString("[DRIVERS]\n")
	if len(drivers) == 0 {
		b.WriteString("(no drivers)\n")
		return b.String()
	}
	for _, d := range drivers {
		b.WriteString(fmt.Sprintf("- %d: %s", d.ID, d.Name()))
		if d.Code != "" {
			b.WriteString(fmt.Sprintf(" [%s]", d.Code))
		}
		if d.Nationality != "" {
			b.WriteString(fmt.Sprintf(" (%s)", d.Nationality))
		}
		b.WriteString("\n")
	}
	return b.String()
}
