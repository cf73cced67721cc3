package sheet

import (
	"fmt"
	"strings"
)

// View is the serializable form of a loaded table: schema, the displayed
// rows, and the line chart when one can be drawn.
type View struct {
	Name      string     `json:"name"`
	Rows      int        `json:"rows"`
	Columns   []Column   `json:"columns"`
	Header    []string   `json:"header"`
	Data      [][]string `json:"data"`
	Truncated bool       `json:"truncated"`
	Chart     *Chart     `json:"chart,omitempty"`
	Notes     []string   `json:"notes,omitempty"`
}

// View builds the display form, showing at most maxRows rows (0 = all).
func (t *Table) View(maxRows int) *View {
	head := t.Head(maxRows)
	v := &View{
		Name:      t.Name,
		Rows:      t.NumRows(),
		Columns:   t.Columns(),
		Header:    t.Header,
		Data:      head,
		Truncated: len(head) < t.NumRows(),
	}
	if c, ok := t.LineChart(); ok {
		v.Chart = c
	} else {
		v.Notes = append(v.Notes, NoChartNote)
	}
	return v
}

// Markdown renders the view as a compact report.
func (v *View) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATA TABLE]\n")
	if v.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", v.Name))
	}
	if v.Truncated {
		b.WriteString(fmt.Sprintf("Rows: %d (showing %d)\n", v.Rows, len(v.Data)))
	} else {
		b.WriteString(fmt.Sprintf("Rows: %d\n", v.Rows))
	}
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(v.Columns)))

	b.WriteString("[SCHEMA]\n")
	for _, c := range v.Columns {
		b.WriteString(fmt.Sprintf("- %s: %s", c.Name, c.Kind))
		if c.Missing > 0 {
			b.WriteString(fmt.Sprintf(" (missing %d)", c.Missing))
		}
		b.WriteString("\n")
	}

	if len(v.Header) > 0 {
		b.WriteString("\n")
		writeRow(&b, v.Header)
		sep := make([]string, len(v.Header))
		for i := range sep {
			sep[i] = "---"
		}
		writeRow(&b, sep)
		for _, row := range v.Data {
			writeRow(&b, row)
		}
	}

	if v.Chart != nil {
		names := make([]string, len(v.Chart.Series))
		for i, s := range v.Chart.Series {
			names[i] = s.Name
		}
		b.WriteString("\n[LINE CHART]\n")
		b.WriteString(fmt.Sprintf("x: row index; series: %s\n", strings.Join(names, ", ")))
		for _, s := range v.Chart.Series {
			lo, hi, n := s.Bounds()
			if n == 0 {
				b.WriteString(fmt.Sprintf("- %s: no numeric values\n", s.Name))
				continue
			}
			b.WriteString(fmt.Sprintf("- %s: %d points, min %.4g, max %.4g\n", s.Name, n, lo, hi))
		}
	}
	if len(v.Notes) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, n := range v.Notes {
			b.WriteString("- ")
			b.WriteString(n)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	for i, c := range cells {
		if i > 0 {
			b.WriteString(" | ")
		}
		if r := []rune(c); len(r) > 80 {
			c = string(r[:77]) + "..."
		}
		b.WriteString(safeVal(c))
	}
	b.WriteString(" |\n")
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
