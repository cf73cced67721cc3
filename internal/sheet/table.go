package sheet

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// nanValues are cell values treated as missing when detecting column types.
// `\N` is the null marker used by the Ergast F1 exports.
var nanValues = []string{"", "NA", "NaN", "nan", "null", `\N`}

// Table is an in-memory tabular dataset backed by a gota DataFrame.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string

	frame dataframe.DataFrame
	// framed is false when the table has a header but no data rows.
	framed bool
}

// Column describes one column of a Table.
type Column struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"` // int|float|bool|datetime|string|unknown
	Missing int    `json:"missing"`
}

func newTable(name string, records [][]string) (*Table, error) {
	t := &Table{Name: name}
	if len(records) == 0 {
		return t, nil
	}
	t.Header = normalizeHeader(records[0])
	ncol := len(t.Header)
	for _, rec := range records[1:] {
		row := make([]string, ncol)
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	if len(t.Rows) == 0 || ncol == 0 {
		return t, nil
	}
	all := make([][]string, 0, len(t.Rows)+1)
	all = append(all, t.Header)
	all = append(all, t.Rows...)
	df := dataframe.LoadRecords(all,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(nanValues),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("load %s: %w", name, df.Err)
	}
	t.frame = df
	t.framed = true
	return t, nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.Header) }

// Columns infers a kind per column.
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.Header))
	for i, name := range t.Header {
		c := Column{Name: name, Kind: "unknown"}
		for _, row := range t.Rows {
			if isMissing(row[i]) {
				c.Missing++
			}
		}
		if t.framed {
			s := t.frame.Col(name)
			c.Kind = string(s.Type())
			if s.Type() == series.String && t.allDatetime(i) {
				c.Kind = "datetime"
			}
		}
		cols[i] = c
	}
	return cols
}

func (t *Table) allDatetime(col int) bool {
	seen := 0
	for _, row := range t.Rows {
		v := strings.TrimSpace(row[col])
		if isMissing(v) {
			continue
		}
		if _, ok := parseTimeMaybe(v); !ok {
			return false
		}
		seen++
	}
	return seen > 0
}

// Numeric returns the named column as floats; nil entries are missing or
// non-numeric cells.
func (t *Table) Numeric(name string) ([]*float64, error) {
	idx := -1
	for i, h := range t.Header {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", name)
	}
	if !t.framed {
		return []*float64{}, nil
	}
	vals := t.frame.Col(name).Float()
	out := make([]*float64, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		x := v
		out[i] = &x
	}
	return out, nil
}

// Head returns at most n rows; n <= 0 returns all rows.
func (t *Table) Head(n int) [][]string {
	if n <= 0 || n >= len(t.Rows) {
		return t.Rows
	}
	return t.Rows[:n]
}

func isMissing(v string) bool {
	v = strings.TrimSpace(v)
	for _, n := range nanValues {
		if v == n {
			return true
		}
	}
	return false
}

func parseTimeMaybe(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339, "2006-01-02", "2006/01/02", "02/01/2006",
		"2006-01-02 15:04", "2006-01-02 15:04:05", "15:04:05",
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
