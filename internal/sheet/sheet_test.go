package sheet

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const racesCSV = "raceId,year,name,date\n" +
	"1,2020,Austrian Grand Prix,2020-07-05\n" +
	"2,2020,Styrian Grand Prix,2020-07-12\n" +
	"3,2021,Bahrain Grand Prix,\\N\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadCSVSchemaAndChart(t *testing.T) {
	p := writeFile(t, "races.csv", racesCSV)
	tbl, err := Load(p, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.NumRows() != 3 || tbl.NumCols() != 4 {
		t.Fatalf("unexpected shape %dx%d", tbl.NumRows(), tbl.NumCols())
	}
	cols := tbl.Columns()
	want := map[string]string{"raceId": "int", "year": "int", "name": "string", "date": "datetime"}
	for _, c := range cols {
		if want[c.Name] != c.Kind {
			t.Fatalf("column %s: expected kind %s, got %s", c.Name, want[c.Name], c.Kind)
		}
	}
	if cols[3].Missing != 1 {
		t.Fatalf("expected one missing date, got %d", cols[3].Missing)
	}

	chart, ok := tbl.LineChart()
	if !ok {
		t.Fatalf("expected a chart for a 4-column table")
	}
	if len(chart.Series) != 2 || chart.Series[0].Name != "raceId" || chart.Series[1].Name != "year" {
		t.Fatalf("chart should use the first two columns, got %+v", chart.Series)
	}
	lo, hi, n := chart.Series[1].Bounds()
	if n != 3 || lo != 2020 || hi != 2021 {
		t.Fatalf("unexpected year bounds lo=%v hi=%v n=%d", lo, hi, n)
	}
}

func TestLineChartSkipsNonNumericCells(t *testing.T) {
	p := writeFile(t, "points.csv", "points,label\n1,a\nx,b\n3,c\n")
	tbl, err := Load(p, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	chart, ok := tbl.LineChart()
	if !ok {
		t.Fatalf("expected chart")
	}
	pts := chart.Series[0].Points
	if len(pts) != 3 || pts[0] == nil || *pts[0] != 1 || pts[1] != nil || pts[2] == nil || *pts[2] != 3 {
		t.Fatalf("unexpected points %v", pts)
	}
	if _, _, n := chart.Series[1].Bounds(); n != 0 {
		t.Fatalf("label column should have no numeric points, got %d", n)
	}
}

func TestSingleColumnHasNoChart(t *testing.T) {
	p := writeFile(t, "one.csv", "year\n2020\n2021\n")
	tbl, err := Load(p, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := tbl.LineChart(); ok {
		t.Fatalf("single column table must not produce a chart")
	}
	md := tbl.View(0).Markdown()
	if !strings.Contains(md, NoChartNote) {
		t.Fatalf("markdown missing chart note: %s", md)
	}
}

func TestHeaderOnlyAndEmpty(t *testing.T) {
	tbl, err := Load(writeFile(t, "h.csv", "a,b\n"), Options{})
	if err != nil {
		t.Fatalf("load header only: %v", err)
	}
	if tbl.NumRows() != 0 || tbl.NumCols() != 2 {
		t.Fatalf("unexpected shape %dx%d", tbl.NumRows(), tbl.NumCols())
	}
	if c, ok := tbl.LineChart(); !ok || len(c.Series[0].Points) != 0 {
		t.Fatalf("expected empty series for header-only table")
	}

	empty, err := Load(writeFile(t, "e.csv", ""), Options{})
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if empty.NumCols() != 0 {
		t.Fatalf("expected no columns")
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected the fs error to be wrapped, got %v", err)
	}
	_, err = Load(writeFile(t, "notes.docx", "x"), Options{})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadUnterminatedQuote(t *testing.T) {
	p := writeFile(t, "broken.csv", "lap,seconds\n1,91.2\n2,\"90.8\n")
	_, err := Load(p, Options{})
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestMarkdownTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 100)
	p := writeFile(t, "drivers.csv", "name,points\n"+long+",1\n")
	tbl, err := Load(p, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	md := tbl.View(0).Markdown()
	if !utf8.ValidString(md) {
		t.Fatalf("markdown is not valid UTF-8")
	}
	if !strings.Contains(md, strings.Repeat("é", 77)+"...") {
		t.Fatalf("expected cell cut to 77 runes:\n%s", md)
	}
}

func TestNormalizeHeader(t *testing.T) {
	got := normalizeHeader([]string{"\ufeffraceId", "", "year", "year", " name "})
	want := []string{"raceId", "column_2", "year", "year_2", "name"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("header %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTSVAndMarkdownTruncation(t *testing.T) {
	p := writeFile(t, "laps.tsv", "lap\ttime\n1\t91.2\n2\t90.8\n3\t90.1\n")
	tbl, err := Load(p, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	v := tbl.View(2)
	if !v.Truncated || len(v.Data) != 2 {
		t.Fatalf("expected truncated view with 2 rows")
	}
	md := v.Markdown()
	for _, s := range []string{"[DATA TABLE]", "File: laps.tsv", "Rows: 3 (showing 2)", "| lap | time |", "[LINE CHART]", "- time: 3 points, min 90.1, max 91.2"} {
		if !strings.Contains(md, s) {
			t.Fatalf("markdown missing %q:\n%s", s, md)
		}
	}
}

func TestLoadXLSX(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "standings.xlsx")
	wb := excelize.NewFile()
	if err := wb.SetSheetRow("Sheet1", "A1", &[]any{"year", "points"}); err != nil {
		t.Fatalf("header: %v", err)
	}
	if err := wb.SetSheetRow("Sheet1", "A2", &[]any{2020, 347}); err != nil {
		t.Fatalf("row: %v", err)
	}
	if err := wb.SetSheetRow("Sheet1", "A3", &[]any{2021, 387.5}); err != nil {
		t.Fatalf("row: %v", err)
	}
	if _, err := wb.NewSheet("Notes"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	if err := wb.SetCellValue("Notes", "A1", "comment"); err != nil {
		t.Fatalf("cell: %v", err)
	}
	if err := wb.SaveAs(p); err != nil {
		t.Fatalf("save: %v", err)
	}
	_ = wb.Close()

	tbl, err := Load(p, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.NumRows() != 2 || tbl.Header[1] != "points" {
		t.Fatalf("unexpected table %+v", tbl.Header)
	}
	chart, ok := tbl.LineChart()
	if !ok {
		t.Fatalf("expected chart")
	}
	if _, hi, _ := chart.Series[1].Bounds(); hi != 387.5 {
		t.Fatalf("expected max points 387.5, got %v", hi)
	}

	notes, err := Load(p, Options{Sheet: "notes"})
	if err != nil {
		t.Fatalf("load notes sheet: %v", err)
	}
	if notes.NumCols() != 1 || notes.NumRows() != 0 {
		t.Fatalf("unexpected notes shape")
	}

	_, err = Load(p, Options{Sheet: "Laps"})
	if !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("expected ErrSheetNotFound, got %v", err)
	}
}
