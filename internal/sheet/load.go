package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Options controls how a tabular file is read.
type Options struct {
	// Sheet selects an XLSX sheet by name; empty means the first sheet.
	Sheet string
	// Delimiter for CSV. If 0, chosen from the file extension.
	Delimiter rune
}

// Supported reports whether name has an extension the viewer can read.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".tsv", ".xlsx":
		return true
	}
	return false
}

// Load reads a CSV, TSV or XLSX file into a Table.
// A missing or unreadable file yields ErrDataUnavailable.
func Load(path string, opt Options) (*Table, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrDataUnavailable, path, err)
	}
	defer f.Close()
	return Read(f, filepath.Base(path), opt)
}

// Read parses tabular content from r. The format is chosen from name's
// extension, so uploads keep their original filename.
func Read(r io.Reader, name string, opt Options) (*Table, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".tsv":
		delim := opt.Delimiter
		if delim == 0 {
			delim = sniffDelimiter(name)
		}
		records, err = readCSV(r, delim)
	case ".xlsx":
		records, err = readXLSX(r, opt.Sheet)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return nil, err
	}
	return newTable(name, records)
}

func sniffDelimiter(name string) rune {
	if strings.HasSuffix(strings.ToLower(name), ".tsv") {
		return '\t'
	}
	return ','
}

func readCSV(r io.Reader, delim rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comma = delim

	var records [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: read row %d: %w", ErrDataUnavailable, len(records)+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func readXLSX(r io.Reader, sheet string) ([][]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}
	wb, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	target := sheets[0]
	if sheet != "" {
		target = ""
		for _, s := range sheets {
			if strings.EqualFold(s, sheet) {
				target = s
				break
			}
		}
		if target == "" {
			return nil, fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, sheet, strings.Join(sheets, ", "))
		}
	}
	rows, err := wb.GetRows(target)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", target, err)
	}
	return rows, nil
}

// normalizeHeader trims names, strips a UTF-8 BOM, and makes every name
// non-empty and unique so columns can be addressed by name.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if name == "" {
			name = "column_" + strconv.Itoa(i+1)
		}
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = name + "_" + strconv.Itoa(n+1)
		}
		seen[name]++
		out[i] = name
	}
	return out
}
