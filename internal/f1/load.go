package f1

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Sources names the three CSV files of an F1 dataset.
type Sources struct {
	Drivers string `json:"drivers"`
	Results string `json:"results"`
	Races   string `json:"races"`
}

// Load reads, validates and joins the three sources. Any missing source
// fails the whole load with ErrDataUnavailable; no partial dataset is built.
func Load(ctx context.Context, src Sources) (*Dataset, error) {
	var (
		drivers []Driver
		results []Result
		races   []Race
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		drivers, err = readDrivers(ctx, src.Drivers)
		return err
	})
	g.Go(func() error {
		var err error
		results, err = readResults(ctx, src.Results)
		return err
	})
	g.Go(func() error {
		var err error
		races, err = readRaces(ctx, src.Races)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewDataset(drivers, results, races), nil
}

func readDrivers(ctx context.Context, path string) ([]Driver, error) {
	var out []Driver
	err := scanCSV(ctx, path, DriverColumns, func(r row) error {
		id, err := r.atoi("driverId")
		if err != nil {
			return err
		}
		out = append(out, Driver{
			ID:          id,
			Ref:         r.str("driverRef"),
			Code:        r.str("code"),
			Forename:    r.str("forename"),
			Surname:     r.str("surname"),
			DOB:         parseDOB(r.str("dob")),
			Nationality: r.str("nationality"),
		})
		return nil
	})
	return out, err
}

func readResults(ctx context.Context, path string) ([]Result, error) {
	var out []Result
	err := scanCSV(ctx, path, ResultColumns, func(r row) error {
		var (
			res Result
			err error
		)
		if res.DriverID, err = r.atoi("driverId"); err != nil {
			return err
		}
		if res.RaceID, err = r.atoi("raceId"); err != nil {
			return err
		}
		if res.ConstructorID, err = r.atoi("constructorId"); err != nil {
			return err
		}
		if res.Grid, err = r.atoi("grid"); err != nil {
			return err
		}
		if res.PositionOrder, err = r.atoi("positionOrder"); err != nil {
			return err
		}
		if res.Points, err = r.atof("points"); err != nil {
			return err
		}
		out = append(out, res)
		return nil
	})
	return out, err
}

func readRaces(ctx context.Context, path string) ([]Race, error) {
	var out []Race
	err := scanCSV(ctx, path, RaceColumns, func(r row) error {
		var (
			race Race
			err  error
		)
		if race.ID, err = r.atoi("raceId"); err != nil {
			return err
		}
		if race.Year, err = r.atoi("year"); err != nil {
			return err
		}
		race.Round, _ = r.optAtoi("round")
		race.Name = r.str("name")
		out = append(out, race)
		return nil
	})
	return out, err
}

// row gives named access to one CSV record.
type row struct {
	file   string
	line   int
	rec    []string
	fields map[string]int
}

func (r row) str(col string) string {
	i, ok := r.fields[col]
	if !ok || i >= len(r.rec) {
		return ""
	}
	v := strings.TrimSpace(r.rec[i])
	if v == `\N` {
		return ""
	}
	return v
}

func (r row) atoi(col string) (int, error) {
	v := r.str(col)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, r.cellError(col, v)
	}
	return n, nil
}

func (r row) optAtoi(col string) (int, bool) {
	n, err := strconv.Atoi(r.str(col))
	return n, err == nil
}

func (r row) atof(col string) (float64, error) {
	v := r.str(col)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, r.cellError(col, v)
	}
	return f, nil
}

func (r row) cellError(col, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s line %d: missing value for %s", ErrSchemaMismatch, r.file, r.line, col)
	}
	return fmt.Errorf("%w: %s line %d: invalid %s %q", ErrSchemaMismatch, r.file, r.line, col, v)
}

// scanCSV validates the header against required and calls fn for every row.
func scanCSV(ctx context.Context, path string, required []string, fn func(row) error) error {
	name := filepath.Base(path)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrDataUnavailable, path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s is empty", ErrSchemaMismatch, name)
		}
		return fmt.Errorf("%w: read header of %s: %w", ErrDataUnavailable, name, err)
	}
	fields := make(map[string]int, len(header))
	for i, h := range header {
		fields[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	var missing []string
	for _, col := range required {
		if _, ok := fields[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s missing columns %s", ErrSchemaMismatch, name, strings.Join(missing, ", "))
	}

	line := 1
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("%w: read %s row %d: %w", ErrDataUnavailable, name, line+1, err)
		}
		line++
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(row{file: name, line: line, rec: rec, fields: fields}); err != nil {
			return err
		}
	}
}

func parseDOB(s string) time.Time {
	for _, l := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(l, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
