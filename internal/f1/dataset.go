package f1

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Dataset is the joined, read-only F1 dataset. Build it once with Load or
// NewDataset and pass it by reference; nothing mutates it afterwards.
type Dataset struct {
	records  []Record
	drivers  map[int]Driver
	byDriver map[int][]int // driver id -> indexes into records
	races    int
	results  int
}

// NewDataset joins the given tables.
func NewDataset(drivers []Driver, results []Result, races []Race) *Dataset {
	ds := &Dataset{
		records:  Join(drivers, results, races),
		drivers:  make(map[int]Driver, len(drivers)),
		byDriver: make(map[int][]int),
		races:    len(races),
		results:  len(results),
	}
	for _, d := range drivers {
		ds.drivers[d.ID] = d
	}
	for i, r := range ds.records {
		ds.byDriver[r.DriverID] = append(ds.byDriver[r.DriverID], i)
	}
	return ds
}

// Stats summarizes dataset size.
type Stats struct {
	Drivers int `json:"drivers"`
	Races   int `json:"races"`
	Results int `json:"results"`
	Records int `json:"records"`
}

// Stats reports source and joined sizes.
func (ds *Dataset) Stats() Stats {
	return Stats{Drivers: len(ds.drivers), Races: ds.races, Results: ds.results, Records: len(ds.records)}
}

// Records returns the joined records. The slice must not be modified.
func (ds *Dataset) Records() []Record { return ds.records }

// Driver looks up a driver by id regardless of whether they have results.
func (ds *Dataset) Driver(id int) (Driver, bool) {
	d, ok := ds.drivers[id]
	return d, ok
}

// RecordsFor returns the joined records of one driver in dataset order.
func (ds *Dataset) RecordsFor(id int) []Record {
	idx := ds.byDriver[id]
	out := make([]Record, len(idx))
	for i, j := range idx {
		out[i] = ds.records[j]
	}
	return out
}

// Drivers lists drivers with at least one joined record, sorted by surname,
// forename, then id.
func (ds *Dataset) Drivers() []Driver {
	out := make([]Driver, 0, len(ds.byDriver))
	for id := range ds.byDriver {
		out = append(out, ds.drivers[id])
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Surname != b.Surname {
			return a.Surname < b.Surname
		}
		if a.Forename != b.Forename {
			return a.Forename < b.Forename
		}
		return a.ID < b.ID
	})
	return out
}

// Resolve maps a selection to a driver id. The query may be a numeric id,
// a driverRef, "Forename Surname", a driver code, or a surname; matching is
// case-insensitive and the first tier with any match wins.
func (ds *Dataset) Resolve(query string) (int, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return 0, fmt.Errorf("%w: empty selection", ErrDriverNotFound)
	}
	if id, err := strconv.Atoi(q); err == nil {
		if _, ok := ds.drivers[id]; ok {
			return id, nil
		}
		return 0, fmt.Errorf("%w: id %d", ErrDriverNotFound, id)
	}
	tiers := []func(Driver) string{
		func(d Driver) string { return d.Ref },
		func(d Driver) string { return d.Name() },
		func(d Driver) string { return d.Code },
		func(d Driver) string { return d.Surname },
	}
	for _, key := range tiers {
		var matches []Driver
		for _, d := range ds.drivers {
			if k := key(d); k != "" && strings.EqualFold(k, q) {
				matches = append(matches, d)
			}
		}
		switch len(matches) {
		case 0:
			continue
		case 1:
			return matches[0].ID, nil
		default:
			sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
			names := make([]string, len(matches))
			for i, m := range matches {
				names[i] = fmt.Sprintf("%s (id %d)", m.Name(), m.ID)
			}
			return 0, fmt.Errorf("%w: %q matches %s", ErrAmbiguousDriver, q, strings.Join(names, ", "))
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrDriverNotFound, q)
}
