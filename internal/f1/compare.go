package f1

import "fmt"

// DriverSummary is one side of a comparison.
type DriverSummary struct {
	DriverID    int            `json:"driver_id"`
	Name        string         `json:"name"`
	Races       int            `json:"races"`
	TotalPoints float64        `json:"total_points"`
	Podiums     int            `json:"podiums"`
	Wins        int            `json:"wins"`
	Seasons     []SeasonPoints `json:"seasons"`
	// Histogram counts finishing positions over Comparison.Edges.
	Histogram []int `json:"histogram"`
}

// Comparison is the two-driver view. Both histograms share Edges.
type Comparison struct {
	A     DriverSummary `json:"a"`
	B     DriverSummary `json:"b"`
	Edges []float64     `json:"edges"`
}

// Compare aggregates two distinct drivers side by side. Equal ids are
// rejected with ErrSameDriver before any lookup. bins <= 0 uses DefaultBins.
func Compare(ds *Dataset, a, b, bins int) (*Comparison, error) {
	if a == b {
		return nil, fmt.Errorf("%w: id %d", ErrSameDriver, a)
	}
	ra := ds.RecordsFor(a)
	if len(ra) == 0 {
		return nil, fmt.Errorf("%w: id %d has no race results", ErrDriverNotFound, a)
	}
	rb := ds.RecordsFor(b)
	if len(rb) == 0 {
		return nil, fmt.Errorf("%w: id %d has no race results", ErrDriverNotFound, b)
	}
	pa, pb := positions(ra), positions(rb)
	edges := SharedEdges(bins, pa, pb)
	return &Comparison{
		A:     summarizeDriver(a, ra, edges, pa),
		B:     summarizeDriver(b, rb, edges, pb),
		Edges: edges,
	}, nil
}

func summarizeDriver(id int, recs []Record, edges, pos []float64) DriverSummary {
	s := DriverSummary{
		DriverID:    id,
		Name:        Driver{Forename: recs[0].Forename, Surname: recs[0].Surname}.Name(),
		Races:       len(recs),
		TotalPoints: totalPoints(recs),
		Seasons:     SeasonAggregate(recs),
		Histogram:   BinCounts(edges, pos),
	}
	for _, r := range recs {
		if r.PositionOrder <= 3 {
			s.Podiums++
		}
		if r.PositionOrder == 1 {
			s.Wins++
		}
	}
	return s
}

func positions(recs []Record) []float64 {
	out := make([]float64, len(recs))
	for i, r := range recs {
		out[i] = float64(r.PositionOrder)
	}
	return out
}
