package f1

import (
	"fmt"
	"sort"
)

// SeasonPoints is the points total of one driver in one year.
type SeasonPoints struct {
	Year   int     `json:"year"`
	Points float64 `json:"points"`
}

// FinishCount is how many races a driver finished in one position.
type FinishCount struct {
	Position int `json:"position"`
	Count    int `json:"count"`
}

// Profile is the single-driver view.
type Profile struct {
	DriverID    int            `json:"driver_id"`
	Forename    string         `json:"forename"`
	Surname     string         `json:"surname"`
	DOB         string         `json:"dob,omitempty"`
	Nationality string         `json:"nationality"`
	Ref         string         `json:"ref,omitempty"`
	Code        string         `json:"code,omitempty"`
	Races       int            `json:"races"`
	TotalPoints float64        `json:"total_points"`
	Seasons     []SeasonPoints `json:"seasons"`
	Finishes    []FinishCount  `json:"finishes"`
	// Portrait is the image path when one exists.
	Portrait string `json:"portrait,omitempty"`
}

// BuildProfile aggregates one driver's records. Identity fields come from the
// driver's first joined record. portraits may be nil.
func BuildProfile(ds *Dataset, driverID int, portraits *PortraitFinder) (*Profile, error) {
	recs := ds.RecordsFor(driverID)
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: id %d has no race results", ErrDriverNotFound, driverID)
	}
	first := recs[0]
	p := &Profile{
		DriverID:    driverID,
		Forename:    first.Forename,
		Surname:     first.Surname,
		Nationality: first.Nationality,
		Races:       len(recs),
		TotalPoints: totalPoints(recs),
		Seasons:     SeasonAggregate(recs),
		Finishes:    FinishDistribution(recs),
	}
	if !first.DOB.IsZero() {
		p.DOB = first.DOB.Format("2006-01-02")
	}
	if d, ok := ds.Driver(driverID); ok {
		p.Ref, p.Code = d.Ref, d.Code
	}
	if portraits != nil {
		p.Portrait = portraits.Find(first.Surname)
	}
	return p, nil
}

// SeasonAggregate sums points per year, ascending by year.
func SeasonAggregate(recs []Record) []SeasonPoints {
	sums := map[int]float64{}
	for _, r := range recs {
		sums[r.Year] += r.Points
	}
	out := make([]SeasonPoints, 0, len(sums))
	for y, p := range sums {
		out = append(out, SeasonPoints{Year: y, Points: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// FinishDistribution counts races per finishing position, ascending by position.
func FinishDistribution(recs []Record) []FinishCount {
	counts := map[int]int{}
	for _, r := range recs {
		counts[r.PositionOrder]++
	}
	out := make([]FinishCount, 0, len(counts))
	for pos, n := range counts {
		out = append(out, FinishCount{Position: pos, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

func totalPoints(recs []Record) float64 {
	var sum float64
	for _, r := range recs {
		sum += r.Points
	}
	return sum
}
