package f1

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TrendMode selects one career-trend view.
type TrendMode string

const (
	ModeNationality TrendMode = "nationality"
	ModeConstructor TrendMode = "constructor"
	ModeYear        TrendMode = "year"
	ModeGridFinish  TrendMode = "grid-finish"
)

// TrendModes lists the supported modes in display order.
var TrendModes = []TrendMode{ModeNationality, ModeConstructor, ModeYear, ModeGridFinish}

// ParseTrendMode accepts a mode name, case-insensitive.
func ParseTrendMode(s string) (TrendMode, error) {
	m := TrendMode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range TrendModes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q (use nationality, constructor, year or grid-finish)", ErrUnknownMode, s)
}

// PointsGroup is one group of point-scoring results.
type PointsGroup struct {
	Key     string    `json:"key"`
	Points  []float64 `json:"points"`
	Summary Summary   `json:"summary"`
}

// GridFinish pairs a starting slot with the finishing position.
type GridFinish struct {
	Grid   int `json:"grid"`
	Finish int `json:"finish"`
}

// TrendView is the career-trend aggregation over the whole dataset.
type TrendView struct {
	Mode   TrendMode     `json:"mode"`
	Groups []PointsGroup `json:"groups,omitempty"`
	Pairs  []GridFinish  `json:"pairs,omitempty"`
	// Correlation of grid and finish, present in grid-finish mode with enough data.
	Correlation *float64 `json:"correlation,omitempty"`
}

// CareerTrends aggregates every joined record for the given mode.
// Grouped modes keep only point-scoring results; grid-finish keeps results
// where both grid and finish are below DNFSentinel.
func CareerTrends(ds *Dataset, mode TrendMode) (*TrendView, error) {
	switch mode {
	case ModeNationality:
		return groupPoints(ds, mode, func(r Record) string { return r.Nationality }, false), nil
	case ModeConstructor:
		return groupPoints(ds, mode, func(r Record) string { return strconv.Itoa(r.ConstructorID) }, true), nil
	case ModeYear:
		return groupPoints(ds, mode, func(r Record) string { return strconv.Itoa(r.Year) }, true), nil
	case ModeGridFinish:
		return gridFinish(ds), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

func groupPoints(ds *Dataset, mode TrendMode, key func(Record) string, numeric bool) *TrendView {
	idx := map[string]int{}
	var groups []PointsGroup
	for _, r := range ds.Records() {
		if r.Points <= 0 {
			continue
		}
		k := key(r)
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, PointsGroup{Key: k})
		}
		groups[i].Points = append(groups[i].Points, r.Points)
	}
	for i := range groups {
		groups[i].Summary = summarize(groups[i].Points)
	}
	sort.Slice(groups, func(i, j int) bool {
		if numeric {
			a, errA := strconv.Atoi(groups[i].Key)
			b, errB := strconv.Atoi(groups[j].Key)
			if errA == nil && errB == nil {
				return a < b
			}
		}
		return groups[i].Key < groups[j].Key
	})
	return &TrendView{Mode: mode, Groups: groups}
}

func gridFinish(ds *Dataset) *TrendView {
	v := &TrendView{Mode: ModeGridFinish}
	var xs, ys []float64
	for _, r := range ds.Records() {
		if r.Grid >= DNFSentinel || r.PositionOrder >= DNFSentinel {
			continue
		}
		v.Pairs = append(v.Pairs, GridFinish{Grid: r.Grid, Finish: r.PositionOrder})
		xs = append(xs, float64(r.Grid))
		ys = append(ys, float64(r.PositionOrder))
	}
	if c, ok := pearson(xs, ys); ok {
		v.Correlation = &c
	}
	return v
}
