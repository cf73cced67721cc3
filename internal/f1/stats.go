package f1

import (
	"math"

	"github.com/go-gota/gota/series"
)

// Summary holds descriptive statistics of a numeric sample.
type Summary struct {
	Count  int     `json:"count"`
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

func summarize(vals []float64) Summary {
	if len(vals) == 0 {
		return Summary{}
	}
	col := series.Floats(vals)
	s := Summary{
		Count:  col.Len(),
		Mean:   col.Mean(),
		Median: col.Median(),
		Min:    col.Min(),
		Max:    col.Max(),
	}
	for _, v := range vals {
		s.Sum += v
	}
	return s
}

// pearson returns the correlation of xs and ys, false when undefined.
func pearson(xs, ys []float64) (float64, bool) {
	n := float64(len(xs))
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0, false
	}
	var sx, sy, sxx, syy, sxy float64
	for i := range xs {
		x, y := xs[i], ys[i]
		sx += x
		sy += y
		sxx += x * x
		syy += y * y
		sxy += x * y
	}
	num := n*sxy - sx*sy
	den := math.Sqrt(n*sxx-sx*sx) * math.Sqrt(n*syy-sy*sy)
	if den == 0 || math.IsNaN(den) {
		return 0, false
	}
	return num / den, true
}
