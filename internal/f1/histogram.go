package f1

import "sort"

// DefaultBins is the comparison histogram bin count.
const DefaultBins = 20

// SharedEdges returns bins+1 equal-width edges spanning the combined range of
// all samples. A degenerate range is widened by half a unit on each side.
// It returns nil when every sample is empty.
func SharedEdges(bins int, samples ...[]float64) []float64 {
	if bins <= 0 {
		bins = DefaultBins
	}
	var lo, hi float64
	seen := false
	for _, s := range samples {
		for _, v := range s {
			if !seen || v < lo {
				lo = v
			}
			if !seen || v > hi {
				hi = v
			}
			seen = true
		}
	}
	if !seen {
		return nil
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi
	return edges
}

// BinCounts counts vals into [edges[i], edges[i+1]) with the last bin closed.
// Values outside the edges are ignored.
func BinCounts(edges, vals []float64) []int {
	if len(edges) < 2 {
		return nil
	}
	counts := make([]int, len(edges)-1)
	last := len(edges) - 1
	for _, v := range vals {
		if v < edges[0] || v > edges[last] {
			continue
		}
		i := sort.Search(len(edges), func(k int) bool { return edges[k] > v }) - 1
		if i >= last {
			i = last - 1
		}
		counts[i]++
	}
	return counts
}
