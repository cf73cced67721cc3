package f1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/pitwall-cli/internal/f1"
	"github.com/KaramelBytes/pitwall-cli/internal/f1/f1test"
)

func TestProfileMarkdownPrintsExactTotals(t *testing.T) {
	p := &f1.Profile{
		Forename:    "Lewis",
		Surname:     "Hamilton",
		TotalPoints: 4639.5,
		Seasons:     []f1.SeasonPoints{{Year: 2019, Points: 413}, {Year: 2021, Points: 387.5}},
	}
	md := p.Markdown()
	assert.Contains(t, md, "Total points: 4639.5\n")
	assert.Contains(t, md, "- 2021: 387.5\n")
}

func TestTrendMarkdownAvoidsExponentForm(t *testing.T) {
	v := &f1.TrendView{Mode: f1.ModeNationality, Groups: []f1.PointsGroup{{
		Key:     "British",
		Summary: f1.Summary{Count: 3, Sum: 23456.5, Mean: 7818.8333, Median: 12000, Min: 456.5, Max: 11000},
	}}}
	md := v.Markdown()
	assert.Contains(t, md, "total 23456.5, mean 7818.83, median 12000 (min 456.5, max 11000)")
	assert.NotContains(t, md, "e+")
}

func TestComparisonMarkdown(t *testing.T) {
	c, err := f1.Compare(f1test.Dataset(t), f1test.Hamilton, f1test.Vettel, 4)
	require.NoError(t, err)
	md := c.Markdown()
	assert.Contains(t, md, "| metric | Lewis Hamilton | Sebastian Vettel |")
	assert.Contains(t, md, "| points | 43 | 75 |")
	assert.Contains(t, md, "- Sebastian Vettel: 2020=40, 2021=35")
	assert.Contains(t, md, "[FINISH HISTOGRAM] (4 shared bins)")
}
