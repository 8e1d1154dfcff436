package responses

import (
	"fmt"
	"strconv"

	"github.com/montanaflynn/stats"
)

type ChangeSummary struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// SummarizeChange describes the percent change (pchg) across quotes. Quotes without a
// numeric pchg are skipped.
func SummarizeChange(quotes []*Quote) (ChangeSummary, error) {
	var data stats.Float64Data
	for _, q := range quotes {
		if q == nil || q.PercentChange == nil {
			continue
		}

		v, err := strconv.ParseFloat(*q.PercentChange, 64)
		if err != nil {
			continue
		}
		data = append(data, v)
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return ChangeSummary{}, fmt.Errorf("SummarizeChange: failed to calculate mean: %w", err)
	}

	median, err := stats.Median(data)
	if err != nil {
		return ChangeSummary{}, fmt.Errorf("SummarizeChange: failed to calculate median: %w", err)
	}

	lo, err := stats.Min(data)
	if err != nil {
		return ChangeSummary{}, fmt.Errorf("SummarizeChange: failed to calculate min: %w", err)
	}

	hi, err := stats.Max(data)
	if err != nil {
		return ChangeSummary{}, fmt.Errorf("SummarizeChange: failed to calculate max: %w", err)
	}

	return ChangeSummary{
		Count:  len(data),
		Mean:   mean,
		Median: median,
		Min:    lo,
		Max:    hi,
	}, nil
}
