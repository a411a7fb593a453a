package jcs

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Summary describes one Motion component over a series of samples.
type Summary struct {
	Component string
	Count     int
	Mean      float64
	StdDev    float64
	Min       float64
	Max       float64
}

// Summarize returns a Summary per Motion component, in MotionFields order.
func Summarize(motions []Motion) ([]Summary, error) {
	if len(motions) == 0 {
		return nil, errors.New("no motions to summarize")
	}
	var columns [len(MotionFields)]stats.Float64Data
	for _, m := range motions {
		for i, v := range m.Values() {
			columns[i] = append(columns[i], v)
		}
	}

	out := make([]Summary, 0, len(MotionFields))
	for i, data := range columns {
		mean, err := data.Mean()
		if err != nil {
			return nil, err
		}
		sd, err := data.StandardDeviation()
		if err != nil {
			return nil, err
		}
		lowest, err := data.Min()
		if err != nil {
			return nil, err
		}
		highest, err := data.Max()
		if err != nil {
			return nil, err
		}
		out = append(out, Summary{Component: MotionFields[i], Count: data.Len(), Mean: mean, StdDev: sd, Min: lowest, Max: highest})
	}
	return out, nil
}
