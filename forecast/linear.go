package forecast

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// LinearFit holds a degree-1 least-squares fit over (year, count) pairs,
// along with the raw series its chart redraws.
type LinearFit struct {
	Years     []float64
	Counts    []float64
	Slope     float64
	Intercept float64
}

// FitLinear fits counts against years by ordinary least squares. It needs at
// least two distinct years.
func FitLinear(points []Point) (*LinearFit, error) {
	if err := checkSeries(points); err != nil {
		return nil, err
	}

	years := make([]float64, len(points))
	counts := make([]float64, len(points))
	for i, p := range points {
		years[i] = float64(p.Year)
		counts[i] = float64(p.Count)
	}

	intercept, slope := stat.LinearRegression(years, counts, nil, false)
	return &LinearFit{
		Years:     years,
		Counts:    counts,
		Slope:     slope,
		Intercept: intercept,
	}, nil
}

// Predict evaluates the fit at year, clamped at zero.
func (f *LinearFit) Predict(year int) float64 {
	v := f.Slope*float64(year) + f.Intercept
	if v < 0 {
		return 0
	}
	return v
}

func checkSeries(points []Point) error {
	distinct := make(map[int]struct{}, len(points))
	for _, p := range points {
		distinct[p.Year] = struct{}{}
	}
	if len(distinct) < 2 {
		return fmt.Errorf("forecast: need at least 2 distinct observed years, have %d", len(distinct))
	}
	return nil
}
