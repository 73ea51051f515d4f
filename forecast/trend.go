package forecast

import (
	"gonum.org/v1/gonum/mat"
)

// TrendFit holds an additive piecewise-linear trend model fitted on a yearly
// series with seasonality disabled, extended at yearly frequency out to the
// requested horizon. Predictions are clamped at zero.
type TrendFit struct {
	ObservedYears []int
	Observed      []float64

	// Years runs from the first observed year through the horizon; Fitted
	// holds the clamped trend curve over the same index.
	Years  []int
	Fitted []float64
}

// FitTrend fits the trend model on points and extends the curve to
// targetYear. Changepoints are placed at interior observed years within the
// first 80% of the range; their slope adjustments are ridge-damped so sparse
// series degrade to a plain line rather than chasing noise.
func FitTrend(points []Point, targetYear int) (*TrendFit, error) {
	if err := checkSeries(points); err != nil {
		return nil, err
	}

	n := len(points)
	first, last := points[0].Year, points[0].Year
	for _, p := range points {
		if p.Year < first {
			first = p.Year
		}
		if p.Year > last {
			last = p.Year
		}
	}
	span := float64(last - first)

	norm := func(year int) float64 { return float64(year-first) / span }

	var changepoints []float64
	for _, p := range points {
		t := norm(p.Year)
		if t > 0 && t < 0.8 {
			changepoints = append(changepoints, t)
		}
	}
	k := len(changepoints)

	basis := func(t float64) []float64 {
		row := make([]float64, 2+k)
		row[0] = 1
		row[1] = t
		for j, cp := range changepoints {
			if t > cp {
				row[2+j] = t - cp
			}
		}
		return row
	}

	// Augmented least squares: k extra rows ridge-penalize the changepoint
	// deltas, leaving intercept and base slope free.
	lambda := float64(n)
	x := mat.NewDense(n+k, 2+k, nil)
	y := mat.NewVecDense(n+k, nil)
	for i, p := range points {
		x.SetRow(i, basis(norm(p.Year)))
		y.SetVec(i, float64(p.Count))
	}
	for j := 0; j < k; j++ {
		x.Set(n+j, 2+j, lambda)
	}

	var coef mat.VecDense
	if err := coef.SolveVec(x, y); err != nil {
		return nil, err
	}

	horizon := targetYear
	if horizon < last {
		horizon = last
	}

	fit := &TrendFit{
		ObservedYears: make([]int, n),
		Observed:      make([]float64, n),
	}
	for i, p := range points {
		fit.ObservedYears[i] = p.Year
		fit.Observed[i] = float64(p.Count)
	}
	for year := first; year <= horizon; year++ {
		v := mat.Dot(&coef, mat.NewVecDense(2+k, basis(norm(year))))
		if v < 0 {
			v = 0
		}
		fit.Years = append(fit.Years, year)
		fit.Fitted = append(fit.Fitted, v)
	}
	return fit, nil
}

// At returns the fitted value for year, or false when the curve has no row
// for it.
func (f *TrendFit) At(year int) (float64, bool) {
	for i, y := range f.Years {
		if y == year {
			return f.Fitted[i], true
		}
	}
	return 0, false
}
