// Package forecast matches user-entered subject names against the aggregated
// vocabulary and predicts future yearly publication counts per subject with
// either a linear regression or an additive trend model.
package forecast

import (
	"math"
	"strings"
)

// Kind selects the forecasting model.
type Kind string

const (
	KindTrend  Kind = "trend"
	KindLinear Kind = "lm"
)

// ParseKind resolves a model key case-insensitively.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(KindTrend):
		return KindTrend, true
	case string(KindLinear):
		return KindLinear, true
	}
	return "", false
}

// Point is one observation of a subject's yearly series.
type Point struct {
	Year  int
	Count int
}

// Result is one per-subject forecast. Exactly one of Linear or Trend is set,
// matching Kind; it carries what the chart needs to redraw the fit.
type Result struct {
	Subject    string
	TargetYear int
	Predicted  int
	Kind       Kind

	Linear *LinearFit
	Trend  *TrendFit
}

// Warnf reports a recoverable per-subject problem; the run continues.
type Warnf func(format string, a ...interface{})

// Run forecasts targetYear for each subject in order. Subjects with fewer
// than two distinct observed years, or whose trend curve produces no row for
// the target year, are skipped with a warning. The target year is assumed to
// be validated against the allowed range already.
func Run(subjects []string, targetYear int, kind Kind, series func(subject string) []Point, warnf Warnf) []Result {
	var results []Result
	for _, subject := range subjects {
		points := series(subject)
		if len(points) == 0 {
			warnf("subject %q not found in the aggregated data, skipping", subject)
			continue
		}
		if !hasTwoDistinctYears(points) {
			warnf("not enough data for %q (need at least 2 observed years), skipping", subject)
			continue
		}

		res := Result{Subject: subject, TargetYear: targetYear, Kind: kind}
		switch kind {
		case KindLinear:
			fit, err := FitLinear(points)
			if err != nil {
				warnf("linear fit failed for %q: %v", subject, err)
				continue
			}
			res.Linear = fit
			res.Predicted = int(math.Round(fit.Predict(targetYear)))
		default:
			fit, err := FitTrend(points, targetYear)
			if err != nil {
				warnf("trend fit failed for %q: %v", subject, err)
				continue
			}
			v, ok := fit.At(targetYear)
			if !ok {
				warnf("no prediction for %q at year %d, skipping", subject, targetYear)
				continue
			}
			res.Trend = fit
			res.Predicted = int(math.Round(v))
		}
		results = append(results, res)
	}
	return results
}

func hasTwoDistinctYears(points []Point) bool {
	distinct := make(map[int]struct{}, len(points))
	for _, p := range points {
		distinct[p.Year] = struct{}{}
	}
	return len(distinct) >= 2
}
