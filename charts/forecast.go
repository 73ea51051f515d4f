package charts

import (
	"fmt"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/bilimetrik/pubtrends/forecast"
)

// ForecastFilename derives the chart filename for one forecast result: the
// subject label truncated to 20 characters plus the target year.
func ForecastFilename(res forecast.Result) string {
	return fmt.Sprintf("%s_%d_forecast.png", truncate(res.Subject, 20), res.TargetYear)
}

// SaveForecast writes one result's fit chart into dir and returns the path.
func SaveForecast(dir string, res forecast.Result) (string, error) {
	path := filepath.Join(dir, ForecastFilename(res))

	var graph chart.Chart
	switch res.Kind {
	case forecast.KindLinear:
		graph = linearChart(res)
	default:
		graph = trendChart(res)
	}
	graph.Title = fmt.Sprintf("%s - %d (%s) forecast", truncate(res.Subject, 20), res.TargetYear, res.Kind)
	graph.Width = 1000
	graph.Height = 600
	graph.Background = chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}}
	graph.XAxis = chart.XAxis{Name: "Year", ValueFormatter: chart.IntValueFormatter}
	graph.YAxis = chart.YAxis{Name: "Publications"}

	if err := renderPNG(path, &graph); err != nil {
		return "", err
	}
	return path, nil
}

func linearChart(res forecast.Result) chart.Chart {
	fit := res.Linear

	// Fit line drawn a little past both ends of the data, through the target.
	minYear, maxYear := fit.Years[0], fit.Years[0]
	for _, y := range fit.Years {
		if y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}
	if t := float64(res.TargetYear); t > maxYear {
		maxYear = t
	}
	lineX := []float64{minYear - 0.5, maxYear + 1}
	lineY := []float64{
		fit.Slope*lineX[0] + fit.Intercept,
		fit.Slope*lineX[1] + fit.Intercept,
	}

	return chart.Chart{
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "observed",
				XValues: fit.Years,
				YValues: fit.Counts,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotColor:    chart.ColorBlue,
					DotWidth:    5,
				},
			},
			chart.ContinuousSeries{
				Name:    "fit",
				XValues: lineX,
				YValues: lineY,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			},
			targetMarker(res),
		},
	}
}

func trendChart(res forecast.Result) chart.Chart {
	fit := res.Trend

	obsX := make([]float64, len(fit.ObservedYears))
	for i, y := range fit.ObservedYears {
		obsX[i] = float64(y)
	}
	curveX := make([]float64, len(fit.Years))
	for i, y := range fit.Years {
		curveX[i] = float64(y)
	}

	return chart.Chart{
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "observed",
				XValues: obsX,
				YValues: fit.Observed,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotColor:    chart.ColorBlue,
					DotWidth:    5,
				},
			},
			chart.ContinuousSeries{
				Name:    "trend",
				XValues: curveX,
				YValues: fit.Fitted,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			},
			targetMarker(res),
		},
	}
}

func targetMarker(res forecast.Result) chart.Series {
	return chart.AnnotationSeries{
		Annotations: []chart.Value2{
			{
				XValue: float64(res.TargetYear),
				YValue: float64(res.Predicted),
				Label:  fmt.Sprintf("%d: %d", res.TargetYear, res.Predicted),
			},
		},
	}
}
