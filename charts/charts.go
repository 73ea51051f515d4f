// Package charts renders the aggregation tables and forecast fits as PNG
// files in the configured chart directory.
package charts

import (
	"fmt"
	"os"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bilimetrik/pubtrends/models"
)

// SaveYearlyTotals renders the per-year totals as a line chart.
func SaveYearlyTotals(path string, rows []models.YearCount) error {
	if len(rows) < 2 {
		return fmt.Errorf("charts: need at least 2 years to draw %s", path)
	}

	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	ticks := make([]chart.Tick, len(rows))
	for i, r := range rows {
		xs[i] = float64(r.Year)
		ys[i] = float64(r.Count)
		ticks[i] = chart.Tick{Value: float64(r.Year), Label: fmt.Sprintf("%d", r.Year)}
	}

	graph := chart.Chart{
		Title:  "Total publications per year",
		Width:  1000,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "Year", Ticks: ticks},
		YAxis: chart.YAxis{Name: "Publications"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
					DotColor:    chart.ColorBlue,
					DotWidth:    4,
				},
			},
		},
	}
	return renderPNG(path, &graph)
}

// SaveUnitTotals renders the top n units by summed publications as a bar
// chart over the whole year window.
func SaveUnitTotals(path string, rows []models.UnitYearCount, n int) error {
	sums := make(map[string]int)
	for _, r := range rows {
		sums[r.Unit] += r.Count
	}
	type unitTotal struct {
		unit string
		sum  int
	}
	totals := make([]unitTotal, 0, len(sums))
	for unit, sum := range sums {
		totals = append(totals, unitTotal{unit, sum})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].sum != totals[j].sum {
			return totals[i].sum > totals[j].sum
		}
		return totals[i].unit < totals[j].unit
	})
	if n > len(totals) {
		n = len(totals)
	}

	bars := make([]chart.Value, 0, n)
	for _, t := range totals[:n] {
		bars = append(bars, chart.Value{Value: float64(t.sum), Label: truncate(t.unit, 18)})
	}
	return renderBars(path, "Most publishing units", bars)
}

// SaveTopAuthors renders the first n author counts as a bar chart.
func SaveTopAuthors(path string, rows []models.AuthorCount, n int) error {
	if n > len(rows) {
		n = len(rows)
	}
	bars := make([]chart.Value, 0, n)
	for _, r := range rows[:n] {
		bars = append(bars, chart.Value{Value: float64(r.Count), Label: truncate(r.Author, 18)})
	}
	return renderBars(path, "Most prolific authors", bars)
}

// SaveTopSubjects renders the first n subject totals as a bar chart.
func SaveTopSubjects(path string, rows []models.SubjectCount, n int) error {
	if n > len(rows) {
		n = len(rows)
	}
	bars := make([]chart.Value, 0, n)
	for _, r := range rows[:n] {
		bars = append(bars, chart.Value{Value: float64(r.Count), Label: truncate(r.Subject, 18)})
	}
	return renderBars(path, "Most published subjects", bars)
}

// SaveTopCitedAuthors renders the first n citation sums as a bar chart.
func SaveTopCitedAuthors(path string, rows []models.AuthorCitations, n int) error {
	if n > len(rows) {
		n = len(rows)
	}
	bars := make([]chart.Value, 0, n)
	for _, r := range rows[:n] {
		bars = append(bars, chart.Value{Value: float64(r.Citations), Label: truncate(r.Author, 18)})
	}
	return renderBars(path, "Most cited authors", bars)
}

// SaveCategoryHeatmap renders the pivoted subject-by-year grid as a heatmap.
// grid is indexed [subject][year] and must match the label slices.
func SaveCategoryHeatmap(path string, years []int, subjects []string, grid [][]float64) error {
	if len(years) == 0 || len(subjects) == 0 {
		return fmt.Errorf("charts: empty grid for %s", path)
	}

	p := plot.New()
	p.Title.Text = "Publications per subject and year"
	p.X.Label.Text = "Year"

	h := plotter.NewHeatMap(heatGrid{years: years, grid: grid}, palette.Heat(12, 1))
	p.Add(h)
	p.NominalY(subjects...)

	return p.Save(12*vg.Inch, vg.Length(1+len(subjects)/2)*vg.Inch, path)
}

// heatGrid adapts the pivoted table to plotter.GridXYZ. Rows are subjects,
// columns years.
type heatGrid struct {
	years []int
	grid  [][]float64
}

func (g heatGrid) Dims() (c, r int)   { return len(g.years), len(g.grid) }
func (g heatGrid) Z(c, r int) float64 { return g.grid[r][c] }
func (g heatGrid) X(c int) float64    { return float64(g.years[c]) }
func (g heatGrid) Y(r int) float64    { return float64(r) }

func renderBars(path, title string, bars []chart.Value) error {
	if len(bars) == 0 {
		return fmt.Errorf("charts: no data to draw %s", path)
	}
	graph := chart.BarChart{
		Title:    title,
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Bars: bars,
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("charts: %w", err)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("charts: render %s: %w", path, err)
	}
	return nil
}

func renderPNG(path string, graph *chart.Chart) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("charts: %w", err)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("charts: render %s: %w", path, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
